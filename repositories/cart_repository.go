package repositories

import (
	"context"
	"errors"
	"gin-foody/constants"
	"gin-foody/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ICartRepository interface {
	FindByEmail(ctx context.Context, email string) (*[]models.CartItem, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	Create(ctx context.Context, item models.CartItem) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) ICartRepository {
	return &CartRepository{collection: db.Collection(constants.CartCollection)}
}

// FindByEmail lists the cart items belonging to email. An empty email
// returns the whole collection, matching the unfiltered query.
func (r *CartRepository) FindByEmail(ctx context.Context, email string) (*[]models.CartItem, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return &items, nil
}

// FindById returns nil without an error when the item does not exist; a
// missing cart entry is not a failure for callers.
func (r *CartRepository) FindById(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(ctx context.Context, item models.CartItem) (*models.CartItem, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return &item, nil
}

// UpdateQuantity sets only the quantity field, inserting the document
// when the id matches nothing (upsert).
func (r *CartRepository) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"quantity": quantity}}
	opts := options.Update().SetUpsert(true)
	return r.collection.UpdateOne(ctx, filter, update, opts)
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
