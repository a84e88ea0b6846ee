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

type IMenuRepository interface {
	FindAll(ctx context.Context) (*[]models.MenuItem, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) IMenuRepository {
	return &MenuRepository{collection: db.Collection(constants.MenuCollection)}
}

// FindAll returns every menu item, newest first.
func (r *MenuRepository) FindAll(ctx context.Context) (*[]models.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return &items, nil
}

func (r *MenuRepository) FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New(constants.ErrMenuNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return &item, nil
}

// Update replaces the mutable fields of a menu item; _id and createdAt
// are left untouched.
func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*models.MenuItem, error) {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"recipe":   item.Recipe,
		"image":    item.Image,
		"category": item.Category,
		"price":    item.Price,
	}}
	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, errors.New(constants.ErrMenuNotFound)
	}
	return r.FindById(ctx, id)
}

func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New(constants.ErrMenuNotFound)
	}
	return nil
}
