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

type IUserRepository interface {
	FindAll(ctx context.Context) (*[]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GrantAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection(constants.UserCollection)}
}

func (r *UserRepository) FindAll(ctx context.Context) (*[]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return &users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New(constants.ErrUserNotFound)
	}
	return nil
}

// GrantAdmin sets the role field to admin, creating the document if the
// id matches nothing (upsert).
func (r *UserRepository) GrantAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"role": constants.RoleAdmin}}
	opts := options.Update().SetUpsert(true)
	return r.collection.UpdateOne(ctx, filter, update, opts)
}
