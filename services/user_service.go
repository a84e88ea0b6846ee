package services

import (
	"context"
	"errors"
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/models"
	"gin-foody/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IUserService interface {
	FindAll(ctx context.Context) (*[]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	GrantAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(ctx context.Context) (*[]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repository.FindByEmail(ctx, email)
}

// Create stores a user unless the email is already taken. Email
// uniqueness is the one invariant of the users collection.
func (s *UserService) Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error) {
	existing, err := s.repository.FindByEmail(ctx, input.Email)
	if err != nil && err.Error() != constants.ErrUserNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(constants.ErrUserExists)
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
		Role:     constants.RoleUser,
	}
	return s.repository.Create(ctx, newUser)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repository.Delete(ctx, id)
}

// IsAdmin reports whether the stored role for email is admin. An
// unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		if err.Error() == constants.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	return user.Role == constants.RoleAdmin, nil
}

func (s *UserService) GrantAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.repository.GrantAdmin(ctx, id)
}
