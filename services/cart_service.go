package services

import (
	"context"
	"gin-foody/dto"
	"gin-foody/models"
	"gin-foody/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ICartService interface {
	FindByEmail(ctx context.Context, email string) (*[]models.CartItem, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	Create(ctx context.Context, input dto.CreateCartItemInput) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CartService struct {
	repository repositories.ICartRepository
}

func NewCartService(repository repositories.ICartRepository) ICartService {
	return &CartService{repository: repository}
}

func (s *CartService) FindByEmail(ctx context.Context, email string) (*[]models.CartItem, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *CartService) FindById(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	return s.repository.FindById(ctx, id)
}

func (s *CartService) Create(ctx context.Context, input dto.CreateCartItemInput) (*models.CartItem, error) {
	newItem := models.CartItem{
		MenuItemID: input.MenuItemID,
		Name:       input.Name,
		Recipe:     input.Recipe,
		Image:      input.Image,
		Price:      input.Price,
		Quantity:   input.Quantity,
		Email:      input.Email,
	}
	return s.repository.Create(ctx, newItem)
}

func (s *CartService) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*mongo.UpdateResult, error) {
	return s.repository.UpdateQuantity(ctx, id, quantity)
}

func (s *CartService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repository.Delete(ctx, id)
}
