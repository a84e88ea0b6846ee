package services

import (
	"context"
	"gin-foody/dto"
	"gin-foody/models"
	"gin-foody/repositories"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IMenuService interface {
	FindAll(ctx context.Context) (*[]models.MenuItem, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Create(ctx context.Context, input dto.CreateMenuItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, input dto.UpdateMenuItemInput) (*models.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MenuService struct {
	repository repositories.IMenuRepository
}

func NewMenuService(repository repositories.IMenuRepository) IMenuService {
	return &MenuService{repository: repository}
}

func (s *MenuService) FindAll(ctx context.Context) (*[]models.MenuItem, error) {
	return s.repository.FindAll(ctx)
}

func (s *MenuService) FindById(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	return s.repository.FindById(ctx, id)
}

// Create stores a new menu item with a server-set creation time.
func (s *MenuService) Create(ctx context.Context, input dto.CreateMenuItemInput) (*models.MenuItem, error) {
	newItem := models.MenuItem{
		Name:      input.Name,
		Recipe:    input.Recipe,
		Image:     input.Image,
		Category:  input.Category,
		Price:     input.Price,
		CreatedAt: time.Now(),
	}
	return s.repository.Create(ctx, newItem)
}

func (s *MenuService) Update(ctx context.Context, id primitive.ObjectID, input dto.UpdateMenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:     input.Name,
		Recipe:   input.Recipe,
		Image:    input.Image,
		Category: input.Category,
		Price:    input.Price,
	}
	return s.repository.Update(ctx, id, item)
}

func (s *MenuService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repository.Delete(ctx, id)
}
