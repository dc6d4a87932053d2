package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

type CategoryService struct {
	categories repository.Categories
}

func NewCategoryService(categories repository.Categories) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (models.Category, error) {
	return s.categories.Create(ctx, models.Category{Name: name, Description: description})
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Replace(ctx context.Context, id int, name, description string) (models.Category, error) {
	return s.categories.Update(ctx, models.Category{ID: id, Name: name, Description: description})
}

func (s *CategoryService) Delete(ctx context.Context, id int) (models.Category, error) {
	return s.categories.Delete(ctx, id)
}
