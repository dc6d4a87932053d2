package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

type CartService struct {
	carts repository.Carts
}

func NewCartService(carts repository.Carts) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Create(ctx context.Context, userID int) (models.Cart, error) {
	return s.carts.Create(ctx, models.Cart{UserID: userID})
}

func (s *CartService) List(ctx context.Context) ([]models.Cart, error) {
	return s.carts.List(ctx)
}

func (s *CartService) GetByID(ctx context.Context, id int) (models.Cart, error) {
	return s.carts.GetByID(ctx, id)
}

func (s *CartService) Replace(ctx context.Context, id, userID int) (models.Cart, error) {
	return s.carts.Update(ctx, models.Cart{ID: id, UserID: userID})
}

func (s *CartService) Delete(ctx context.Context, id int) (models.Cart, error) {
	return s.carts.Delete(ctx, id)
}
