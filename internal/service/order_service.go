package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

type OrderService struct {
	orders repository.Orders
}

func NewOrderService(orders repository.Orders) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (models.Order, error) {
	return s.orders.Create(ctx, models.Order{
		UserID:      in.UserID,
		TotalAmount: in.TotalAmount,
		Status:      in.Status,
	})
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id int) (models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) Replace(ctx context.Context, id int, in OrderInput) (models.Order, error) {
	return s.orders.Update(ctx, models.Order{
		ID:          id,
		UserID:      in.UserID,
		TotalAmount: in.TotalAmount,
		Status:      in.Status,
	})
}

// PartialUpdate merges submitted fields over the stored order with the
// patchValue policy, then writes the merged row back in full.
func (s *OrderService) PartialUpdate(ctx context.Context, id int, in OrderInput) (models.Order, error) {
	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	existing.UserID = patchValue(in.UserID, existing.UserID)
	existing.TotalAmount = patchValue(in.TotalAmount, existing.TotalAmount)
	existing.Status = patchValue(in.Status, existing.Status)
	return s.orders.Update(ctx, existing)
}

func (s *OrderService) Delete(ctx context.Context, id int) (models.Order, error) {
	return s.orders.Delete(ctx, id)
}
