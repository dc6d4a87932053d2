package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

// CartItemService mutates cart line items. Replace and PartialUpdate only
// touch the cart linkage fields (cart_id, product_id, quantity); the
// denormalized product snapshot (price, name, image) is fixed at creation.
type CartItemService struct {
	items repository.CartItems
}

func NewCartItemService(items repository.CartItems) *CartItemService {
	return &CartItemService{items: items}
}

func (s *CartItemService) Create(ctx context.Context, in CartItemInput) (models.CartItem, error) {
	return s.items.Create(ctx, models.CartItem{
		CartID:      in.CartID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		ProductName: in.ProductName,
		CartImage:   in.CartImage,
	})
}

func (s *CartItemService) List(ctx context.Context) ([]models.CartItem, error) {
	return s.items.List(ctx)
}

func (s *CartItemService) GetByID(ctx context.Context, id int) (models.CartItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *CartItemService) Replace(ctx context.Context, id int, in CartItemInput) (models.CartItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return models.CartItem{}, err
	}
	existing.CartID = in.CartID
	existing.ProductID = in.ProductID
	existing.Quantity = in.Quantity
	return s.items.Update(ctx, existing)
}

// PartialUpdate merges the submitted linkage fields over the stored row
// using the patchValue policy: a submitted zero (e.g. quantity 0) keeps
// the stored value.
func (s *CartItemService) PartialUpdate(ctx context.Context, id int, in CartItemInput) (models.CartItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return models.CartItem{}, err
	}
	existing.CartID = patchValue(in.CartID, existing.CartID)
	existing.ProductID = patchValue(in.ProductID, existing.ProductID)
	existing.Quantity = patchValue(in.Quantity, existing.Quantity)
	return s.items.Update(ctx, existing)
}

func (s *CartItemService) Delete(ctx context.Context, id int) error {
	_, err := s.items.Delete(ctx, id)
	return err
}
