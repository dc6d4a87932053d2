package service

import (
	"context"
	"errors"
	"testing"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

func TestPatchValue(t *testing.T) {
	if got := patchValue("new", "old"); got != "new" {
		t.Errorf("submitted value should win, got %q", got)
	}
	if got := patchValue("", "old"); got != "old" {
		t.Errorf("empty string treated as not provided, got %q", got)
	}
	if got := patchValue(0, 5); got != 5 {
		t.Errorf("zero treated as not provided, got %d", got)
	}
	if got := patchValue(3, 5); got != 3 {
		t.Errorf("submitted int should win, got %d", got)
	}
	if got := patchValue(0.0, 2.5); got != 2.5 {
		t.Errorf("zero float treated as not provided, got %v", got)
	}
}

// A submitted quantity of 0 keeps the stored quantity: zero values are
// indistinguishable from absent fields under the patchValue policy.
func TestCartItemService_PartialUpdate_ZeroQuantityKeepsStored(t *testing.T) {
	repo := &mockCartItemRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.CartItem, error) {
			return models.CartItem{ID: id, CartID: 3, ProductID: 10, Quantity: 5}, nil
		},
		UpdateFn: func(ctx context.Context, it models.CartItem) (models.CartItem, error) {
			return it, nil
		},
	}
	svc := NewCartItemService(repo)

	got, err := svc.PartialUpdate(context.Background(), 1, CartItemInput{Quantity: 0})
	if err != nil {
		t.Fatalf("PartialUpdate: %v", err)
	}
	if got.Quantity != 5 {
		t.Errorf("quantity: got %d, want 5 (zero submitted value must not overwrite)", got.Quantity)
	}
	if got.ProductID != 10 || got.CartID != 3 {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestCartItemService_PartialUpdate_SubmittedFieldsWin(t *testing.T) {
	repo := &mockCartItemRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.CartItem, error) {
			return models.CartItem{ID: id, CartID: 3, ProductID: 10, Quantity: 5, Price: 9.99}, nil
		},
		UpdateFn: func(ctx context.Context, it models.CartItem) (models.CartItem, error) {
			return it, nil
		},
	}
	svc := NewCartItemService(repo)

	got, err := svc.PartialUpdate(context.Background(), 1, CartItemInput{Quantity: 2, CartID: 8})
	if err != nil {
		t.Fatalf("PartialUpdate: %v", err)
	}
	if got.Quantity != 2 || got.CartID != 8 {
		t.Errorf("submitted fields not applied: %+v", got)
	}
	if got.ProductID != 10 || got.Price != 9.99 {
		t.Errorf("omitted fields changed: %+v", got)
	}
}

func TestCartItemService_PartialUpdate_MissingRecord(t *testing.T) {
	repo := &mockCartItemRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.CartItem, error) {
			return models.CartItem{}, repository.ErrNotFound
		},
		UpdateFn: func(ctx context.Context, it models.CartItem) (models.CartItem, error) {
			t.Fatal("Update must not run when the record is missing")
			return it, nil
		},
	}
	svc := NewCartItemService(repo)

	_, err := svc.PartialUpdate(context.Background(), 99, CartItemInput{Quantity: 2})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Fatalf("expected no update calls, got %d", len(repo.updateCalls))
	}
}

func TestOrderService_PartialUpdate_Merge(t *testing.T) {
	repo := &mockOrderRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.Order, error) {
			return models.Order{ID: id, UserID: 4, TotalAmount: 120.50, Status: "pending"}, nil
		},
		UpdateFn: func(ctx context.Context, o models.Order) (models.Order, error) {
			return o, nil
		},
	}
	svc := NewOrderService(repo)

	got, err := svc.PartialUpdate(context.Background(), 1, OrderInput{Status: "shipped"})
	if err != nil {
		t.Fatalf("PartialUpdate: %v", err)
	}
	if got.Status != "shipped" {
		t.Errorf("status: got %q, want shipped", got.Status)
	}
	if got.UserID != 4 || got.TotalAmount != 120.50 {
		t.Errorf("omitted fields changed: %+v", got)
	}
}
