package service

import (
	"context"
	"errors"
	"testing"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

func TestProductService_Delete_RemovesStoredImage(t *testing.T) {
	repo := &mockProductRepo{
		DeleteFn: func(ctx context.Context, id int) (models.Product, error) {
			return models.Product{ID: id, Name: "mug", Image: "uploads/mug-resized.jpg"}, nil
		},
	}
	remover := &mockRemover{}
	svc := NewProductService(repo, remover)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "uploads/mug-resized.jpg" {
		t.Fatalf("expected image file removal, got %v", remover.removed)
	}
}

func TestProductService_Delete_NoImageNoRemoval(t *testing.T) {
	repo := &mockProductRepo{
		DeleteFn: func(ctx context.Context, id int) (models.Product, error) {
			return models.Product{ID: id, Name: "mug"}, nil
		},
	}
	remover := &mockRemover{}
	svc := NewProductService(repo, remover)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("expected no removal, got %v", remover.removed)
	}
}

func TestProductService_Delete_MissingRecord(t *testing.T) {
	repo := &mockProductRepo{
		DeleteFn: func(ctx context.Context, id int) (models.Product, error) {
			return models.Product{}, repository.ErrNotFound
		},
	}
	remover := &mockRemover{}
	svc := NewProductService(repo, remover)

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("no file removal expected for a missing record, got %v", remover.removed)
	}
}

func TestProductService_Replace_DropsPriorImageOnNewUpload(t *testing.T) {
	repo := &mockProductRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.Product, error) {
			return models.Product{ID: id, Image: "uploads/old.jpg"}, nil
		},
		UpdateFn: func(ctx context.Context, p models.Product) (models.Product, error) {
			return p, nil
		},
	}
	remover := &mockRemover{}
	svc := NewProductService(repo, remover)

	got, err := svc.Replace(context.Background(), 1, ProductInput{
		Name: "mug", Description: "a mug", ImagePath: "uploads/new.jpg", Price: 3, CategoryID: 1, Stock: 9,
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got.Image != "uploads/new.jpg" {
		t.Errorf("image: got %q", got.Image)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "uploads/old.jpg" {
		t.Fatalf("expected prior image removal, got %v", remover.removed)
	}
}

func TestProductService_Replace_NoUploadKeepsFile(t *testing.T) {
	repo := &mockProductRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.Product, error) {
			return models.Product{ID: id, Image: "uploads/old.jpg"}, nil
		},
		UpdateFn: func(ctx context.Context, p models.Product) (models.Product, error) {
			return p, nil
		},
	}
	remover := &mockRemover{}
	svc := NewProductService(repo, remover)

	if _, err := svc.Replace(context.Background(), 1, ProductInput{Name: "mug"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("no removal expected without a new upload, got %v", remover.removed)
	}
}

func TestProductService_PartialUpdate_MergesOverStored(t *testing.T) {
	repo := &mockProductRepo{
		GetByIDFn: func(ctx context.Context, id int) (models.Product, error) {
			return models.Product{
				ID: id, Name: "mug", Description: "a mug",
				Image: "uploads/mug.jpg", Price: 3.50, CategoryID: 2, Stock: 7,
			}, nil
		},
		UpdateFn: func(ctx context.Context, p models.Product) (models.Product, error) {
			return p, nil
		},
	}
	svc := NewProductService(repo, &mockRemover{})

	got, err := svc.PartialUpdate(context.Background(), 1, ProductInput{Price: 4.25, Stock: 0})
	if err != nil {
		t.Fatalf("PartialUpdate: %v", err)
	}
	if got.Price != 4.25 {
		t.Errorf("price: got %v, want 4.25", got.Price)
	}
	if got.Stock != 7 {
		t.Errorf("stock: got %d, want 7 (zero submitted value must not overwrite)", got.Stock)
	}
	if got.Name != "mug" || got.Image != "uploads/mug.jpg" || got.CategoryID != 2 {
		t.Errorf("omitted fields changed: %+v", got)
	}
}
