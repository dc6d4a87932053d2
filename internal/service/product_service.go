package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

// ProductService mutates catalog rows and keeps the media store in sync:
// a replaced or deleted product drops its previously stored image file.
type ProductService struct {
	products repository.Products
	files    FileRemover
}

func NewProductService(products repository.Products, files FileRemover) *ProductService {
	return &ProductService{products: products, files: files}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	return s.products.Create(ctx, models.Product{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.ImagePath,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
	})
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int) (models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Replace overwrites every field. When a new image was uploaded, the
// prior stored file is removed best-effort after the row update.
func (s *ProductService) Replace(ctx context.Context, id int, in ProductInput) (models.Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	updated, err := s.products.Update(ctx, models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.ImagePath,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
	})
	if err != nil {
		return models.Product{}, err
	}

	if in.ImagePath != "" && existing.Image != "" && existing.Image != in.ImagePath {
		s.files.Remove(existing.Image)
	}
	return updated, nil
}

// PartialUpdate merges the submitted fields over the stored row using the
// patchValue policy and writes the merged row back in full.
func (s *ProductService) PartialUpdate(ctx context.Context, id int, in ProductInput) (models.Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	merged := models.Product{
		ID:          id,
		Name:        patchValue(in.Name, existing.Name),
		Description: patchValue(in.Description, existing.Description),
		Image:       patchValue(in.ImagePath, existing.Image),
		Price:       patchValue(in.Price, existing.Price),
		CategoryID:  patchValue(in.CategoryID, existing.CategoryID),
		Stock:       patchValue(in.Stock, existing.Stock),
	}
	return s.products.Update(ctx, merged)
}

// Delete removes the row, then its stored image file best-effort.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.Image != "" {
		s.files.Remove(deleted.Image)
	}
	return nil
}
