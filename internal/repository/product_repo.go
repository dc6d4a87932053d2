package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce_backend/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ Products = (*ProductRepository)(nil)

const (
	insertProductSQL = `
		INSERT INTO products (product_name, description, product_image, price, category_id, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	selectProductsSQL = `
		SELECT product_id, product_name, description, product_image, price, category_id, stock, created_at, updated_at
		FROM products`

	selectProductByIDSQL = selectProductsSQL + ` WHERE product_id = ?`

	updateProductSQL = `
		UPDATE products
		SET product_name = ?, description = ?, product_image = ?, price = ?, category_id = ?, stock = ?, updated_at = ?
		WHERE product_id = ?`

	deleteProductSQL = `DELETE FROM products WHERE product_id = ?`
)

func scanProduct(row *sql.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.Price, &p.CategoryID, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (r *ProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertProductSQL,
		p.Name, p.Description, p.Image, p.Price, p.CategoryID, p.Stock, now, now)
	if err != nil {
		return models.Product{}, fmt.Errorf("insert product %q: %w", p.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Product{}, fmt.Errorf("get last insert id for product: %w", err)
	}
	return r.GetByID(ctx, int(lastID))
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.Price, &p.CategoryID, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx, selectProductByIDSQL, id))
}

// Update replaces all mutable columns and refreshes updated_at.
func (r *ProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	res, err := r.db.ExecContext(ctx, updateProductSQL,
		p.Name, p.Description, p.Image, p.Price, p.CategoryID, p.Stock, time.Now().UTC(), p.ID)
	if err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Product{}, ErrNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (models.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteProductSQL, id); err != nil {
		return models.Product{}, fmt.Errorf("delete product %d: %w", id, err)
	}
	return p, nil
}
