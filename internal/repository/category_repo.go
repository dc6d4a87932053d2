package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecommerce_backend/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	insertCategorySQL     = `INSERT INTO categories (name, description) VALUES (?, ?)`
	selectCategoriesSQL   = `SELECT category_id, name, description FROM categories`
	selectCategoryByIDSQL = selectCategoriesSQL + ` WHERE category_id = ?`
	updateCategorySQL     = `UPDATE categories SET name = ?, description = ? WHERE category_id = ?`
	deleteCategorySQL     = `DELETE FROM categories WHERE category_id = ?`
)

func (r *CategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	res, err := r.db.ExecContext(ctx, insertCategorySQL, c.Name, c.Description)
	if err != nil {
		return models.Category{}, fmt.Errorf("insert category %q: %w", c.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Category{}, fmt.Errorf("get last insert id for category: %w", err)
	}
	return r.GetByID(ctx, int(lastID))
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	return c, err
}

func (r *CategoryRepository) Update(ctx context.Context, c models.Category) (models.Category, error) {
	res, err := r.db.ExecContext(ctx, updateCategorySQL, c.Name, c.Description, c.ID)
	if err != nil {
		return models.Category{}, fmt.Errorf("update category %d: %w", c.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Category{}, ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) (models.Category, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteCategorySQL, id); err != nil {
		return models.Category{}, fmt.Errorf("delete category %d: %w", id, err)
	}
	return c, nil
}
