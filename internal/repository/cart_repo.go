package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce_backend/internal/models"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

var _ Carts = (*CartRepository)(nil)

const (
	insertCartSQL     = `INSERT INTO carts (user_id, created_at) VALUES (?, ?)`
	selectCartsSQL    = `SELECT cart_id, user_id, created_at FROM carts`
	selectCartByIDSQL = selectCartsSQL + ` WHERE cart_id = ?`
	updateCartSQL     = `UPDATE carts SET user_id = ? WHERE cart_id = ?`
	deleteCartSQL     = `DELETE FROM carts WHERE cart_id = ?`
)

func (r *CartRepository) Create(ctx context.Context, c models.Cart) (models.Cart, error) {
	res, err := r.db.ExecContext(ctx, insertCartSQL, c.UserID, time.Now().UTC())
	if err != nil {
		return models.Cart{}, fmt.Errorf("insert cart for user %d: %w", c.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Cart{}, fmt.Errorf("get last insert id for cart: %w", err)
	}
	return r.GetByID(ctx, int(lastID))
}

func (r *CartRepository) List(ctx context.Context) ([]models.Cart, error) {
	rows, err := r.db.QueryContext(ctx, selectCartsSQL)
	if err != nil {
		return nil, fmt.Errorf("select carts: %w", err)
	}
	defer rows.Close()

	carts := []models.Cart{}
	for rows.Next() {
		var c models.Cart
		if err := rows.Scan(&c.ID, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		carts = append(carts, c)
	}
	return carts, rows.Err()
}

func (r *CartRepository) GetByID(ctx context.Context, id int) (models.Cart, error) {
	var c models.Cart
	err := r.db.QueryRowContext(ctx, selectCartByIDSQL, id).Scan(&c.ID, &c.UserID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cart{}, ErrNotFound
	}
	return c, err
}

func (r *CartRepository) Update(ctx context.Context, c models.Cart) (models.Cart, error) {
	res, err := r.db.ExecContext(ctx, updateCartSQL, c.UserID, c.ID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("update cart %d: %w", c.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Cart{}, ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CartRepository) Delete(ctx context.Context, id int) (models.Cart, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Cart{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteCartSQL, id); err != nil {
		return models.Cart{}, fmt.Errorf("delete cart %d: %w", id, err)
	}
	return c, nil
}
