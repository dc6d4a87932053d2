package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecommerce_backend/internal/models"
)

type CartItemRepository struct {
	db *sql.DB
}

func NewCartItemRepository(db *sql.DB) *CartItemRepository {
	return &CartItemRepository{db: db}
}

var _ CartItems = (*CartItemRepository)(nil)

const (
	insertCartItemSQL = `
		INSERT INTO cart_items (cart_id, product_id, quantity, price, product_name, cart_image)
		VALUES (?, ?, ?, ?, ?, ?)`

	selectCartItemsSQL = `
		SELECT cart_item_id, cart_id, product_id, quantity, price, product_name, cart_image
		FROM cart_items`

	selectCartItemByIDSQL = selectCartItemsSQL + ` WHERE cart_item_id = ?`

	updateCartItemSQL = `
		UPDATE cart_items
		SET cart_id = ?, product_id = ?, quantity = ?, price = ?, product_name = ?, cart_image = ?
		WHERE cart_item_id = ?`

	deleteCartItemSQL = `DELETE FROM cart_items WHERE cart_item_id = ?`
)

func scanCartItem(row *sql.Row) (models.CartItem, error) {
	var it models.CartItem
	err := row.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.Price, &it.ProductName, &it.CartImage)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CartItem{}, ErrNotFound
	}
	return it, err
}

func (r *CartItemRepository) Create(ctx context.Context, it models.CartItem) (models.CartItem, error) {
	if it.Quantity == 0 {
		it.Quantity = 1
	}
	res, err := r.db.ExecContext(ctx, insertCartItemSQL,
		it.CartID, it.ProductID, it.Quantity, it.Price, it.ProductName, it.CartImage)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("insert cart item for product %d: %w", it.ProductID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.CartItem{}, fmt.Errorf("get last insert id for cart item: %w", err)
	}
	return r.GetByID(ctx, int(lastID))
}

func (r *CartItemRepository) List(ctx context.Context) ([]models.CartItem, error) {
	rows, err := r.db.QueryContext(ctx, selectCartItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("select cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.Price, &it.ProductName, &it.CartImage); err != nil {
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CartItemRepository) GetByID(ctx context.Context, id int) (models.CartItem, error) {
	return scanCartItem(r.db.QueryRowContext(ctx, selectCartItemByIDSQL, id))
}

func (r *CartItemRepository) Update(ctx context.Context, it models.CartItem) (models.CartItem, error) {
	res, err := r.db.ExecContext(ctx, updateCartItemSQL,
		it.CartID, it.ProductID, it.Quantity, it.Price, it.ProductName, it.CartImage, it.ID)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("update cart item %d: %w", it.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.CartItem{}, ErrNotFound
	}
	return r.GetByID(ctx, it.ID)
}

func (r *CartItemRepository) Delete(ctx context.Context, id int) (models.CartItem, error) {
	it, err := r.GetByID(ctx, id)
	if err != nil {
		return models.CartItem{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteCartItemSQL, id); err != nil {
		return models.CartItem{}, fmt.Errorf("delete cart item %d: %w", id, err)
	}
	return it, nil
}
