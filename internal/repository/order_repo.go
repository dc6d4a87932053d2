package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce_backend/internal/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ Orders = (*OrderRepository)(nil)

const (
	insertOrderSQL     = `INSERT INTO orders (user_id, total_amount, status, created_at) VALUES (?, ?, ?, ?)`
	selectOrdersSQL    = `SELECT order_id, user_id, total_amount, status, created_at FROM orders`
	selectOrderByIDSQL = selectOrdersSQL + ` WHERE order_id = ?`
	updateOrderSQL     = `UPDATE orders SET user_id = ?, total_amount = ?, status = ? WHERE order_id = ?`
	deleteOrderSQL     = `DELETE FROM orders WHERE order_id = ?`
)

func scanOrder(row *sql.Row) (models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

func (r *OrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	res, err := r.db.ExecContext(ctx, insertOrderSQL, o.UserID, o.TotalAmount, o.Status, time.Now().UTC())
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order for user %d: %w", o.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Order{}, fmt.Errorf("get last insert id for order: %w", err)
	}
	return r.GetByID(ctx, int(lastID))
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, selectOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (models.Order, error) {
	return scanOrder(r.db.QueryRowContext(ctx, selectOrderByIDSQL, id))
}

func (r *OrderRepository) Update(ctx context.Context, o models.Order) (models.Order, error) {
	res, err := r.db.ExecContext(ctx, updateOrderSQL, o.UserID, o.TotalAmount, o.Status, o.ID)
	if err != nil {
		return models.Order{}, fmt.Errorf("update order %d: %w", o.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Order{}, ErrNotFound
	}
	return r.GetByID(ctx, o.ID)
}

func (r *OrderRepository) Delete(ctx context.Context, id int) (models.Order, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteOrderSQL, id); err != nil {
		return models.Order{}, fmt.Errorf("delete order %d: %w", id, err)
	}
	return o, nil
}
