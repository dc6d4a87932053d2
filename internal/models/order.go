package models

import "time"

type Order struct {
	ID          int       `json:"order_id"`
	UserID      int       `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"` // e.g. "pending", "paid", "shipped"
	CreatedAt   time.Time `json:"created_at"`
}
