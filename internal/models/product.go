package models

import "time"

// Product is a catalog entry. Image holds the stored path of the
// resized upload, relative to the working directory (e.g. "uploads/...jpg").
type Product struct {
	ID          int       `json:"product_id"`
	Name        string    `json:"product_name"`
	Description string    `json:"description"`
	Image       string    `json:"product_image,omitempty"`
	Price       float64   `json:"price"`
	CategoryID  int       `json:"category_id"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
