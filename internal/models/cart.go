package models

import "time"

type Cart struct {
	ID        int       `json:"cart_id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem carries a denormalized product snapshot (price, name, image)
// taken at the moment the item was added, alongside the cart linkage.
type CartItem struct {
	ID          int     `json:"cart_item_id"`
	CartID      int     `json:"cart_id"`
	ProductID   int     `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
	CartImage   string  `json:"cart_image,omitempty"`
}
