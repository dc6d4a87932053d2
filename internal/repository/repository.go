package repository

import (
	"context"
	"database/sql"
	"errors"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository/db"
)

// ErrNotFound is returned when no row matches the requested identifier.
var ErrNotFound = errors.New("record not found")

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id int) (models.User, error)
}

type Categories interface {
	Create(ctx context.Context, c models.Category) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (models.Category, error)
	Update(ctx context.Context, c models.Category) (models.Category, error)
	Delete(ctx context.Context, id int) (models.Category, error)
}

type Products interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) (models.Product, error)
}

type Carts interface {
	Create(ctx context.Context, c models.Cart) (models.Cart, error)
	List(ctx context.Context) ([]models.Cart, error)
	GetByID(ctx context.Context, id int) (models.Cart, error)
	Update(ctx context.Context, c models.Cart) (models.Cart, error)
	Delete(ctx context.Context, id int) (models.Cart, error)
}

type CartItems interface {
	Create(ctx context.Context, it models.CartItem) (models.CartItem, error)
	List(ctx context.Context) ([]models.CartItem, error)
	GetByID(ctx context.Context, id int) (models.CartItem, error)
	Update(ctx context.Context, it models.CartItem) (models.CartItem, error)
	Delete(ctx context.Context, id int) (models.CartItem, error)
}

type Orders interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int) (models.Order, error)
	Update(ctx context.Context, o models.Order) (models.Order, error)
	Delete(ctx context.Context, id int) (models.Order, error)
}

type Repository struct {
	Users      Users
	Categories Categories
	Products   Products
	Carts      Carts
	CartItems  CartItems
	Orders     Orders
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(database),
		Categories: NewCategoryRepository(database),
		Products:   NewProductRepository(database),
		Carts:      NewCartRepository(database),
		CartItems:  NewCartItemRepository(database),
		Orders:     NewOrderRepository(database),
	}
}

// InitDB opens the SQLite store and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
