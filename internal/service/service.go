package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

// Authorization issues and verifies identity tokens and registers accounts.
type Authorization interface {
	Register(ctx context.Context, username, password, email string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, string, error)
	ParseToken(accessToken string) (int, error)
}

// Users covers the protected account operations behind the auth gate.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Replace(ctx context.Context, id int, username, password, email string) (models.User, error)
	Delete(ctx context.Context, id int) (models.User, error)
}

// ProductInput carries the submitted fields of a product mutation.
// ImagePath is the already-stored path produced by the media pipeline.
type ProductInput struct {
	Name        string
	Description string
	ImagePath   string
	Price       float64
	CategoryID  int
	Stock       int
}

type Products interface {
	Create(ctx context.Context, in ProductInput) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Replace(ctx context.Context, id int, in ProductInput) (models.Product, error)
	PartialUpdate(ctx context.Context, id int, in ProductInput) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

type Categories interface {
	Create(ctx context.Context, name, description string) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (models.Category, error)
	Replace(ctx context.Context, id int, name, description string) (models.Category, error)
	Delete(ctx context.Context, id int) (models.Category, error)
}

type Carts interface {
	Create(ctx context.Context, userID int) (models.Cart, error)
	List(ctx context.Context) ([]models.Cart, error)
	GetByID(ctx context.Context, id int) (models.Cart, error)
	Replace(ctx context.Context, id, userID int) (models.Cart, error)
	Delete(ctx context.Context, id int) (models.Cart, error)
}

// CartItemInput carries the submitted fields of a cart item mutation.
type CartItemInput struct {
	CartID      int
	ProductID   int
	Quantity    int
	Price       float64
	ProductName string
	CartImage   string
}

type CartItems interface {
	Create(ctx context.Context, in CartItemInput) (models.CartItem, error)
	List(ctx context.Context) ([]models.CartItem, error)
	GetByID(ctx context.Context, id int) (models.CartItem, error)
	Replace(ctx context.Context, id int, in CartItemInput) (models.CartItem, error)
	PartialUpdate(ctx context.Context, id int, in CartItemInput) (models.CartItem, error)
	Delete(ctx context.Context, id int) error
}

// OrderInput carries the submitted fields of an order mutation.
type OrderInput struct {
	UserID      int
	TotalAmount float64
	Status      string
}

type Orders interface {
	Create(ctx context.Context, in OrderInput) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int) (models.Order, error)
	Replace(ctx context.Context, id int, in OrderInput) (models.Order, error)
	PartialUpdate(ctx context.Context, id int, in OrderInput) (models.Order, error)
	Delete(ctx context.Context, id int) (models.Order, error)
}

// FileRemover is the slice of the media pipeline the services need:
// best-effort deletion of a stored file.
type FileRemover interface {
	Remove(path string)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Users
	Products
	Categories
	Carts
	CartItems
	Orders
}

// NewService wires the repository layer and the media pipeline into
// concrete services. The token signing key is injected from config.
func NewService(repos *repository.Repository, files FileRemover, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Users:         NewUserService(repos.Users),
		Products:      NewProductService(repos.Products, files),
		Categories:    NewCategoryService(repos.Categories),
		Carts:         NewCartService(repos.Carts),
		CartItems:     NewCartItemService(repos.CartItems),
		Orders:        NewOrderService(repos.Orders),
	}
}
