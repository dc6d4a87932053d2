package service

import (
	"context"

	"ecommerce_backend/internal/models"
)

// Lightweight in-test mocks for the repository interfaces. Only the
// function fields a test sets are expected to be called.

type mockUserRepo struct {
	CreateFn        func(ctx context.Context, u models.User) (models.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	ListFn          func(ctx context.Context) ([]models.User, error)
	GetByIDFn       func(ctx context.Context, id int) (models.User, error)
	UpdateFn        func(ctx context.Context, u models.User) (models.User, error)
	DeleteFn        func(ctx context.Context, id int) (models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	return m.CreateFn(ctx, u)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(ctx, username)
}
func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) { return m.ListFn(ctx) }
func (m *mockUserRepo) GetByID(ctx context.Context, id int) (models.User, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockUserRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	return m.UpdateFn(ctx, u)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int) (models.User, error) {
	return m.DeleteFn(ctx, id)
}

type mockProductRepo struct {
	CreateFn  func(ctx context.Context, p models.Product) (models.Product, error)
	ListFn    func(ctx context.Context) ([]models.Product, error)
	GetByIDFn func(ctx context.Context, id int) (models.Product, error)
	UpdateFn  func(ctx context.Context, p models.Product) (models.Product, error)
	DeleteFn  func(ctx context.Context, id int) (models.Product, error)

	updateCalls []models.Product
}

func (m *mockProductRepo) Create(ctx context.Context, p models.Product) (models.Product, error) {
	return m.CreateFn(ctx, p)
}
func (m *mockProductRepo) List(ctx context.Context) ([]models.Product, error) {
	return m.ListFn(ctx)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id int) (models.Product, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockProductRepo) Update(ctx context.Context, p models.Product) (models.Product, error) {
	m.updateCalls = append(m.updateCalls, p)
	return m.UpdateFn(ctx, p)
}
func (m *mockProductRepo) Delete(ctx context.Context, id int) (models.Product, error) {
	return m.DeleteFn(ctx, id)
}

type mockCartItemRepo struct {
	CreateFn  func(ctx context.Context, it models.CartItem) (models.CartItem, error)
	ListFn    func(ctx context.Context) ([]models.CartItem, error)
	GetByIDFn func(ctx context.Context, id int) (models.CartItem, error)
	UpdateFn  func(ctx context.Context, it models.CartItem) (models.CartItem, error)
	DeleteFn  func(ctx context.Context, id int) (models.CartItem, error)

	updateCalls []models.CartItem
}

func (m *mockCartItemRepo) Create(ctx context.Context, it models.CartItem) (models.CartItem, error) {
	return m.CreateFn(ctx, it)
}
func (m *mockCartItemRepo) List(ctx context.Context) ([]models.CartItem, error) {
	return m.ListFn(ctx)
}
func (m *mockCartItemRepo) GetByID(ctx context.Context, id int) (models.CartItem, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockCartItemRepo) Update(ctx context.Context, it models.CartItem) (models.CartItem, error) {
	m.updateCalls = append(m.updateCalls, it)
	return m.UpdateFn(ctx, it)
}
func (m *mockCartItemRepo) Delete(ctx context.Context, id int) (models.CartItem, error) {
	return m.DeleteFn(ctx, id)
}

type mockOrderRepo struct {
	CreateFn  func(ctx context.Context, o models.Order) (models.Order, error)
	ListFn    func(ctx context.Context) ([]models.Order, error)
	GetByIDFn func(ctx context.Context, id int) (models.Order, error)
	UpdateFn  func(ctx context.Context, o models.Order) (models.Order, error)
	DeleteFn  func(ctx context.Context, id int) (models.Order, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, o models.Order) (models.Order, error) {
	return m.CreateFn(ctx, o)
}
func (m *mockOrderRepo) List(ctx context.Context) ([]models.Order, error) { return m.ListFn(ctx) }
func (m *mockOrderRepo) GetByID(ctx context.Context, id int) (models.Order, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockOrderRepo) Update(ctx context.Context, o models.Order) (models.Order, error) {
	return m.UpdateFn(ctx, o)
}
func (m *mockOrderRepo) Delete(ctx context.Context, id int) (models.Order, error) {
	return m.DeleteFn(ctx, id)
}

// mockRemover records Remove calls; it never fails, matching the
// best-effort contract of the media store.
type mockRemover struct {
	removed []string
}

func (m *mockRemover) Remove(path string) {
	m.removed = append(m.removed, path)
}
