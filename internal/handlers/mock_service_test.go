package handlers

import (
	"context"
	"net/http"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginUser    models.User
	loginToken   string
	loginErr     error
	parseID      int
	parseErr     error

	lastRegisterUsername string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, username, password, email string) (models.User, error) {
	m.lastRegisterUsername = username
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (models.User, string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	users      []models.User
	user       models.User
	err        error
	deleteErr  error
	lastGetID  int
	lastReplID int
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) { return m.users, m.err }
func (m *mockUsers) GetByID(ctx context.Context, id int) (models.User, error) {
	m.lastGetID = id
	return m.user, m.err
}
func (m *mockUsers) Replace(ctx context.Context, id int, username, password, email string) (models.User, error) {
	m.lastReplID = id
	return m.user, m.err
}
func (m *mockUsers) Delete(ctx context.Context, id int) (models.User, error) {
	if m.deleteErr != nil {
		return models.User{}, m.deleteErr
	}
	return m.user, m.err
}

type mockProducts struct {
	product    models.Product
	products   []models.Product
	err        error
	deleteErr  error
	lastCreate service.ProductInput
	lastPatch  service.ProductInput

	createCalls int
	deleteCalls int
	patchCalls  int
}

func (m *mockProducts) Create(ctx context.Context, in service.ProductInput) (models.Product, error) {
	m.createCalls++
	m.lastCreate = in
	return m.product, m.err
}
func (m *mockProducts) List(ctx context.Context) ([]models.Product, error) {
	return m.products, m.err
}
func (m *mockProducts) GetByID(ctx context.Context, id int) (models.Product, error) {
	return m.product, m.err
}
func (m *mockProducts) Replace(ctx context.Context, id int, in service.ProductInput) (models.Product, error) {
	return m.product, m.err
}
func (m *mockProducts) PartialUpdate(ctx context.Context, id int, in service.ProductInput) (models.Product, error) {
	m.patchCalls++
	m.lastPatch = in
	return m.product, m.err
}
func (m *mockProducts) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	return m.deleteErr
}

type mockCategories struct {
	category   models.Category
	categories []models.Category
	err        error
}

func (m *mockCategories) Create(ctx context.Context, name, description string) (models.Category, error) {
	return m.category, m.err
}
func (m *mockCategories) List(ctx context.Context) ([]models.Category, error) {
	return m.categories, m.err
}
func (m *mockCategories) GetByID(ctx context.Context, id int) (models.Category, error) {
	return m.category, m.err
}
func (m *mockCategories) Replace(ctx context.Context, id int, name, description string) (models.Category, error) {
	return m.category, m.err
}
func (m *mockCategories) Delete(ctx context.Context, id int) (models.Category, error) {
	return m.category, m.err
}

type mockCarts struct {
	cart  models.Cart
	carts []models.Cart
	err   error
}

func (m *mockCarts) Create(ctx context.Context, userID int) (models.Cart, error) {
	return m.cart, m.err
}
func (m *mockCarts) List(ctx context.Context) ([]models.Cart, error) { return m.carts, m.err }
func (m *mockCarts) GetByID(ctx context.Context, id int) (models.Cart, error) {
	return m.cart, m.err
}
func (m *mockCarts) Replace(ctx context.Context, id, userID int) (models.Cart, error) {
	return m.cart, m.err
}
func (m *mockCarts) Delete(ctx context.Context, id int) (models.Cart, error) {
	return m.cart, m.err
}

type mockCartItems struct {
	item      models.CartItem
	items     []models.CartItem
	err       error
	lastPatch service.CartItemInput
}

func (m *mockCartItems) Create(ctx context.Context, in service.CartItemInput) (models.CartItem, error) {
	return m.item, m.err
}
func (m *mockCartItems) List(ctx context.Context) ([]models.CartItem, error) {
	return m.items, m.err
}
func (m *mockCartItems) GetByID(ctx context.Context, id int) (models.CartItem, error) {
	return m.item, m.err
}
func (m *mockCartItems) Replace(ctx context.Context, id int, in service.CartItemInput) (models.CartItem, error) {
	return m.item, m.err
}
func (m *mockCartItems) PartialUpdate(ctx context.Context, id int, in service.CartItemInput) (models.CartItem, error) {
	m.lastPatch = in
	return m.item, m.err
}
func (m *mockCartItems) Delete(ctx context.Context, id int) error { return m.err }

type mockOrders struct {
	order  models.Order
	orders []models.Order
	err    error
}

func (m *mockOrders) Create(ctx context.Context, in service.OrderInput) (models.Order, error) {
	return m.order, m.err
}
func (m *mockOrders) List(ctx context.Context) ([]models.Order, error) { return m.orders, m.err }
func (m *mockOrders) GetByID(ctx context.Context, id int) (models.Order, error) {
	return m.order, m.err
}
func (m *mockOrders) Replace(ctx context.Context, id int, in service.OrderInput) (models.Order, error) {
	return m.order, m.err
}
func (m *mockOrders) PartialUpdate(ctx context.Context, id int, in service.OrderInput) (models.Order, error) {
	return m.order, m.err
}
func (m *mockOrders) Delete(ctx context.Context, id int) (models.Order, error) {
	return m.order, m.err
}

// ---- Shared test helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, "", nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
