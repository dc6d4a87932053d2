package handlers

import (
	"ecommerce_backend/internal/logger"
	"ecommerce_backend/internal/media"
	"ecommerce_backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, the media pipeline and logging.
type Handler struct {
	services   *service.Service
	media      *media.Store
	uploadsDir string
	log        *logger.Logger
}

func NewHandler(services *service.Service, mediaStore *media.Store, uploadsDir string, log *logger.Logger) *Handler {
	return &Handler{services: services, media: mediaStore, uploadsDir: uploadsDir, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// Stored product images are served directly.
	if h.uploadsDir != "" {
		router.Static("/uploads", h.uploadsDir)
	}

	h.registerUserRoutes(router)
	h.registerProductRoutes(router)
	h.registerCategoryRoutes(router)
	h.registerCartRoutes(router)
	h.registerCartItemRoutes(router)
	h.registerOrderRoutes(router)

	// Live order feed (HTTP upgrade) on the same port.
	router.GET("/ws/orders", h.wsOrders)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("", h.createUser)
		users.POST("/login", h.login)
		users.POST("/logout", h.logout)
		users.GET("/info", h.listUsersInfo)

		protected := users.Group("", h.verifyToken)
		{
			protected.GET("", h.listUsers)
			protected.GET("/:user_id", h.getUser)
			protected.PUT("/:user_id", h.replaceUser)
			protected.DELETE("/:user_id", h.deleteUser)
		}
	}
}

func (h *Handler) registerProductRoutes(r *gin.Engine) {
	products := r.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:product_id", h.getProduct)
		products.PUT("/:product_id", h.replaceProduct)
		products.PATCH("/:product_id", h.patchProduct)
		products.DELETE("/:product_id", h.deleteProduct)
	}
}

func (h *Handler) registerCategoryRoutes(r *gin.Engine) {
	categories := r.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.replaceCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

func (h *Handler) registerCartRoutes(r *gin.Engine) {
	carts := r.Group("/cart")
	{
		carts.POST("", h.createCart)
		carts.GET("", h.listCarts)
		carts.GET("/:cart_id", h.getCart)
		carts.PUT("/:cart_id", h.replaceCart)
		carts.DELETE("/:cart_id", h.deleteCart)
	}
}

func (h *Handler) registerCartItemRoutes(r *gin.Engine) {
	items := r.Group("/cartItems")
	{
		items.POST("", h.createCartItem)
		items.GET("", h.listCartItems)
		items.GET("/:cart_item_id", h.getCartItem)
		items.PUT("/:cart_item_id", h.replaceCartItem)
		items.PATCH("/:cart_item_id", h.patchCartItem)
		items.DELETE("/:cart_item_id", h.deleteCartItem)
	}
}

func (h *Handler) registerOrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:order_id", h.getOrder)
		orders.PUT("/:order_id", h.replaceOrder)
		orders.PATCH("/:order_id", h.patchOrder)
		orders.DELETE("/:order_id", h.deleteOrder)
	}
}
