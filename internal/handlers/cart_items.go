package handlers

import (
	"net/http"

	"ecommerce_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Creation snapshots the product into the line item.
type createCartItemRequest struct {
	ProductID   int     `json:"product_id" binding:"required"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
	CartImage   string  `json:"cart_image"`
}

// Replace/patch only touch the cart linkage fields.
type updateCartItemRequest struct {
	CartID    int `json:"cart_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) createCartItem(c *gin.Context) {
	var req createCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.services.CartItems.Create(c.Request.Context(), service.CartItemInput{
		ProductID:   req.ProductID,
		Price:       req.Price,
		ProductName: req.ProductName,
		CartImage:   req.CartImage,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("cart_item_create_failed", "product_id", req.ProductID, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating cart item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) listCartItems(c *gin.Context) {
	items, err := h.services.CartItems.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("cart_items_list_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting cart items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getCartItem(c *gin.Context) {
	id, ok := pathID(c, "cart_item_id")
	if !ok {
		return
	}
	item, err := h.services.CartItems.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Cart item not found", http.StatusInternalServerError, "cart_item_get_failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) replaceCartItem(c *gin.Context) {
	id, ok := pathID(c, "cart_item_id")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.services.CartItems.Replace(c.Request.Context(), id, service.CartItemInput{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.notFoundOrStoreError(c, err, "Cart item not found", http.StatusInternalServerError, "cart_item_replace_failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Partially update a cart item
// @Description  Zero-valued fields keep their stored values (a quantity of 0 is treated as not provided).
// @Tags         cartItems
// @Accept       json
// @Produce      json
// @Param        cart_item_id  path  int  true  "Cart item ID"
// @Success      200  {object}  models.CartItem
// @Failure      404  {object}  map[string]string
// @Router       /cartItems/{cart_item_id} [patch]
func (h *Handler) patchCartItem(c *gin.Context) {
	id, ok := pathID(c, "cart_item_id")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.services.CartItems.PartialUpdate(c.Request.Context(), id, service.CartItemInput{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.notFoundOrStoreError(c, err, "Cart item not found", http.StatusInternalServerError, "cart_item_patch_failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteCartItem(c *gin.Context) {
	id, ok := pathID(c, "cart_item_id")
	if !ok {
		return
	}
	if err := h.services.CartItems.Delete(c.Request.Context(), id); err != nil {
		h.notFoundOrStoreError(c, err, "Cart item not found", http.StatusInternalServerError, "cart_item_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted successfully"})
}
