package handlers

import (
	"net/http"

	"ecommerce_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type orderRequest struct {
	UserID      int     `json:"user_id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

type createOrderRequest struct {
	UserID      int     `json:"user_id" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
	Status      string  `json:"status" binding:"required"`
}

func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.services.Orders.Create(c.Request.Context(), service.OrderInput{
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("order_create_failed", "user_id", req.UserID, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.services.Orders.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("orders_list_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	order, err := h.services.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Order not found", http.StatusInternalServerError, "order_get_failed")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) replaceOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.services.Orders.Replace(c.Request.Context(), id, service.OrderInput{
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		h.notFoundOrStoreError(c, err, "Order not found", http.StatusBadRequest, "order_replace_failed")
		return
	}
	c.JSON(http.StatusOK, order)
}

// @Summary      Partially update an order
// @Description  Zero-valued fields keep their stored values.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path  int  true  "Order ID"
// @Success      200  {object}  models.Order
// @Failure      404  {object}  map[string]string
// @Router       /orders/{order_id} [patch]
func (h *Handler) patchOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.services.Orders.PartialUpdate(c.Request.Context(), id, service.OrderInput{
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		h.notFoundOrStoreError(c, err, "Order not found", http.StatusInternalServerError, "order_patch_failed")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	order, err := h.services.Orders.Delete(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Order not found", http.StatusBadRequest, "order_delete_failed")
		return
	}
	c.JSON(http.StatusOK, order)
}
