package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

func (h *Handler) createCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := h.services.Carts.Create(c.Request.Context(), req.UserID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("cart_create_failed", "user_id", req.UserID, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (h *Handler) listCarts(c *gin.Context) {
	carts, err := h.services.Carts.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("carts_list_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, carts)
}

func (h *Handler) getCart(c *gin.Context) {
	id, ok := pathID(c, "cart_id")
	if !ok {
		return
	}
	cart, err := h.services.Carts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Cart not found", http.StatusBadRequest, "cart_get_failed")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) replaceCart(c *gin.Context) {
	id, ok := pathID(c, "cart_id")
	if !ok {
		return
	}
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := h.services.Carts.Replace(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Cart not found", http.StatusBadRequest, "cart_replace_failed")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) deleteCart(c *gin.Context) {
	id, ok := pathID(c, "cart_id")
	if !ok {
		return
	}
	cart, err := h.services.Carts.Delete(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Cart not found", http.StatusBadRequest, "cart_delete_failed")
		return
	}
	c.JSON(http.StatusOK, cart)
}
