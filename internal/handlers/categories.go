package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.services.Categories.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("category_create_failed", "name", req.Name, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("categories_list_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) getCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.services.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Category not found", http.StatusBadRequest, "category_get_failed")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) replaceCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.services.Categories.Replace(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Category not found", http.StatusBadRequest, "category_replace_failed")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.services.Categories.Delete(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "Category not found", http.StatusBadRequest, "category_delete_failed")
		return
	}
	c.JSON(http.StatusOK, category)
}
