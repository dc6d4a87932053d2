package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce_backend/internal/repository"
	"ecommerce_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func isInvalidCredentials(err error) bool {
	return errors.Is(err, service.ErrInvalidCredentials)
}

// pathID parses a numeric path parameter. On failure it writes a 400 and
// reports false; the caller must return immediately.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// notFoundOrStoreError maps ErrNotFound to 404 with the given message and
// anything else to the given fallback status with the raw error text.
func (h *Handler) notFoundOrStoreError(c *gin.Context, err error, notFoundMsg string, storeStatus int, logKey string) {
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	if h.log != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.JSON(storeStatus, gin.H{"error": err.Error()})
}
