package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context key under which the authenticated user id is stored.
const userIDKey = "userId"

// Status mapping of the auth gate: a missing token is forbidden, a failed
// verification maps to a server-error status rather than 401. Clients
// depend on these codes; change them only together with the clients.
const (
	noTokenStatus      = http.StatusForbidden
	verifyFailedStatus = http.StatusInternalServerError

	msgNoToken    = "No token provided."
	msgAuthFailed = "Failed to authenticate token."
)

// verifyToken guards protected routes: it expects "Authorization: Bearer
// <token>", verifies the token and stores the subject user id in the
// request context for downstream handlers.
func (h *Handler) verifyToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if h.log != nil {
			h.log.Infow("auth_no_header", "path", c.FullPath())
		}
		c.AbortWithStatusJSON(noTokenStatus, gin.H{"message": msgNoToken})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		if h.log != nil {
			h.log.Infow("auth_no_token_segment", "path", c.FullPath())
		}
		c.AbortWithStatusJSON(noTokenStatus, gin.H{"message": msgNoToken})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(verifyFailedStatus, gin.H{"message": msgAuthFailed})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}
