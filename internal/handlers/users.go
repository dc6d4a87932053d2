package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type replaceUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.User
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("users_list_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// listUsersInfo is the unauthenticated variant of the user listing.
func (h *Handler) listUsersInfo(c *gin.Context) {
	h.listUsers(c)
}

// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        user_id  path  int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.services.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "User not found", http.StatusBadRequest, "user_get_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Replace a user
// @Description  Overwrites the profile; the submitted password is re-hashed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id  path  int  true  "User ID"
// @Param        body  body  replaceUserRequest  true  "Profile"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id} [put]
// @Security     BearerAuth
func (h *Handler) replaceUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req replaceUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.Replace(c.Request.Context(), id, req.Username, req.Password, req.Email)
	if err != nil {
		h.notFoundOrStoreError(c, err, "User not found", http.StatusBadRequest, "user_replace_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        user_id  path  int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{user_id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.services.Users.Delete(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrStoreError(c, err, "User not found", http.StatusBadRequest, "user_delete_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}
