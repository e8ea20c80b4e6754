package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	service services.UserService
}

func NewUserHandler(service services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListUsers lists accounts (admin only)
// @Summary List users
// @Tags users
// @Produce json
// @Param q query string false "Search query (name or email)"
// @Param role query string false "Filter by role (student, admin)"
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	filters := repositories.UserFilters{Query: c.Query("q")}
	if v := c.Query("role"); v != "" {
		role := models.UserRole(v)
		filters.Role = &role
	}

	users, err := h.service.List(c.Request.Context(), GetUserFromContext(c), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns one account
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Getting user", "user_id", id)

	user, err := h.service.GetByID(c.Request.Context(), GetUserFromContext(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser creates an account with any role (admin only)
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body services.UserCreateRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.UserCreateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating user", "email", req.Email)

	user, err := h.service.Create(c.Request.Context(), GetUserFromContext(c), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a partial update to an account
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body services.UserUpdateRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req services.UserUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating user", "user_id", id)

	user, err := h.service.Update(c.Request.Context(), GetUserFromContext(c), id, &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account and its tasks (admin only)
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Self-deletion refused"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting user", "user_id", id)

	if err := h.service.Delete(c.Request.Context(), GetUserFromContext(c), id, c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
