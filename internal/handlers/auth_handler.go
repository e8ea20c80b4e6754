package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	service services.AuthService
}

func NewAuthHandler(service services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Login authenticates a user with email and password
// @Summary Log in
// @Description Authenticate with email and password, starting a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginRequest true "Credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Login attempt", "email", req.Email)

	user, err := h.service.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Register creates a new student account
// @Summary Register
// @Description Create a student account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.RegisterRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Registration disabled"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Registration attempt", "email", req.Email)

	user, err := h.service.Register(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Logout ends the current session
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 204 "Session cleared"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "Logout")

	if err := h.service.Logout(c.Request.Context(), c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me returns the current-session user
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, user.Sanitized())
}
