package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

// ErrorResponse is the common error body for all endpoints.
type ErrorResponse struct {
	Message string                     `json:"message"`
	Details string                     `json:"details,omitempty"`
	Errors  validator.ValidationErrors `json:"errors,omitempty"`
}

// BaseHandler provides the shared logging and error-mapping helpers every
// handler embeds.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.FromContext(c, h.logger).Error(msg, args...)
}

// BindJSON decodes the request body strictly: unknown fields are rejected so
// a partial update can only name declared fields.
func (h *BaseHandler) BindJSON(c *gin.Context, dest interface{}) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Failed to read request body"})
		return false
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// HandleServiceError maps service errors to HTTP status codes.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	var permErr *services.PermissionError

	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Errors:  validationErrs,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid email or password",
		})
	case errors.As(err, &permErr):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden",
		})
	case errors.Is(err, services.ErrRegistrationDisabled):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Registration is currently disabled",
		})
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Not found",
		})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Email already in use",
		})
	case errors.Is(err, services.ErrSelfDelete):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "You cannot delete your own account",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
