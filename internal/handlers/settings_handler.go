package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type SettingsHandler struct {
	BaseHandler
	service services.SettingsService
}

func NewSettingsHandler(service services.SettingsService, logger utils.Logger) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetUserSettings returns the current user's preferences
// @Summary Get user settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.UserSettings
// @Router /settings [get]
func (h *SettingsHandler) GetUserSettings(c *gin.Context) {
	h.LogRequest(c, "Getting user settings")

	settings, err := h.service.GetUserSettings(c.Request.Context(), GetUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateUserSettings applies a partial preferences update
// @Summary Update user settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body services.UserSettingsRequest true "Fields to change"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Router /settings [put]
func (h *SettingsHandler) UpdateUserSettings(c *gin.Context) {
	var req services.UserSettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating user settings")

	settings, err := h.service.UpdateUserSettings(c.Request.Context(), GetUserFromContext(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GetGlobalSettings returns the system-wide settings
// @Summary Get global settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.GlobalSettings
// @Router /settings/global [get]
func (h *SettingsHandler) GetGlobalSettings(c *gin.Context) {
	h.LogRequest(c, "Getting global settings")

	settings, err := h.service.GetGlobalSettings(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateGlobalSettings applies a partial system-wide settings update (admin only)
// @Summary Update global settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body services.GlobalSettingsRequest true "Fields to change"
// @Success 200 {object} models.GlobalSettings
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /settings/global [put]
func (h *SettingsHandler) UpdateGlobalSettings(c *gin.Context) {
	var req services.GlobalSettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating global settings")

	settings, err := h.service.UpdateGlobalSettings(c.Request.Context(), GetUserFromContext(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
