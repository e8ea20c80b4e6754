package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type ActivityHandler struct {
	BaseHandler
	service services.ActivityService
}

func NewActivityHandler(service services.ActivityService, logger utils.Logger) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListActivity returns the activity log, newest first (admin only)
// @Summary List activity log
// @Tags activity
// @Produce json
// @Param user_id query string false "Filter by user"
// @Param action query string false "Filter by action"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} models.ActivityLogEntry
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	h.LogRequest(c, "Listing activity log")

	var filters repositories.LogFilters
	if v := c.Query("user_id"); v != "" {
		filters.UserID = &v
	}
	if v := c.Query("action"); v != "" {
		filters.Action = &v
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filters.Limit = limit
		}
	}

	entries, err := h.service.List(c.Request.Context(), GetUserFromContext(c), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ClearActivity drops the whole activity log (admin only)
// @Summary Clear activity log
// @Tags activity
// @Success 204 "Cleared"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /activity [delete]
func (h *ActivityHandler) ClearActivity(c *gin.Context) {
	h.LogRequest(c, "Clearing activity log")

	if err := h.service.Clear(c.Request.Context(), GetUserFromContext(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
