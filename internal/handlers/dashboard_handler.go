package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetOverview returns dashboard statistics for the current user
// @Summary Get dashboard overview
// @Description Task totals, category and priority breakdowns, progress and upcoming deadlines
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardOverviewResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	h.LogRequest(c, "Getting dashboard overview")

	overview, err := h.service.Overview(c.Request.Context(), GetUserFromContext(c), time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetOverdue returns overdue incomplete tasks
// @Summary Get overdue tasks
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.Task
// @Router /dashboard/overdue [get]
func (h *DashboardHandler) GetOverdue(c *gin.Context) {
	h.LogRequest(c, "Getting overdue tasks")

	tasks, err := h.service.Overdue(c.Request.Context(), GetUserFromContext(c), time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetUpcoming returns upcoming deadlines
// @Summary Get upcoming deadlines
// @Description Incomplete tasks due within the horizon, soonest first, capped at five
// @Tags dashboard
// @Produce json
// @Param days query int false "Look-ahead window in days (default: 7)"
// @Success 200 {array} models.Task
// @Router /dashboard/upcoming [get]
func (h *DashboardHandler) GetUpcoming(c *gin.Context) {
	h.LogRequest(c, "Getting upcoming deadlines")

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		days = services.DefaultUpcomingHorizonDays
	}

	tasks, err := h.service.Upcoming(c.Request.Context(), GetUserFromContext(c), time.Now(), days)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetCalendarDay returns tasks due on one calendar day
// @Summary Get tasks for a calendar day
// @Tags dashboard
// @Produce json
// @Param date query string true "Day in YYYY-MM-DD format"
// @Success 200 {array} models.Task
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /dashboard/calendar [get]
func (h *DashboardHandler) GetCalendarDay(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid date parameter",
			Details: "Date must be in YYYY-MM-DD format",
		})
		return
	}

	h.LogRequest(c, "Getting calendar day", "date", dateStr)

	tasks, err := h.service.CalendarDay(c.Request.Context(), GetUserFromContext(c), date)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
