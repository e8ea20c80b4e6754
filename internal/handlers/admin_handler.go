package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

// AdminHandler serves the admin-only inspection and export endpoints.
type AdminHandler struct {
	BaseHandler
	email  services.EmailService
	export services.ExportService
}

func NewAdminHandler(email services.EmailService, export services.ExportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		email:       email,
		export:      export,
	}
}

// ListSentEmails returns every recorded email send
// @Summary List sent emails
// @Tags admin
// @Produce json
// @Success 200 {array} models.EmailRecord
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /admin/emails [get]
func (h *AdminHandler) ListSentEmails(c *gin.Context) {
	h.LogRequest(c, "Listing sent emails")

	records, err := h.email.ListSent(c.Request.Context(), GetUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// SendNotification sends a notification email to the given address
// @Summary Send a notification email
// @Tags admin
// @Accept json
// @Produce json
// @Param request body services.NotificationRequest true "Notification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /admin/notifications [post]
func (h *AdminHandler) SendNotification(c *gin.Context) {
	var req services.NotificationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Sending notification", "to", req.Email)

	if err := h.email.SendNotification(c.Request.Context(), GetUserFromContext(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification sent"})
}

// ExportTasks downloads every task as a spreadsheet
// @Summary Export tasks
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /admin/export/tasks [get]
func (h *AdminHandler) ExportTasks(c *gin.Context) {
	h.LogRequest(c, "Exporting tasks")

	data, err := h.export.ExportTasks(c.Request.Context(), GetUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.sendWorkbook(c, "tasks", data)
}

// ExportUsers downloads every account as a spreadsheet
// @Summary Export users
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /admin/export/users [get]
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	h.LogRequest(c, "Exporting users")

	data, err := h.export.ExportUsers(c.Request.Context(), GetUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.sendWorkbook(c, "users", data)
}

// ExportActivityLog downloads the activity log as a spreadsheet
// @Summary Export activity log
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /admin/export/activity [get]
func (h *AdminHandler) ExportActivityLog(c *gin.Context) {
	h.LogRequest(c, "Exporting activity log")

	data, err := h.export.ExportActivityLog(c.Request.Context(), GetUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.sendWorkbook(c, "activity-log", data)
}

func (h *AdminHandler) sendWorkbook(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("studyflow-%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
