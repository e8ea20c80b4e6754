package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/utils"
)

type TaskHandler struct {
	BaseHandler
	service services.TaskService
}

func NewTaskHandler(service services.TaskService, logger utils.Logger) *TaskHandler {
	return &TaskHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateTask creates a new task
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body services.TaskCreateRequest true "Task details"
// @Success 201 {object} models.Task
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req services.TaskCreateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating task", "title", req.Title)

	task, err := h.service.Create(c.Request.Context(), GetUserFromContext(c), &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks lists tasks visible to the current user
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param category query string false "Filter by category (task, test, assignment, study)"
// @Param priority query string false "Filter by priority (low, medium, high)"
// @Param completed query bool false "Filter by completion"
// @Success 200 {array} models.Task
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	h.LogRequest(c, "Listing tasks")

	filters := h.parseTaskFilters(c)
	tasks, err := h.service.List(c.Request.Context(), GetUserFromContext(c), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns one task by id
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Getting task", "task_id", id)

	task, err := h.service.GetByID(c.Request.Context(), GetUserFromContext(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to a task
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body services.TaskUpdateRequest true "Fields to change"
// @Success 200 {object} models.Task
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var req services.TaskUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating task", "task_id", id)

	task, err := h.service.Update(c.Request.Context(), GetUserFromContext(c), id, &req, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ToggleTask flips a task's completion flag
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Toggling task", "task_id", id)

	task, err := h.service.Toggle(c.Request.Context(), GetUserFromContext(c), id, c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
// @Summary Delete task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting task", "task_id", id)

	if err := h.service.Delete(c.Request.Context(), GetUserFromContext(c), id, c.ClientIP()); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) parseTaskFilters(c *gin.Context) repositories.TaskFilters {
	var filters repositories.TaskFilters

	if v := c.Query("category"); v != "" {
		category := models.TaskCategory(v)
		filters.Category = &category
	}
	if v := c.Query("priority"); v != "" {
		priority := models.Priority(v)
		filters.Priority = &priority
	}
	if v := c.Query("completed"); v != "" {
		completed := v == "true"
		filters.Completed = &completed
	}
	if v := c.Query("due_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DueFrom = &t
		}
	}
	if v := c.Query("due_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.DueTo = &t
		}
	}

	return filters
}
