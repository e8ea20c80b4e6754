package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

type taskService struct {
	repo      repositories.Repository
	activity  ActivityService
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTaskService(repo repositories.Repository, activity ActivityService, logger *slog.Logger, validator *validator.Validator) TaskService {
	return &taskService{
		repo:      repo,
		activity:  activity,
		logger:    logger,
		validator: validator,
	}
}

func (s *taskService) Create(ctx context.Context, actor *models.User, req *TaskCreateRequest, ip string) (*models.Task, error) {
	if errs := s.validator.GetBusinessValidator().ValidateTaskCreate(req); len(errs) > 0 {
		return nil, errs
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}
	if actor != nil {
		task.UserID = actor.ID
	}

	if err := s.repo.Tasks().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "user_id", task.UserID)
	s.activity.Record(ctx, actor, models.ActionTaskCreated,
		fmt.Sprintf("Created task %q", task.Title), ip)

	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, actor *models.User, id string) (*models.Task, error) {
	task, err := s.repo.Tasks().GetVisible(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, actor *models.User, filters repositories.TaskFilters) ([]*models.Task, error) {
	tasks, err := s.repo.Tasks().List(ctx, actor, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, actor *models.User, id string, req *TaskUpdateRequest, ip string) (*models.Task, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.repo.Tasks().GetVisible(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}

	patch := repositories.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}
	if _, err := s.repo.Tasks().Update(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.repo.Tasks().GetVisible(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	s.logger.Info("Task updated", "task_id", id)
	s.activity.Record(ctx, actor, models.ActionTaskUpdated,
		fmt.Sprintf("Updated task %q", updated.Title), ip)

	return updated, nil
}

func (s *taskService) Toggle(ctx context.Context, actor *models.User, id string, ip string) (*models.Task, error) {
	existing, err := s.repo.Tasks().GetVisible(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}

	completed := !existing.Completed
	patch := repositories.TaskPatch{Completed: &completed}
	if _, err := s.repo.Tasks().Update(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}

	action := models.ActionTaskReopened
	details := fmt.Sprintf("Reopened task %q", existing.Title)
	if completed {
		action = models.ActionTaskCompleted
		details = fmt.Sprintf("Completed task %q", existing.Title)
	}
	s.activity.Record(ctx, actor, action, details, ip)

	existing.Completed = completed
	return existing, nil
}

func (s *taskService) Delete(ctx context.Context, actor *models.User, id string, ip string) error {
	existing, err := s.repo.Tasks().GetVisible(ctx, actor, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if existing == nil {
		return ErrTaskNotFound
	}

	if _, err := s.repo.Tasks().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task deleted", "task_id", id)
	s.activity.Record(ctx, actor, models.ActionTaskDeleted,
		fmt.Sprintf("Deleted task %q", existing.Title), ip)

	return nil
}
