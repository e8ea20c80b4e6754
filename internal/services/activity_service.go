package services

import (
	"context"
	"log/slog"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
)

type activityService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewActivityService(repo repositories.Repository, logger *slog.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		logger: logger,
	}
}

func (s *activityService) Record(ctx context.Context, actor *models.User, action, details, ip string) error {
	entry := &models.ActivityLogEntry{
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.UserEmail = actor.Email
	}

	if err := s.repo.Logs().Append(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "action", action, "error", err)
		return err
	}
	return nil
}

func (s *activityService) List(ctx context.Context, actor *models.User, filters repositories.LogFilters) ([]*models.ActivityLogEntry, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "activity_log", "list", "admin role required")
	}
	return s.repo.Logs().List(ctx, filters)
}

func (s *activityService) Clear(ctx context.Context, actor *models.User) error {
	if !actor.IsAdmin() {
		return NewPermissionError(actorID(actor), "activity_log", "clear", "admin role required")
	}

	s.logger.Info("Clearing activity log", "actor_id", actor.ID)
	return s.repo.Logs().Clear(ctx)
}

func actorID(actor *models.User) string {
	if actor == nil {
		return models.AnonymousUserID
	}
	return actor.ID
}
