package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

type settingsService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSettingsService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) SettingsService {
	return &settingsService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *settingsService) GetUserSettings(ctx context.Context, actor *models.User) (*models.UserSettings, error) {
	if actor == nil {
		return nil, NewPermissionError(models.AnonymousUserID, "settings", "read", "authentication required")
	}
	return s.repo.Settings().GetUser(ctx, actor.ID)
}

func (s *settingsService) UpdateUserSettings(ctx context.Context, actor *models.User, req *UserSettingsRequest) (*models.UserSettings, error) {
	if actor == nil {
		return nil, NewPermissionError(models.AnonymousUserID, "settings", "update", "authentication required")
	}
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	patch := repositories.UserSettingsPatch{
		Theme:           req.Theme,
		FontSize:        req.FontSize,
		Notifications:   req.Notifications,
		DefaultCategory: req.DefaultCategory,
		PrimaryColor:    req.PrimaryColor,
		DashboardColors: req.DashboardColors,
	}
	settings, err := s.repo.Settings().UpdateUser(ctx, actor.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update user settings: %w", err)
	}

	s.logger.Info("User settings updated", "user_id", actor.ID)
	return settings, nil
}

func (s *settingsService) GetGlobalSettings(ctx context.Context) (*models.GlobalSettings, error) {
	return s.repo.Settings().GetGlobal(ctx)
}

func (s *settingsService) UpdateGlobalSettings(ctx context.Context, actor *models.User, req *GlobalSettingsRequest) (*models.GlobalSettings, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "global_settings", "update", "admin role required")
	}
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	patch := repositories.GlobalSettingsPatch{
		DefaultTheme:          req.DefaultTheme,
		DefaultFontSize:       req.DefaultFontSize,
		DefaultPrimaryColor:   req.DefaultPrimaryColor,
		DefaultSecondaryColor: req.DefaultSecondaryColor,
		EmailNotifications:    req.EmailNotifications,
		RegistrationEnabled:   req.RegistrationEnabled,
	}
	settings, err := s.repo.Settings().UpdateGlobal(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update global settings: %w", err)
	}

	s.logger.Info("Global settings updated", "actor_id", actor.ID)
	return settings, nil
}
