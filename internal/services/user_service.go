package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	email     EmailService
	activity  ActivityService
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, email EmailService, activity ActivityService, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		email:     email,
		activity:  activity,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) List(ctx context.Context, actor *models.User, filters repositories.UserFilters) ([]*models.User, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "users", "list", "admin role required")
	}

	users, err := s.repo.Users().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	sanitized := make([]*models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	return sanitized, nil
}

func (s *userService) GetByID(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	if !actor.IsAdmin() && actorID(actor) != id {
		return nil, NewPermissionError(actorID(actor), "users", "read", "may only read own account")
	}

	user, err := s.repo.Users().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Sanitized(), nil
}

func (s *userService) Create(ctx context.Context, actor *models.User, req *UserCreateRequest, ip string) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "users", "create", "admin role required")
	}
	if errs := s.validator.GetBusinessValidator().ValidateUserCreate(req); len(errs) > 0 {
		return nil, errs
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := s.repo.Users().Create(ctx, user); err != nil {
		if err == repositories.ErrDuplicateEmail {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User account created", "user_id", user.ID, "role", user.Role, "actor_id", actor.ID)
	s.activity.Record(ctx, actor, models.ActionAccountCreated,
		fmt.Sprintf("Created account for %s (%s)", user.Name, user.Email), ip)

	if err := s.email.SendConfirmation(ctx, user.Email, user.Name); err != nil {
		s.logger.Warn("confirmation email failed", "user_id", user.ID, "error", err)
	}

	return user.Sanitized(), nil
}

func (s *userService) Update(ctx context.Context, actor *models.User, id string, req *UserUpdateRequest, ip string) (*models.User, error) {
	if !actor.IsAdmin() && actorID(actor) != id {
		return nil, NewPermissionError(actorID(actor), "users", "update", "may only update own account")
	}
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}
	// Role changes stay an admin concern even on a self-update.
	if req.Role != nil && !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "users", "update", "role changes require admin")
	}

	patch := repositories.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
		Role:     req.Role,
	}
	found, err := s.repo.Users().Update(ctx, id, patch)
	if err != nil {
		if err == repositories.ErrDuplicateEmail {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !found {
		return nil, ErrUserNotFound
	}

	updated, err := s.repo.Users().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	// Keep the session copy in step when the actor edits themselves.
	if actorID(actor) == id {
		if err := s.repo.Session().Set(ctx, updated); err != nil {
			s.logger.Warn("failed to refresh session after update", "user_id", id, "error", err)
		}
	}

	s.logger.Info("User updated", "user_id", id, "actor_id", actor.ID)
	s.activity.Record(ctx, actor, models.ActionAccountUpdated,
		fmt.Sprintf("Updated account %s", updated.Email), ip)

	return updated.Sanitized(), nil
}

func (s *userService) Delete(ctx context.Context, actor *models.User, id string, ip string) error {
	if !actor.IsAdmin() {
		return NewPermissionError(actorID(actor), "users", "delete", "admin role required")
	}
	if actor.ID == id {
		return ErrSelfDelete
	}

	target, err := s.repo.Users().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return ErrUserNotFound
	}

	found, err := s.repo.Users().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}

	removed, err := s.repo.Tasks().DeleteByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cascade task deletion: %w", err)
	}
	if err := s.repo.Settings().RemoveUser(ctx, id); err != nil {
		s.logger.Warn("failed to remove user settings", "user_id", id, "error", err)
	}

	s.logger.Info("User deleted", "user_id", id, "tasks_removed", removed, "actor_id", actor.ID)
	s.activity.Record(ctx, actor, models.ActionAccountDeleted,
		fmt.Sprintf("Deleted account %s and %d of its tasks", target.Email, removed), ip)

	return nil
}
