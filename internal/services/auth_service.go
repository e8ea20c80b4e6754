package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/StudyFlow-2025/task-service/internal/events"
	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

// Demo accounts seeded on first run, matching the reference defaults.
var defaultAccounts = []models.User{
	{
		Name:     "Admin",
		Email:    "admin@studyflow.com",
		Password: "admin123",
		Role:     models.RoleAdmin,
	},
	{
		Name:     "Example Student",
		Email:    "student@studyflow.com",
		Password: "student123",
		Role:     models.RoleStudent,
	},
}

type authService struct {
	repo      repositories.Repository
	email     EmailService
	activity  ActivityService
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(repo repositories.Repository, email EmailService, activity ActivityService, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) AuthService {
	return &authService{
		repo:      repo,
		email:     email,
		activity:  activity,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Login compares the stored secret by exact equality, as the reference
// does. A failed attempt changes nothing and logs nothing.
func (s *authService) Login(ctx context.Context, req *LoginRequest, ip string) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.Session().Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set session: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID)
	s.activity.Record(ctx, user, models.ActionLogin, "User signed in", ip)

	return user.Sanitized(), nil
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest, ip string) (*models.User, error) {
	if errs := s.validator.GetBusinessValidator().ValidateRegister(req); len(errs) > 0 {
		return nil, errs
	}

	global, err := s.repo.Settings().GetGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read global settings: %w", err)
	}
	if !global.RegistrationEnabled {
		return nil, ErrRegistrationDisabled
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleStudent,
	}
	if err := s.repo.Users().Create(ctx, user); err != nil {
		if err == repositories.ErrDuplicateEmail {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.repo.Session().Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set session: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	s.activity.Record(ctx, user, models.ActionRegistration,
		fmt.Sprintf("User %s registered a new account", user.Name), ip)

	event := events.UserRegisteredEvent{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		RegisteredAt: user.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.TopicUserRegistered, event); err != nil {
		// Fire-and-forget: the account is already created.
		s.logger.Warn("failed to publish registration event", "user_id", user.ID, "error", err)
	}

	// Confirmation email failure is non-fatal: the account stays.
	if err := s.email.SendConfirmation(ctx, user.Email, user.Name); err != nil {
		s.logger.Warn("confirmation email failed", "user_id", user.ID, "error", err)
	}

	return user.Sanitized(), nil
}

func (s *authService) Logout(ctx context.Context, ip string) error {
	user, err := s.repo.Session().Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if user == nil {
		return nil
	}

	s.activity.Record(ctx, user, models.ActionLogout, "User signed out", ip)

	if err := s.repo.Session().Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("User logged out", "user_id", user.ID)
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.repo.Session().Current(ctx)
}

func (s *authService) EnsureDefaultAccounts(ctx context.Context) error {
	existing, err := s.repo.Users().List(ctx, repositories.UserFilters{})
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, account := range defaultAccounts {
		u := account
		if err := s.repo.Users().Create(ctx, &u); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Email, err)
		}
	}

	s.logger.Info("Seeded default accounts", "count", len(defaultAccounts))
	return nil
}
