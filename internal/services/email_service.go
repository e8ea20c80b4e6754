package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/StudyFlow-2025/task-service/internal/events"
	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

// emailService simulates delivery: every send persists an EmailRecord and
// publishes an event, no SMTP is involved.
type emailService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewEmailService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) EmailService {
	return &emailService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *emailService) SendConfirmation(ctx context.Context, email, name string) error {
	subject := "Welcome to StudyFlow"
	body := fmt.Sprintf("Hi %s, your StudyFlow account is ready. Sign in to start planning your tasks.", name)
	return s.send(ctx, email, subject, body, models.EmailConfirmation)
}

func (s *emailService) SendNotification(ctx context.Context, actor *models.User, req *NotificationRequest) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return errs
	}
	if !actor.IsAdmin() {
		return NewPermissionError(actorID(actor), "emails", "send", "admin role required")
	}

	global, err := s.repo.Settings().GetGlobal(ctx)
	if err != nil {
		return fmt.Errorf("failed to read global settings: %w", err)
	}
	if !global.EmailNotifications {
		s.logger.Debug("notifications disabled, skipping send", "to", req.Email)
		return nil
	}
	return s.send(ctx, req.Email, req.Subject, req.Body, models.EmailNotification)
}

func (s *emailService) ListSent(ctx context.Context, actor *models.User) ([]*models.EmailRecord, error) {
	if !actor.IsAdmin() {
		return nil, NewPermissionError(actorID(actor), "emails", "list", "admin role required")
	}
	return s.repo.Emails().List(ctx)
}

func (s *emailService) send(ctx context.Context, to, subject, body string, emailType models.EmailType) error {
	record := &models.EmailRecord{
		To:      to,
		Subject: subject,
		Body:    body,
		Type:    emailType,
		SentAt:  time.Now().UTC(),
		Status:  models.EmailStatusSent,
	}
	if err := s.repo.Emails().Append(ctx, record); err != nil {
		return fmt.Errorf("failed to record email: %w", err)
	}

	event := events.EmailSentEvent{
		To:      to,
		Subject: subject,
		Type:    string(emailType),
		Status:  record.Status,
		SentAt:  record.SentAt,
	}
	if err := s.publisher.Publish(ctx, events.TopicEmailSent, event); err != nil {
		// Fire-and-forget: the record is already persisted.
		s.logger.Warn("failed to publish email event", "to", to, "error", err)
	}

	s.logger.Info("Email sent", "to", to, "type", emailType)
	return nil
}
