package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/StudyFlow-2025/task-service/internal/events"
	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
)

func TestEmailService_SendConfirmation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := &models.User{ID: "admin", Role: models.RoleAdmin}

	if err := env.email.SendConfirmation(ctx, "ana@example.com", "Ana"); err != nil {
		t.Fatalf("SendConfirmation failed: %v", err)
	}

	// The record was persisted
	records, err := env.email.ListSent(ctx, admin)
	if err != nil {
		t.Fatalf("ListSent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.To != "ana@example.com" || record.Type != models.EmailConfirmation {
		t.Errorf("unexpected record: %+v", record)
	}
	if record.Status != models.EmailStatusSent || record.SentAt.IsZero() {
		t.Errorf("record missing status or timestamp: %+v", record)
	}

	// An event was published
	published := env.publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Topic != events.TopicEmailSent {
		t.Errorf("expected topic %s, got %s", events.TopicEmailSent, published[0].Topic)
	}

	var event events.EmailSentEvent
	if err := json.Unmarshal(published[0].Payload, &event); err != nil {
		t.Fatalf("failed to decode event payload: %v", err)
	}
	if event.To != "ana@example.com" || event.Status != models.EmailStatusSent {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestEmailService_SendNotification(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := &models.User{ID: "admin", Role: models.RoleAdmin}
	req := &NotificationRequest{Email: "ana@example.com", Subject: "Due soon", Body: "A task is due"}

	if err := env.email.SendNotification(ctx, admin, req); err != nil {
		t.Fatalf("SendNotification failed: %v", err)
	}

	records, err := env.email.ListSent(ctx, admin)
	if err != nil {
		t.Fatalf("ListSent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Type != models.EmailNotification || records[0].Subject != "Due soon" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestEmailService_NotificationRespectsGlobalToggle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := &models.User{ID: "admin", Role: models.RoleAdmin}

	disabled := false
	if _, err := env.repo.Settings().UpdateGlobal(ctx, repositories.GlobalSettingsPatch{EmailNotifications: &disabled}); err != nil {
		t.Fatalf("UpdateGlobal failed: %v", err)
	}

	req := &NotificationRequest{Email: "ana@example.com", Subject: "Due soon", Body: "A task is due"}
	if err := env.email.SendNotification(ctx, admin, req); err != nil {
		t.Fatalf("SendNotification failed: %v", err)
	}

	records, err := env.email.ListSent(ctx, admin)
	if err != nil {
		t.Fatalf("ListSent failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records with notifications disabled, got %d", len(records))
	}
}

func TestEmailService_SendNotificationRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	student := registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	req := &NotificationRequest{Email: "someone@example.com", Subject: "Hi", Body: "Hello"}
	if err := env.email.SendNotification(ctx, student, req); !IsPermissionError(err) {
		t.Fatalf("expected permission error, got %v", err)
	}
}

func TestEmailService_ListSentRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	student := registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	if _, err := env.email.ListSent(ctx, student); !IsPermissionError(err) {
		t.Fatalf("expected permission error, got %v", err)
	}
}
