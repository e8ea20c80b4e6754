package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/StudyFlow-2025/task-service/internal/events"
	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
)

func registerStudent(t *testing.T, env *testEnv, name, email, password string) *models.User {
	t.Helper()

	user, err := env.auth.Register(context.Background(), &RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return user
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	if user.ID == "" {
		t.Error("expected an assigned ID")
	}
	if user.Role != models.RoleStudent {
		t.Errorf("expected student role, got %s", user.Role)
	}
	if user.Password != "" {
		t.Error("response leaked the password")
	}

	// Registration authenticates the new account
	current, err := env.auth.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current == nil || current.ID != user.ID {
		t.Errorf("expected session for registered user, got %+v", current)
	}

	// A Registration entry was logged
	admin := &models.User{ID: "admin", Role: models.RoleAdmin}
	entries, err := env.activity.List(ctx, admin, repositories.LogFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) == 0 || entries[0].Action != models.ActionRegistration {
		t.Errorf("expected Registration entry, got %+v", entries)
	}

	// A confirmation email was recorded
	emails, err := env.email.ListSent(ctx, admin)
	if err != nil {
		t.Fatalf("ListSent failed: %v", err)
	}
	if len(emails) != 1 || emails[0].Type != models.EmailConfirmation {
		t.Errorf("expected 1 confirmation email, got %d", len(emails))
	}
}

func TestAuthService_RegisterPublishesEvent(t *testing.T) {
	env := newTestEnv(t)
	user := registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	var registered []events.PublishedEvent
	for _, e := range env.publisher.GetPublishedEvents() {
		if e.Topic == events.TopicUserRegistered {
			registered = append(registered, e)
		}
	}
	if len(registered) != 1 {
		t.Fatalf("expected 1 registration event, got %d", len(registered))
	}

	var event events.UserRegisteredEvent
	if err := json.Unmarshal(registered[0].Payload, &event); err != nil {
		t.Fatalf("failed to decode event payload: %v", err)
	}
	if event.UserID != user.ID || event.Email != user.Email {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.RegisteredAt.IsZero() {
		t.Error("event missing registration timestamp")
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	_, err := env.auth.Register(context.Background(), &RegisterRequest{
		Name:     "Another Ana",
		Email:    "ana@example.com",
		Password: "different",
	}, "127.0.0.1")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_RegisterDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	disabled := false
	if _, err := env.repo.Settings().UpdateGlobal(ctx, repositories.GlobalSettingsPatch{RegistrationEnabled: &disabled}); err != nil {
		t.Fatalf("UpdateGlobal failed: %v", err)
	}

	_, err := env.auth.Register(ctx, &RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	}, "127.0.0.1")
	if !errors.Is(err, ErrRegistrationDisabled) {
		t.Fatalf("expected ErrRegistrationDisabled, got %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerStudent(t, env, "Ana", "ana@example.com", "secret123")
	if err := env.auth.Logout(ctx, "127.0.0.1"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	// Clear the log so only the failed attempt's effect is observed
	admin := &models.User{ID: "admin", Role: models.RoleAdmin}
	if err := env.activity.Clear(ctx, admin); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	_, err := env.auth.Login(ctx, &LoginRequest{Email: "ana@example.com", Password: "wrong"}, "127.0.0.1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// No session was created
	current, err := env.auth.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current != nil {
		t.Errorf("expected no session after failed login, got %+v", current)
	}

	// Nothing was logged
	entries, err := env.activity.List(ctx, admin, repositories.LogFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty log after failed login, got %d entries", len(entries))
	}
}

func TestAuthService_LoginExactEquality(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerStudent(t, env, "Ana", "ana@example.com", "Secret123")
	if err := env.auth.Logout(ctx, "127.0.0.1"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	// Passwords are compared case-sensitively
	if _, err := env.auth.Login(ctx, &LoginRequest{Email: "ana@example.com", Password: "secret123"}, "127.0.0.1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong case, got %v", err)
	}

	user, err := env.auth.Login(ctx, &LoginRequest{Email: "ana@example.com", Password: "Secret123"}, "127.0.0.1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "x"}, "127.0.0.1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	if err := env.auth.Logout(ctx, "127.0.0.1"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	current, err := env.auth.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current != nil {
		t.Errorf("expected no session after logout, got %+v", current)
	}

	// A second logout with no session is a no-op
	if err := env.auth.Logout(ctx, "127.0.0.1"); err != nil {
		t.Errorf("anonymous Logout failed: %v", err)
	}
}

func TestAuthService_EnsureDefaultAccounts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if err := env.auth.EnsureDefaultAccounts(ctx); err != nil {
		t.Fatalf("EnsureDefaultAccounts failed: %v", err)
	}

	admin, err := env.repo.Users().GetByEmail(ctx, "admin@studyflow.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if admin == nil || admin.Role != models.RoleAdmin {
		t.Errorf("expected seeded admin account, got %+v", admin)
	}

	// Seeding is skipped once any user exists
	if err := env.auth.EnsureDefaultAccounts(ctx); err != nil {
		t.Fatalf("second EnsureDefaultAccounts failed: %v", err)
	}
	users, err := env.repo.Users().List(ctx, repositories.UserFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 seeded accounts, got %d", len(users))
	}

	// Seeded credentials work
	user, err := env.auth.Login(ctx, &LoginRequest{Email: "admin@studyflow.com", Password: "admin123"}, "127.0.0.1")
	if err != nil {
		t.Fatalf("Login with seeded credentials failed: %v", err)
	}
	if !user.IsAdmin() {
		t.Error("seeded admin lost its role")
	}
}
