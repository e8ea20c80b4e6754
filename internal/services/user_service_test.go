package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
)

func seedAdmin(t *testing.T, env *testEnv) *models.User {
	t.Helper()
	ctx := context.Background()

	admin := &models.User{Name: "Admin", Email: "admin@studyflow.com", Password: "admin123", Role: models.RoleAdmin}
	if err := env.repo.Users().Create(ctx, admin); err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	return admin
}

func TestUserService_ListRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	student := registerStudent(t, env, "Ana", "ana@example.com", "secret123")

	if _, err := env.users.List(ctx, student, repositories.UserFilters{}); !IsPermissionError(err) {
		t.Fatalf("expected permission error, got %v", err)
	}

	admin := seedAdmin(t, env)
	users, err := env.users.List(ctx, admin, repositories.UserFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u.Password != "" {
			t.Error("listing leaked a password")
		}
	}
}

func TestUserService_AdminCreate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := seedAdmin(t, env)

	created, err := env.users.Create(ctx, admin, &UserCreateRequest{
		Name:     "New Admin",
		Email:    "second@studyflow.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", created.Role)
	}

	// An Account created entry was logged and a confirmation email recorded
	entries, err := env.activity.List(ctx, admin, repositories.LogFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) == 0 || entries[0].Action != models.ActionAccountCreated {
		t.Errorf("expected Account created entry, got %+v", entries)
	}

	emails, err := env.email.ListSent(ctx, admin)
	if err != nil {
		t.Fatalf("ListSent failed: %v", err)
	}
	if len(emails) != 1 {
		t.Errorf("expected 1 email, got %d", len(emails))
	}
}

func TestUserService_SelfDeleteRefused(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin := seedAdmin(t, env)

	err := env.users.Delete(ctx, admin, admin.ID, "127.0.0.1")
	if !errors.Is(err, ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}

	// The account still exists
	got, err := env.repo.Users().GetByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Error("admin account deleted despite refusal")
	}
}

func TestUserService_DeleteCascadesTasks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	student := registerStudent(t, env, "Ana", "ana@example.com", "secret123")
	admin := seedAdmin(t, env)

	for i := 0; i < 2; i++ {
		createTask(t, env, student, "Doomed", time.Now().Add(time.Hour))
	}
	keep := createTask(t, env, admin, "Admin task", time.Now().Add(time.Hour))

	if err := env.users.Delete(ctx, admin, student.ID, "127.0.0.1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	tasks, err := env.tasks.List(ctx, admin, repositories.TaskFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != keep.ID {
		t.Errorf("expected only the admin task to survive, got %d tasks", len(tasks))
	}
}

func TestUserService_DeleteRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ana := registerStudent(t, env, "Ana", "ana@example.com", "secret123")
	ben := registerStudent(t, env, "Ben", "ben@example.com", "secret123")

	if err := env.users.Delete(ctx, ana, ben.ID, "127.0.0.1"); !IsPermissionError(err) {
		t.Fatalf("expected permission error, got %v", err)
	}
}

func TestUserService_SelfUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ana := registerStudent(t, env, "Ana", "ana@example.com", "secret123")
	ben := registerStudent(t, env, "Ben", "ben@example.com", "secret123")

	newName := "Ana Maria"
	updated, err := env.users.Update(ctx, ana, ana.ID, &UserUpdateRequest{Name: &newName}, "127.0.0.1")
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Name != "Ana Maria" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}

	// A student cannot update another account
	if _, err := env.users.Update(ctx, ana, ben.ID, &UserUpdateRequest{Name: &newName}, "127.0.0.1"); !IsPermissionError(err) {
		t.Fatalf("expected permission error, got %v", err)
	}

	// A student cannot grant themselves a role
	adminRole := models.RoleAdmin
	if _, err := env.users.Update(ctx, ana, ana.ID, &UserUpdateRequest{Role: &adminRole}, "127.0.0.1"); !IsPermissionError(err) {
		t.Fatalf("expected permission error for role self-grant, got %v", err)
	}
}

func TestUserService_UpdateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	registerStudent(t, env, "Ana", "ana@example.com", "secret123")
	ben := registerStudent(t, env, "Ben", "ben@example.com", "secret123")

	taken := "ana@example.com"
	if _, err := env.users.Update(ctx, ben, ben.ID, &UserUpdateRequest{Email: &taken}, "127.0.0.1"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
