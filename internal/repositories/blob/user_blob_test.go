package blob

import (
	"context"
	"errors"
	"testing"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

func newTestRepository() repositories.Repository {
	return NewBlobRepository(RepositoryConfig{Store: storage.NewMemoryStore()})
}

func TestUserBlob_Create(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := repo.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected an assigned ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected an assigned creation timestamp")
	}
	if user.Role != models.RoleStudent {
		t.Errorf("expected default student role, got %s", user.Role)
	}

	got, err := repo.Users().GetByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("expected stored user, got %+v", got)
	}
}

func TestUserBlob_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	first := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := repo.Users().Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dup := &models.User{Name: "Other", Email: "ana@example.com", Password: "other"}
	if err := repo.Users().Create(ctx, dup); !errors.Is(err, repositories.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The collection is unchanged after the rejected create
	users, err := repo.Users().List(ctx, repositories.UserFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user after rejected duplicate, got %d", len(users))
	}
}

func TestUserBlob_EmailMatchIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := repo.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A differently-cased email is a distinct identity
	other := &models.User{Name: "Ana Upper", Email: "Ana@example.com", Password: "secret"}
	if err := repo.Users().Create(ctx, other); err != nil {
		t.Fatalf("expected case-sensitive uniqueness, got %v", err)
	}

	got, err := repo.Users().GetByEmail(ctx, "ANA@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no match for differently-cased email, got %+v", got)
	}
}

func TestUserBlob_UpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := repo.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	originalID := user.ID
	originalCreated := user.CreatedAt

	newName := "Ana Maria"
	found, err := repo.Users().Update(ctx, user.ID, repositories.UserPatch{Name: &newName})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !found {
		t.Fatal("expected user to be found")
	}

	got, err := repo.Users().GetByID(ctx, originalID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Ana Maria" {
		t.Errorf("expected updated name, got %s", got.Name)
	}
	if got.Email != "ana@example.com" {
		t.Errorf("unpatched email changed: %s", got.Email)
	}
	if got.ID != originalID || !got.CreatedAt.Equal(originalCreated) {
		t.Error("id or created_at changed on update")
	}
}

func TestUserBlob_UpdateRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	ana := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	ben := &models.User{Name: "Ben", Email: "ben@example.com", Password: "secret"}
	for _, u := range []*models.User{ana, ben} {
		if err := repo.Users().Create(ctx, u); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	taken := "ana@example.com"
	if _, err := repo.Users().Update(ctx, ben.ID, repositories.UserPatch{Email: &taken}); !errors.Is(err, repositories.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserBlob_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	if err := repo.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.Users().Delete(ctx, user.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !found {
		t.Fatal("expected delete to report found")
	}

	got, err := repo.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected user gone, got %+v", got)
	}

	found, err = repo.Users().Delete(ctx, user.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if found {
		t.Error("expected second delete to report not found")
	}
}

func TestUserBlob_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()

	users := []*models.User{
		{Name: "Ana Admin", Email: "ana@example.com", Password: "x", Role: models.RoleAdmin},
		{Name: "Ben", Email: "ben@example.com", Password: "x"},
		{Name: "Carla", Email: "carla@other.org", Password: "x"},
	}
	for _, u := range users {
		if err := repo.Users().Create(ctx, u); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	admin := models.RoleAdmin
	got, err := repo.Users().List(ctx, repositories.UserFilters{Role: &admin})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ana Admin" {
		t.Errorf("role filter: got %d users", len(got))
	}

	got, err = repo.Users().List(ctx, repositories.UserFilters{Query: "example.com"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("query filter: expected 2 users, got %d", len(got))
	}
}
