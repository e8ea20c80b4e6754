package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/StudyFlow-2025/task-service/internal/events"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/repositories/blob"
	"github.com/StudyFlow-2025/task-service/internal/storage"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

// testEnv wires the full service stack over an in-memory blob store, the way
// main does it against Redis or Postgres.
type testEnv struct {
	repo      repositories.Repository
	publisher *events.MockEventPublisher

	auth      AuthService
	tasks     TaskService
	users     UserService
	settings  SettingsService
	activity  ActivityService
	dashboard DashboardService
	email     EmailService
	export    ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := blob.NewBlobRepository(blob.RepositoryConfig{Store: storage.NewMemoryStore()})
	publisher := events.NewMockEventPublisher(logger)
	v := validator.New()

	activity := NewActivityService(repo, logger)
	email := NewEmailService(repo, publisher, logger, v)

	return &testEnv{
		repo:      repo,
		publisher: publisher,
		auth:      NewAuthService(repo, email, activity, publisher, logger, v),
		tasks:     NewTaskService(repo, activity, logger, v),
		users:     NewUserService(repo, email, activity, logger, v),
		settings:  NewSettingsService(repo, logger, v),
		activity:  activity,
		dashboard: NewDashboardService(repo, logger),
		email:     email,
		export:    NewExportService(repo, logger),
	}
}
