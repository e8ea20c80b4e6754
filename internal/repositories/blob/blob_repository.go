// Package blob implements the repositories on top of the named-blob store:
// every collection is one JSON blob that is read, modified and written back
// whole. A per-collection mutex serializes the read-modify-write so
// concurrent handlers cannot interleave inside one collection; across
// processes the semantics stay last-write-wins.
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

// DefaultKeyPrefix namespaces every blob key.
const DefaultKeyPrefix = "studyflow:"

// BlobRepository implements the main Repository interface.
type BlobRepository struct {
	store storage.Store

	users    repositories.UserRepository
	tasks    repositories.TaskRepository
	logs     repositories.ActivityLogRepository
	settings repositories.SettingsRepository
	session  repositories.SessionRepository
	emails   repositories.EmailRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	Store     storage.Store
	KeyPrefix string
}

// NewBlobRepository creates a repository with all sub-repositories bound to
// the given store.
func NewBlobRepository(config RepositoryConfig) repositories.Repository {
	prefix := config.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &BlobRepository{
		store:    config.Store,
		users:    newUserBlob(config.Store, prefix+"users"),
		tasks:    newTaskBlob(config.Store, prefix+"tasks"),
		logs:     newActivityLogBlob(config.Store, prefix+"activity-logs"),
		settings: newSettingsBlob(config.Store, prefix+"settings", prefix+"global-settings"),
		session:  newSessionBlob(config.Store, prefix+"session"),
		emails:   newEmailBlob(config.Store, prefix+"sent-emails"),
	}
}

func (r *BlobRepository) Users() repositories.UserRepository { return r.users }

func (r *BlobRepository) Tasks() repositories.TaskRepository { return r.tasks }

func (r *BlobRepository) Logs() repositories.ActivityLogRepository { return r.logs }

func (r *BlobRepository) Settings() repositories.SettingsRepository { return r.settings }

func (r *BlobRepository) Session() repositories.SessionRepository { return r.session }

func (r *BlobRepository) Emails() repositories.EmailRepository { return r.emails }

func (r *BlobRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *BlobRepository) Close() error {
	return r.store.Close()
}

// Manager implements the RepositoryManager interface
type Manager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewManager(config RepositoryConfig) repositories.RepositoryManager {
	return &Manager{config: config}
}

func (m *Manager) Initialize() error {
	if m.config.Store == nil {
		return fmt.Errorf("blob store is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.config.Store.Ping(ctx); err != nil {
		return fmt.Errorf("store connection failed: %w", err)
	}

	m.repo = NewBlobRepository(m.config)
	return nil
}

func (m *Manager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *Manager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *Manager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
