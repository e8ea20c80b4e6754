package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

type SessionBlob struct {
	store storage.Store
	key   string
}

func newSessionBlob(store storage.Store, key string) repositories.SessionRepository {
	return &SessionBlob{store: store, key: key}
}

func (r *SessionBlob) Current(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := r.store.Get(ctx, r.key, &user); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &user, nil
}

// Set stores the session user without the password, mirroring the reference
// which never persists the secret in the session blob.
func (r *SessionBlob) Set(ctx context.Context, user *models.User) error {
	if err := r.store.Set(ctx, r.key, user.Sanitized()); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (r *SessionBlob) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
