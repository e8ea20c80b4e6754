package repositories

import (
	"context"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// SessionRepository holds the current-session user blob. The session is
// either anonymous (Current returns nil, nil) or authenticated; it persists
// until an explicit Clear or the store is wiped. No expiry.
type SessionRepository interface {
	Current(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}
