package repositories

import (
	"context"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// UserRepository is the CRUD boundary over the users collection.
//
// Lookups return (nil, nil) when no user matches: absence is an expected
// condition, not an error. Create assigns the identifier and creation
// timestamp and rejects duplicate emails with ErrDuplicateEmail.
type UserRepository interface {
	List(ctx context.Context, filters UserFilters) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Create(ctx context.Context, user *models.User) error

	// Update merges the patch into the stored user. Returns false when the
	// id is unknown; id and created_at are never changed.
	Update(ctx context.Context, id string, patch UserPatch) (bool, error)

	// Delete removes the user. Returns false when the id is unknown.
	// Cascading task deletion is the task repository's DeleteByUser.
	Delete(ctx context.Context, id string) (bool, error)
}
