package repositories

import (
	"context"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// TaskRepository is the CRUD boundary over the tasks collection.
//
// Role-based visibility is enforced here, at the read boundary: List and
// GetVisible scope results to what the viewer may see (students their own
// tasks, admins everything, anonymous viewers nothing). Callers that hold
// a task id from another path still cannot widen their view.
type TaskRepository interface {
	// List returns the tasks visible to viewer, narrowed by filters, in
	// insertion order.
	List(ctx context.Context, viewer *models.User, filters TaskFilters) ([]*models.Task, error)

	// GetVisible returns the task only when viewer may see it; (nil, nil)
	// otherwise.
	GetVisible(ctx context.Context, viewer *models.User, id string) (*models.Task, error)

	Create(ctx context.Context, task *models.Task) error

	// Update merges the patch into the stored task. Returns false when the
	// id is unknown; id, created_at and user_id are never changed.
	Update(ctx context.Context, id string, patch TaskPatch) (bool, error)

	// Delete removes the task. Returns false when the id is unknown.
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteByUser removes every task owned by userID and reports how many
	// were removed. Used for the user-delete cascade.
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
