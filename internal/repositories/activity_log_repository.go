package repositories

import (
	"context"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// ActivityLogRepository is append-only: entries are never mutated or
// removed individually. Clear drops the whole list.
type ActivityLogRepository interface {
	// Append stores the entry, assigning id and timestamp. Entries are
	// kept newest first.
	Append(ctx context.Context, entry *models.ActivityLogEntry) error

	List(ctx context.Context, filters LogFilters) ([]*models.ActivityLogEntry, error)

	Clear(ctx context.Context) error
}
