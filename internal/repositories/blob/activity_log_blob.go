package blob

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

type ActivityLogBlob struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newActivityLogBlob(store storage.Store, key string) repositories.ActivityLogRepository {
	return &ActivityLogBlob{store: store, key: key}
}

func (r *ActivityLogBlob) readAll(ctx context.Context) ([]*models.ActivityLogEntry, error) {
	var logs []*models.ActivityLogEntry
	if err := r.store.Get(ctx, r.key, &logs); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read activity logs: %w", err)
	}
	return logs, nil
}

// Append prepends the entry so the list stays newest first.
func (r *ActivityLogBlob) Append(ctx context.Context, entry *models.ActivityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logs, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()

	logs = append([]*models.ActivityLogEntry{entry}, logs...)
	if err := r.store.Set(ctx, r.key, logs); err != nil {
		return fmt.Errorf("failed to write activity logs: %w", err)
	}
	return nil
}

func (r *ActivityLogBlob) List(ctx context.Context, filters repositories.LogFilters) ([]*models.ActivityLogEntry, error) {
	logs, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.ActivityLogEntry, 0, len(logs))
	for _, e := range logs {
		if filters.UserID != nil && e.UserID != *filters.UserID {
			continue
		}
		if filters.Action != nil && e.Action != *filters.Action {
			continue
		}
		result = append(result, e)
		if filters.Limit > 0 && len(result) >= filters.Limit {
			break
		}
	}
	return result, nil
}

func (r *ActivityLogBlob) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear activity logs: %w", err)
	}
	return nil
}
