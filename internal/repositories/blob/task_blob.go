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

type TaskBlob struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newTaskBlob(store storage.Store, key string) repositories.TaskRepository {
	return &TaskBlob{store: store, key: key}
}

func (r *TaskBlob) readAll(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := r.store.Get(ctx, r.key, &tasks); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskBlob) writeAll(ctx context.Context, tasks []*models.Task) error {
	if err := r.store.Set(ctx, r.key, tasks); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	return nil
}

// List applies the visibility rule before any caller-provided filter, so the
// scoping cannot be bypassed by the service layer.
func (r *TaskBlob) List(ctx context.Context, viewer *models.User, filters repositories.TaskFilters) ([]*models.Task, error) {
	tasks, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.VisibleTo(viewer) {
			continue
		}
		if !filters.Matches(t) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *TaskBlob) GetVisible(ctx context.Context, viewer *models.User, id string) (*models.Task, error) {
	tasks, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			if !t.VisibleTo(viewer) {
				return nil, nil
			}
			return t, nil
		}
	}
	return nil, nil
}

func (r *TaskBlob) Create(ctx context.Context, task *models.Task) error {
	if task.Title == "" {
		return repositories.ErrMissingTitle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()
	if task.UserID == "" {
		task.UserID = models.AnonymousUserID
	}

	return r.writeAll(ctx, append(tasks, task))
}

func (r *TaskBlob) Update(ctx context.Context, id string, patch repositories.TaskPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	if patch.Title != nil {
		tasks[idx].Title = *patch.Title
	}
	if patch.Description != nil {
		tasks[idx].Description = *patch.Description
	}
	if patch.Category != nil {
		tasks[idx].Category = *patch.Category
	}
	if patch.Priority != nil {
		tasks[idx].Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		tasks[idx].DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		tasks[idx].Completed = *patch.Completed
	}

	if err := r.writeAll(ctx, tasks); err != nil {
		return false, err
	}
	return true, nil
}

func (r *TaskBlob) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	filtered := make([]*models.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, t)
	}
	if !found {
		return false, nil
	}

	if err := r.writeAll(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

func (r *TaskBlob) DeleteByUser(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return 0, err
	}

	filtered := make([]*models.Task, 0, len(tasks))
	removed := 0
	for _, t := range tasks {
		if t.UserID == userID {
			removed++
			continue
		}
		filtered = append(filtered, t)
	}
	if removed == 0 {
		return 0, nil
	}

	if err := r.writeAll(ctx, filtered); err != nil {
		return 0, err
	}
	return removed, nil
}
