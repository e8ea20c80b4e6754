package blob

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

type EmailBlob struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newEmailBlob(store storage.Store, key string) repositories.EmailRepository {
	return &EmailBlob{store: store, key: key}
}

func (r *EmailBlob) Append(ctx context.Context, record *models.EmailRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []*models.EmailRecord
	if err := r.store.Get(ctx, r.key, &records); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to read sent emails: %w", err)
	}

	record.ID = uuid.NewString()

	records = append(records, record)
	if err := r.store.Set(ctx, r.key, records); err != nil {
		return fmt.Errorf("failed to write sent emails: %w", err)
	}
	return nil
}

func (r *EmailBlob) List(ctx context.Context) ([]*models.EmailRecord, error) {
	var records []*models.EmailRecord
	if err := r.store.Get(ctx, r.key, &records); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sent emails: %w", err)
	}
	return records, nil
}
