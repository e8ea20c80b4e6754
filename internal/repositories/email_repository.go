package repositories

import (
	"context"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// EmailRepository persists the sent-notification records.
type EmailRepository interface {
	Append(ctx context.Context, record *models.EmailRecord) error
	List(ctx context.Context) ([]*models.EmailRecord, error)
}
