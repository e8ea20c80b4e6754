package repositories

import (
	"context"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// SettingsRepository serves per-user and global preference maps. Reads merge
// stored overrides over the defaults, so an absent blob never errors and
// settings are created lazily on first read.
type SettingsRepository interface {
	GetUser(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateUser(ctx context.Context, userID string, patch UserSettingsPatch) (*models.UserSettings, error)
	RemoveUser(ctx context.Context, userID string) error

	GetGlobal(ctx context.Context) (*models.GlobalSettings, error)
	UpdateGlobal(ctx context.Context, patch GlobalSettingsPatch) (*models.GlobalSettings, error)
}
