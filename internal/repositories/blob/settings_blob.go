package blob

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

type SettingsBlob struct {
	store      storage.Store
	userPrefix string
	globalKey  string
	mu         sync.Mutex
}

func newSettingsBlob(store storage.Store, userPrefix, globalKey string) repositories.SettingsRepository {
	return &SettingsBlob{store: store, userPrefix: userPrefix, globalKey: globalKey}
}

func (r *SettingsBlob) userKey(userID string) string {
	return fmt.Sprintf("%s:%s", r.userPrefix, userID)
}

// GetUser unmarshals stored overrides over the defaults, so keys that were
// never written keep their default value and an absent blob is not an error.
func (r *SettingsBlob) GetUser(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings := models.DefaultUserSettings()
	err := r.store.Get(ctx, r.userKey(userID), &settings)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read user settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsBlob) UpdateUser(ctx context.Context, userID string, patch repositories.UserSettingsPatch) (*models.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.FontSize != nil {
		settings.FontSize = *patch.FontSize
	}
	if patch.Notifications != nil {
		settings.Notifications = *patch.Notifications
	}
	if patch.DefaultCategory != nil {
		settings.DefaultCategory = *patch.DefaultCategory
	}
	if patch.PrimaryColor != nil {
		settings.PrimaryColor = *patch.PrimaryColor
	}
	if patch.DashboardColors != nil {
		settings.DashboardColors = patch.DashboardColors
	}

	if err := r.store.Set(ctx, r.userKey(userID), settings); err != nil {
		return nil, fmt.Errorf("failed to write user settings: %w", err)
	}
	return settings, nil
}

func (r *SettingsBlob) RemoveUser(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, r.userKey(userID))
}

func (r *SettingsBlob) GetGlobal(ctx context.Context) (*models.GlobalSettings, error) {
	settings := models.DefaultGlobalSettings()
	err := r.store.Get(ctx, r.globalKey, &settings)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read global settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsBlob) UpdateGlobal(ctx context.Context, patch repositories.GlobalSettingsPatch) (*models.GlobalSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.GetGlobal(ctx)
	if err != nil {
		return nil, err
	}

	if patch.DefaultTheme != nil {
		settings.DefaultTheme = *patch.DefaultTheme
	}
	if patch.DefaultFontSize != nil {
		settings.DefaultFontSize = *patch.DefaultFontSize
	}
	if patch.DefaultPrimaryColor != nil {
		settings.DefaultPrimaryColor = *patch.DefaultPrimaryColor
	}
	if patch.DefaultSecondaryColor != nil {
		settings.DefaultSecondaryColor = *patch.DefaultSecondaryColor
	}
	if patch.EmailNotifications != nil {
		settings.EmailNotifications = *patch.EmailNotifications
	}
	if patch.RegistrationEnabled != nil {
		settings.RegistrationEnabled = *patch.RegistrationEnabled
	}

	if err := r.store.Set(ctx, r.globalKey, settings); err != nil {
		return nil, fmt.Errorf("failed to write global settings: %w", err)
	}
	return settings, nil
}
