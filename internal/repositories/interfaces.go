package repositories

import (
	"time"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type TaskFilters struct {
	Category  *models.TaskCategory `json:"category"`
	Priority  *models.Priority     `json:"priority"`
	Completed *bool                `json:"completed"`
	UserID    *string              `json:"user_id"`
	DueFrom   *time.Time           `json:"due_from"`
	DueTo     *time.Time           `json:"due_to"`
}

// Matches reports whether a task passes every set filter field.
func (f TaskFilters) Matches(t *models.Task) bool {
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.UserID != nil && t.UserID != *f.UserID {
		return false
	}
	if f.DueFrom != nil && t.DueDate.Before(*f.DueFrom) {
		return false
	}
	if f.DueTo != nil && t.DueDate.After(*f.DueTo) {
		return false
	}
	return true
}

type UserFilters struct {
	Query string           `json:"query"` // matches name or email, case-insensitive substring
	Role  *models.UserRole `json:"role"`
}

type LogFilters struct {
	UserID *string `json:"user_id"`
	Action *string `json:"action"`
	Limit  int     `json:"limit"`
}

// ===== PARTIAL-UPDATE STRUCTS =====

// Patches carry only the fields a caller may change; identifiers and
// creation timestamps are never part of a patch.

type UserPatch struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Password *string          `json:"password"`
	Avatar   *string          `json:"avatar"`
	Role     *models.UserRole `json:"role"`
}

type TaskPatch struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Category    *models.TaskCategory `json:"category"`
	Priority    *models.Priority     `json:"priority"`
	DueDate     *time.Time           `json:"due_date"`
	Completed   *bool                `json:"completed"`
}

type UserSettingsPatch struct {
	Theme           *models.Theme           `json:"theme"`
	FontSize        *models.FontSize        `json:"font_size"`
	Notifications   *bool                   `json:"notifications"`
	DefaultCategory *models.TaskCategory    `json:"default_category"`
	PrimaryColor    *string                 `json:"primary_color"`
	DashboardColors *models.DashboardColors `json:"dashboard_colors"`
}

type GlobalSettingsPatch struct {
	DefaultTheme          *models.Theme    `json:"default_theme"`
	DefaultFontSize       *models.FontSize `json:"default_font_size"`
	DefaultPrimaryColor   *string          `json:"default_primary_color"`
	DefaultSecondaryColor *string          `json:"default_secondary_color"`
	EmailNotifications    *bool            `json:"email_notifications"`
	RegistrationEnabled   *bool            `json:"registration_enabled"`
}
