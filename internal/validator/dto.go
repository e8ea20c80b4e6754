package validator

import (
	"time"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// Update requests carry pointer fields: nil means "leave unchanged". Unknown
// JSON fields are rejected at the binding layer, so a patch can only name
// the fields declared here.

// LoginRequest represents the credentials check input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the self-registration input.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=100"`
}

// UserCreateRequest represents the admin account-creation input.
type UserCreateRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,max=100"`
	Role     models.UserRole `json:"role" validate:"required,user_role"`
}

// UserUpdateRequest represents a partial profile/account update.
type UserUpdateRequest struct {
	Name     *string          `json:"name" validate:"omitempty,max=100"`
	Email    *string          `json:"email" validate:"omitempty,email,max=255"`
	Password *string          `json:"password" validate:"omitempty,max=100"`
	Avatar   *string          `json:"avatar" validate:"omitempty,max=500"`
	Role     *models.UserRole `json:"role" validate:"omitempty,user_role"`
}

// TaskCreateRequest represents the request structure for creating tasks.
type TaskCreateRequest struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description" validate:"omitempty,max=2000"`
	Category    models.TaskCategory `json:"category" validate:"required,task_category"`
	Priority    models.Priority     `json:"priority" validate:"required,task_priority"`
	DueDate     time.Time           `json:"due_date" validate:"required"`
	Completed   bool                `json:"completed"`
}

// TaskUpdateRequest represents a partial task update.
type TaskUpdateRequest struct {
	Title       *string              `json:"title" validate:"omitempty,max=200"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	Category    *models.TaskCategory `json:"category" validate:"omitempty,task_category"`
	Priority    *models.Priority     `json:"priority" validate:"omitempty,task_priority"`
	DueDate     *time.Time           `json:"due_date"`
	Completed   *bool                `json:"completed"`
}

// UserSettingsRequest represents a partial per-user settings update.
type UserSettingsRequest struct {
	Theme           *models.Theme           `json:"theme" validate:"omitempty,theme_option"`
	FontSize        *models.FontSize        `json:"font_size" validate:"omitempty,font_size"`
	Notifications   *bool                   `json:"notifications"`
	DefaultCategory *models.TaskCategory    `json:"default_category" validate:"omitempty,task_category"`
	PrimaryColor    *string                 `json:"primary_color" validate:"omitempty,hexcolor"`
	DashboardColors *models.DashboardColors `json:"dashboard_colors"`
}

// NotificationRequest is the admin-initiated notification send input.
type NotificationRequest struct {
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=2000"`
}

// GlobalSettingsRequest represents a partial system-wide settings update.
type GlobalSettingsRequest struct {
	DefaultTheme          *models.Theme    `json:"default_theme" validate:"omitempty,theme_option"`
	DefaultFontSize       *models.FontSize `json:"default_font_size" validate:"omitempty,font_size"`
	DefaultPrimaryColor   *string          `json:"default_primary_color" validate:"omitempty,hexcolor"`
	DefaultSecondaryColor *string          `json:"default_secondary_color" validate:"omitempty,hexcolor"`
	EmailNotifications    *bool            `json:"email_notifications"`
	RegistrationEnabled   *bool            `json:"registration_enabled"`
}
