package services

import (
	"context"
	"time"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use validator request types
type LoginRequest = validator.LoginRequest
type RegisterRequest = validator.RegisterRequest
type UserCreateRequest = validator.UserCreateRequest
type UserUpdateRequest = validator.UserUpdateRequest
type TaskCreateRequest = validator.TaskCreateRequest
type TaskUpdateRequest = validator.TaskUpdateRequest
type UserSettingsRequest = validator.UserSettingsRequest
type GlobalSettingsRequest = validator.GlobalSettingsRequest
type NotificationRequest = validator.NotificationRequest

type ProgressResponse struct {
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percentage     float64 `json:"percentage"`
}

type DashboardOverviewResponse struct {
	TotalTasks     int                         `json:"total_tasks"`
	CompletedTasks int                         `json:"completed_tasks"`
	OverdueTasks   int                         `json:"overdue_tasks"`
	Progress       ProgressResponse            `json:"progress"`
	ByCategory     map[models.TaskCategory]int `json:"by_category"`
	ByPriority     map[models.Priority]int     `json:"by_priority"`
	Upcoming       []*models.Task              `json:"upcoming"`
}

// ===== SERVICE INTERFACES =====

// AuthService is the session gate: it resolves and transitions the
// current-session user and owns the credential checks.
type AuthService interface {
	// Login checks email and stored secret by exact equality. On success it
	// sets the session and logs a Login entry; on failure the session is
	// unchanged and nothing is logged.
	Login(ctx context.Context, req *LoginRequest, ip string) (*models.User, error)

	// Register creates a student account, authenticates it, logs a
	// Registration entry and queues a confirmation email. A failed email
	// send does not roll back the registration.
	Register(ctx context.Context, req *RegisterRequest, ip string) (*models.User, error)

	// Logout clears the session, logging a Logout entry only when a user
	// was authenticated.
	Logout(ctx context.Context, ip string) error

	// CurrentUser resolves the session to a user, or nil when anonymous.
	CurrentUser(ctx context.Context) (*models.User, error)

	// EnsureDefaultAccounts seeds the demo admin and student accounts when
	// the users collection is empty.
	EnsureDefaultAccounts(ctx context.Context) error
}

type TaskService interface {
	Create(ctx context.Context, actor *models.User, req *TaskCreateRequest, ip string) (*models.Task, error)
	GetByID(ctx context.Context, actor *models.User, id string) (*models.Task, error)
	List(ctx context.Context, actor *models.User, filters repositories.TaskFilters) ([]*models.Task, error)
	Update(ctx context.Context, actor *models.User, id string, req *TaskUpdateRequest, ip string) (*models.Task, error)

	// Toggle flips the completion flag, logging a completion or reopen
	// entry accordingly.
	Toggle(ctx context.Context, actor *models.User, id string, ip string) (*models.Task, error)

	Delete(ctx context.Context, actor *models.User, id string, ip string) error
}

type UserService interface {
	List(ctx context.Context, actor *models.User, filters repositories.UserFilters) ([]*models.User, error)
	GetByID(ctx context.Context, actor *models.User, id string) (*models.User, error)

	// Create is the admin path: any role, confirmation email queued.
	Create(ctx context.Context, actor *models.User, req *UserCreateRequest, ip string) (*models.User, error)

	// Update merges a partial account change; admins may update anyone,
	// others only themselves.
	Update(ctx context.Context, actor *models.User, id string, req *UserUpdateRequest, ip string) (*models.User, error)

	// Delete removes the account and cascades to its tasks. Deleting the
	// actor's own account is refused.
	Delete(ctx context.Context, actor *models.User, id string, ip string) error
}

type SettingsService interface {
	GetUserSettings(ctx context.Context, actor *models.User) (*models.UserSettings, error)
	UpdateUserSettings(ctx context.Context, actor *models.User, req *UserSettingsRequest) (*models.UserSettings, error)
	GetGlobalSettings(ctx context.Context) (*models.GlobalSettings, error)
	UpdateGlobalSettings(ctx context.Context, actor *models.User, req *GlobalSettingsRequest) (*models.GlobalSettings, error)
}

type ActivityService interface {
	// Record appends one entry for a successful mutation.
	Record(ctx context.Context, actor *models.User, action, details, ip string) error

	List(ctx context.Context, actor *models.User, filters repositories.LogFilters) ([]*models.ActivityLogEntry, error)

	// Clear drops the whole log (admin only); individual entries are never
	// deleted.
	Clear(ctx context.Context, actor *models.User) error
}

// DashboardService computes the derived views. Every call recomputes from
// the collections visible to the actor; nothing is cached.
type DashboardService interface {
	Overview(ctx context.Context, actor *models.User, now time.Time) (*DashboardOverviewResponse, error)
	Overdue(ctx context.Context, actor *models.User, now time.Time) ([]*models.Task, error)
	Upcoming(ctx context.Context, actor *models.User, now time.Time, horizonDays int) ([]*models.Task, error)
	CalendarDay(ctx context.Context, actor *models.User, date time.Time) ([]*models.Task, error)
}

// EmailService is the notification side channel. Sends are simulated:
// the record is persisted and an event published, no real delivery happens.
type EmailService interface {
	SendConfirmation(ctx context.Context, email, name string) error

	// SendNotification is the admin path. It is skipped silently when the
	// global email_notifications toggle is off.
	SendNotification(ctx context.Context, actor *models.User, req *NotificationRequest) error

	ListSent(ctx context.Context, actor *models.User) ([]*models.EmailRecord, error)
}

// ExportService renders collections to spreadsheets for admins.
type ExportService interface {
	ExportTasks(ctx context.Context, actor *models.User) ([]byte, error)
	ExportUsers(ctx context.Context, actor *models.User) ([]byte, error)
	ExportActivityLog(ctx context.Context, actor *models.User) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Auth() AuthService
	Tasks() TaskService
	Users() UserService
	Settings() SettingsService
	Activity() ActivityService
	Dashboard() DashboardService
	Email() EmailService
	Export() ExportService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
