package models

import "time"

// Activity actions recorded by the service. Free-form strings are allowed,
// these are the ones the service itself emits.
const (
	ActionLogin          = "Login"
	ActionLogout         = "Logout"
	ActionRegistration   = "Registration"
	ActionAccountCreated = "Account created"
	ActionAccountUpdated = "Account updated"
	ActionAccountDeleted = "Account deleted"
	ActionTaskCreated    = "Task created"
	ActionTaskUpdated    = "Task updated"
	ActionTaskCompleted  = "Task completed"
	ActionTaskReopened   = "Task reopened"
	ActionTaskDeleted    = "Task deleted"
)

// ActivityLogEntry is append-only: entries are never mutated or removed
// individually, only bulk-cleared by an admin.
type ActivityLogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
