package models

import "time"

type TaskCategory string

const (
	CategoryTask       TaskCategory = "task"
	CategoryTest       TaskCategory = "test"
	CategoryAssignment TaskCategory = "assignment"
	CategoryStudy      TaskCategory = "study"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryTask, CategoryTest, CategoryAssignment, CategoryStudy:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AnonymousUserID owns tasks created without an authenticated session.
const AnonymousUserID = "anonymous"

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    TaskCategory `json:"category"`
	Priority    Priority     `json:"priority"`
	DueDate     time.Time    `json:"due_date"`
	Completed   bool         `json:"completed"`
	UserID      string       `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

// VisibleTo implements the role-based visibility rule: admins see every
// task, everyone else only their own.
func (t *Task) VisibleTo(viewer *User) bool {
	if viewer == nil {
		return false
	}
	if viewer.Role == RoleAdmin {
		return true
	}
	return t.UserID == viewer.ID
}
