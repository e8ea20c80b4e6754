package services

import (
	"errors"
	"fmt"
)

// Expected-condition errors. Handlers map these to inline messages and
// non-5xx statuses; anything else is treated as a storage failure.
var (
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is the conflict on register/create with an email
	// already in use (case-sensitive exact match).
	ErrEmailTaken = errors.New("email already in use")

	// ErrRegistrationDisabled is returned when global settings have
	// switched self-registration off.
	ErrRegistrationDisabled = errors.New("registration is disabled")

	// ErrSelfDelete guards against a user deleting their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")

	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)

// PermissionError reports that the actor may not perform an action on a
// resource. The reason is for logs, not for end users.
type PermissionError struct {
	UserID   string
	Resource string
	Action   string
	Reason   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s: %s", e.UserID, e.Action, e.Resource, e.Reason)
}

func NewPermissionError(userID, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		Action:   action,
		Reason:   reason,
	}
}

// IsPermissionError reports whether err is a PermissionError.
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
