package repositories

import "errors"

var (
	// ErrDuplicateEmail is returned by user Create/Update when the email
	// uniqueness invariant would be violated. The collection is left
	// unchanged.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrMissingTitle is returned by task Create when the required title
	// is empty.
	ErrMissingTitle = errors.New("task title is required")

	// ErrMissingFields is returned by user Create when name, email or
	// password is empty.
	ErrMissingFields = errors.New("name, email and password are required")
)
