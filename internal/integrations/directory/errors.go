package directory

import "errors"

var (
	// ErrUserNotFound is returned when the directory has no such user.
	ErrUserNotFound = errors.New("directory: user not found")

	// ErrInvalidResponse is returned on unexpected responses from the
	// directory service.
	ErrInvalidResponse = errors.New("directory: invalid response")

	// ErrInternal is returned on transport-level failures.
	ErrInternal = errors.New("directory: internal error")
)
