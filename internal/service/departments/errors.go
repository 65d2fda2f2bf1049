package departments

import "errors"

var (
	// ErrDepartmentNotFound is returned when the department does not exist.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrDepartmentInUse is returned when deleting a department that still
	// has bookings or members.
	ErrDepartmentInUse = errors.New("department is in use")

	// ErrInvalidInput is returned on malformed department data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAccessDenied is returned when a non-admin modifies departments.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("departments service: internal error")
)
