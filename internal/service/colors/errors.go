package colors

import "errors"

var (
	// ErrInvalidColor is returned when an input color is not a hex color.
	ErrInvalidColor = errors.New("invalid color value")

	// ErrAccessDenied is returned when a non-admin updates the org default.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("colors service: internal error")
)
