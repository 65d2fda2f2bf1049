package save_booking

import (
	"errors"
	"fmt"

	"github.com/tktkaws/booking-02/internal/calendar"
)

var (
	// ErrBookingNotFound is returned when editing a booking that does not exist.
	ErrBookingNotFound = errors.New("save_booking: booking not found")

	// ErrAccessDenied is returned when the user may not edit this booking.
	ErrAccessDenied = errors.New("save_booking: access denied")

	// ErrInvalidInput is returned on malformed request data outside the
	// reservation rules (missing title, unknown department, oversized fields).
	ErrInvalidInput = errors.New("save_booking: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("save_booking: internal error")
)

// ValidationFailedError carries the field-tagged reservation rule failures so
// the transport layer can render them for the form that produced them.
type ValidationFailedError struct {
	Errors []calendar.ValidationError
}

func (e *ValidationFailedError) Error() string {
	if len(e.Errors) == 0 {
		return "save_booking: validation failed"
	}
	return fmt.Sprintf("save_booking: validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}
