package calendar

import (
	"time"

	"github.com/tktkaws/booking-02/internal/domain"
)

// Field tags a validation error to the input it concerns, so callers can
// attach the message to the offending form control.
type Field string

const (
	FieldDate      Field = "date"
	FieldStartTime Field = "startTime"
	FieldEndTime   Field = "endTime"
	FieldRange     Field = "range"
	FieldOverlap   Field = "overlap"
	FieldWeekday   Field = "weekday"
)

// Validation messages. Input errors are user-correctable data, never Go
// errors.
const (
	msgDateRequired      = "date is required"
	msgStartTimeRequired = "start time is required"
	msgEndTimeRequired   = "end time is required"
	msgInvalidTimeFormat = "time format is invalid"
	msgEndBeforeStart    = "end time must be after start time"
	msgWeekdayOnly       = "bookings are limited to weekdays"
	msgOverlap           = "the time conflicts with another booking"
)

// ValidationError is one field-tagged validation failure.
type ValidationError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating a candidate reservation.
// Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// ReservationInput is a candidate reservation as entered by the user. Date is
// YYYY-MM-DD, the times are HH:MM. BookingID, when set, identifies the
// booking being edited so it is excluded from the overlap check.
type ReservationInput struct {
	Date      string
	StartTime string
	EndTime   string
	BookingID *int64
}

// ValidateReservation checks a candidate reservation against the business
// rules: required fields, parseable date and times, start before end,
// weekday-only policy and overlap with the supplied same-day bookings. The
// caller is responsible for existing containing exactly the bookings of the
// candidate's calendar day.
//
// The function is pure and synchronous: identical arguments always produce
// identical results, and it never fails — malformed input comes back as
// field-tagged errors, not as Go errors.
func ValidateReservation(input ReservationInput, existing []domain.Booking, loc *time.Location) ValidationResult {
	var errs []ValidationError

	if input.Date == "" {
		errs = append(errs, ValidationError{Field: FieldDate, Message: msgDateRequired})
	}
	if input.StartTime == "" {
		errs = append(errs, ValidationError{Field: FieldStartTime, Message: msgStartTimeRequired})
	}
	if input.EndTime == "" {
		errs = append(errs, ValidationError{Field: FieldEndTime, Message: msgEndTimeRequired})
	}

	// Downstream checks need all three fields.
	if len(errs) > 0 {
		return ValidationResult{Valid: false, Errors: errs}
	}

	start, startErr := CombineDateTime(input.Date, input.StartTime, loc)
	end, endErr := CombineDateTime(input.Date, input.EndTime, loc)
	if startErr != nil || endErr != nil {
		errs = append(errs, ValidationError{Field: FieldRange, Message: msgInvalidTimeFormat})
		return ValidationResult{Valid: false, Errors: errs}
	}

	if !start.Before(end) {
		errs = append(errs, ValidationError{Field: FieldRange, Message: msgEndBeforeStart})
	}

	if !IsWeekday(start) {
		errs = append(errs, ValidationError{Field: FieldWeekday, Message: msgWeekdayOnly})
	}

	// Half-open intervals: back-to-back bookings do not conflict. Only the
	// first conflict is reported.
	for _, b := range existing {
		if input.BookingID != nil && b.ID == *input.BookingID {
			continue
		}
		if start.Before(b.EndAt) && end.After(b.StartAt) {
			errs = append(errs, ValidationError{Field: FieldOverlap, Message: msgOverlap})
			break
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
