package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/pkg/ptr"
)

func fields(result ValidationResult) []Field {
	out := make([]Field, 0, len(result.Errors))
	for _, e := range result.Errors {
		out = append(out, e.Field)
	}
	return out
}

func existingBooking(id int64, start, end string) domain.Booking {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		panic(err)
	}
	return domain.Booking{ID: id, StartAt: s, EndAt: e}
}

func TestValidateReservation_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		input ReservationInput
		want  []Field
	}{
		{"all missing", ReservationInput{}, []Field{FieldDate, FieldStartTime, FieldEndTime}},
		{"missing date", ReservationInput{StartTime: "10:00", EndTime: "11:00"}, []Field{FieldDate}},
		{"missing start", ReservationInput{Date: "2025-01-06", EndTime: "11:00"}, []Field{FieldStartTime}},
		{"missing end", ReservationInput{Date: "2025-01-06", StartTime: "10:00"}, []Field{FieldEndTime}},
	}

	// An overlapping booking that would trip the overlap check if it ran.
	existing := []domain.Booking{
		existingBooking(1, "2025-01-06T00:00:00Z", "2025-01-07T00:00:00Z"),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateReservation(tt.input, existing, time.UTC)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.want, fields(result))
		})
	}
}

func TestValidateReservation_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input ReservationInput
	}{
		{"bad date format", ReservationInput{Date: "06.01.2025", StartTime: "10:00", EndTime: "11:00"}},
		{"bad time format", ReservationInput{Date: "2025-01-06", StartTime: "10am", EndTime: "11:00"}},
		{"impossible date", ReservationInput{Date: "2025-13-40", StartTime: "10:00", EndTime: "11:00"}},
		{"impossible time", ReservationInput{Date: "2025-01-06", StartTime: "10:00", EndTime: "24:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateReservation(tt.input, nil, time.UTC)
			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, FieldRange, result.Errors[0].Field)
		})
	}
}

func TestValidateReservation_Ordering(t *testing.T) {
	// End before start.
	result := ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "10:00", EndTime: "09:00",
	}, nil, time.UTC)
	assert.False(t, result.Valid)
	assert.Contains(t, fields(result), FieldRange)

	// Equal start and end: strict inequality required.
	result = ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "10:00", EndTime: "10:00",
	}, nil, time.UTC)
	assert.False(t, result.Valid)
	assert.Contains(t, fields(result), FieldRange)
}

func TestValidateReservation_Weekday(t *testing.T) {
	// 2025-01-04 is a Saturday, 2025-01-05 a Sunday.
	for _, day := range []string{"2025-01-04", "2025-01-05"} {
		result := ValidateReservation(ReservationInput{
			Date: day, StartTime: "10:00", EndTime: "11:00",
		}, nil, time.UTC)
		assert.False(t, result.Valid, "date=%s", day)
		assert.Equal(t, []Field{FieldWeekday}, fields(result))
	}

	// Ordering error does not suppress the weekday check.
	result := ValidateReservation(ReservationInput{
		Date: "2025-01-04", StartTime: "11:00", EndTime: "10:00",
	}, nil, time.UTC)
	assert.Equal(t, []Field{FieldRange, FieldWeekday}, fields(result))
}

func TestValidateReservation_Overlap(t *testing.T) {
	existing := []domain.Booking{
		existingBooking(1, "2025-01-06T10:00:00Z", "2025-01-06T11:00:00Z"),
	}

	// Overlapping candidate.
	result := ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "10:30", EndTime: "11:30",
	}, existing, time.UTC)
	assert.False(t, result.Valid)
	assert.Equal(t, []Field{FieldOverlap}, fields(result))

	// Back-to-back is not an overlap (half-open intervals).
	result = ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "11:00", EndTime: "12:00",
	}, existing, time.UTC)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	result = ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "09:00", EndTime: "10:00",
	}, existing, time.UTC)
	assert.True(t, result.Valid)

	// Editing a booking never conflicts with itself.
	result = ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "10:30", EndTime: "11:30",
		BookingID: ptr.Ptr(int64(1)),
	}, existing, time.UTC)
	assert.True(t, result.Valid)
}

func TestValidateReservation_SingleOverlapError(t *testing.T) {
	existing := []domain.Booking{
		existingBooking(1, "2025-01-06T09:00:00Z", "2025-01-06T10:00:00Z"),
		existingBooking(2, "2025-01-06T10:00:00Z", "2025-01-06T11:00:00Z"),
		existingBooking(3, "2025-01-06T10:30:00Z", "2025-01-06T11:30:00Z"),
	}

	// Conflicts with both 2 and 3, but only one overlap error is reported.
	result := ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "10:15", EndTime: "11:15",
	}, existing, time.UTC)
	assert.False(t, result.Valid)
	assert.Equal(t, []Field{FieldOverlap}, fields(result))
}

func TestValidateReservation_Idempotent(t *testing.T) {
	existing := []domain.Booking{
		existingBooking(1, "2025-01-06T10:00:00Z", "2025-01-06T11:00:00Z"),
	}
	input := ReservationInput{Date: "2025-01-06", StartTime: "10:30", EndTime: "11:30"}

	first := ValidateReservation(input, existing, time.UTC)
	second := ValidateReservation(input, existing, time.UTC)
	assert.Equal(t, first, second)
}

func TestValidateReservation_EndToEndScenario(t *testing.T) {
	// Three bookings on 2025-01-06: 09:00-10:00 (dept A), 10:00-11:00
	// (dept B), and the candidate 10:30-11:30 (dept A, id 3) being edited.
	existing := []domain.Booking{
		existingBooking(1, "2025-01-06T09:00:00Z", "2025-01-06T10:00:00Z"),
		existingBooking(2, "2025-01-06T10:00:00Z", "2025-01-06T11:00:00Z"),
	}

	result := ValidateReservation(ReservationInput{
		Date: "2025-01-06", StartTime: "10:30", EndTime: "11:30",
		BookingID: ptr.Ptr(int64(3)),
	}, existing, time.UTC)

	assert.False(t, result.Valid)
	assert.Equal(t, []Field{FieldOverlap}, fields(result))
}
