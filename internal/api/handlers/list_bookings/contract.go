package list_bookings

import (
	"context"

	"github.com/tktkaws/booking-02/internal/calendar"
)

type CalendarService interface {
	ListParsed(ctx context.Context, userID *int64, fromKey, toKey string) ([]calendar.ParsedBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
