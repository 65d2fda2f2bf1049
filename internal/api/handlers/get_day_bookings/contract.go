package get_day_bookings

import (
	"context"

	"github.com/tktkaws/booking-02/internal/domain"
)

type BookingService interface {
	ListForDay(ctx context.Context, dateKey string, excludeID *int64) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
