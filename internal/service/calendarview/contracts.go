package calendarview

import (
	"context"
	"time"

	"github.com/tktkaws/booking-02/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// ColorProvider assembles the per-user color override chain.
type ColorProvider interface {
	EffectiveOverrides(ctx context.Context, userID *int64) domain.ColorOverrides
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
