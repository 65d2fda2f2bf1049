package bookings

import (
	"context"
	"time"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/events"
	"github.com/tktkaws/booking-02/internal/integrations/directory"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	ListInRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// DirectoryClient resolves user records for access checks.
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
}

// EventPublisher broadcasts booking mutations so open views refetch.
type EventPublisher interface {
	Publish(ev events.Event)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
