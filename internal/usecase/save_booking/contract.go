package save_booking

import (
	"context"
	"time"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/events"
	"github.com/tktkaws/booking-02/internal/integrations/directory"
)

// BookingRepository is the persistence surface the use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// DirectoryClient resolves user records for access checks and defaults.
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher broadcasts booking mutations so open views refetch.
type EventPublisher interface {
	Publish(ev events.Event)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
