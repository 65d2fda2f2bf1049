package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/events"
	bookingRepo "github.com/tktkaws/booking-02/internal/infra/storage/booking"
	directoryClient "github.com/tktkaws/booking-02/internal/integrations/directory"
)

// Service reads and deletes bookings. Creation and editing go through the
// save_booking use case, which runs the reservation validator inside a
// transaction.
type Service struct {
	bookingRepo BookingRepository
	directory   DirectoryClient
	publisher   EventPublisher
	location    *time.Location
	logger      Logger
}

// NewService creates a bookings service.
func NewService(
	bookingRepo BookingRepository,
	directory DirectoryClient,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		directory:   directory,
		publisher:   publisher,
		location:    location,
		logger:      logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// ListForDay returns the bookings of one calendar day, sorted by start time.
// This is the overlap-candidate set the validator runs against; excludeID
// drops the booking being edited.
func (s *Service) ListForDay(ctx context.Context, dateKey string, excludeID *int64) ([]*domain.Booking, error) {
	day, err := calendar.ParseDateKey(dateKey, s.location)
	if err != nil {
		s.logger.Warn("ListForDay: invalid date key %q", dateKey)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListForDay(ctx, day, day.AddDate(0, 0, 1), excludeID)
	if err != nil {
		s.logger.Error("ListForDay: repository error for date=%s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDay: fetched %d bookings for date=%s", len(bookings), dateKey)
	return bookings, nil
}

// ListRange returns bookings intersecting the inclusive date-key range, for
// the list view. An empty toKey means "no upper bound" and defaults to one
// year past the start.
func (s *Service) ListRange(ctx context.Context, fromKey, toKey string) ([]*domain.Booking, error) {
	from, err := calendar.ParseDateKey(fromKey, s.location)
	if err != nil {
		s.logger.Warn("ListRange: invalid from key %q", fromKey)
		return nil, fmt.Errorf("%w: invalid from date", ErrInvalidInput)
	}

	var to time.Time
	if toKey == "" {
		to = from.AddDate(1, 0, 0)
	} else {
		day, err := calendar.ParseDateKey(toKey, s.location)
		if err != nil {
			s.logger.Warn("ListRange: invalid to key %q", toKey)
			return nil, fmt.Errorf("%w: invalid to date", ErrInvalidInput)
		}
		to = day.AddDate(0, 0, 1)
	}

	bookings, err := s.bookingRepo.ListInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListRange: repository error for %s..%s: %v", fromKey, toKey, err)
		return nil, fmt.Errorf("%w: ListRange - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Delete removes a booking. Only the owner or an admin may delete, mirroring
// the row-level rules of the backing store.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkWriteAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", userID, id)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted by user=%d", id, userID)
	s.publisher.Publish(events.Event{Kind: events.KindDeleted, BookingID: id})

	return nil
}

// checkWriteAccess allows the booking's owner and directory admins.
func (s *Service) checkWriteAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.IsOwnedBy(userID) {
		return nil
	}

	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkWriteAccess: directory error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkWriteAccess - directory error: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
