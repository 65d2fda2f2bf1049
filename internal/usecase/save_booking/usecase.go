// Package save_booking creates and edits bookings. Both paths share one
// pipeline: validate the reservation against the business rules, re-check the
// overlap inside a serializable transaction that locks the day's rows, then
// write. The read-check-write sequence is what makes double bookings
// impossible even under concurrent submits for the same slot.
package save_booking

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

// UseCase saves bookings.
type UseCase struct {
	bookingRepo BookingRepository
	directory   DirectoryClient
	txManager   TransactionManager
	publisher   EventPublisher
	location    *time.Location
	logger      Logger
}

// NewUseCase creates a save_booking use case.
func NewUseCase(
	bookingRepo BookingRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		directory:   directory,
		txManager:   txManager,
		publisher:   publisher,
		location:    location,
		logger:      logger,
	}
}

// Execute saves the booking described by req. The overlap rule runs twice:
// once up front against a snapshot for fast feedback, and again inside a
// serializable transaction against locked rows before the write.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveBooking: user=%d, date=%s, time=%s-%s, edit=%v",
		req.UserID, req.Date, req.StartTime, req.EndTime, req.BookingID != nil)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveBooking: validation failed: %v", err)
		return nil, err
	}

	input := calendar.ReservationInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BookingID: req.BookingID,
	}

	// Pure rules first: presence, format, ordering and weekday fail without
	// touching the database.
	if result := calendar.ValidateReservation(input, nil, uc.location); !result.Valid {
		uc.logger.Warn("SaveBooking: reservation rules rejected input: %v", result.Errors)
		return nil, &ValidationFailedError{Errors: result.Errors}
	}

	user, err := uc.directory.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrUserNotFound) {
			uc.logger.Warn("SaveBooking: user id=%d not found", req.UserID)
			return nil, ErrAccessDenied
		}
		uc.logger.Error("SaveBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	departmentID, err := resolveDepartment(req, user)
	if err != nil {
		uc.logger.Warn("SaveBooking: department resolution failed: %v", err)
		return nil, err
	}

	// Date passed the reservation rules, so it parses.
	day, err := calendar.ParseDateKey(req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: parse date: %v", ErrInternal, err)
	}
	startAt, _ := calendar.CombineDateTime(req.Date, req.StartTime, uc.location)
	endAt, _ := calendar.CombineDateTime(req.Date, req.EndTime, uc.location)

	var result *domain.Booking
	var kind events.Kind

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		target, err := uc.loadTarget(txCtx, req, user)
		if err != nil {
			return err
		}

		existing, err := uc.bookingRepo.ListForDay(txCtx, day, day.AddDate(0, 0, 1), req.BookingID)
		if err != nil {
			uc.logger.Error("SaveBooking: failed to list day bookings: %v", err)
			return fmt.Errorf("%w: failed to list day bookings: %v", ErrInternal, err)
		}

		sameDay := make([]domain.Booking, len(existing))
		for i, b := range existing {
			sameDay[i] = *b
		}
		if validation := calendar.ValidateReservation(input, sameDay, uc.location); !validation.Valid {
			uc.logger.Warn("SaveBooking: reservation conflicts with stored bookings: %v", validation.Errors)
			return &ValidationFailedError{Errors: validation.Errors}
		}

		if target == nil {
			booking := &domain.Booking{
				Title:         req.Title,
				Description:   req.Description,
				StartAt:       startAt,
				EndAt:         endAt,
				IsCompanywide: req.IsCompanywide,
				DepartmentID:  departmentID,
				OwnerUserID:   req.UserID,
			}
			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				uc.logger.Error("SaveBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
			result = created
			kind = events.KindCreated
		} else {
			target.Title = req.Title
			target.Description = req.Description
			target.StartAt = startAt
			target.EndAt = endAt
			target.IsCompanywide = req.IsCompanywide
			target.DepartmentID = departmentID
			if err := uc.bookingRepo.Update(txCtx, target); err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					return ErrBookingNotFound
				}
				uc.logger.Error("SaveBooking: failed to update booking id=%d: %v", target.ID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
			result = target
			kind = events.KindUpdated
		}

		// Reload inside the transaction to pick up timestamps and the joined
		// department metadata.
		reloaded, err := uc.bookingRepo.GetByID(txCtx, result.ID)
		if err != nil {
			uc.logger.Error("SaveBooking: failed to reload booking id=%d: %v", result.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}
		result = reloaded

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveBooking: booking id=%d saved by user=%d", result.ID, req.UserID)
	uc.publisher.Publish(events.Event{Kind: kind, BookingID: result.ID})

	return &Response{
		ID:                     result.ID,
		Title:                  result.Title,
		Description:            result.Description,
		StartAt:                result.StartAt,
		EndAt:                  result.EndAt,
		IsCompanywide:          result.IsCompanywide,
		DepartmentID:           result.DepartmentID,
		OwnerUserID:            result.OwnerUserID,
		DepartmentName:         result.DepartmentName,
		DepartmentDefaultColor: result.DepartmentDefaultColor,
		CreatedAt:              result.CreatedAt,
		UpdatedAt:              result.UpdatedAt,
	}, nil
}

// loadTarget fetches the booking being edited and checks write access. A nil
// target with nil error means this is a create.
func (uc *UseCase) loadTarget(ctx context.Context, req *Request, user *directoryClient.User) (*domain.Booking, error) {
	if req.BookingID == nil {
		return nil, nil
	}

	target, err := uc.bookingRepo.GetByID(ctx, *req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SaveBooking: booking id=%d not found", *req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("SaveBooking: failed to get booking id=%d: %v", *req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !target.IsOwnedBy(req.UserID) && !user.IsAdmin() {
		uc.logger.Warn("SaveBooking: user=%d may not edit booking id=%d", req.UserID, target.ID)
		return nil, ErrAccessDenied
	}

	return target, nil
}
