// Package calendarview is the layout engine's orchestration layer: it turns
// a (reference date, view) pair into the fetched, parsed and date-bucketed
// booking set the month and week grids render from.
package calendarview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tktkaws/booking-02/internal/calendar"
)

// ErrInvalidInput is returned on malformed reference dates or views.
var ErrInvalidInput = errors.New("invalid input data")

// CalendarData is one computed calendar window. Days is always usable, even
// when an error is returned alongside it: a failed fetch degrades to an empty
// calendar instead of a broken one.
type CalendarData struct {
	View       calendar.View
	Reference  time.Time
	RangeStart time.Time
	RangeEnd   time.Time
	Days       calendar.BookingsByDate
}

// Service computes calendar windows.
type Service struct {
	bookingRepo BookingRepository
	colors      ColorProvider
	location    *time.Location
	logger      Logger
}

// NewService creates a calendar view service.
func NewService(bookingRepo BookingRepository, colors ColorProvider, location *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		colors:      colors,
		location:    location,
		logger:      logger,
	}
}

// GetCalendar computes the visible range for the view anchored at the
// reference date key, fetches the intersecting bookings, enriches them and
// buckets them by day. userID selects whose color overrides apply; nil gets
// organization defaults.
//
// On a fetch failure the returned CalendarData carries an empty Days map and
// the error is returned for the caller's own error channel — views degrade to
// "no bookings shown" rather than crashing.
func (s *Service) GetCalendar(ctx context.Context, userID *int64, referenceKey string, view calendar.View) (*CalendarData, error) {
	reference, err := calendar.ParseDateKey(referenceKey, s.location)
	if err != nil {
		s.logger.Warn("GetCalendar: invalid reference date %q", referenceKey)
		return nil, fmt.Errorf("%w: invalid reference date", ErrInvalidInput)
	}

	from, to := calendar.ComputeRange(reference, view)
	data := &CalendarData{
		View:       view,
		Reference:  reference,
		RangeStart: from,
		RangeEnd:   to,
		Days:       calendar.BookingsByDate{},
	}

	rows, err := s.bookingRepo.ListInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("GetCalendar: fetch failed for %s %s: %v", view, referenceKey, err)
		return data, fmt.Errorf("calendarview: fetch bookings: %w", err)
	}

	overrides := s.colors.EffectiveOverrides(ctx, userID)

	bookings := make([]calendar.ParsedBooking, len(rows))
	for i, row := range rows {
		bookings[i] = calendar.ParseBooking(*row, overrides, s.location)
	}
	data.Days = calendar.GroupByDate(bookings)

	s.logger.Info("GetCalendar: %s view at %s: %d bookings across %d days",
		view, referenceKey, len(bookings), len(data.Days))
	return data, nil
}

// ListParsed returns the enriched bookings of the inclusive date-key range,
// sorted by start time, for the flat list view. An empty toKey defaults to one
// year past the start.
func (s *Service) ListParsed(ctx context.Context, userID *int64, fromKey, toKey string) ([]calendar.ParsedBooking, error) {
	from, err := calendar.ParseDateKey(fromKey, s.location)
	if err != nil {
		s.logger.Warn("ListParsed: invalid from key %q", fromKey)
		return nil, fmt.Errorf("%w: invalid from date", ErrInvalidInput)
	}

	var to time.Time
	if toKey == "" {
		to = from.AddDate(1, 0, 0)
	} else {
		day, err := calendar.ParseDateKey(toKey, s.location)
		if err != nil {
			s.logger.Warn("ListParsed: invalid to key %q", toKey)
			return nil, fmt.Errorf("%w: invalid to date", ErrInvalidInput)
		}
		to = day.AddDate(0, 0, 1)
	}

	rows, err := s.bookingRepo.ListInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListParsed: fetch failed for %s..%s: %v", fromKey, toKey, err)
		return nil, fmt.Errorf("calendarview: fetch bookings: %w", err)
	}

	overrides := s.colors.EffectiveOverrides(ctx, userID)

	parsed := make([]calendar.ParsedBooking, len(rows))
	for i, row := range rows {
		parsed[i] = calendar.ParseBooking(*row, overrides, s.location)
	}
	return parsed, nil
}
