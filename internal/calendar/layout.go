package calendar

import (
	"fmt"
	"time"

	"github.com/tktkaws/booking-02/internal/domain"
)

// View selects how the calendar is rendered and which instant range is
// fetched for it.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewList  View = "list"
)

// ParseView parses a view query parameter. An empty value defaults to the
// month view.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewMonth, nil
	case ViewMonth, ViewWeek, ViewList:
		return View(s), nil
	default:
		return "", fmt.Errorf("calendar: unknown view %q", s)
	}
}

// ParsedBooking is a booking enriched with everything the grid views need:
// resolved colors, per-day bucketing keys and minute offsets into the day.
// Parsed bookings are ephemeral — rebuilt on every fetch, never stored.
type ParsedBooking struct {
	domain.Booking

	Color        string
	TextColor    string
	StartDate    time.Time
	EndDate      time.Time
	StartDateKey string
	EndDateKey   string
	StartMinutes int
	EndMinutes   int
}

// BookingsByDate maps a YYYY-MM-DD date key to that day's bookings, ordered
// by start time.
type BookingsByDate map[string][]ParsedBooking

// ParseBooking enriches one booking row. Timestamps are interpreted in loc;
// minute offsets are minutes since that day's midnight.
func ParseBooking(b domain.Booking, overrides domain.ColorOverrides, loc *time.Location) ParsedBooking {
	start := b.StartAt.In(loc)
	end := b.EndAt.In(loc)
	color := ResolveTagColor(b, overrides)

	return ParsedBooking{
		Booking:      b,
		Color:        color,
		TextColor:    ChooseTextColor(color),
		StartDate:    start,
		EndDate:      end,
		StartDateKey: DateKey(start),
		EndDateKey:   DateKey(end),
		StartMinutes: start.Hour()*60 + start.Minute(),
		EndMinutes:   end.Hour()*60 + end.Minute(),
	}
}

// ParseBookings enriches a list of booking rows, preserving order.
func ParseBookings(bookings []domain.Booking, overrides domain.ColorOverrides, loc *time.Location) []ParsedBooking {
	parsed := make([]ParsedBooking, len(bookings))
	for i, b := range bookings {
		parsed[i] = ParseBooking(b, overrides, loc)
	}
	return parsed
}

// GroupByDate buckets bookings by their start date key in a single pass.
// Insertion order within each bucket follows the input: the caller must
// supply bookings already sorted by start time (the range query orders by
// start_at), GroupByDate performs no sort of its own.
func GroupByDate(bookings []ParsedBooking) BookingsByDate {
	grouped := make(BookingsByDate)
	for _, b := range bookings {
		grouped[b.StartDateKey] = append(grouped[b.StartDateKey], b)
	}
	return grouped
}

// ComputeRange returns the queryable instant range for a view anchored at
// ref. The month grid is padded to whole weeks, with each week clipped to its
// working days; both ranges end at the last instant of their final day so
// boundary-spanning bookings are still fetched.
func ComputeRange(ref time.Time, view View) (time.Time, time.Time) {
	var first, last time.Time
	if view == ViewMonth {
		first = StartOfWeek(StartOfMonth(ref))
		last = EndOfWorkWeek(EndOfMonth(ref))
	} else {
		first = StartOfWeek(ref)
		last = EndOfWorkWeek(ref)
	}

	y, m, d := last.Date()
	end := time.Date(y, m, d, 23, 59, 59, 999000000, last.Location())
	return first, end
}
