// Package calendar implements the reservation validation and calendar layout
// core: the fixed workday time grid, the reservation validator and the
// transformation of raw booking rows into the per-day layout consumed by
// month and week views. Everything in this package is pure computation; it
// performs no I/O and keeps no state.
package calendar

import (
	"fmt"
	"regexp"
	"time"

	"github.com/tktkaws/booking-02/internal/domain"
)

// The workday grid is fixed: 09:00-18:00 in 15-minute slots, Monday through
// Friday. Saturday and Sunday are never rendered and are excluded from week
// and month traversal.
const (
	SlotIntervalMinutes = 15
	DayStartMinutes     = 9 * 60
	DayEndMinutes       = 18 * 60
	WorkingDayCount     = 5
)

var (
	dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern   = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// StripTime returns t at midnight in its own location.
func StripTime(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by the given number of days, at midnight.
func AddDays(t time.Time, days int) time.Time {
	return StripTime(t.AddDate(0, 0, days))
}

// AddMonths returns t shifted by the given number of months, at midnight.
func AddMonths(t time.Time, months int) time.Time {
	return StripTime(t.AddDate(0, months, 0))
}

// StartOfMonth returns the first calendar day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last calendar day of t's month, unclipped to
// weekdays.
func EndOfMonth(t time.Time) time.Time {
	return AddDays(StartOfMonth(t).AddDate(0, 1, 0), -1)
}

// StartOfWeek returns the Monday of the week containing t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	stripped := StripTime(t)
	diff := (int(stripped.Weekday()) + 6) % 7
	return AddDays(stripped, -diff)
}

// EndOfWorkWeek returns the Friday of the week containing t. This is the last
// working day, not the calendar week end.
func EndOfWorkWeek(t time.Time) time.Time {
	stripped := StripTime(t)
	switch stripped.Weekday() {
	case time.Saturday:
		return AddDays(stripped, -1)
	case time.Sunday:
		return AddDays(stripped, -2)
	default:
		return AddDays(stripped, int(time.Friday)-int(stripped.Weekday()))
	}
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateKey formats t as a YYYY-MM-DD bucketing key.
func DateKey(t time.Time) string {
	return t.Format(domain.DateKeyFormat)
}

// ParseDateKey parses a YYYY-MM-DD key into midnight of that day in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if !dateKeyPattern.MatchString(key) {
		return time.Time{}, fmt.Errorf("calendar: invalid date key %q", key)
	}
	t, err := time.ParseInLocation(domain.DateKeyFormat, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar: invalid date key %q: %w", key, err)
	}
	return t, nil
}

// CombineDateTime builds an instant from a YYYY-MM-DD date and an HH:MM clock
// string, interpreted in loc. Both parts are format-checked before parsing.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if !dateKeyPattern.MatchString(date) {
		return time.Time{}, fmt.Errorf("calendar: invalid date %q", date)
	}
	if !clockPattern.MatchString(clock) {
		return time.Time{}, fmt.Errorf("calendar: invalid time %q", clock)
	}
	t, err := time.ParseInLocation(domain.StampFormat, date+"T"+clock+":00", loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar: invalid date-time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// FormatMinutes renders minutes since midnight as an HH:MM label.
func FormatMinutes(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// TimeSlots returns the HH:MM labels of the workday grid, inclusive of both
// endpoints (09:00 through 18:00).
func TimeSlots() []string {
	slots := make([]string, 0, (DayEndMinutes-DayStartMinutes)/SlotIntervalMinutes+1)
	for m := DayStartMinutes; m <= DayEndMinutes; m += SlotIntervalMinutes {
		slots = append(slots, FormatMinutes(m))
	}
	return slots
}

// SlotRange positions a booking inside a day's slot column: a 1-indexed grid
// row and the number of rows spanned.
type SlotRange struct {
	Start int `json:"start"`
	Span  int `json:"span"`
}

// CalculateSlotRange clips the booking's [startMinutes, endMinutes) interval
// to the visible [dayStartMin, dayEndMin) window and maps it onto the slot
// grid. The second return value is false when the clipped interval is empty,
// i.e. the booking lies entirely outside the window. A visible booking always
// spans at least one slot, even when shorter than one interval.
func CalculateSlotRange(startMinutes, endMinutes, dayStartMin, dayEndMin, slotMinutes int) (SlotRange, bool) {
	start := max(startMinutes, dayStartMin)
	end := min(endMinutes, dayEndMin)
	if end <= start {
		return SlotRange{}, false
	}

	startIndex := (start-dayStartMin)/slotMinutes + 1
	endIndex := ceilDiv(end-dayStartMin, slotMinutes) + 1

	return SlotRange{Start: startIndex, Span: max(endIndex-startIndex, 1)}, true
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
