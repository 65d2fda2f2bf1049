package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	monday := date(2025, time.January, 6)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", date(2025, time.January, 6)},
		{"wednesday", date(2025, time.January, 8)},
		{"friday", date(2025, time.January, 10)},
		{"saturday", date(2025, time.January, 11)},
		{"sunday", date(2025, time.January, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, StartOfWeek(tt.in))
		})
	}

	// Time of day is stripped.
	assert.Equal(t, monday, StartOfWeek(time.Date(2025, time.January, 8, 14, 30, 0, 0, time.UTC)))
}

func TestEndOfWorkWeek(t *testing.T) {
	friday := date(2025, time.January, 10)

	assert.Equal(t, friday, EndOfWorkWeek(date(2025, time.January, 6)))  // Monday
	assert.Equal(t, friday, EndOfWorkWeek(date(2025, time.January, 10))) // Friday itself
	assert.Equal(t, friday, EndOfWorkWeek(date(2025, time.January, 11))) // Saturday -> back one
	assert.Equal(t, friday, EndOfWorkWeek(date(2025, time.January, 12))) // Sunday -> back two
}

func TestMonthBoundaries(t *testing.T) {
	ref := date(2025, time.February, 14)
	assert.Equal(t, date(2025, time.February, 1), StartOfMonth(ref))
	assert.Equal(t, date(2025, time.February, 28), EndOfMonth(ref))

	leap := date(2024, time.February, 10)
	assert.Equal(t, date(2024, time.February, 29), EndOfMonth(leap))
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday(date(2025, time.January, 6)))   // Monday
	assert.True(t, IsWeekday(date(2025, time.January, 10)))  // Friday
	assert.False(t, IsWeekday(date(2025, time.January, 4)))  // Saturday
	assert.False(t, IsWeekday(date(2025, time.January, 5)))  // Sunday
}

func TestDateKeyRoundTrip(t *testing.T) {
	day := date(2025, time.January, 6)
	key := DateKey(day)
	assert.Equal(t, "2025-01-06", key)

	parsed, err := ParseDateKey(key, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day, parsed)

	_, err = ParseDateKey("2025-1-6", time.UTC)
	assert.Error(t, err)
	_, err = ParseDateKey("2025-13-06", time.UTC)
	assert.Error(t, err)
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2025-01-06", "10:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 6, 10, 30, 0, 0, time.UTC), got)

	for _, tt := range []struct{ date, clock string }{
		{"2025/01/06", "10:30"},
		{"2025-01-06", "1030"},
		{"2025-01-06", "9:30"},
		{"2025-13-06", "10:30"},
		{"2025-01-06", "25:30"},
	} {
		_, err := CombineDateTime(tt.date, tt.clock, time.UTC)
		assert.Error(t, err, "date=%q clock=%q", tt.date, tt.clock)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 37) // 09:00 .. 18:00 inclusive, 15-minute steps
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:15", slots[1])
	assert.Equal(t, "18:00", slots[len(slots)-1])
}

func TestCalculateSlotRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       SlotRange
		ok         bool
	}{
		{"one slot at day start", 540, 555, SlotRange{Start: 1, Span: 1}, true},
		{"one hour mid-day", 600, 660, SlotRange{Start: 5, Span: 4}, true},
		{"shorter than a slot still spans one", 600, 605, SlotRange{Start: 5, Span: 1}, true},
		{"unaligned times round outward", 550, 580, SlotRange{Start: 1, Span: 3}, true},
		{"clipped to day start", 480, 600, SlotRange{Start: 1, Span: 4}, true},
		{"clipped to day end", 1050, 1200, SlotRange{Start: 35, Span: 2}, true},
		{"entirely before the window", 400, 500, SlotRange{}, false},
		{"entirely after the window", 1100, 1200, SlotRange{}, false},
		{"inverted interval", 700, 600, SlotRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CalculateSlotRange(tt.start, tt.end, DayStartMinutes, DayEndMinutes, SlotIntervalMinutes)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
