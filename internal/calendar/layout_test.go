package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/pkg/ptr"
)

func TestParseView(t *testing.T) {
	for input, want := range map[string]View{
		"":      ViewMonth,
		"month": ViewMonth,
		"week":  ViewWeek,
		"list":  ViewList,
	} {
		got, err := ParseView(input)
		require.NoError(t, err, "input=%q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseView("day")
	assert.Error(t, err)
}

func TestParseBooking(t *testing.T) {
	booking := domain.Booking{
		ID:                     7,
		Title:                  "Sprint planning",
		StartAt:                time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC),
		EndAt:                  time.Date(2025, time.January, 6, 11, 30, 0, 0, time.UTC),
		DepartmentID:           1,
		DepartmentName:         "Engineering",
		DepartmentDefaultColor: ptr.Ptr("#1d4ed8"),
	}

	parsed := ParseBooking(booking, domain.ColorOverrides{}, time.UTC)

	assert.Equal(t, "2025-01-06", parsed.StartDateKey)
	assert.Equal(t, "2025-01-06", parsed.EndDateKey)
	assert.Equal(t, 600, parsed.StartMinutes)
	assert.Equal(t, 690, parsed.EndMinutes)
	assert.Equal(t, "#1d4ed8", parsed.Color)
	assert.Equal(t, TextColorLight, parsed.TextColor)
}

func TestParseBooking_TimezoneShift(t *testing.T) {
	// 2025-01-06T00:30Z is still 2025-01-05 in a UTC-9 zone: date key and
	// minute offsets must follow the calendar's timezone, not the stored one.
	loc := time.FixedZone("UTC-9", -9*3600)
	booking := domain.Booking{
		StartAt: time.Date(2025, time.January, 6, 0, 30, 0, 0, time.UTC),
		EndAt:   time.Date(2025, time.January, 6, 1, 30, 0, 0, time.UTC),
	}

	parsed := ParseBooking(booking, domain.ColorOverrides{}, loc)

	assert.Equal(t, "2025-01-05", parsed.StartDateKey)
	assert.Equal(t, 15*60+30, parsed.StartMinutes)
	assert.Equal(t, 16*60+30, parsed.EndMinutes)
}

func TestGroupByDate(t *testing.T) {
	mk := func(id int64, day string, startMin int) ParsedBooking {
		return ParsedBooking{
			Booking:      domain.Booking{ID: id},
			StartDateKey: day,
			StartMinutes: startMin,
		}
	}

	// Sorted by day and start minute, as the range query delivers them.
	input := []ParsedBooking{
		mk(1, "2025-01-06", 540),
		mk(2, "2025-01-06", 600),
		mk(3, "2025-01-07", 540),
		mk(4, "2025-01-07", 555),
		mk(5, "2025-01-09", 600),
	}

	grouped := GroupByDate(input)

	require.Len(t, grouped, 3)
	assert.Equal(t, []int64{1, 2}, ids(grouped["2025-01-06"]))
	assert.Equal(t, []int64{3, 4}, ids(grouped["2025-01-07"]))
	assert.Equal(t, []int64{5}, ids(grouped["2025-01-09"]))

	assert.Empty(t, GroupByDate(nil))
}

func ids(bookings []ParsedBooking) []int64 {
	out := make([]int64, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestComputeRange_Week(t *testing.T) {
	// Reference: Wednesday 2025-01-08.
	from, to := ComputeRange(date(2025, time.January, 8), ViewWeek)

	assert.Equal(t, date(2025, time.January, 6), from)
	assert.Equal(t, time.Date(2025, time.January, 10, 23, 59, 59, 999000000, time.UTC), to)
}

func TestComputeRange_Month(t *testing.T) {
	// January 2025 starts on a Wednesday and ends on a Friday: the grid is
	// padded back to Monday 2024-12-30 and ends on Friday 2025-01-31.
	from, to := ComputeRange(date(2025, time.January, 15), ViewMonth)

	assert.Equal(t, date(2024, time.December, 30), from)
	assert.Equal(t, time.Date(2025, time.January, 31, 23, 59, 59, 999000000, time.UTC), to)

	// June 2025 ends on Monday the 30th; the final week's working days run
	// through Friday July 4th.
	from, to = ComputeRange(date(2025, time.June, 10), ViewMonth)
	assert.Equal(t, date(2025, time.May, 26), from)
	assert.Equal(t, time.Date(2025, time.July, 4, 23, 59, 59, 999000000, time.UTC), to)
}
