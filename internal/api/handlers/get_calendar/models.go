package get_calendar

import (
	"time"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/service/calendarview"
)

// CalendarResponse is one computed calendar window. Days maps YYYY-MM-DD date
// keys to that day's bookings; TimeSlots carries the grid row labels so
// clients never hardcode working hours.
type CalendarResponse struct {
	View       string                                  `json:"view"`
	Reference  string                                  `json:"reference"`
	RangeStart string                                  `json:"rangeStart"`
	RangeEnd   string                                  `json:"rangeEnd"`
	TimeSlots  []string                                `json:"timeSlots"`
	Days       map[string][]handlers.ParsedBookingJSON `json:"days"`
}

// FromCalendarData converts the service result to the HTTP model.
func FromCalendarData(data *calendarview.CalendarData) *CalendarResponse {
	days := make(map[string][]handlers.ParsedBookingJSON, len(data.Days))
	for key, bookings := range data.Days {
		days[key] = handlers.NewParsedBookingsJSON(bookings)
	}

	return &CalendarResponse{
		View:       string(data.View),
		Reference:  calendar.DateKey(data.Reference),
		RangeStart: data.RangeStart.Format(time.RFC3339),
		RangeEnd:   data.RangeEnd.Format(time.RFC3339),
		TimeSlots:  calendar.TimeSlots(),
		Days:       days,
	}
}
