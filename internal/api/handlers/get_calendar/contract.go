package get_calendar

import (
	"context"

	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/service/calendarview"
)

type CalendarService interface {
	GetCalendar(ctx context.Context, userID *int64, referenceKey string, view calendar.View) (*calendarview.CalendarData, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
