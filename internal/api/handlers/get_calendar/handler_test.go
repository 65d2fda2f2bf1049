package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/service/calendarview"
)

type fakeCalendarService struct {
	gotUserID *int64
	gotKey    string
	gotView   calendar.View

	data *calendarview.CalendarData
	err  error
}

func (s *fakeCalendarService) GetCalendar(_ context.Context, userID *int64, referenceKey string, view calendar.View) (*calendarview.CalendarData, error) {
	s.gotUserID = userID
	s.gotKey = referenceKey
	s.gotView = view
	return s.data, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func calendarData() *calendarview.CalendarData {
	parsed := calendar.ParseBooking(domain.Booking{
		ID:             1,
		Title:          "Weekly sync",
		StartAt:        time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		EndAt:          time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC),
		DepartmentID:   3,
		DepartmentName: "Engineering",
	}, domain.ColorOverrides{}, time.UTC)

	return &calendarview.CalendarData{
		View:       calendar.ViewWeek,
		Reference:  time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		RangeStart: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2025, 1, 10, 23, 59, 59, 999000000, time.UTC),
		Days:       calendar.GroupByDate([]calendar.ParsedBooking{parsed}),
	}
}

func TestHandle_Success(t *testing.T) {
	service := &fakeCalendarService{data: calendarData()}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?view=week&date=2025-01-06", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, calendar.ViewWeek, service.gotView)
	assert.Equal(t, "2025-01-06", service.gotKey)
	assert.Nil(t, service.gotUserID, "no header means organization defaults")

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "week", resp.View)
	assert.Len(t, resp.TimeSlots, 37, "09:00 through 18:00 in 15-minute steps")
	require.Len(t, resp.Days["2025-01-06"], 1)

	booking := resp.Days["2025-01-06"][0]
	assert.Equal(t, "#e5e7eb", booking.Color, "no overrides resolves to the fallback color")
	assert.Equal(t, "10:00", booking.StartTime)
	require.NotNil(t, booking.Slot)
	assert.Equal(t, 5, booking.Slot.Start, "10:00 is the fifth slot of a 09:00 grid")
	assert.Equal(t, 2, booking.Slot.Span)
}

func TestHandle_UserHeaderForwarded(t *testing.T) {
	service := &fakeCalendarService{data: calendarData()}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=2025-01-06", nil)
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.gotUserID)
	assert.Equal(t, int64(7), *service.gotUserID)
	assert.Equal(t, calendar.ViewMonth, service.gotView, "missing view defaults to month")
}

func TestHandle_InvalidView(t *testing.T) {
	handler := NewHandler(&fakeCalendarService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?view=year", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	service := &fakeCalendarService{err: calendarview.ErrInvalidInput}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=06-01-2025", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_FetchFailureServesEmptyCalendar(t *testing.T) {
	data := calendarData()
	data.Days = calendar.BookingsByDate{}
	service := &fakeCalendarService{data: data, err: assert.AnError}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=2025-01-06", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Days)
}
