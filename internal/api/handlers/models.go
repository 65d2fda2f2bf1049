package handlers

import (
	"time"

	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/domain"
)

// BookingJSON is the wire shape of a stored booking.
type BookingJSON struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	StartAt       string  `json:"startAt"`
	EndAt         string  `json:"endAt"`
	IsCompanywide bool    `json:"isCompanywide"`
	DepartmentID  int64   `json:"departmentId"`
	OwnerUserID   int64   `json:"ownerUserId"`

	DepartmentName         string  `json:"departmentName"`
	DepartmentDefaultColor *string `json:"departmentDefaultColor,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NewBookingJSON converts a domain booking to its wire shape.
func NewBookingJSON(b *domain.Booking) BookingJSON {
	return BookingJSON{
		ID:                     b.ID,
		Title:                  b.Title,
		Description:            b.Description,
		StartAt:                b.StartAt.Format(time.RFC3339),
		EndAt:                  b.EndAt.Format(time.RFC3339),
		IsCompanywide:          b.IsCompanywide,
		DepartmentID:           b.DepartmentID,
		OwnerUserID:            b.OwnerUserID,
		DepartmentName:         b.DepartmentName,
		DepartmentDefaultColor: b.DepartmentDefaultColor,
		CreatedAt:              b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              b.UpdatedAt.Format(time.RFC3339),
	}
}

// DepartmentJSON is the wire shape of a department.
type DepartmentJSON struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	DefaultColor *string `json:"defaultColor,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// NewDepartmentJSON converts a domain department to its wire shape.
func NewDepartmentJSON(d *domain.Department) DepartmentJSON {
	return DepartmentJSON{
		ID:           d.ID,
		Name:         d.Name,
		DefaultColor: d.DefaultColor,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}
}

// ParsedBookingJSON is the wire shape of an enriched booking: the stored
// fields plus everything the grid views render from. Slot is null when the
// booking does not intersect the working-hours grid.
type ParsedBookingJSON struct {
	BookingJSON

	Color        string              `json:"color"`
	TextColor    string              `json:"textColor"`
	StartDateKey string              `json:"startDateKey"`
	EndDateKey   string              `json:"endDateKey"`
	StartTime    string              `json:"startTime"`
	EndTime      string              `json:"endTime"`
	StartMinutes int                 `json:"startMinutes"`
	EndMinutes   int                 `json:"endMinutes"`
	Slot         *calendar.SlotRange `json:"slot,omitempty"`
}

// NewParsedBookingJSON converts an enriched booking to its wire shape.
func NewParsedBookingJSON(b calendar.ParsedBooking) ParsedBookingJSON {
	out := ParsedBookingJSON{
		BookingJSON:  NewBookingJSON(&b.Booking),
		Color:        b.Color,
		TextColor:    b.TextColor,
		StartDateKey: b.StartDateKey,
		EndDateKey:   b.EndDateKey,
		StartTime:    calendar.FormatMinutes(b.StartMinutes),
		EndTime:      calendar.FormatMinutes(b.EndMinutes),
		StartMinutes: b.StartMinutes,
		EndMinutes:   b.EndMinutes,
	}

	if slot, ok := calendar.CalculateSlotRange(
		b.StartMinutes,
		b.EndMinutes,
		calendar.DayStartMinutes,
		calendar.DayEndMinutes,
		calendar.SlotIntervalMinutes,
	); ok {
		out.Slot = &slot
	}

	return out
}

// NewParsedBookingsJSON converts a list of enriched bookings, preserving order.
func NewParsedBookingsJSON(bookings []calendar.ParsedBooking) []ParsedBookingJSON {
	out := make([]ParsedBookingJSON, len(bookings))
	for i, b := range bookings {
		out[i] = NewParsedBookingJSON(b)
	}
	return out
}
