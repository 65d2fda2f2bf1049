package save_booking

import (
	"time"

	"github.com/tktkaws/booking-02/internal/calendar"
	saveBooking "github.com/tktkaws/booking-02/internal/usecase/save_booking"
)

// SaveBookingRequest is the HTTP request model shared by create and edit.
type SaveBookingRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Date          string  `json:"date"`      // "2025-01-06"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "10:30"
	IsCompanywide bool    `json:"isCompanywide"`
	DepartmentID  *int64  `json:"departmentId,omitempty"`
}

// ToUseCaseRequest converts the HTTP request to the use case model. bookingID
// nil means create.
func (r *SaveBookingRequest) ToUseCaseRequest(userID int64, bookingID *int64) *saveBooking.Request {
	return &saveBooking.Request{
		BookingID:     bookingID,
		UserID:        userID,
		Title:         r.Title,
		Description:   r.Description,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		IsCompanywide: r.IsCompanywide,
		DepartmentID:  r.DepartmentID,
	}
}

// BookingResponse is the HTTP response model of a saved booking.
type BookingResponse struct {
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

// ValidationFailedResponse carries the field-tagged rule failures back to the
// reservation form.
type ValidationFailedResponse struct {
	Valid  bool                       `json:"valid"`
	Errors []calendar.ValidationError `json:"errors"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *saveBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                     resp.ID,
		Title:                  resp.Title,
		Description:            resp.Description,
		StartAt:                resp.StartAt.Format(time.RFC3339),
		EndAt:                  resp.EndAt.Format(time.RFC3339),
		IsCompanywide:          resp.IsCompanywide,
		DepartmentID:           resp.DepartmentID,
		OwnerUserID:            resp.OwnerUserID,
		DepartmentName:         resp.DepartmentName,
		DepartmentDefaultColor: resp.DepartmentDefaultColor,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              resp.UpdatedAt.Format(time.RFC3339),
	}
}
