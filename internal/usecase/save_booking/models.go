package save_booking

import "time"

// Request describes a booking to create or edit. Date is YYYY-MM-DD and the
// times are HH:MM, exactly as the reservation form submits them. BookingID nil
// means create; set means edit that booking.
type Request struct {
	BookingID     *int64
	UserID        int64
	Title         string
	Description   *string
	Date          string
	StartTime     string
	EndTime       string
	IsCompanywide bool
	DepartmentID  *int64
}

// Response is the stored booking after a successful save.
type Response struct {
	ID            int64
	Title         string
	Description   *string
	StartAt       time.Time
	EndAt         time.Time
	IsCompanywide bool
	DepartmentID  int64
	OwnerUserID   int64

	DepartmentName         string
	DepartmentDefaultColor *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
