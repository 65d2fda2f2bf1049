package domain

import "time"

// Booking represents a single reserved time interval tied to a department or
// marked company-wide. Department display metadata is joined in by the
// repository and is not owned by the booking row.
type Booking struct {
	ID            int64
	Title         string
	Description   *string
	StartAt       time.Time
	EndAt         time.Time
	IsCompanywide bool
	DepartmentID  int64
	OwnerUserID   int64

	// Joined from departments.
	DepartmentName         string
	DepartmentDefaultColor *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the booking belongs to the given user.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.OwnerUserID == userID
}

// Department represents an organizational unit bookings are tagged with.
type Department struct {
	ID           int64
	Name         string
	DefaultColor *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
