package save_booking

import (
	"fmt"
	"strings"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/integrations/directory"
)

// validateRequest checks the request fields outside the reservation rules.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len([]rune(req.Title)) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Description != nil && len([]rune(*req.Description)) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if req.DepartmentID != nil && *req.DepartmentID <= 0 {
		return fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}

	return nil
}

// resolveDepartment picks the booking's department: an explicit choice wins,
// otherwise the owner's own department from the directory.
func resolveDepartment(req *Request, user *directory.User) (int64, error) {
	if req.DepartmentID != nil {
		return *req.DepartmentID, nil
	}
	if user.DepartmentID <= 0 {
		return 0, fmt.Errorf("%w: user has no department and none was given", ErrInvalidInput)
	}
	return user.DepartmentID, nil
}
