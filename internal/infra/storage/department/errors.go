package department

import "errors"

var (
	// ErrDepartmentNotFound is returned when the department does not exist.
	ErrDepartmentNotFound = errors.New("department.repository: department not found")

	// ErrDepartmentInUse is returned when deletion is blocked by existing
	// bookings referencing the department.
	ErrDepartmentInUse = errors.New("department.repository: department has bookings")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("department.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("department.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("department.repository: failed to scan row")
)
