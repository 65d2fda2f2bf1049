package settings

import "errors"

var (
	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrEncodeSettings is returned when the color settings payload cannot be
	// serialized.
	ErrEncodeSettings = errors.New("settings.repository: failed to encode color settings")
)
