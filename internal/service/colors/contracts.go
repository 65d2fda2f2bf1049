package colors

import (
	"context"

	"github.com/tktkaws/booking-02/internal/integrations/directory"
	"github.com/tktkaws/booking-02/internal/infra/storage/settings"
)

// SettingsRepository is the persistence surface the service needs.
type SettingsRepository interface {
	GetCompanyColor(ctx context.Context) (*string, error)
	UpdateCompanyColor(ctx context.Context, color *string) error
	GetUserColorSettings(ctx context.Context, userID int64) (*settings.UserColorSettings, error)
	UpdateUserColorSettings(ctx context.Context, userID int64, s settings.UserColorSettings) error
}

// DirectoryClient resolves user records for admin checks.
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
