package user_colors

import (
	"context"

	"github.com/tktkaws/booking-02/internal/infra/storage/settings"
)

type ColorsService interface {
	GetUserColors(ctx context.Context, userID int64) (*settings.UserColorSettings, error)
	UpdateUserColors(ctx context.Context, userID int64, input settings.UserColorSettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
