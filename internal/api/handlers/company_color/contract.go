package company_color

import "context"

type ColorsService interface {
	GetCompanyColor(ctx context.Context) (*string, error)
	UpdateCompanyColor(ctx context.Context, userID int64, color *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
