package save_department

import (
	"context"

	"github.com/tktkaws/booking-02/internal/domain"
)

type DepartmentService interface {
	Create(ctx context.Context, userID int64, name string, defaultColor *string) (*domain.Department, error)
	Update(ctx context.Context, userID, id int64, name string, defaultColor *string) (*domain.Department, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
