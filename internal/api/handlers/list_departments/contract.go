package list_departments

import (
	"context"

	"github.com/tktkaws/booking-02/internal/domain"
)

type DepartmentService interface {
	List(ctx context.Context) ([]*domain.Department, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
