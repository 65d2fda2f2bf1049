package departments

import (
	"context"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/integrations/directory"
)

// DepartmentRepository is the persistence surface the service needs.
type DepartmentRepository interface {
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, id int64) error
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
