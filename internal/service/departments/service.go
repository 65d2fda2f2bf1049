// Package departments manages the organizational units bookings are tagged
// with. Reads are open; writes require an administrator.
package departments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/domain"
	departmentRepo "github.com/tktkaws/booking-02/internal/infra/storage/department"
	directoryClient "github.com/tktkaws/booking-02/internal/integrations/directory"
)

const maxNameLength = 60

// Service manages departments.
type Service struct {
	departmentRepo DepartmentRepository
	directory      DirectoryClient
	logger         Logger
}

// NewService creates a departments service.
func NewService(departmentRepo DepartmentRepository, directory DirectoryClient, logger Logger) *Service {
	return &Service{
		departmentRepo: departmentRepo,
		directory:      directory,
		logger:         logger,
	}
}

// List returns all departments sorted by name.
func (s *Service) List(ctx context.Context) ([]*domain.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return departments, nil
}

// GetByID fetches one department.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("GetByID: repository error for department=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return d, nil
}

// Create adds a department. Admin only.
func (s *Service) Create(ctx context.Context, userID int64, name string, defaultColor *string) (*domain.Department, error) {
	if err := s.checkAdmin(ctx, userID); err != nil {
		return nil, err
	}

	d := &domain.Department{}
	if err := s.applyInput(d, name, defaultColor); err != nil {
		s.logger.Warn("Create: invalid department data from user=%d: %v", userID, err)
		return nil, err
	}

	created, err := s.departmentRepo.Create(ctx, d)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: department %d %q created by user=%d", created.ID, created.Name, userID)
	return created, nil
}

// Update rewrites a department's name and default color. Admin only.
func (s *Service) Update(ctx context.Context, userID, id int64, name string, defaultColor *string) (*domain.Department, error) {
	if err := s.checkAdmin(ctx, userID); err != nil {
		return nil, err
	}

	d := &domain.Department{ID: id}
	if err := s.applyInput(d, name, defaultColor); err != nil {
		s.logger.Warn("Update: invalid department data from user=%d: %v", userID, err)
		return nil, err
	}

	if err := s.departmentRepo.Update(ctx, d); err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("Update: repository error for department=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: reload failed for department=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload department: %v", ErrInternal, err)
	}

	s.logger.Info("Update: department %d updated by user=%d", id, userID)
	return updated, nil
}

// Delete removes a department. Admin only; departments still referenced by
// bookings stay.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.checkAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, departmentRepo.ErrDepartmentNotFound):
			return ErrDepartmentNotFound
		case errors.Is(err, departmentRepo.ErrDepartmentInUse):
			return ErrDepartmentInUse
		default:
			s.logger.Error("Delete: repository error for department=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: department %d deleted by user=%d", id, userID)
	return nil
}

func (s *Service) applyInput(d *domain.Department, name string, defaultColor *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, maxNameLength)
	}
	d.Name = name

	if defaultColor != nil {
		c, ok := calendar.NormalizeColor(*defaultColor)
		if !ok {
			return fmt.Errorf("%w: default color must be a hex color", ErrInvalidInput)
		}
		d.DefaultColor = &c
	}

	return nil
}

func (s *Service) checkAdmin(ctx context.Context, userID int64) error {
	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkAdmin: directory error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdmin - directory error: %v", ErrInternal, err)
	}
	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
