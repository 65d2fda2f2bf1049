package departments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tktkaws/booking-02/internal/domain"
	departmentRepo "github.com/tktkaws/booking-02/internal/infra/storage/department"
	"github.com/tktkaws/booking-02/internal/integrations/directory"
	"github.com/tktkaws/booking-02/pkg/ptr"
)

type fakeDepartmentRepo struct {
	departments map[int64]*domain.Department
	nextID      int64

	deleteErr error
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[int64]*domain.Department), nextID: 1}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, d *domain.Department) (*domain.Department, error) {
	stored := *d
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.nextID++
	r.departments[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, departmentRepo.ErrDepartmentNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]*domain.Department, error) {
	out := make([]*domain.Department, 0, len(r.departments))
	for _, d := range r.departments {
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, d *domain.Department) error {
	if _, ok := r.departments[d.ID]; !ok {
		return departmentRepo.ErrDepartmentNotFound
	}
	stored := *d
	r.departments[d.ID] = &stored
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.departments[id]; !ok {
		return departmentRepo.ErrDepartmentNotFound
	}
	delete(r.departments, id)
	return nil
}

type fakeDirectory struct {
	users map[int64]*directory.User
}

func (d *fakeDirectory) GetUser(_ context.Context, userID int64) (*directory.User, error) {
	u, ok := d.users[userID]
	if !ok {
		return nil, directory.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeDepartmentRepo) *Service {
	dir := &fakeDirectory{users: map[int64]*directory.User{
		1: {ID: 1, Role: domain.RoleAdmin},
		2: {ID: 2, Role: domain.RoleMember},
	}}
	return NewService(repo, dir, nopLogger{})
}

func TestCreate_AdminOnly(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), 2, "Sales", nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	created, err := svc.Create(context.Background(), 1, "  Sales  ", ptr.Ptr("#ABC"))
	require.NoError(t, err)
	assert.Equal(t, "Sales", created.Name, "name is trimmed")
	require.NotNil(t, created.DefaultColor)
	assert.Equal(t, "#aabbcc", *created.DefaultColor, "default color is normalized")
}

func TestCreate_RejectsBadInput(t *testing.T) {
	svc := newTestService(newFakeDepartmentRepo())

	_, err := svc.Create(context.Background(), 1, "   ", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), 1, "Sales", ptr.Ptr("blue"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_ReturnsFreshRecord(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), 1, "Sales", nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), 1, created.ID, "Marketing", ptr.Ptr("#112233"))
	require.NoError(t, err)
	assert.Equal(t, "Marketing", updated.Name)
	require.NotNil(t, updated.DefaultColor)
	assert.Equal(t, "#112233", *updated.DefaultColor)
}

func TestUpdate_MissingDepartment(t *testing.T) {
	svc := newTestService(newFakeDepartmentRepo())

	_, err := svc.Update(context.Background(), 1, 99, "Ghost", nil)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestDelete_InUse(t *testing.T) {
	repo := newFakeDepartmentRepo()
	repo.deleteErr = departmentRepo.ErrDepartmentInUse
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrDepartmentInUse)
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), 1, "Sales", nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.departments)
}
