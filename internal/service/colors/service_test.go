package colors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/infra/storage/settings"
	"github.com/tktkaws/booking-02/internal/integrations/directory"
	"github.com/tktkaws/booking-02/pkg/ptr"
)

type fakeSettingsRepo struct {
	companyColor *string
	companyErr   error

	userSettings map[int64]*settings.UserColorSettings
	userErr      error

	updatedCompany *string
	updatedUser    map[int64]settings.UserColorSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		userSettings: make(map[int64]*settings.UserColorSettings),
		updatedUser:  make(map[int64]settings.UserColorSettings),
	}
}

func (r *fakeSettingsRepo) GetCompanyColor(context.Context) (*string, error) {
	return r.companyColor, r.companyErr
}

func (r *fakeSettingsRepo) UpdateCompanyColor(_ context.Context, color *string) error {
	r.updatedCompany = color
	r.companyColor = color
	return nil
}

func (r *fakeSettingsRepo) GetUserColorSettings(_ context.Context, userID int64) (*settings.UserColorSettings, error) {
	if r.userErr != nil {
		return nil, r.userErr
	}
	if s, ok := r.userSettings[userID]; ok {
		return s, nil
	}
	return &settings.UserColorSettings{}, nil
}

func (r *fakeSettingsRepo) UpdateUserColorSettings(_ context.Context, userID int64, s settings.UserColorSettings) error {
	r.updatedUser[userID] = s
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

func newTestService(repo *fakeSettingsRepo, dir *fakeDirectory) *Service {
	if dir == nil {
		dir = &fakeDirectory{users: map[int64]*directory.User{}}
	}
	return NewService(repo, dir, nopLogger{})
}

func TestEffectiveOverrides_AnonymousGetsDefaultsOnly(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.companyColor = ptr.Ptr("#ABC")
	repo.userSettings[5] = &settings.UserColorSettings{CompanyOverride: ptr.Ptr("#123456")}
	svc := newTestService(repo, nil)

	overrides := svc.EffectiveOverrides(context.Background(), nil)

	require.NotNil(t, overrides.CompanyDefault)
	assert.Equal(t, "#aabbcc", *overrides.CompanyDefault, "stored colors are normalized on read")
	assert.Nil(t, overrides.CompanyOverride)
	assert.Empty(t, overrides.TagColors)
}

func TestEffectiveOverrides_UserChain(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.companyColor = ptr.Ptr("#e5e7eb")
	repo.userSettings[5] = &settings.UserColorSettings{
		CompanyOverride: ptr.Ptr("#123456"),
		TagColors: map[int64]string{
			1: "#FF0000",
			2: "not-a-color",
		},
	}
	svc := newTestService(repo, nil)

	overrides := svc.EffectiveOverrides(context.Background(), ptr.Ptr(int64(5)))

	require.NotNil(t, overrides.CompanyOverride)
	assert.Equal(t, "#123456", *overrides.CompanyOverride)
	assert.Equal(t, "#ff0000", overrides.TagColors[1])
	_, kept := overrides.TagColors[2]
	assert.False(t, kept, "malformed stored colors fall through silently")
}

func TestEffectiveOverrides_SettingsFailureDegradesToDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.companyColor = ptr.Ptr("#336699")
	repo.userErr = errors.New("connection refused")
	svc := newTestService(repo, nil)

	overrides := svc.EffectiveOverrides(context.Background(), ptr.Ptr(int64(5)))

	require.NotNil(t, overrides.CompanyDefault)
	assert.Equal(t, "#336699", *overrides.CompanyDefault)
	assert.Nil(t, overrides.CompanyOverride)
}

func TestUpdateCompanyColor_AdminOnly(t *testing.T) {
	repo := newFakeSettingsRepo()
	dir := &fakeDirectory{users: map[int64]*directory.User{
		1: {ID: 1, Role: domain.RoleAdmin},
		2: {ID: 2, Role: domain.RoleMember},
	}}
	svc := newTestService(repo, dir)

	err := svc.UpdateCompanyColor(context.Background(), 2, ptr.Ptr("#123456"))
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.UpdateCompanyColor(context.Background(), 1, ptr.Ptr("#ABC"))
	require.NoError(t, err)
	require.NotNil(t, repo.updatedCompany)
	assert.Equal(t, "#aabbcc", *repo.updatedCompany, "colors are normalized before storage")
}

func TestUpdateCompanyColor_NilClears(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.companyColor = ptr.Ptr("#123456")
	dir := &fakeDirectory{users: map[int64]*directory.User{1: {ID: 1, Role: domain.RoleAdmin}}}
	svc := newTestService(repo, dir)

	err := svc.UpdateCompanyColor(context.Background(), 1, nil)

	require.NoError(t, err)
	assert.Nil(t, repo.companyColor)
}

func TestUpdateCompanyColor_RejectsMalformed(t *testing.T) {
	repo := newFakeSettingsRepo()
	dir := &fakeDirectory{users: map[int64]*directory.User{1: {ID: 1, Role: domain.RoleAdmin}}}
	svc := newTestService(repo, dir)

	err := svc.UpdateCompanyColor(context.Background(), 1, ptr.Ptr("red"))

	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Nil(t, repo.updatedCompany)
}

func TestUpdateUserColors_RejectsMalformedTagColor(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := newTestService(repo, nil)

	err := svc.UpdateUserColors(context.Background(), 5, settings.UserColorSettings{
		TagColors: map[int64]string{1: "#12345"},
	})

	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Empty(t, repo.updatedUser)
}

func TestUpdateUserColors_NormalizesBeforeStorage(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := newTestService(repo, nil)

	err := svc.UpdateUserColors(context.Background(), 5, settings.UserColorSettings{
		CompanyOverride: ptr.Ptr("#FFF"),
		TagColors:       map[int64]string{1: "#AABBCC"},
	})

	require.NoError(t, err)
	stored := repo.updatedUser[5]
	require.NotNil(t, stored.CompanyOverride)
	assert.Equal(t, "#ffffff", *stored.CompanyOverride)
	assert.Equal(t, "#aabbcc", stored.TagColors[1])
}
