// Package colors assembles the per-user color resolution inputs: the
// organization default, the user's company override and the user's tag
// colors. It is the single place where stored settings become the
// ColorOverrides value fed into color resolution.
package colors

import (
	"context"
	"errors"
	"fmt"

	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/infra/storage/settings"
	directoryClient "github.com/tktkaws/booking-02/internal/integrations/directory"
)

// Service reads and writes color settings.
type Service struct {
	settingsRepo SettingsRepository
	directory    DirectoryClient
	logger       Logger
}

// NewService creates a colors service.
func NewService(settingsRepo SettingsRepository, directory DirectoryClient, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		directory:    directory,
		logger:       logger,
	}
}

// EffectiveOverrides builds the override chain for a user. userID may be nil
// for anonymous viewers, who see organization defaults only. Stored values
// are normalized on read; malformed entries are dropped so resolution falls
// through to the next tier. Settings fetch failures degrade to defaults
// rather than failing the calendar: colors are presentation, not data.
func (s *Service) EffectiveOverrides(ctx context.Context, userID *int64) domain.ColorOverrides {
	overrides := domain.ColorOverrides{}

	companyDefault, err := s.settingsRepo.GetCompanyColor(ctx)
	if err != nil {
		s.logger.Error("EffectiveOverrides: failed to load company color: %v", err)
	} else if c, ok := normalizePtr(companyDefault); ok {
		overrides.CompanyDefault = &c
	}

	if userID == nil {
		return overrides
	}

	userSettings, err := s.settingsRepo.GetUserColorSettings(ctx, *userID)
	if err != nil {
		s.logger.Error("EffectiveOverrides: failed to load settings for user=%d: %v", *userID, err)
		return overrides
	}

	if c, ok := normalizePtr(userSettings.CompanyOverride); ok {
		overrides.CompanyOverride = &c
	}
	if len(userSettings.TagColors) > 0 {
		overrides.TagColors = make(map[int64]string, len(userSettings.TagColors))
		for departmentID, color := range userSettings.TagColors {
			if c, ok := calendar.NormalizeColor(color); ok {
				overrides.TagColors[departmentID] = c
			} else {
				s.logger.Warn("EffectiveOverrides: dropping malformed tag color %q for user=%d department=%d",
					color, *userID, departmentID)
			}
		}
	}

	return overrides
}

// GetCompanyColor returns the normalized organization default, or nil.
func (s *Service) GetCompanyColor(ctx context.Context) (*string, error) {
	color, err := s.settingsRepo.GetCompanyColor(ctx)
	if err != nil {
		s.logger.Error("GetCompanyColor: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCompanyColor - repository error: %v", ErrInternal, err)
	}
	if c, ok := normalizePtr(color); ok {
		return &c, nil
	}
	return nil, nil
}

// UpdateCompanyColor sets the organization default. Admin only; nil clears it.
func (s *Service) UpdateCompanyColor(ctx context.Context, userID int64, color *string) error {
	if err := s.checkAdmin(ctx, userID); err != nil {
		return err
	}

	normalized, err := normalizeInput(color)
	if err != nil {
		s.logger.Warn("UpdateCompanyColor: invalid color from user=%d", userID)
		return err
	}

	if err := s.settingsRepo.UpdateCompanyColor(ctx, normalized); err != nil {
		s.logger.Error("UpdateCompanyColor: repository error: %v", err)
		return fmt.Errorf("%w: UpdateCompanyColor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCompanyColor: organization color updated by user=%d", userID)
	return nil
}

// GetUserColors returns a user's stored customization, normalized.
func (s *Service) GetUserColors(ctx context.Context, userID int64) (*settings.UserColorSettings, error) {
	stored, err := s.settingsRepo.GetUserColorSettings(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserColors: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserColors - repository error: %v", ErrInternal, err)
	}

	result := &settings.UserColorSettings{}
	if c, ok := normalizePtr(stored.CompanyOverride); ok {
		result.CompanyOverride = &c
	}
	if len(stored.TagColors) > 0 {
		result.TagColors = make(map[int64]string, len(stored.TagColors))
		for departmentID, color := range stored.TagColors {
			if c, ok := calendar.NormalizeColor(color); ok {
				result.TagColors[departmentID] = c
			}
		}
	}

	return result, nil
}

// UpdateUserColors replaces a user's customization. All supplied colors must
// be valid hex values; normalization happens before storage so reads stay
// cheap.
func (s *Service) UpdateUserColors(ctx context.Context, userID int64, input settings.UserColorSettings) error {
	normalized := settings.UserColorSettings{}

	companyOverride, err := normalizeInput(input.CompanyOverride)
	if err != nil {
		s.logger.Warn("UpdateUserColors: invalid company override from user=%d", userID)
		return err
	}
	normalized.CompanyOverride = companyOverride

	if len(input.TagColors) > 0 {
		normalized.TagColors = make(map[int64]string, len(input.TagColors))
		for departmentID, color := range input.TagColors {
			c, ok := calendar.NormalizeColor(color)
			if !ok {
				s.logger.Warn("UpdateUserColors: invalid tag color %q from user=%d", color, userID)
				return fmt.Errorf("%w: department %d", ErrInvalidColor, departmentID)
			}
			normalized.TagColors[departmentID] = c
		}
	}

	if err := s.settingsRepo.UpdateUserColorSettings(ctx, userID, normalized); err != nil {
		s.logger.Error("UpdateUserColors: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: UpdateUserColors - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateUserColors: settings updated for user=%d", userID)
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

func normalizePtr(color *string) (string, bool) {
	if color == nil {
		return "", false
	}
	return calendar.NormalizeColor(*color)
}

// normalizeInput normalizes a user-supplied color. nil passes through
// (clearing the setting); malformed values are rejected, unlike on the read
// path where they silently fall through.
func normalizeInput(color *string) (*string, error) {
	if color == nil {
		return nil, nil
	}
	c, ok := calendar.NormalizeColor(*color)
	if !ok {
		return nil, ErrInvalidColor
	}
	return &c, nil
}
