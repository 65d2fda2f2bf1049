// Package settings persists the organization-wide default company color and
// the per-user color customizations (company override plus per-department tag
// colors, stored as one JSONB document per profile).
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/tktkaws/booking-02/pkg/dbmetrics"
	"github.com/tktkaws/booking-02/pkg/psqlbuilder"
)

// UserColorSettings is a user's stored color customization.
type UserColorSettings struct {
	CompanyOverride *string
	TagColors       map[int64]string
}

// colorSettingsDoc is the JSONB document layout of profiles.color_settings.
type colorSettingsDoc struct {
	CompanyColor *string           `json:"company_color,omitempty"`
	TagColors    map[string]string `json:"tag_colors,omitempty"`
}

// Repository persists organization and profile color settings.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a settings repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCompanyColor returns the organization default company color, or nil when
// it has never been set.
func (r *Repository) GetCompanyColor(ctx context.Context) (*string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("company_color").
		From("org_settings").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompanyColor - build select query: %v", ErrBuildQuery, err)
	}

	var color sql.NullString
	err = executor.QueryRowContext(ctx, query, args...).Scan(&color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompanyColor - scan row: %v", ErrScanRow, err)
	}

	if !color.Valid {
		return nil, nil
	}
	return &color.String, nil
}

// UpdateCompanyColor sets (or clears, with nil) the organization default
// company color. The settings table holds a single row.
func (r *Repository) UpdateCompanyColor(ctx context.Context, color *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("org_settings").
		Columns("id", "company_color").
		Values(1, color).
		Suffix("ON CONFLICT (id) DO UPDATE SET company_color = EXCLUDED.company_color, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCompanyColor - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateCompanyColor - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetUserColorSettings returns a user's color customization. A user without a
// profile row simply has no overrides.
func (r *Repository) GetUserColorSettings(ctx context.Context, userID int64) (*UserColorSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("color_settings").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserColorSettings - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return &UserColorSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserColorSettings - scan row: %v", ErrScanRow, err)
	}

	settings := &UserColorSettings{}
	if len(raw) == 0 {
		return settings, nil
	}

	var doc colorSettingsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		// A corrupted document means no overrides, not a failure: color
		// resolution falls through to the defaults.
		return settings, nil
	}

	settings.CompanyOverride = doc.CompanyColor
	if len(doc.TagColors) > 0 {
		settings.TagColors = make(map[int64]string, len(doc.TagColors))
		for key, color := range doc.TagColors {
			departmentID, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				continue
			}
			settings.TagColors[departmentID] = color
		}
	}

	return settings, nil
}

// UpdateUserColorSettings replaces a user's color customization document.
func (r *Repository) UpdateUserColorSettings(ctx context.Context, userID int64, settings UserColorSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	doc := colorSettingsDoc{CompanyColor: settings.CompanyOverride}
	if len(settings.TagColors) > 0 {
		doc.TagColors = make(map[string]string, len(settings.TagColors))
		for departmentID, color := range settings.TagColors {
			doc.TagColors[strconv.FormatInt(departmentID, 10)] = color
		}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: UpdateUserColorSettings: %v", ErrEncodeSettings, err)
	}

	query, args, err := psqlbuilder.Insert("profiles").
		Columns("user_id", "color_settings").
		Values(userID, raw).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET color_settings = EXCLUDED.color_settings, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateUserColorSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateUserColorSettings - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
