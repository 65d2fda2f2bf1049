package user_colors

import (
	"fmt"
	"strconv"

	"github.com/tktkaws/booking-02/internal/infra/storage/settings"
)

// UserColorsJSON is the wire shape of a user's color customization. Tag color
// keys are department IDs as decimal strings, as JSON object keys must be.
type UserColorsJSON struct {
	CompanyOverride *string           `json:"companyOverride"`
	TagColors       map[string]string `json:"tagColors,omitempty"`
}

// ToSettings converts the wire shape to the stored one.
func (j *UserColorsJSON) ToSettings() (settings.UserColorSettings, error) {
	out := settings.UserColorSettings{CompanyOverride: j.CompanyOverride}

	if len(j.TagColors) > 0 {
		out.TagColors = make(map[int64]string, len(j.TagColors))
		for key, color := range j.TagColors {
			departmentID, err := strconv.ParseInt(key, 10, 64)
			if err != nil || departmentID <= 0 {
				return settings.UserColorSettings{}, fmt.Errorf("invalid department key %q", key)
			}
			out.TagColors[departmentID] = color
		}
	}

	return out, nil
}

// FromSettings converts the stored shape to the wire one.
func FromSettings(s *settings.UserColorSettings) UserColorsJSON {
	out := UserColorsJSON{CompanyOverride: s.CompanyOverride}

	if len(s.TagColors) > 0 {
		out.TagColors = make(map[string]string, len(s.TagColors))
		for departmentID, color := range s.TagColors {
			out.TagColors[strconv.FormatInt(departmentID, 10)] = color
		}
	}

	return out
}
