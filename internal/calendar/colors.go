package calendar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tktkaws/booking-02/internal/domain"
)

// Display color constants.
const (
	// FallbackColor is used when no tier of the override chain yields a
	// usable color.
	FallbackColor = "#e5e7eb"

	// TextColorDark and TextColorLight are the two text colors bookings are
	// rendered with, picked for contrast against the badge color.
	TextColorDark  = "#111827"
	TextColorLight = "#ffffff"
)

var (
	hex6Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hex3Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
)

// NormalizeColor validates a hex color string and normalizes it to lowercase
// 6-digit form. 3-digit colors are expanded by doubling each digit. The
// second return value is false for anything that is not a valid hex color;
// malformed values are treated as absent, never as errors, so corrupted
// settings data cannot break rendering.
func NormalizeColor(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if hex6Pattern.MatchString(trimmed) {
		return strings.ToLower(trimmed), true
	}
	if hex3Pattern.MatchString(trimmed) {
		r, g, b := trimmed[1:2], trimmed[2:3], trimmed[3:4]
		return strings.ToLower("#" + r + r + g + g + b + b), true
	}
	return "", false
}

func normalizeColorPtr(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return NormalizeColor(*value)
}

// ResolveTagColor resolves the effective display color for a booking through
// the three-tier override chain. Company-wide bookings use the user's company
// override, then the organization default. Departmental bookings use the
// user's tag color for the department, then the department default. Every
// tier falls through on a missing or malformed value, ending at FallbackColor.
func ResolveTagColor(b domain.Booking, overrides domain.ColorOverrides) string {
	if b.IsCompanywide {
		if c, ok := normalizeColorPtr(overrides.CompanyOverride); ok {
			return c
		}
		if c, ok := normalizeColorPtr(overrides.CompanyDefault); ok {
			return c
		}
		return FallbackColor
	}

	if tag, ok := overrides.TagColor(b.DepartmentID); ok {
		if c, ok := NormalizeColor(tag); ok {
			return c
		}
	}
	if c, ok := normalizeColorPtr(b.DepartmentDefaultColor); ok {
		return c
	}
	return FallbackColor
}

// ChooseTextColor picks the text color with better contrast against the given
// background. Perceived luminance above 150 gets dark text, everything else
// white. Malformed input defaults to dark.
func ChooseTextColor(hex string) string {
	trimmed := strings.TrimSpace(hex)
	trimmed = strings.TrimPrefix(trimmed, "#")
	if len(trimmed) != 6 {
		return TextColorDark
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return TextColorDark
	}

	r := float64((value >> 16) & 0xff)
	g := float64((value >> 8) & 0xff)
	b := float64(value & 0xff)

	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	if luminance > 150 {
		return TextColorDark
	}
	return TextColorLight
}
