package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/pkg/ptr"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"six digit lowercase", "#11aa22", "#11aa22", true},
		{"six digit uppercase", "#11AA22", "#11aa22", true},
		{"three digit expands", "#abc", "#aabbcc", true},
		{"three digit uppercase", "#ABC", "#aabbcc", true},
		{"surrounding whitespace", "  #ffffff ", "#ffffff", true},
		{"missing hash", "ffffff", "", false},
		{"wrong length", "#ffff", "", false},
		{"non-hex digits", "#11aa2z", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeColor(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTagColor_Departmental(t *testing.T) {
	booking := domain.Booking{
		DepartmentID:           1,
		DepartmentDefaultColor: ptr.Ptr("#abc"),
	}

	// Department default wins when no override, 3-digit form expanded.
	got := ResolveTagColor(booking, domain.ColorOverrides{})
	assert.Equal(t, "#aabbcc", got)

	// User tag override wins over the department default.
	got = ResolveTagColor(booking, domain.ColorOverrides{
		TagColors: map[int64]string{1: "#112233"},
	})
	assert.Equal(t, "#112233", got)

	// Malformed override falls through to the department default.
	got = ResolveTagColor(booking, domain.ColorOverrides{
		TagColors: map[int64]string{1: "not-a-color"},
	})
	assert.Equal(t, "#aabbcc", got)

	// Nothing usable ends at the fallback.
	got = ResolveTagColor(domain.Booking{DepartmentID: 2}, domain.ColorOverrides{})
	assert.Equal(t, FallbackColor, got)
}

func TestResolveTagColor_Companywide(t *testing.T) {
	booking := domain.Booking{
		IsCompanywide:          true,
		DepartmentID:           1,
		DepartmentDefaultColor: ptr.Ptr("#ff0000"),
	}

	// Department color is ignored for company-wide bookings.
	got := ResolveTagColor(booking, domain.ColorOverrides{})
	assert.Equal(t, FallbackColor, got)

	got = ResolveTagColor(booking, domain.ColorOverrides{
		CompanyDefault: ptr.Ptr("#00ff00"),
	})
	assert.Equal(t, "#00ff00", got)

	// User company override wins over the organization default.
	got = ResolveTagColor(booking, domain.ColorOverrides{
		CompanyDefault:  ptr.Ptr("#00ff00"),
		CompanyOverride: ptr.Ptr("#0000ff"),
	})
	assert.Equal(t, "#0000ff", got)

	// Malformed override falls through to the default.
	got = ResolveTagColor(booking, domain.ColorOverrides{
		CompanyDefault:  ptr.Ptr("#00ff00"),
		CompanyOverride: ptr.Ptr("#zzz"),
	})
	assert.Equal(t, "#00ff00", got)
}

func TestChooseTextColor(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#ffffff", TextColorDark},
		{"#000000", TextColorLight},
		{"#e5e7eb", TextColorDark},
		{"#1d4ed8", TextColorLight},
		{"ffffff", TextColorDark}, // bare hex accepted
		{"garbage", TextColorDark},
		{"", TextColorDark},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ChooseTextColor(tt.hex), "hex=%q", tt.hex)
	}
}
