package domain

// ColorOverrides carries the three-tier color resolution inputs for one user:
// the organization-wide default color, the user's personal company-color
// override and the user's per-department tag colors. All values are expected
// to be normalized hex strings; anything else is ignored at resolution time.
type ColorOverrides struct {
	CompanyDefault  *string
	CompanyOverride *string
	TagColors       map[int64]string
}

// TagColor returns the user's override for a department, if any.
func (o ColorOverrides) TagColor(departmentID int64) (string, bool) {
	if o.TagColors == nil {
		return "", false
	}
	c, ok := o.TagColors[departmentID]
	return c, ok
}
