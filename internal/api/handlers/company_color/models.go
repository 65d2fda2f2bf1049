package company_color

// CompanyColorJSON is the wire shape of the organization default color. Color
// null means no default is set and the built-in fallback applies.
type CompanyColorJSON struct {
	Color *string `json:"color"`
}
