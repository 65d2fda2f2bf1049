package domain

// Time format constants
const (
	TimeFormat    = "15:04"               // HH:MM
	DateFormat    = "2006-01-02"          // YYYY-MM-DD
	DateKeyFormat = DateFormat            // map keys for per-day bucketing
	StampFormat   = "2006-01-02T15:04:05" // local date-time without zone
)

// User roles as reported by the directory service.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Input length limits
const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
)
