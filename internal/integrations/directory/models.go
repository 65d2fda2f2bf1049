package directory

// User is a directory record for an authenticated user.
type User struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"`
	DepartmentID int64  `json:"departmentId"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
