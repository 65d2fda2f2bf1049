package save_department

// SaveDepartmentRequest is the HTTP request model shared by create and edit.
type SaveDepartmentRequest struct {
	Name         string  `json:"name"`
	DefaultColor *string `json:"defaultColor,omitempty"`
}
