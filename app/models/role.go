package models

// Role names a job function (e.g. admin, supervisor).
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmployeeRole links employees and roles many-to-many.
type EmployeeRole struct {
	ID         int64 `json:"id"`
	EmployeeID int64 `json:"employee_id"`
	RoleID     int64 `json:"role_id"`
}
