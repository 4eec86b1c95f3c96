package models

import "time"

// Employee is a staff account that can log in and perform drive swaps.
type Employee struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never the plaintext
	CreatedAt time.Time `json:"created_at"`
	Roles     []*Role   `json:"roles,omitempty"`
}

// Session is a server-side login session. Logging out deletes the row, so a
// stolen cookie is useless afterwards.
type Session struct {
	ID         string    `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
