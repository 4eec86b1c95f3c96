package models

import "time"

// SwapEvent records one physical drive swap on a bus: which drive came out,
// which went in, who did it, why, and when. DriveOutID and DriveInID both
// reference hard drives; the two roles stay separately queryable.
type SwapEvent struct {
	ID         int64     `json:"id"`
	BusID      int64     `json:"bus_id"`
	DriveOutID int64     `json:"drive_out_id"`
	DriveInID  int64     `json:"drive_in_id"`
	EmployeeID int64     `json:"employee_id"`
	ReasonID   int64     `json:"reason_id"`
	SwapDate   string    `json:"swap_date"` // YYYY-MM-DD
	SwapTime   string    `json:"swap_time"` // HH:MM
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined display fields, populated by list queries only.
	BusNumber      string `json:"bus_number,omitempty"`
	DriveOutSerial string `json:"drive_out_serial,omitempty"`
	DriveInSerial  string `json:"drive_in_serial,omitempty"`
	EmployeeName   string `json:"employee_name,omitempty"`
	ReasonName     string `json:"reason_name,omitempty"`
}
