package models

// HardDrive is a removable recorder drive. The same drive can appear on a
// swap event as the drive pulled or the drive installed.
type HardDrive struct {
	ID            int64  `json:"id"`
	SerialNumber  string `json:"serial_number"`
	ConditionID   int64  `json:"condition_id"`
	ConditionName string `json:"condition_name,omitempty"` // joined for display
}

// Condition is the physical-health category of a drive (good, damaged, ...).
type Condition struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
