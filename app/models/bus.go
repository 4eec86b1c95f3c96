package models

// Bus is a fleet vehicle, identified by its fleet number.
type Bus struct {
	ID        int64  `json:"id"`
	BusNumber string `json:"bus_number"`
}
