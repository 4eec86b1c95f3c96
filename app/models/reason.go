package models

// Reason explains why a swap happened (scheduled pull, drive failure, ...).
type Reason struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
