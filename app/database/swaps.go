package database

import (
	"database/sql"
	"time"

	"videopull/app/models"
)

// CreateSwapEvent appends one drive-swap record. The schema's CHECK
// constraint rejects events naming the same drive as removed and installed;
// callers map that through IsCheckViolation.
func CreateSwapEvent(db *sql.DB, event *models.SwapEvent) error {
	event.CreatedAt = time.Now()

	query := `INSERT INTO bus_hd_swap_events
			  (bus_id, drive_out_id, drive_in_id, employee_id, reason_id, swap_date, swap_time, notes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`

	return db.QueryRow(query,
		event.BusID, event.DriveOutID, event.DriveInID, event.EmployeeID,
		event.ReasonID, event.SwapDate, event.SwapTime, event.Notes, event.CreatedAt,
	).Scan(&event.ID)
}

// ListSwapEvents returns the most recent swap events with display names
// joined in, newest first.
func ListSwapEvents(db *sql.DB, limit int) ([]*models.SwapEvent, error) {
	query := `SELECT e.id, e.bus_id, e.drive_out_id, e.drive_in_id, e.employee_id, e.reason_id,
			  e.swap_date, e.swap_time, e.notes, e.created_at,
			  b.bus_number, hout.serial_number, hin.serial_number, emp.username, r.name
			  FROM bus_hd_swap_events e
			  JOIN buses b ON e.bus_id = b.id
			  JOIN hard_drives hout ON e.drive_out_id = hout.id
			  JOIN hard_drives hin ON e.drive_in_id = hin.id
			  JOIN employees emp ON e.employee_id = emp.id
			  JOIN reasons r ON e.reason_id = r.id
			  ORDER BY e.created_at DESC, e.id DESC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.SwapEvent
	for rows.Next() {
		event := &models.SwapEvent{}
		err := rows.Scan(
			&event.ID, &event.BusID, &event.DriveOutID, &event.DriveInID,
			&event.EmployeeID, &event.ReasonID, &event.SwapDate, &event.SwapTime,
			&event.Notes, &event.CreatedAt,
			&event.BusNumber, &event.DriveOutSerial, &event.DriveInSerial,
			&event.EmployeeName, &event.ReasonName,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
