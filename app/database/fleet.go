package database

import (
	"database/sql"

	"videopull/app/models"
)

// Reference data for the swap form's choice lists: buses, drives with their
// condition, swap reasons, and drive conditions.

func ListBuses(db *sql.DB) ([]*models.Bus, error) {
	rows, err := db.Query(`SELECT id, bus_number FROM buses ORDER BY bus_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buses []*models.Bus
	for rows.Next() {
		bus := &models.Bus{}
		if err := rows.Scan(&bus.ID, &bus.BusNumber); err != nil {
			return nil, err
		}
		buses = append(buses, bus)
	}
	return buses, rows.Err()
}

func CreateBus(db *sql.DB, busNumber string) (*models.Bus, error) {
	bus := &models.Bus{BusNumber: busNumber}
	err := db.QueryRow(`INSERT INTO buses (bus_number) VALUES ($1) RETURNING id`, busNumber).
		Scan(&bus.ID)
	if err != nil {
		return nil, err
	}
	return bus, nil
}

func ListHardDrives(db *sql.DB) ([]*models.HardDrive, error) {
	query := `SELECT h.id, h.serial_number, h.condition_id, c.name
			  FROM hard_drives h
			  JOIN conditions c ON h.condition_id = c.id
			  ORDER BY h.serial_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*models.HardDrive
	for rows.Next() {
		drive := &models.HardDrive{}
		if err := rows.Scan(&drive.ID, &drive.SerialNumber, &drive.ConditionID, &drive.ConditionName); err != nil {
			return nil, err
		}
		drives = append(drives, drive)
	}
	return drives, rows.Err()
}

func CreateHardDrive(db *sql.DB, serialNumber string, conditionID int64) (*models.HardDrive, error) {
	drive := &models.HardDrive{SerialNumber: serialNumber, ConditionID: conditionID}
	query := `INSERT INTO hard_drives (serial_number, condition_id) VALUES ($1, $2) RETURNING id`
	err := db.QueryRow(query, serialNumber, conditionID).Scan(&drive.ID)
	if err != nil {
		return nil, err
	}
	return drive, nil
}

func ListConditions(db *sql.DB) ([]*models.Condition, error) {
	rows, err := db.Query(`SELECT id, name FROM conditions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conditions []*models.Condition
	for rows.Next() {
		cond := &models.Condition{}
		if err := rows.Scan(&cond.ID, &cond.Name); err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, rows.Err()
}

func GetConditionByName(db *sql.DB, name string) (*models.Condition, error) {
	cond := &models.Condition{}
	err := db.QueryRow(`SELECT id, name FROM conditions WHERE name = $1`, name).
		Scan(&cond.ID, &cond.Name)
	if err != nil {
		return nil, err
	}
	return cond, nil
}

func ListReasons(db *sql.DB) ([]*models.Reason, error) {
	rows, err := db.Query(`SELECT id, name FROM reasons ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reasons []*models.Reason
	for rows.Next() {
		reason := &models.Reason{}
		if err := rows.Scan(&reason.ID, &reason.Name); err != nil {
			return nil, err
		}
		reasons = append(reasons, reason)
	}
	return reasons, rows.Err()
}
