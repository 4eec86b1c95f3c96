package database

import (
	"database/sql"
	"time"

	"videopull/app/models"
)

func CreateSession(db *sql.DB, sessionID string, employeeID int64, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, employee_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, employeeID, expiresAt, time.Now())
	return err
}

// GetSessionByID returns the session only while it is unexpired; an expired
// or deleted session reads as sql.ErrNoRows.
func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, employee_id, expires_at, created_at
			  FROM sessions WHERE id = $1 AND expires_at > $2`

	err := db.QueryRow(query, sessionID, time.Now()).Scan(
		&session.ID, &session.EmployeeID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// DeleteExpiredSessions clears out dead rows; called opportunistically at
// startup rather than from a background job.
func DeleteExpiredSessions(db *sql.DB) error {
	query := `DELETE FROM sessions WHERE expires_at <= $1`
	_, err := db.Exec(query, time.Now())
	return err
}
