package database

import (
	"database/sql"
	"log"
)

// SeedDefaults inserts the categorical reference rows the app expects to
// exist: drive conditions, swap reasons, and roles. Safe to run repeatedly.
func SeedDefaults(db *sql.DB) error {
	seeds := map[string][]string{
		"conditions": {"good", "damaged"},
		"reasons":    {"scheduled pull", "drive failure", "damaged drive", "other"},
		"roles":      {"admin", "supervisor"},
	}

	for table, names := range seeds {
		for _, name := range names {
			if err := insertIfMissing(db, table, name); err != nil {
				return err
			}
		}
	}

	log.Println("Reference data seeded")
	return nil
}

func insertIfMissing(db *sql.DB, table, name string) error {
	// Table names come from the fixed map above, never from user input.
	query := `INSERT INTO ` + table + ` (name)
			  SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM ` + table + ` WHERE name = $2)`
	_, err := db.Exec(query, name, name)
	return err
}
