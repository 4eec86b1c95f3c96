package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the schema if it does not exist. The DDL is the same
// for both drivers except for the auto-increment primary key syntax.
func RunMigrations(db *sql.DB, driver string) error {
	log.Println("Running database migrations...")

	pk := "SERIAL PRIMARY KEY"
	if driver == DriverSQLite {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	tables := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS employees (
			id %s,
			username VARCHAR(15) NOT NULL UNIQUE,
			email VARCHAR(50) NOT NULL UNIQUE,
			password VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS roles (
			id %s,
			name VARCHAR(30) NOT NULL UNIQUE
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS employee_roles (
			id %s,
			employee_id INTEGER NOT NULL REFERENCES employees(id),
			role_id INTEGER NOT NULL REFERENCES roles(id),
			UNIQUE (employee_id, role_id)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS buses (
			id %s,
			bus_number VARCHAR(10) NOT NULL UNIQUE
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS conditions (
			id %s,
			name VARCHAR(20) NOT NULL UNIQUE
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS hard_drives (
			id %s,
			serial_number VARCHAR(40) NOT NULL UNIQUE,
			condition_id INTEGER NOT NULL REFERENCES conditions(id)
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reasons (
			id %s,
			name VARCHAR(60) NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS bus_hd_swap_events (
			id %s,
			bus_id INTEGER NOT NULL REFERENCES buses(id),
			drive_out_id INTEGER NOT NULL REFERENCES hard_drives(id),
			drive_in_id INTEGER NOT NULL REFERENCES hard_drives(id),
			employee_id INTEGER NOT NULL REFERENCES employees(id),
			reason_id INTEGER NOT NULL REFERENCES reasons(id),
			swap_date VARCHAR(10) NOT NULL,
			swap_time VARCHAR(5) NOT NULL,
			notes VARCHAR(300) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			CHECK (drive_out_id <> drive_in_id)
		)`, pk),
		`CREATE TABLE IF NOT EXISTS sessions (
			id VARCHAR(36) PRIMARY KEY,
			employee_id INTEGER NOT NULL REFERENCES employees(id),
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}

	for _, ddl := range tables {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
