package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Open connects to the database named by url and returns the handle together
// with the driver name (migrations need it for DDL differences).
//
// Supported forms:
//
//	postgres://... or host=... — PostgreSQL via lib/pq
//	sqlite://                  — shared in-memory SQLite (development default)
//	sqlite:///path/to/file.db  — file-backed SQLite
func Open(url string) (*sql.DB, string, error) {
	driver, dsn := resolveDSN(url)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// A single connection keeps the shared in-memory database alive and
		// sidesteps SQLite's writer locking.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s database: %w", driver, err)
	}

	log.Printf("Database connected (%s)", driver)
	return db, driver, nil
}

func resolveDSN(url string) (driver, dsn string) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return DriverSQLite, "file:videopull?mode=memory&cache=shared"
		}
		return DriverSQLite, path
	default:
		return DriverPostgres, url
	}
}
