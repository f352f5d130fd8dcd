package sqlstore

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the report database and applies the schema.
// driver is "postgres" or "sqlite3".
func Open(driver, connStr string, maxOpenConns, maxIdleConns, connMaxLifetimeMin int) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		// one writer at a time for sqlite
		maxOpenConns = 1
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMin) * time.Minute)

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[DB] Connected to %s report store", driver)
	return db, nil
}
