package sqlstore

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed schema_*.sql
var schemas embed.FS

// RunMigrations executes the schema file matching the driver
func RunMigrations(db *sqlx.DB) error {
	schemaPath := fmt.Sprintf("schema_%s.sql", db.DriverName())

	content, err := schemas.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("no schema for driver %q: %w", db.DriverName(), err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", schemaPath, err)
	}

	return nil
}
