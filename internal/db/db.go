package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed schema_sqlite.sql schema_postgres.sql
var schemaFS embed.FS

// Connect opens the store for driver ("sqlite" or "postgres"), checks it is
// reachable and applies the schema.
func Connect(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("db dsn is required")
	}

	schemaFile, err := schemaFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// one writer at a time; also keeps ":memory:" databases on one connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := applySchema(context.Background(), db, schemaFile); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func schemaFor(driver string) (string, error) {
	switch driver {
	case "sqlite":
		return "schema_sqlite.sql", nil
	case "postgres":
		return "schema_postgres.sql", nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", driver)
	}
}

func applySchema(ctx context.Context, db *sql.DB, file string) error {
	schemaSQL, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
