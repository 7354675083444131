package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
)

//go:embed sql/*.sql
var scripts embed.FS

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, pool *sql.DB) error {
	return runScript(ctx, pool, "sql/schema.sql")
}

// Seed loads the sample companies, employees, customers and assignments.
func Seed(ctx context.Context, pool *sql.DB) error {
	return runScript(ctx, pool, "sql/seed.sql")
}

func runScript(ctx context.Context, pool *sql.DB, name string) error {
	content, err := scripts.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if _, err := pool.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}
	return nil
}
