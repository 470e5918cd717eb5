package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// CreateBaseSchema creates the tables every later migration builds on.
// The DDL sticks to types both sqlite and postgres accept.
func CreateBaseSchema(db *sql.DB) error {
	statements := []struct {
		name  string
		query string
	}{
		{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			email TEXT
		)`},
		{"cats", `
		CREATE TABLE IF NOT EXISTS cats (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			breed TEXT,
			description TEXT,
			image TEXT,
			created_at TIMESTAMP NOT NULL
		)`},
		{"operation_logs", `
		CREATE TABLE IF NOT EXISTS operation_logs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			action TEXT NOT NULL,
			details TEXT,
			created_at TIMESTAMP NOT NULL
		)`},
		{"idx_cats_created_at", `CREATE INDEX IF NOT EXISTS idx_cats_created_at ON cats(created_at)`},
		{"idx_operation_logs_created_at", `CREATE INDEX IF NOT EXISTS idx_operation_logs_created_at ON operation_logs(created_at)`},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt.query); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}

	zap.L().Info("Base schema created")
	return nil
}
