package migrations

import (
	"database/sql"
	"fmt"

	"catdistribution/backend/database"

	"go.uber.org/zap"
)

type migration struct {
	name string
	fn   func(*sql.DB) error
}

// migrations in the order they must be applied
var migrations = []migration{
	{"base_schema", CreateBaseSchema},
	{"add_cat_gender_weight", AddCatGenderWeight},
	{"add_cat_owner", AddCatOwner},
}

// RunMigrations executes all migrations in the correct order
func RunMigrations(db *sql.DB) error {
	zap.L().Info("Running migrations...")

	// Create migrations table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Run each migration if it hasn't been applied yet
	for _, m := range migrations {
		var count int
		err := db.QueryRow(database.Rebind("SELECT COUNT(*) FROM migrations WHERE name = ?"), m.name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		if count > 0 {
			zap.L().Debug("Skipping already applied migration", zap.String("migration", m.name))
			continue
		}

		zap.L().Info("Applying migration", zap.String("migration", m.name))
		if err := m.fn(db); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}

		if _, err := db.Exec(database.Rebind("INSERT INTO migrations (name) VALUES (?)"), m.name); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	zap.L().Info("All migrations completed successfully")
	return nil
}

// columnExists checks the live schema of the active driver
func columnExists(db *sql.DB, table, column string) (bool, error) {
	var query string
	if database.Driver == "postgres" {
		query = `SELECT COUNT(*) FROM information_schema.columns WHERE table_name = $1 AND column_name = $2`
	} else {
		query = `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`
	}

	var count int
	if err := db.QueryRow(query, table, column).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking for %s.%s: %w", table, column, err)
	}
	return count > 0, nil
}

// addColumn adds a column to a table if it doesn't exist
func addColumn(db *sql.DB, table, column, columnType string) error {
	exists, err := columnExists(db, table, column)
	if err != nil {
		return err
	}
	if exists {
		zap.L().Info("Column already exists", zap.String("table", table), zap.String("column", column))
		return nil
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, columnType)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("error adding %s column: %w", column, err)
	}
	return nil
}
