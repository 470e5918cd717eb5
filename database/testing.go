package database

import (
	"database/sql"
	"testing"

	"catdistribution/backend/config"
)

// SetupTestDB points DB at a fresh in-memory sqlite database. The returned
// cleanup restores the previous connection.
func SetupTestDB(t testing.TB) (*sql.DB, func()) {
	t.Helper()

	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	prevDB, prevDriver := DB, Driver
	DB, Driver = db, config.DriverSQLite

	return db, func() {
		db.Close()
		DB, Driver = prevDB, prevDriver
	}
}
