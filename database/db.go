package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"catdistribution/backend/config"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var (
	DB *sql.DB
	// Driver is the driver name DB was opened with
	Driver = config.DriverSQLite
)

// InitDB opens the configured database and stores it in DB
func InitDB(cfg config.DatabaseConfig) error {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = OpenPostgres(cfg)
	default:
		db, err = OpenSQLite(cfg.Path)
	}
	if err != nil {
		return err
	}

	DB = db
	Driver = cfg.Driver
	return nil
}

// OpenSQLite opens a sqlite database tuned for a small concurrent web backend
func OpenSQLite(path string) (*sql.DB, error) {
	// Add connection parameters to better handle concurrency
	dsn := path + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	db, err := sql.Open(config.DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if path == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(5)
	}
	db.SetConnMaxLifetime(time.Minute * 5)

	// Execute PRAGMA statements for better concurrency handling
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	zap.L().Info("Connected to sqlite", zap.String("path", path))
	return db, nil
}

// Rebind rewrites ? placeholders into $n when the active driver is postgres.
// Queries must not contain literal question marks.
func Rebind(query string) string {
	if Driver != config.DriverPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Close closes DB if it is open
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}
