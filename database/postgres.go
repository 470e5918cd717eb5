package database

import (
	"database/sql"
	"fmt"
	"net/url"

	"catdistribution/backend/config"

	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
)

// OpenPostgres creates a new PostgreSQL database connection
func OpenPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	connectionString := cfg.PostgresDSN()

	zap.L().Info("Connecting to PostgreSQL", zap.String("dsn", MaskPassword(connectionString)))

	db, err := sql.Open(config.DriverPostgres, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	zap.L().Info("Successfully connected to PostgreSQL")
	return db, nil
}

// MaskPassword masks the password in a connection URL for logging
func MaskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, ok := u.User.Password(); !ok {
		return connStr
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
