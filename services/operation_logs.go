package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"catdistribution/backend/database"
	"catdistribution/backend/models"

	"github.com/google/uuid"
)

var ErrInvalidOperationLog = errors.New("invalid operation log")

// ListOperationLogs returns all operation logs, oldest first
func ListOperationLogs(ctx context.Context) ([]models.OperationLog, error) {
	rows, err := database.DB.QueryContext(ctx,
		`SELECT id, user_id, action, details, created_at FROM operation_logs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation logs: %w", err)
	}
	defer rows.Close()

	logs := []models.OperationLog{}
	for rows.Next() {
		var entry models.OperationLog
		var details sql.NullString
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &details, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan operation log: %w", err)
		}
		entry.Details = details.String
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// AddOperationLog stores an action performed by userID
func AddOperationLog(ctx context.Context, userID string, entry models.OperationLog) (*models.OperationLog, error) {
	entry.Action = strings.ToUpper(strings.TrimSpace(entry.Action))
	if entry.Action == "" {
		return nil, fmt.Errorf("%w: action is required", ErrInvalidOperationLog)
	}

	if _, err := GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entry.UserID = userID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := database.DB.ExecContext(ctx, database.Rebind(`
		INSERT INTO operation_logs (id, user_id, action, details, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), entry.ID, entry.UserID, entry.Action, entry.Details, entry.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert operation log: %w", err)
	}

	return &entry, nil
}
