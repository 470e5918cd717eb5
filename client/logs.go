package client

import (
	"context"
	"net/http"
	"net/url"

	"catdistribution/backend/models"

	"go.uber.org/zap"
)

// LogClient reads and appends operation logs. Failures never reach the
// caller: they are logged and reported as nil.
type LogClient struct {
	c *Client
}

func NewLogClient(c *Client) *LogClient {
	return &LogClient{c: c}
}

// FetchLogs returns every operation log, or nil when the backend cannot be reached
func (l *LogClient) FetchLogs(ctx context.Context) []models.OperationLog {
	var logs []models.OperationLog
	if err := l.c.do(ctx, http.MethodGet, "/operationLogs", nil, &logs); err != nil {
		zap.L().Error("Error fetching logs", zap.Error(err))
		return nil
	}
	return logs
}

// AddLog records entry for user and returns the stored log, or nil on failure
func (l *LogClient) AddLog(ctx context.Context, user string, entry models.OperationLog) *models.OperationLog {
	var created models.OperationLog
	path := "/operationLogs/" + url.PathEscape(user)
	if err := l.c.do(ctx, http.MethodPost, path, entry, &created); err != nil {
		zap.L().Error("Error adding log",
			zap.String("user", user),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return nil
	}
	return &created
}
