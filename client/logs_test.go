package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestFetchLogs(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /operationLogs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.OperationLog{
			{ID: "1", UserID: "admin", Action: models.ActionAdd, Details: "Added Mimi", Timestamp: stamp},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	logs := NewLogClient(New(server.URL)).FetchLogs(t.Context())
	require.Len(t, logs, 1)
	assert.Equal(t, "Added Mimi", logs[0].Details)
	assert.True(t, stamp.Equal(logs[0].Timestamp))
}

func TestAddLog(t *testing.T) {
	var got models.OperationLog
	var gotUser string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /operationLogs/{user}", func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.PathValue("user")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		got.ID = "log-1"
		got.UserID = gotUser
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(got)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	created := NewLogClient(New(server.URL)).AddLog(t.Context(), "maria", models.OperationLog{Action: models.ActionDelete, Details: "Deleted Tom"})
	require.NotNil(t, created)
	assert.Equal(t, "maria", gotUser)
	assert.Equal(t, models.ActionDelete, got.Action)
	assert.Equal(t, "log-1", created.ID)
}

func TestAddLogFailureIsSwallowed(t *testing.T) {
	logs := observeLogs(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	created := NewLogClient(New(server.URL)).AddLog(t.Context(), "admin", models.OperationLog{Action: models.ActionAdd})
	assert.Nil(t, created)

	entries := logs.FilterMessage("Error adding log").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "admin", entries[0].ContextMap()["user"])
}

func TestFetchLogsUnreachable(t *testing.T) {
	logs := observeLogs(t)

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	assert.Nil(t, NewLogClient(New(url)).FetchLogs(t.Context()))
	assert.Equal(t, 1, logs.FilterMessage("Error fetching logs").Len())
}

func TestAddLogAccepts200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.OperationLog{ID: "log-1", Action: models.ActionAdd})
	}))
	defer server.Close()

	created := NewLogClient(New(server.URL)).AddLog(t.Context(), "u", models.OperationLog{Action: models.ActionAdd})
	require.NotNil(t, created)
	assert.Equal(t, "log-1", created.ID)
}

func TestAddLogUnreachable(t *testing.T) {
	logs := observeLogs(t)

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	assert.NotPanics(t, func() {
		assert.Nil(t, NewLogClient(New(url)).AddLog(t.Context(), "admin", models.OperationLog{Action: models.ActionAdd}))
	})
	assert.Equal(t, 1, logs.FilterMessage("Error adding log").Len())
}
