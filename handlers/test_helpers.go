package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catdistribution/backend/database"
	"catdistribution/backend/middleware"
	"catdistribution/backend/migrations"
)

// Define a constant for the test user ID that can be used across all tests
const TestUserID = "test-user-id"

// SetupTestDB points the database at a migrated in-memory sqlite instance
// holding the test user
func SetupTestDB(t testing.TB) {
	t.Helper()

	db, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := migrations.RunMigrations(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	_, err := db.Exec(`INSERT INTO users (id, username, name) VALUES (?, ?, ?)`, TestUserID, "testuser", "Test User")
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
}

// MockAuthContext adds a mock user ID to the request context for testing
func MockAuthContext(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

// NewAuthenticatedRequest creates a new HTTP request with a mock authenticated user
func NewAuthenticatedRequest(method, url string, body interface{}) *http.Request {
	var req *http.Request

	if body != nil {
		buf, _ := json.Marshal(body)
		req = httptest.NewRequest(method, url, bytes.NewBuffer(buf))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	return MockAuthContext(req, TestUserID)
}
