package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"catdistribution/backend/middleware"
	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncUser(t *testing.T) {
	SetupTestDB(t)

	req := MockAuthContext(httptest.NewRequest(http.MethodPost, "/users/sync", nil), "firebase-uid")
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserEmailKey, "alex@example.com"))

	rr := httptest.NewRecorder()
	SyncUser(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	user := decode[models.User](t, rr)
	assert.Equal(t, "firebase-uid", user.ID)
	assert.Equal(t, "alex", user.Username)
	assert.Equal(t, "alex@example.com", user.Email)

	rr = httptest.NewRecorder()
	GetUsers(rr, NewAuthenticatedRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.User](t, rr), 2)
}

func TestSyncUserIgnoresBodyID(t *testing.T) {
	SetupTestDB(t)

	rr := httptest.NewRecorder()
	SyncUser(rr, NewAuthenticatedRequest(http.MethodPost, "/users/sync", models.User{ID: "someone-else", Username: "renamed", Name: "Renamed"}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	user := decode[models.User](t, rr)
	assert.Equal(t, TestUserID, user.ID)
	assert.Equal(t, "renamed", user.Username)
}

func TestSyncUserUnauthenticated(t *testing.T) {
	rr := httptest.NewRecorder()
	SyncUser(rr, httptest.NewRequest(http.MethodPost, "/users/sync", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHealth(t *testing.T) {
	SetupTestDB(t)

	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
