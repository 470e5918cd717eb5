package services

import (
	"testing"

	"catdistribution/backend/database"
	"catdistribution/backend/migrations"
	"catdistribution/backend/models"

	"github.com/stretchr/testify/require"
)

const testUserID = "test-user-id"

// setupTestDB migrates a fresh in-memory database and adds the test user
func setupTestDB(t *testing.T) {
	t.Helper()

	db, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	require.NoError(t, migrations.RunMigrations(db))
	_, err := db.Exec(`INSERT INTO users (id, username, name) VALUES (?, ?, ?)`, testUserID, "tester", "Test User")
	require.NoError(t, err)
}

func mustCreateCat(t *testing.T, name string, age int) *models.Cat {
	t.Helper()
	c, err := CreateCat(t.Context(), models.Cat{Name: name, Age: age, Gender: "F", Breed: "Siamese", Weight: 4.2, UserID: testUserID})
	require.NoError(t, err)
	return c
}
