package main

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.db")
	t.Setenv("DATABASE_PATH", path)
	t.Setenv("APP_ENV", "development")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"seed"})
	require.NoError(t, cmd.Execute())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var cats int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cats").Scan(&cats))
	assert.Positive(t, cats)
}

func TestSeedRefusesProduction(t *testing.T) {
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "cats.db"))
	t.Setenv("APP_ENV", "production")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"seed"})
	assert.Error(t, cmd.Execute())
}

func TestMigrateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.db")
	t.Setenv("DATABASE_PATH", path)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var cats int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cats").Scan(&cats))
	assert.Zero(t, cats)
}
