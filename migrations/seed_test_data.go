package migrations

import (
	"database/sql"
	"fmt"
	"time"

	"catdistribution/backend/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultUsers are created by SeedTestData; "admin" is the development auth user
var DefaultUsers = []struct {
	ID       string
	Username string
	Name     string
}{
	{ID: "admin", Username: "admin", Name: "Admin"},
	{ID: "1", Username: "maria", Name: "Maria"},
	{ID: "2", Username: "alex", Name: "Alex"},
}

var sampleCats = []struct {
	name        string
	age         int
	gender      string
	breed       string
	weight      float64
	description string
}{
	{"Mimi", 1, "F", "Siamese", 3.1, "Mimi is a playful and full of energy cat."},
	{"Tom", 5, "M", "British Shorthair", 5.4, "Tom is a calm and affectionate cat."},
	{"Bella", 3, "F", "Ragdoll", 4.6, "Bella is always looking for a warm lap to sit on."},
	{"Oliver", 12, "M", "Maine Coon", 7.2, "Oliver is a wise and relaxed cat."},
	{"Nala", 2, "F", "Bengal", 3.8, "Nala is curious about everything."},
	{"Simba", 8, "M", "Persian", 5.9, "Simba is a big talker who loves attention."},
	{"Luna", 0, "F", "Sphynx", 2.6, "Luna is shy at first, but warms up quickly."},
	{"Felix", 15, "M", "Domestic Shorthair", 4.9, "Felix is an independent spirit with a gentle heart."},
	{"Cleo", 6, "F", "Abyssinian", 4.1, "Cleo is a brave explorer who loves adventure."},
	{"Jasper", 10, "M", "Norwegian Forest", 6.8, "Jasper is a little clumsy but incredibly sweet."},
}

// SeedTestData inserts default users and sample cats that are not there yet.
// It must only be called in non-production environments.
func SeedTestData(db *sql.DB) error {
	zap.L().Info("Seeding test data for development...")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, user := range DefaultUsers {
		var count int
		err = tx.QueryRow(database.Rebind("SELECT COUNT(*) FROM users WHERE id = ?"), user.ID).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check if user exists: %w", err)
		}
		if count > 0 {
			continue
		}

		_, err = tx.Exec(database.Rebind("INSERT INTO users (id, username, name) VALUES (?, ?, ?)"),
			user.ID, user.Username, user.Name)
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", user.Username, err)
		}
	}

	now := time.Now().UTC()
	inserted := 0
	for i, cat := range sampleCats {
		var count int
		err = tx.QueryRow(database.Rebind("SELECT COUNT(*) FROM cats WHERE LOWER(name) = LOWER(?)"), cat.name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check if cat exists: %w", err)
		}
		if count > 0 {
			continue
		}

		_, err = tx.Exec(database.Rebind(`
			INSERT INTO cats (id, name, age, gender, breed, weight, description, image, user_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`), uuid.NewString(), cat.name, cat.age, cat.gender, cat.breed, cat.weight, cat.description, "", "admin",
			now.Add(time.Duration(i)*time.Millisecond))
		if err != nil {
			return fmt.Errorf("failed to insert cat %s: %w", cat.name, err)
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Test data seeded successfully", zap.Int("cats", inserted))
	return nil
}
