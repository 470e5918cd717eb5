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

const catColumns = `id, name, age, gender, breed, weight, description, image, user_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(row rowScanner) (models.Cat, error) {
	var (
		c                                   models.Cat
		gender, breed, desc, image, ownerID sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Age, &gender, &breed, &c.Weight, &desc, &image, &ownerID, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	c.Gender = gender.String
	c.Breed = breed.String
	c.Description = desc.String
	c.Image = image.String
	c.UserID = ownerID.String
	return c, nil
}

// ListCats returns every cat in creation order
func ListCats(ctx context.Context) ([]models.Cat, error) {
	rows, err := database.DB.QueryContext(ctx, `SELECT `+catColumns+` FROM cats ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cats: %w", err)
	}
	defer rows.Close()

	cats := []models.Cat{}
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cat: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cats: %w", err)
	}
	return cats, nil
}

// GetCat retrieves a cat by ID
func GetCat(ctx context.Context, id string) (*models.Cat, error) {
	row := database.DB.QueryRowContext(ctx, database.Rebind(`SELECT `+catColumns+` FROM cats WHERE id = ?`), id)
	c, err := scanCat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatNotFound
		}
		return nil, fmt.Errorf("failed to query cat: %w", err)
	}
	return &c, nil
}

// GetCatByName retrieves a cat by case-insensitive name
func GetCatByName(ctx context.Context, name string) (*models.Cat, error) {
	row := database.DB.QueryRowContext(ctx,
		database.Rebind(`SELECT `+catColumns+` FROM cats WHERE LOWER(name) = LOWER(?)`), strings.TrimSpace(name))
	c, err := scanCat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatNotFound
		}
		return nil, fmt.Errorf("failed to query cat: %w", err)
	}
	return &c, nil
}

// CatNameExists reports whether another cat already uses name. excludeID
// skips the cat being updated.
func CatNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	var count int
	err := database.DB.QueryRowContext(ctx,
		database.Rebind(`SELECT COUNT(*) FROM cats WHERE LOWER(name) = LOWER(?) AND id <> ?`),
		strings.TrimSpace(name), excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check cat name: %w", err)
	}
	return count > 0, nil
}

// CreateCat validates and stores a new cat, filling in ID and creation time
func CreateCat(ctx context.Context, c models.Cat) (*models.Cat, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	exists, err := CatNameExists(ctx, c.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err = database.DB.ExecContext(ctx, database.Rebind(`
		INSERT INTO cats (`+catColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), c.ID, c.Name, c.Age, c.Gender, c.Breed, c.Weight, c.Description, c.Image, c.UserID, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cat: %w", err)
	}

	return &c, nil
}

// UpdateCat replaces the editable fields of the cat with the given ID.
// Owner and creation time are kept.
func UpdateCat(ctx context.Context, id string, c models.Cat) (*models.Cat, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := GetCat(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := CatNameExists(ctx, c.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, c.Name)
	}

	_, err = database.DB.ExecContext(ctx, database.Rebind(`
		UPDATE cats
		SET name = ?, age = ?, gender = ?, breed = ?, weight = ?, description = ?, image = ?
		WHERE id = ?
	`), c.Name, c.Age, c.Gender, c.Breed, c.Weight, c.Description, c.Image, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update cat: %w", err)
	}

	c.ID = id
	c.UserID = existing.UserID
	c.CreatedAt = existing.CreatedAt
	return &c, nil
}

// DeleteCat deletes a cat by ID
func DeleteCat(ctx context.Context, id string) error {
	result, err := database.DB.ExecContext(ctx, database.Rebind(`DELETE FROM cats WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete cat: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCatNotFound
	}
	return nil
}
