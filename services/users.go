package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catdistribution/backend/database"
	"catdistribution/backend/models"
)

// GetUsers returns all users ordered by username
func GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := database.DB.QueryContext(ctx, `SELECT id, username, name, email FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		var email sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Email = email.String
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a user by ID
func GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	var email sql.NullString
	err := database.DB.QueryRowContext(ctx,
		database.Rebind(`SELECT id, username, name, email FROM users WHERE id = ?`), id,
	).Scan(&u.ID, &u.Username, &u.Name, &email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	u.Email = email.String
	return &u, nil
}

// UpsertUser creates the user or refreshes its profile fields
func UpsertUser(ctx context.Context, u models.User) (*models.User, error) {
	if u.ID == "" || u.Username == "" {
		return nil, errors.New("user id and username are required")
	}
	if u.Name == "" {
		u.Name = u.Username
	}

	_, err := GetUserByID(ctx, u.ID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		_, err = database.DB.ExecContext(ctx,
			database.Rebind(`INSERT INTO users (id, username, name, email) VALUES (?, ?, ?, ?)`),
			u.ID, u.Username, u.Name, u.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to insert user: %w", err)
		}
	case err != nil:
		return nil, err
	default:
		_, err = database.DB.ExecContext(ctx,
			database.Rebind(`UPDATE users SET username = ?, name = ?, email = ? WHERE id = ?`),
			u.Username, u.Name, u.Email, u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return &u, nil
}
