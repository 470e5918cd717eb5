package migrations

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// AddCatGenderWeight adds the gender and weight columns used by generated cats
func AddCatGenderWeight(db *sql.DB) error {
	zap.L().Info("Adding gender and weight to cats table...")

	if err := addColumn(db, "cats", "gender", "TEXT"); err != nil {
		return err
	}
	if err := addColumn(db, "cats", "weight", "REAL NOT NULL DEFAULT 0"); err != nil {
		return err
	}
	return nil
}

// AddCatOwner records which user created or generated a cat
func AddCatOwner(db *sql.DB) error {
	zap.L().Info("Adding owner to cats table...")

	if err := addColumn(db, "cats", "user_id", "TEXT"); err != nil {
		return err
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_cats_user_id ON cats(user_id)`); err != nil {
		return fmt.Errorf("failed to create cats owner index: %w", err)
	}
	return nil
}
