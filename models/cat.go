package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxCatAge is the oldest age the catalog accepts
const MaxCatAge = 35

var ErrInvalidCat = errors.New("invalid cat")

type Cat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender,omitempty"` // M or F
	Breed       string    `json:"breed,omitempty"`
	Weight      float64   `json:"weight,omitempty"` // kg
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate reports the first field that cannot be stored
func (c Cat) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCat)
	}
	if c.Age < 0 || c.Age > MaxCatAge {
		return fmt.Errorf("%w: age must be between 0 and %d, got %d", ErrInvalidCat, MaxCatAge, c.Age)
	}
	if c.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidCat)
	}
	if c.Gender != "" && c.Gender != "M" && c.Gender != "F" {
		return fmt.Errorf("%w: gender must be M or F", ErrInvalidCat)
	}
	return nil
}
