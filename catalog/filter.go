package catalog

import (
	"errors"
	"fmt"
	"strings"

	"catdistribution/backend/models"

	"golang.org/x/text/cases"
)

var ErrInvalidAgeRange = errors.New("invalid age range")

// AgeRange is an inclusive [Min, Max] bound on age
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Preset ranges offered by the list controls
var (
	Kittens = AgeRange{Min: 0, Max: 2}
	Adults  = AgeRange{Min: 3, Max: 10}
	Seniors = AgeRange{Min: 11, Max: models.MaxCatAge}
)

func NewAgeRange(min, max int) (*AgeRange, error) {
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("%w: bounds must not be negative (%d, %d)", ErrInvalidAgeRange, min, max)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidAgeRange, min, max)
	}
	return &AgeRange{Min: min, Max: max}, nil
}

// Contains reports whether age lies inside the range
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// FilterState is the transient filter input of a list view. A nil Ages means
// no age restriction.
type FilterState struct {
	SearchTerm string    `json:"searchTerm"`
	Ages       *AgeRange `json:"ages,omitempty"`
}

// fold returns the case-folded form of s. A Caser keeps state, so one is
// built per call instead of being shared between goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Filter keeps the records whose name contains searchTerm (case-insensitive)
// and whose age lies in ages. Both conditions must hold. A blank term and a
// nil range disable their condition. The input is never modified.
func Filter(records []models.Cat, searchTerm string, ages *AgeRange) []models.Cat {
	term := fold(strings.TrimSpace(searchTerm))

	out := make([]models.Cat, 0, len(records))
	for _, c := range records {
		if term != "" && !strings.Contains(fold(c.Name), term) {
			continue
		}
		if ages != nil && !ages.Contains(c.Age) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Apply runs Filter with the receiver's fields
func (f FilterState) Apply(records []models.Cat) []models.Cat {
	return Filter(records, f.SearchTerm, f.Ages)
}
