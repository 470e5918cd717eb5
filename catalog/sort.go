package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"catdistribution/backend/models"
)

var ErrInvalidSort = errors.New("invalid sort")

type SortField string

const (
	SortByName   SortField = "name"
	SortByAge    SortField = "age"
	SortByWeight SortField = "weight"
)

// SortFields lists the keys in the order a view cycles through them
var SortFields = []SortField{SortByName, SortByAge, SortByWeight}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type SortConfig struct {
	Field     SortField `json:"field"`
	Direction Direction `json:"direction"`
}

// ParseSortConfig validates user supplied sort input. An empty field means no
// sorting and yields a nil config; an empty direction means ascending.
func ParseSortConfig(field, direction string) (*SortConfig, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return nil, nil
	}

	cfg := &SortConfig{Field: SortField(field), Direction: Ascending}
	if !slices.Contains(SortFields, cfg.Field) {
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidSort, field)
	}

	switch Direction(strings.ToLower(strings.TrimSpace(direction))) {
	case "", Ascending:
	case Descending:
		cfg.Direction = Descending
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, direction)
	}
	return cfg, nil
}

// Toggled returns the same field with the opposite direction
func (s SortConfig) Toggled() SortConfig {
	if s.Direction == Descending {
		s.Direction = Ascending
	} else {
		s.Direction = Descending
	}
	return s
}

func (s SortConfig) compare(a, b models.Cat) int {
	var c int
	switch s.Field {
	case SortByName:
		c = strings.Compare(fold(a.Name), fold(b.Name))
	case SortByAge:
		c = cmp.Compare(a.Age, b.Age)
	case SortByWeight:
		c = cmp.Compare(a.Weight, b.Weight)
	}
	if s.Direction == Descending {
		return -c
	}
	return c
}

// Sort returns a stably sorted copy of records. Records with equal keys keep
// their relative order in both directions. A nil config keeps input order.
func Sort(records []models.Cat, cfg *SortConfig) []models.Cat {
	out := slices.Clone(records)
	if cfg == nil || out == nil {
		return out
	}
	slices.SortStableFunc(out, cfg.compare)
	return out
}
