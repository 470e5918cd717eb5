package catalog

import (
	"testing"

	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNilConfigKeepsOrder(t *testing.T) {
	cats := sampleCats()
	assert.Equal(t, cats, Sort(cats, nil))
}

func TestSortByName(t *testing.T) {
	cats := []models.Cat{{Name: "tom"}, {Name: "Bella"}, {Name: "alfie"}}

	got := Sort(cats, &SortConfig{Field: SortByName, Direction: Ascending})
	assert.Equal(t, []string{"alfie", "Bella", "tom"}, names(got))

	got = Sort(cats, &SortConfig{Field: SortByName, Direction: Descending})
	assert.Equal(t, []string{"tom", "Bella", "alfie"}, names(got))

	// input untouched
	assert.Equal(t, []string{"tom", "Bella", "alfie"}, names(cats))
}

func TestSortIsStable(t *testing.T) {
	cats := []models.Cat{
		{Name: "A", Age: 3},
		{Name: "B", Age: 1},
		{Name: "C", Age: 3},
		{Name: "D", Age: 1},
		{Name: "E", Age: 3},
	}

	got := Sort(cats, &SortConfig{Field: SortByAge, Direction: Ascending})
	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, names(got))

	got = Sort(cats, &SortConfig{Field: SortByAge, Direction: Descending})
	assert.Equal(t, []string{"A", "C", "E", "B", "D"}, names(got))
}

func TestSortByWeight(t *testing.T) {
	got := Sort(sampleCats(), &SortConfig{Field: SortByWeight, Direction: Ascending})
	assert.Equal(t, []string{"Mimi", "Tomasina", "Leo", "Tom", "Cleo"}, names(got))
}

func TestParseSortConfig(t *testing.T) {
	cfg, err := ParseSortConfig("", "desc")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = ParseSortConfig("Age", "")
	require.NoError(t, err)
	assert.Equal(t, &SortConfig{Field: SortByAge, Direction: Ascending}, cfg)

	cfg, err = ParseSortConfig("name", "DESC")
	require.NoError(t, err)
	assert.Equal(t, Descending, cfg.Direction)

	_, err = ParseSortConfig("color", "asc")
	assert.ErrorIs(t, err, ErrInvalidSort)

	_, err = ParseSortConfig("age", "sideways")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestSortConfigToggled(t *testing.T) {
	cfg := SortConfig{Field: SortByAge, Direction: Ascending}
	assert.Equal(t, Descending, cfg.Toggled().Direction)
	assert.Equal(t, Ascending, cfg.Toggled().Toggled().Direction)
}
