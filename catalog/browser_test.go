package catalog

import (
	"testing"

	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBrowserDefaults(t *testing.T) {
	b := NewBrowser(0)
	assert.Equal(t, DefaultPageSize, b.PageSize())
	assert.Equal(t, 1, b.CurrentPage())

	page, err := b.View()
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestBrowserSearchResetsPage(t *testing.T) {
	b := NewBrowser(3)
	b.SetRecords(makeCats(10))
	b.SetPage(3)

	page, err := b.View()
	require.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)

	// same term keeps the page
	b.SetSearchTerm("")
	assert.Equal(t, 3, b.CurrentPage())

	b.SetSearchTerm("cat0")
	assert.Equal(t, 1, b.CurrentPage())
}

func TestBrowserPageSizeResetsPage(t *testing.T) {
	b := NewBrowser(3)
	b.SetRecords(makeCats(10))
	b.SetPage(4)

	require.NoError(t, b.SetPageSize(5))
	assert.Equal(t, 1, b.CurrentPage())

	assert.ErrorIs(t, b.SetPageSize(0), ErrInvalidPageSize)
	assert.Equal(t, 5, b.PageSize())
}

func TestBrowserClampsAfterFilterShrinks(t *testing.T) {
	b := NewBrowser(2)
	b.SetRecords(makeCats(10))
	b.SetPage(5)

	require.NoError(t, b.FilterByAge(intPtr(0), intPtr(2)))
	page, err := b.View()
	require.NoError(t, err)

	// ages 0, 1, 2 -> two pages
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, b.CurrentPage())
	assert.Equal(t, []string{"Cat02"}, names(page.Items))
}

func TestBrowserFilterByAge(t *testing.T) {
	b := NewBrowser(9)
	b.SetRecords([]models.Cat{{Name: "Mimi", Age: 1}, {Name: "Tom", Age: 5}})

	require.NoError(t, b.FilterByAge(intPtr(0), intPtr(2)))
	page, err := b.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mimi"}, names(page.Items))

	// show all clears the range instead of narrowing it to nothing
	require.NoError(t, b.FilterByAge(nil, nil))
	page, err = b.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mimi", "Tom"}, names(page.Items))

	// open upper bound
	require.NoError(t, b.FilterByAge(intPtr(3), nil))
	page, err = b.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tom"}, names(page.Items))

	assert.ErrorIs(t, b.FilterByAge(intPtr(4), intPtr(1)), ErrInvalidAgeRange)
}

func TestBrowserSortControls(t *testing.T) {
	b := NewBrowser(9)
	b.SetRecords(sampleCats())

	b.ToggleDirection()
	assert.Equal(t, &SortConfig{Field: SortByName, Direction: Ascending}, b.Sort())

	b.CycleSortField()
	assert.Equal(t, SortByAge, b.Sort().Field)

	b.ToggleDirection()
	page, err := b.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomasina", "Cleo", "Tom", "Leo", "Mimi"}, names(page.Items))

	b.CycleSortField()
	b.CycleSortField()
	assert.Equal(t, SortByName, b.Sort().Field)
	assert.Equal(t, Descending, b.Sort().Direction)

	b.SetSort(nil)
	page, err = b.View()
	require.NoError(t, err)
	assert.Equal(t, names(sampleCats()), names(page.Items))
}

func TestBrowserNavigation(t *testing.T) {
	b := NewBrowser(4)
	b.SetRecords(makeCats(10))

	b.PrevPage()
	assert.Equal(t, 1, b.CurrentPage())

	b.NextPage()
	b.NextPage()
	b.NextPage()
	assert.Equal(t, 3, b.CurrentPage())
}

func TestBrowserMutations(t *testing.T) {
	b := NewBrowser(9)
	b.SetRecords(sampleCats())

	b.Append(models.Cat{ID: "6", Name: "Gus", Age: 4})
	assert.Len(t, b.Records(), 6)

	assert.True(t, b.Replace(models.Cat{ID: "6", Name: "Gus", Age: 7}))
	assert.False(t, b.Replace(models.Cat{ID: "missing"}))

	b.Selection().Select(&models.Cat{Name: "Tom"})
	assert.Equal(t, 1, b.Remove("Tom"))
	assert.Equal(t, 0, b.Remove("Tom"))
	// removal does not touch the selection
	assert.NotNil(t, b.Selection().Current())

	assert.Equal(t, 7, b.Shaped()[4].Age)
}
