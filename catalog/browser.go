package catalog

import (
	"slices"
	"strings"

	"catdistribution/backend/models"
)

// Browser is the list state behind a catalog view: the raw collection, the
// filter, sort and pagination inputs, and the selection. It is not safe for
// concurrent use; a view owns it from its event loop.
type Browser struct {
	records     []models.Cat
	filter      FilterState
	sort        *SortConfig
	pageSize    int
	currentPage int
	selection   Selection
}

// NewBrowser returns a browser on page 1. A non-positive pageSize falls back
// to DefaultPageSize.
func NewBrowser(pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{pageSize: pageSize, currentPage: 1}
}

func (b *Browser) SetRecords(records []models.Cat) {
	b.records = slices.Clone(records)
}

// Append adds a record to the end of the raw collection
func (b *Browser) Append(c models.Cat) {
	b.records = append(b.records, c)
}

// Replace swaps the first record carrying c's ID for c
func (b *Browser) Replace(c models.Cat) bool {
	for i := range b.records {
		if b.records[i].ID == c.ID {
			b.records[i] = c
			return true
		}
	}
	return false
}

// Remove drops every record named name and reports how many went away
func (b *Browser) Remove(name string) int {
	before := len(b.records)
	b.records = slices.DeleteFunc(b.records, func(c models.Cat) bool {
		return c.Name == name
	})
	return before - len(b.records)
}

func (b *Browser) Records() []models.Cat {
	return slices.Clone(b.records)
}

func (b *Browser) Filter() FilterState {
	return b.filter
}

// SetSearchTerm starts a new query from page 1. Re-sending the same term
// keeps the current page.
func (b *Browser) SetSearchTerm(term string) {
	if strings.TrimSpace(term) == strings.TrimSpace(b.filter.SearchTerm) {
		b.filter.SearchTerm = term
		return
	}
	b.filter.SearchTerm = term
	b.currentPage = 1
}

// FilterByAge restricts ages to [min, max]. Passing nil for both clears the
// restriction; a single nil bound is open on that side.
func (b *Browser) FilterByAge(min, max *int) error {
	if min == nil && max == nil {
		b.filter.Ages = nil
		return nil
	}

	lo, hi := 0, models.MaxCatAge
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}

	r, err := NewAgeRange(lo, hi)
	if err != nil {
		return err
	}
	b.filter.Ages = r
	return nil
}

// SetAgeRange is FilterByAge for a preset range; nil shows everything
func (b *Browser) SetAgeRange(r *AgeRange) {
	if r == nil {
		b.filter.Ages = nil
		return
	}
	cp := *r
	b.filter.Ages = &cp
}

func (b *Browser) Sort() *SortConfig {
	return b.sort
}

func (b *Browser) SetSort(cfg *SortConfig) {
	if cfg == nil {
		b.sort = nil
		return
	}
	cp := *cfg
	b.sort = &cp
}

// ToggleDirection flips the sort direction, sorting by name when no sort is set
func (b *Browser) ToggleDirection() {
	if b.sort == nil {
		b.sort = &SortConfig{Field: SortByName, Direction: Ascending}
		return
	}
	toggled := b.sort.Toggled()
	b.sort = &toggled
}

// CycleSortField moves to the next sort key, keeping the direction
func (b *Browser) CycleSortField() {
	if b.sort == nil {
		b.sort = &SortConfig{Field: SortFields[0], Direction: Ascending}
		return
	}
	i := slices.Index(SortFields, b.sort.Field)
	b.sort = &SortConfig{Field: SortFields[(i+1)%len(SortFields)], Direction: b.sort.Direction}
}

func (b *Browser) PageSize() int {
	return b.pageSize
}

// SetPageSize changes the page size and returns to page 1
func (b *Browser) SetPageSize(size int) error {
	if size <= 0 {
		return ErrInvalidPageSize
	}
	b.pageSize = size
	b.currentPage = 1
	return nil
}

func (b *Browser) CurrentPage() int {
	return b.currentPage
}

// SetPage moves to page; the next View clamps it
func (b *Browser) SetPage(page int) {
	b.currentPage = page
}

func (b *Browser) NextPage() {
	b.currentPage++
	b.clamp()
}

func (b *Browser) PrevPage() {
	b.currentPage--
	b.clamp()
}

func (b *Browser) Selection() *Selection {
	return &b.selection
}

// Shaped returns the filtered and sorted collection without paginating it
func (b *Browser) Shaped() []models.Cat {
	return Sort(b.filter.Apply(b.records), b.sort)
}

// View runs the pipeline and stores the clamped page
func (b *Browser) View() (Page, error) {
	page, err := Paginate(b.Shaped(), b.pageSize, b.currentPage)
	if err != nil {
		return Page{}, err
	}
	b.currentPage = page.CurrentPage
	return page, nil
}

func (b *Browser) clamp() {
	n := len(b.filter.Apply(b.records))
	b.currentPage = ClampPage(b.currentPage, TotalPages(n, b.pageSize))
}
