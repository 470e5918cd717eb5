package catalog

import (
	"errors"
	"fmt"

	"catdistribution/backend/models"
)

// DefaultPageSize matches the nine-card grid of the list view
const DefaultPageSize = 9

var ErrInvalidPageSize = errors.New("invalid page size")

// Page is one slice of a shaped collection. CurrentPage always lies in
// [1, TotalPages] and TotalPages is at least 1.
type Page struct {
	Items       []models.Cat `json:"items"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	PageSize    int          `json:"pageSize"`
	TotalItems  int          `json:"totalItems"`
}

// TotalPages returns max(1, ceil(n/pageSize))
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage moves page into [1, totalPages]
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the records of currentPage, clamping it first so a result
// set that shrank under the caller still yields its last page.
func Paginate(records []models.Cat, pageSize, currentPage int) (Page, error) {
	if pageSize <= 0 {
		return Page{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}

	total := TotalPages(len(records), pageSize)
	page := ClampPage(currentPage, total)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(records))

	items := make([]models.Cat, 0, end-start)
	if start < end {
		items = append(items, records[start:end]...)
	}

	return Page{
		Items:       items,
		CurrentPage: page,
		TotalPages:  total,
		PageSize:    pageSize,
		TotalItems:  len(records),
	}, nil
}
