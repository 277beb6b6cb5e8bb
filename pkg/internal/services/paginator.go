package services

import (
	"github.com/plumepress/plume/pkg/internal/models"
	"github.com/spf13/viper"
)

// Page is a bounded window over an ordered post collection plus the
// navigation metadata the renderer needs.
type Page struct {
	Items       []models.Post `json:"items"`
	Number      int           `json:"number"`
	TotalPages  int           `json:"total_pages"`
	HasPrevious bool          `json:"has_previous"`
	HasNext     bool          `json:"has_next"`
}

// PageSize is shared by every listing scope.
func PageSize() int {
	size := viper.GetInt("paginator.page_size")
	if size < 1 {
		size = 10
	}
	return size
}

// Paginate slices an already ordered collection into the requested page.
// Out-of-range requests clamp to the nearest existing page, so the only
// empty page is page 1 of an empty collection. It never re-sorts.
func Paginate(items []models.Post, size int, requested int) Page {
	if size < 1 {
		size = 1
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	} else if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:       items[start:end],
		Number:      number,
		TotalPages:  totalPages,
		HasPrevious: number > 1,
		HasNext:     number < totalPages,
	}
}
