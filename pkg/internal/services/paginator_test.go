package services

import (
	"testing"

	"github.com/plumepress/plume/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func makePosts(n int) []models.Post {
	items := make([]models.Post, n)
	for i := 0; i < n; i++ {
		items[i] = models.Post{BaseModel: models.BaseModel{ID: uint(n - i)}}
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		size         int
		requested    int
		wantNumber   int
		wantTotal    int
		wantItems    int
		wantPrevious bool
		wantNext     bool
	}{
		{"first of two pages", 13, 10, 1, 1, 2, 10, false, true},
		{"last partial page", 13, 10, 2, 2, 2, 3, true, false},
		{"beyond last clamps to last", 13, 10, 3, 2, 2, 3, true, false},
		{"page zero clamps to first", 13, 10, 0, 1, 2, 10, false, true},
		{"negative clamps to first", 13, 10, -5, 1, 2, 10, false, true},
		{"exact multiple", 20, 10, 2, 2, 2, 10, true, false},
		{"single page", 3, 10, 1, 1, 1, 3, false, false},
		{"empty collection", 0, 10, 1, 1, 1, 0, false, false},
		{"empty collection high page", 0, 10, 7, 1, 1, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makePosts(tt.total), tt.size, tt.requested)

			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantTotal, page.TotalPages)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantPrevious, page.HasPrevious)
			assert.Equal(t, tt.wantNext, page.HasNext)
		})
	}
}

func TestPaginateKeepsOrderAndCoversEverything(t *testing.T) {
	items := makePosts(23)
	size := 5

	var seen []uint
	page := Paginate(items, size, 1)
	seen = append(seen, collectIDs(page.Items)...)
	for page.HasNext {
		page = Paginate(items, size, page.Number+1)
		seen = append(seen, collectIDs(page.Items)...)
	}

	assert.Equal(t, collectIDs(items), seen)
}

func TestPaginateNeverResorts(t *testing.T) {
	items := []models.Post{
		{BaseModel: models.BaseModel{ID: 2}},
		{BaseModel: models.BaseModel{ID: 9}},
		{BaseModel: models.BaseModel{ID: 4}},
	}

	page := Paginate(items, 10, 1)

	assert.Equal(t, []uint{2, 9, 4}, collectIDs(page.Items))
}

func collectIDs(items []models.Post) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
