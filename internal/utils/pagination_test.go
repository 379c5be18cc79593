package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		page, size   string
		wantPage     int
		wantPageSize int
		wantOK       bool
	}{
		{"nothing given", "", "", 1, defaultPageSize, false},
		{"page only", "3", "", 3, defaultPageSize, false},
		{"both given", "2", "10", 2, 10, true},
		{"invalid page", "abc", "10", 1, 10, true},
		{"negative page", "-4", "10", 1, 10, true},
		{"size above max", "1", "500", 1, defaultPageSize, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, ok := ParsePaginationFromQuery(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(25, 2, 10)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = PageBounds(25, 3, 10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = PageBounds(5, 4, 10)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestPageBounds_HugePageDoesNotOverflow(t *testing.T) {
	page, pageSize, ok := ParsePaginationFromQuery("9223372036854775807", "2")
	assert.True(t, ok)

	start, end := PageBounds(3, page, pageSize)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)

	start, end = PageBounds(3, math.MaxInt, math.MaxInt)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(25, 2, 10)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := CalculatePaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}
