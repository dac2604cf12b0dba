package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndNormalizePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values pass through", 2, 50, 2, 50},
		{"zero page defaults to first", 0, 50, 1, 50},
		{"negative page defaults to first", -3, 50, 1, 50},
		{"zero page size gets default", 1, 0, 1, 20},
		{"oversized page size is capped", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := ValidateAndNormalizePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestCalculatePaginationInfo(t *testing.T) {
	info := CalculatePaginationInfo(45, 2, 20)
	assert.Equal(t, 45, info.Total)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	empty := CalculatePaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 40, CalculateOffset(3, 20))
}

func TestParsePaginationFromQuery(t *testing.T) {
	page, pageSize := ParsePaginationFromQuery("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)

	page, pageSize = ParsePaginationFromQuery("3", "50")
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, pageSize)

	// Garbage and out-of-range values fall back to defaults.
	page, pageSize = ParsePaginationFromQuery("abc", "101")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)
}
