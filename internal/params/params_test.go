package params

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"", 1, 10, 0},
		{"page=2&limit=5", 2, 5, 5},
		{"page=3", 3, 10, 20},
		{"page=0&limit=-1", 1, 10, 0},
		{"page=abc&limit=xyz", 1, 10, 0},
		{"limit=1000", 1, 100, 0},
		{"page= 4 &limit= 25 ", 4, 25, 75},
		{"page=9223372036854775807&limit=10", math.MaxInt / 10, 10, (math.MaxInt/10 - 1) * 10},
		{"page=99999999999999999999", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			p := ParsePagination(q)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
			assert.GreaterOrEqual(t, p.Offset, 0)
		})
	}
}

func TestHugePageIsAnEmptyLastPage(t *testing.T) {
	p := ParsePagination(url.Values{"page": {"9223372036854775807"}, "limit": {"10"}})
	p.ComputeMeta(12)

	assert.GreaterOrEqual(t, p.Offset, 0)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 2, p.TotalPages)
}

func TestComputeMeta(t *testing.T) {
	p := Pagination{Page: 2, Limit: 5, Offset: 5}
	p.ComputeMeta(12)

	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	last := Pagination{Page: 3, Limit: 5}
	last.ComputeMeta(12)
	assert.False(t, last.HasNext)

	empty := Pagination{Page: 1, Limit: 10}
	empty.ComputeMeta(0)
	assert.Equal(t, 0, empty.TotalPages)
}
