package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// URL: /api/products?page=2&limit=5
// → ParsePagination() → Pagination{Limit:5, Page:2, Offset:5}
// → SQL: SELECT ... LIMIT 5 OFFSET 5
// → ComputeMeta(total) → fills TotalPages, HasNext, etc.
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"-"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ParsePagination parses ?limit=...&page=... Anything non-numeric or out of range falls back
// to the defaults; limit is capped at MaxLimit and page at the largest value whose offset fits
// in an int.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit: DefaultLimit,
		Page:  1,
	}

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = DefaultLimit
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	// keep (page-1)*limit inside int
	if maxPage := math.MaxInt / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination after fetching total count.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = p.Page < p.TotalPages
}
