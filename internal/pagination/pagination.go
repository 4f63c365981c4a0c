// Package pagination provides the page envelope used by every list endpoint.
//
// Pages are numbered from 1 and sized by configuration. Callers must apply a
// deterministic ordering (creation time then id) to the underlying query so
// that repeated calls with the same parameters return identical pages.
package pagination

// DefaultPageSize is used when configuration does not provide one.
const DefaultPageSize = 10

// Page is the response envelope for a single page of results.
type Page[T any] struct {
	Count    int64 `json:"count"`
	Next     *int  `json:"next"`
	Previous *int  `json:"previous"`
	Results  []T   `json:"results"`
}

// Normalize clamps page and pageSize to sane values. Page numbers below 1
// become 1; a non-positive page size falls back to the default. Out-of-range
// pages are left as-is: they yield an empty result list, not an error.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// Window returns the query offset for the given page and page size.
func Window(page, pageSize int) int {
	page, pageSize = Normalize(page, pageSize)
	return (page - 1) * pageSize
}

// NewPage assembles the envelope for a page of results. Results must already
// be the slice for the requested window; count is the unsliced total.
func NewPage[T any](results []T, count int64, page, pageSize int) *Page[T] {
	page, pageSize = Normalize(page, pageSize)
	if results == nil {
		results = []T{}
	}

	p := &Page[T]{
		Count:   count,
		Results: results,
	}

	offset := (page - 1) * pageSize
	if int64(offset+len(results)) < count {
		next := page + 1
		p.Next = &next
	}
	if page > 1 && int64(offset) <= count {
		previous := page - 1
		p.Previous = &previous
	}

	return p
}
