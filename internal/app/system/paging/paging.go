// internal/app/system/paging/paging.go
package paging

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the caller does not specify one.
const DefaultLimit = 10

// MaxLimit caps a single page so responses stay bounded.
const MaxLimit = 100

// ErrInvalidPagination is returned for negative or non-numeric limit/offset
// values, or a limit above MaxLimit.
var ErrInvalidPagination = errors.New("invalid pagination parameters")

// Page holds validated pagination bounds.
type Page struct {
	Limit  int
	Offset int
}

// Parse extracts and validates the "limit" and "offset" query parameters.
// Absent parameters fall back to DefaultLimit and offset 0; anything
// negative, non-numeric, or above MaxLimit is rejected rather than being
// silently clamped into a garbled slice.
func Parse(r *http.Request) (Page, error) {
	p := Page{Limit: DefaultLimit}

	if s := query.Get(r, "limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Page{}, ErrInvalidPagination
		}
		p.Limit = n
	}
	if s := query.Get(r, "offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Page{}, ErrInvalidPagination
		}
		p.Offset = n
	}

	return Validate(p.Limit, p.Offset)
}

// Validate checks explicit limit/offset values.
func Validate(limit, offset int) (Page, error) {
	if limit < 0 || offset < 0 || limit > MaxLimit {
		return Page{}, ErrInvalidPagination
	}
	return Page{Limit: limit, Offset: offset}, nil
}
