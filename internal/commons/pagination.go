package commons

import (
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is a normalized page/size/total triple. Page is 1-based. A
// Pagination built through NewPagination or FromQuery never produces an
// offset outside [0, total] and never exceeds MaxPageSize rows per page.
type Pagination struct {
	Page  int
	Size  int
	Total int
}

func NewPagination(page, size int) Pagination {
	p := Pagination{Page: page, Size: size}
	return p.normalized()
}

// FromQuery reads "page" and "pageSize" query parameters, falling back to
// page 1 and DefaultPageSize for missing or unparsable values.
func FromQuery(values url.Values) Pagination {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil {
		page = 1
	}
	size, err := strconv.Atoi(values.Get("pageSize"))
	if err != nil {
		size = DefaultPageSize
	}
	return NewPagination(page, size)
}

func (p Pagination) normalized() Pagination {
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Total < 0 {
		p.Total = 0
	}
	return p
}

// WithTotal records the row count and snaps the page back onto the last
// non-empty page when the current page starts beyond it.
func (p Pagination) WithTotal(total int) Pagination {
	p.Total = total
	p = p.normalized()
	if last := p.Pages(); last > 0 && p.Page > last {
		p.Page = last
	}
	return p
}

// Pages returns the number of pages for the recorded total, 0 when empty.
func (p Pagination) Pages() int {
	p = p.normalized()
	if p.Total == 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}

// Offset returns the SQL offset of the current page.
func (p Pagination) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.Size
}

// Limit returns the SQL limit of the current page.
func (p Pagination) Limit() int {
	return p.normalized().Size
}

// Slice returns the [lo, hi) bounds of the current page over an in-memory
// list of n elements. Bounds are always valid slice indexes into the list.
func (p Pagination) Slice(n int) (int, int) {
	p = p.WithTotal(n)
	lo := p.Offset()
	if lo > n {
		lo = n
	}
	hi := lo + p.Size
	if hi > n {
		hi = n
	}
	return lo, hi
}
