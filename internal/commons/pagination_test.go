package commons

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_Defaults(t *testing.T) {
	p := NewPagination(0, 0)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestNewPagination_ClampsSize(t *testing.T) {
	p := NewPagination(1, 500)
	assert.Equal(t, MaxPageSize, p.Size)

	p = NewPagination(1, -3)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestNewPagination_ClampsPage(t *testing.T) {
	p := NewPagination(-2, 10)
	assert.Equal(t, 1, p.Page)
}

func TestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("pageSize", "25")

	p := FromQuery(values)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Size)
}

func TestFromQuery_MissingParams(t *testing.T) {
	p := FromQuery(url.Values{})

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestFromQuery_Garbage(t *testing.T) {
	values := url.Values{}
	values.Set("page", "abc")
	values.Set("pageSize", "9.5")

	p := FromQuery(values)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestWithTotal_SnapsToLastPage(t *testing.T) {
	p := NewPagination(9, 10).WithTotal(25)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Total)
}

func TestWithTotal_KeepsValidPage(t *testing.T) {
	p := NewPagination(2, 10).WithTotal(25)

	assert.Equal(t, 2, p.Page)
}

func TestWithTotal_EmptyResult(t *testing.T) {
	p := NewPagination(5, 10).WithTotal(0)

	assert.Equal(t, 5, p.Page)
	assert.Equal(t, 0, p.Pages())
}

func TestPages(t *testing.T) {
	assert.Equal(t, 3, NewPagination(1, 10).WithTotal(25).Pages())
	assert.Equal(t, 1, NewPagination(1, 10).WithTotal(10).Pages())
	assert.Equal(t, 2, NewPagination(1, 10).WithTotal(11).Pages())
	assert.Equal(t, 0, NewPagination(1, 10).WithTotal(0).Pages())
}

func TestOffsetAndLimit(t *testing.T) {
	p := NewPagination(3, 20)

	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestSlice(t *testing.T) {
	lo, hi := NewPagination(1, 10).Slice(25)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)

	lo, hi = NewPagination(3, 10).Slice(25)
	assert.Equal(t, 20, lo)
	assert.Equal(t, 25, hi)
}

func TestSlice_PageBeyondEnd(t *testing.T) {
	lo, hi := NewPagination(9, 10).Slice(25)

	assert.Equal(t, 20, lo)
	assert.Equal(t, 25, hi)
}

func TestSlice_Empty(t *testing.T) {
	lo, hi := NewPagination(4, 10).Slice(0)

	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}
