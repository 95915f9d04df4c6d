package store

import "math"

// Paging defaults.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPageNumber keeps Offset within int range for any allowed size.
	MaxPageNumber = math.MaxInt / MaxPageSize
)

// Page selects a window of a listing. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes raw paging input: non-positive values fall back to the
// first page and the default size. Size is capped at MaxPageSize and number
// at MaxPageNumber.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Limit returns the SQL LIMIT for the page.
func (p Page) Limit() int {
	return p.Size
}

// Offset returns the SQL OFFSET for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PageResult is one page of a listing together with the total row count.
type PageResult[T any] struct {
	Items []T
	Total int64
	Page  Page
}

// TotalPages returns the number of pages needed to show Total items.
func (r PageResult[T]) TotalPages() int {
	if r.Page.Size == 0 {
		return 0
	}
	return int((r.Total + int64(r.Page.Size) - 1) / int64(r.Page.Size))
}
