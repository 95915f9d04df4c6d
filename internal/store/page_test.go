package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		size       int
		wantNumber int
		wantSize   int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize, 0},
		{"negative values", -3, -1, 1, DefaultPageSize, 0},
		{"explicit page", 3, 10, 3, 10, 20},
		{"size capped", 2, 1000, 2, MaxPageSize, MaxPageSize},
		{"size of one", 5, 1, 5, 1, 4},
		{"number capped", math.MaxInt, MaxPageSize, MaxPageNumber, MaxPageSize, (MaxPageNumber - 1) * MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSize, p.Size)
			assert.Equal(t, tt.wantSize, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestPageResult_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"empty", 0, 20, 0},
		{"partial page", 5, 20, 1},
		{"exact fit", 40, 20, 2},
		{"one over", 41, 20, 3},
		{"zero size", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PageResult[int]{Total: tt.total, Page: Page{Number: 1, Size: tt.size}}
			assert.Equal(t, tt.want, r.TotalPages())
		})
	}
}
