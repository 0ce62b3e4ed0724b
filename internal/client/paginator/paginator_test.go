package paginator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func pages(ps ...int) []Entry {
	entries := make([]Entry, 0, len(ps))
	for _, p := range ps {
		if p == 0 {
			entries = append(entries, Ellipsis)
			continue
		}
		entries = append(entries, PageEntry(p))
	}
	return entries
}

func TestPages_FullRunUpToThreshold(t *testing.T) {
	for totalPages := 1; totalPages <= 7; totalPages++ {
		for page := 1; page <= totalPages; page++ {
			got := Pages(page, totalPages)

			want := make([]Entry, 0, totalPages)
			for p := 1; p <= totalPages; p++ {
				want = append(want, PageEntry(p))
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("Pages(%d, %d) mismatch (-want +got):\n%s", page, totalPages, diff)
			}
			for _, e := range got {
				assert.False(t, e.Ellipsis)
			}
		}
	}
}

func TestPages_SlidingWindow(t *testing.T) {
	// 0 stands for an ellipsis entry.
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       []Entry
	}{
		{"middle page", 5, 10, pages(1, 0, 4, 5, 6, 0, 10)},
		{"first page, no leading ellipsis", 1, 10, pages(1, 2, 0, 10)},
		{"page 3 still attaches to the head", 3, 10, pages(1, 2, 3, 4, 0, 10)},
		{"page 4 detaches from the head", 4, 10, pages(1, 0, 3, 4, 5, 0, 10)},
		{"page near the tail", 8, 10, pages(1, 0, 7, 8, 9, 10)},
		{"last page", 10, 10, pages(1, 0, 9, 10)},
		{"large total", 50, 100, pages(1, 0, 49, 50, 51, 0, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pages(tt.page, tt.totalPages)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Pages(%d, %d) mismatch (-want +got):\n%s", tt.page, tt.totalPages, diff)
			}
		})
	}
}

func TestPages_ClampsTotalPages(t *testing.T) {
	assert.Equal(t, pages(1), Pages(1, 0))
	assert.Equal(t, pages(1), Pages(1, -3))
}

func TestPaginator_PreviousNextBoundaries(t *testing.T) {
	var requested []int
	p := &Paginator{Page: 1, TotalPages: 3, OnChange: func(page int) { requested = append(requested, page) }}

	p.Previous() // inert on page 1
	assert.Empty(t, requested)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p.Next()
	assert.Equal(t, []int{2}, requested)

	p.Page = 3
	p.Next() // inert on last page
	assert.Equal(t, []int{2}, requested)
	assert.False(t, p.HasNext())

	p.Previous()
	assert.Equal(t, []int{2, 2}, requested)
}

func TestPaginator_Jump(t *testing.T) {
	var requested []int
	p := &Paginator{Page: 1, TotalPages: 10, OnChange: func(page int) { requested = append(requested, page) }}

	p.Jump(7)
	assert.Equal(t, []int{7}, requested)
}

func TestPaginator_NilOnChangeDoesNotPanic(t *testing.T) {
	p := &Paginator{Page: 2, TotalPages: 3}
	p.Previous()
	p.Next()
	p.Jump(1)
}

func TestPaginator_Entries(t *testing.T) {
	p := &Paginator{Page: 5, TotalPages: 10}
	assert.Equal(t, pages(1, 0, 4, 5, 6, 0, 10), p.Entries())
}

func TestEntry_String(t *testing.T) {
	assert.Equal(t, "3", PageEntry(3).String())
	assert.Equal(t, "…", Ellipsis.String())
}
