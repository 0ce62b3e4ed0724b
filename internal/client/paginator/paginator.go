// Package paginator computes the page-selector row for paged listings: a
// sliding window of page numbers around the current page with the first and
// last pages pinned and collapsed gaps, plus controlled previous/next/jump
// navigation. The package owns no page state; the caller remains the single
// source of truth and receives requested page changes through a callback.
package paginator

import "strconv"

// fullRunThreshold is the page count up to which all pages are shown
// without collapsing.
const fullRunThreshold = 7

// siblings is how many pages are shown on each side of the current page
// when the window is collapsed.
const siblings = 1

// Entry is one slot in the rendered page-selector row: either a concrete
// page number or an ellipsis standing in for a collapsed range.
type Entry struct {
	Page     int
	Ellipsis bool
}

func (e Entry) String() string {
	if e.Ellipsis {
		return "…"
	}
	return strconv.Itoa(e.Page)
}

// Ellipsis is the collapsed-range marker.
var Ellipsis = Entry{Ellipsis: true}

// PageEntry returns the selector entry for page p.
func PageEntry(p int) Entry {
	return Entry{Page: p}
}

// Pages computes the ordered selector entries for the given current page and
// total page count. totalPages below 1 is treated as 1. When the total fits
// the threshold the full run 1..totalPages is returned with no ellipsis;
// otherwise the first and last pages are pinned, a window of siblings
// surrounds the current page, and gaps collapse to ellipsis entries.
func Pages(page, totalPages int) []Entry {
	if totalPages < 1 {
		totalPages = 1
	}

	if totalPages <= fullRunThreshold {
		entries := make([]Entry, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			entries = append(entries, PageEntry(p))
		}
		return entries
	}

	entries := []Entry{PageEntry(1)}

	if page > siblings+2 {
		entries = append(entries, Ellipsis)
	}

	// The window never overlaps the pinned first/last pages.
	start := max(2, page-siblings)
	end := min(totalPages-1, page+siblings)
	for p := start; p <= end; p++ {
		entries = append(entries, PageEntry(p))
	}

	if page < totalPages-siblings-1 {
		entries = append(entries, Ellipsis)
	}

	return append(entries, PageEntry(totalPages))
}

// Paginator provides navigation over a paged listing without owning the page
// number itself: every accepted move is reported through OnChange and the
// caller commits (or ignores) it.
type Paginator struct {
	// Page is the current 1-based page.
	Page int
	// TotalPages is the total page count; values below 1 render as 1.
	TotalPages int
	// OnChange receives the requested page on every accepted navigation.
	OnChange func(page int)
}

func (p *Paginator) totalPages() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// HasPrev reports whether the previous control is active.
func (p *Paginator) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether the next control is active.
func (p *Paginator) HasNext() bool { return p.Page < p.totalPages() }

// Previous requests the preceding page. No-op on the first page.
func (p *Paginator) Previous() {
	if p.HasPrev() {
		p.emit(p.Page - 1)
	}
}

// Next requests the following page. No-op on the last page.
func (p *Paginator) Next() {
	if p.HasNext() {
		p.emit(p.Page + 1)
	}
}

// Jump requests page n directly. Callers are expected to pass page numbers
// that were actually rendered; no further bounds checking is done here.
func (p *Paginator) Jump(n int) {
	p.emit(n)
}

// Entries returns the selector row for the paginator's current state.
func (p *Paginator) Entries() []Entry {
	return Pages(p.Page, p.TotalPages)
}

func (p *Paginator) emit(page int) {
	if p.OnChange != nil {
		p.OnChange(page)
	}
}
