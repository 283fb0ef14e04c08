package pagination

import "math"

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 25 -> Offset 0
//   - Page 2, Limit 25 -> Offset 25
//   - Page 3, Limit 10 -> Offset 20
//
// Offsets that do not fit an int saturate at math.MaxInt.
func CalculateOffset(page, limit int) int {
	if page > 1 && limit > 0 && page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
//
// Special cases:
//   - If limit < 1, returns 1 (everything on one page)
//   - If limit > total, returns 1 (including total 0)
//   - Otherwise, returns ceil(total / limit)
//
// Examples:
//   - Total 0, Limit 25 -> 1 page
//   - Total 10, Limit 25 -> 1 page
//   - Total 25, Limit 25 -> 1 page
//   - Total 26, Limit 25 -> 2 pages
//   - Total 100, Limit 25 -> 4 pages
func CalculateTotalPages(total, limit int) int {
	if limit < 1 || limit > total {
		return 1
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return pages
}

// CalculateCountEnd returns the number of the last item shown on a page
// starting at offset. A limit below 1 shows every item.
func CalculateCountEnd(offset, limit, total int) int {
	if limit < 1 || offset >= total-limit {
		return total
	}
	return offset + limit
}

// Window is a contiguous run of page numbers centred on the current page.
type Window struct {
	Start int
	End   int

	// ShiftedRight is set when the window ran past page 1 and was moved right.
	ShiftedRight bool
	// ShiftedLeft is set when the window ran past the last page and was moved left.
	ShiftedLeft bool
}

// Pages returns the page numbers from Start to End inclusive.
func (w Window) Pages() []int {
	if w.End < w.Start {
		return nil
	}
	pages := make([]int, 0, w.End-w.Start+1)
	for p := w.Start; p <= w.End; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// CalculateWindow computes the page-number window of width midRange around
// current, for a listing of numPages pages.
//
// The window first starts midRange/2 pages before current. If it runs past
// page 1 it is shifted right; if it then runs past numPages it is shifted
// left, stopping at page 1. A listing shorter than midRange yields every
// page exactly once. A current page past numPages is treated as the last
// page.
//
// Examples (midRange 5):
//   - Current 1, 4 pages -> 1..4
//   - Current 5, 10 pages -> 3..7
//   - Current 10, 10 pages -> 6..10
func CalculateWindow(current, midRange, numPages int) Window {
	if midRange < 1 {
		midRange = 1
	}
	if numPages < 1 {
		numPages = 1
	}
	current = max(min(current, numPages), 1)

	var w Window
	start := current - midRange/2

	if start <= 0 {
		start = 1
		w.ShiftedRight = true
	}

	// Same as start+midRange-1 > numPages without overflowing.
	if midRange-1 > numPages-start {
		start = max(numPages-midRange+1, 1)
		w.ShiftedLeft = true
	}

	w.Start = start
	w.End = start + min(midRange, numPages) - 1

	return w
}
