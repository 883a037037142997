// Package dashboard renders live input counts as a Bubble Tea program.
package dashboard

import "strconv"

// TopNOptions is the top-N cycle. Zero shows every label.
var TopNOptions = []int{5, 10, 25, 0}

// Default padding between the available height and the keyboard page size.
const (
	DefaultGrowPadding   = 5
	DefaultShrinkPadding = 7
)

// ViewState holds the keyboard table's paging, sort and toggle state.
// It is owned by the UI goroutine. Every action leaves Offset clamped to
// [0, MaxOffset()].
type ViewState struct {
	SortDescending bool
	Offset         int
	PageSize       int
	DebugVisible   bool

	topNIndex     int
	total         int
	lastHeight    int
	growPadding   int
	shrinkPadding int
}

// NewViewState returns the initial state: descending, top 10, offset 0,
// debug hidden and a page size of 1 until the first Resize. Negative
// paddings fall back to the defaults; zero is a valid padding.
func NewViewState(topN, growPadding, shrinkPadding int) *ViewState {
	if growPadding < 0 {
		growPadding = DefaultGrowPadding
	}
	if shrinkPadding < 0 {
		shrinkPadding = DefaultShrinkPadding
	}
	v := &ViewState{
		SortDescending: true,
		PageSize:       1,
		topNIndex:      1,
		lastHeight:     -1,
		growPadding:    growPadding,
		shrinkPadding:  shrinkPadding,
	}
	for i, n := range TopNOptions {
		if n == topN {
			v.topNIndex = i
			break
		}
	}
	return v
}

// TopN returns the current row limit; zero means unbounded.
func (v *ViewState) TopN() int {
	return TopNOptions[v.topNIndex]
}

// TopNLabel returns the limit as shown in the status line.
func (v *ViewState) TopNLabel() string {
	if v.TopN() == 0 {
		return "All"
	}
	return strconv.Itoa(v.TopN())
}

// Visible returns how many rows survive top-N truncation out of total.
func (v *ViewState) Visible(total int) int {
	if n := v.TopN(); n > 0 && total > n {
		return n
	}
	return total
}

// SetTotal records the number of keyboard labels and re-clamps.
func (v *ViewState) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	v.total = total
	v.Clamp()
}

// MaxOffset returns the largest valid offset for the current rows.
func (v *ViewState) MaxOffset() int {
	return maxInt(v.Visible(v.total)-v.PageSize, 0)
}

// Clamp forces Offset into [0, MaxOffset()].
func (v *ViewState) Clamp() {
	if v.PageSize < 1 {
		v.PageSize = 1
	}
	if v.Offset > v.MaxOffset() {
		v.Offset = v.MaxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// ToggleTopN cycles 5, 10, 25, all.
func (v *ViewState) ToggleTopN() {
	v.topNIndex = (v.topNIndex + 1) % len(TopNOptions)
	v.Clamp()
}

// ToggleDebug shows or hides the debug line.
func (v *ViewState) ToggleDebug() {
	v.DebugVisible = !v.DebugVisible
	v.Clamp()
}

// ToggleSort flips the sort direction.
func (v *ViewState) ToggleSort() {
	v.SortDescending = !v.SortDescending
	v.Clamp()
}

// ScrollUp moves the window up one row.
func (v *ViewState) ScrollUp() {
	v.Offset--
	v.Clamp()
}

// ScrollDown moves the window down one row.
func (v *ViewState) ScrollDown() {
	v.Offset++
	v.Clamp()
}

// PageUp moves the window up one page.
func (v *ViewState) PageUp() {
	v.Offset -= v.PageSize
	v.Clamp()
}

// PageDown moves the window down one page.
func (v *ViewState) PageDown() {
	v.Offset += v.PageSize
	v.Clamp()
}

// CanScrollUp reports whether up and page-up would move the window.
func (v *ViewState) CanScrollUp() bool {
	return v.Offset > 0
}

// CanScrollDown reports whether down and page-down would move the window.
func (v *ViewState) CanScrollDown() bool {
	return v.Offset < v.MaxOffset()
}

// Resize derives the page size from the height available to the keyboard
// panel. A taller surface uses the grow padding, anything else the shrink
// padding.
func (v *ViewState) Resize(height int) {
	grew := v.lastHeight >= 0 && height > v.lastHeight
	v.lastHeight = height
	padding := v.shrinkPadding
	if grew {
		padding = v.growPadding
	}
	v.PageSize = maxInt(height-padding, 1)
	v.Clamp()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
