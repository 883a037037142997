package dashboard

import (
	"sort"
	"time"

	"github.com/Zekorei/Keylog/internal/model"
)

// Row is one table line.
type Row struct {
	Label string
	Count int
	Flash bool
}

// Totals holds the summary counts and their highlight state.
type Totals struct {
	Keyboard      int
	Mouse         int
	Combined      int
	KeyboardFlash bool
	MouseFlash    bool
	CombinedFlash bool
}

// Frame is everything one refresh draws.
type Frame struct {
	Totals Totals
	// Keyboard is the visible window of keyboard rows.
	Keyboard []Row
	// Mouse lists every button in display order.
	Mouse []Row
	// Labels is the number of keyboard labels before truncation.
	Labels  int
	Visible int
}

// Renderer turns count snapshots into frames. It owns the flash state and
// must only be used from the UI goroutine.
type Renderer struct {
	keys    *FlashTracker
	buttons *FlashTracker
	totals  *FlashTracker
}

// NewRenderer returns a Renderer with the given flash duration.
func NewRenderer(flash time.Duration) *Renderer {
	return &Renderer{
		keys:    NewFlashTracker(flash),
		buttons: NewFlashTracker(flash),
		totals:  NewFlashTracker(flash),
	}
}

// Build derives a frame from table. It updates view's row count, which
// re-clamps the offset before the window is cut.
func (r *Renderer) Build(table model.CountTable, view *ViewState, now time.Time) Frame {
	kb := table.Total(model.Keyboard)
	ms := table.Total(model.Mouse)
	totals := Totals{
		Keyboard:      kb,
		Mouse:         ms,
		Combined:      kb + ms,
		KeyboardFlash: r.totals.Observe("keyboard", kb, now),
		MouseFlash:    r.totals.Observe("mouse", ms, now),
		CombinedFlash: r.totals.Observe("total", kb+ms, now),
	}

	rows := make([]Row, 0, len(table[model.Keyboard]))
	for label, n := range table[model.Keyboard] {
		rows = append(rows, Row{Label: label, Count: n, Flash: r.keys.Observe(label, n, now)})
	}
	SortRows(rows, view.SortDescending)

	view.SetTotal(len(rows))
	visible := view.Visible(len(rows))
	rows = rows[:visible]
	start := minInt(view.Offset, visible)
	end := minInt(start+view.PageSize, visible)

	mouse := make([]Row, 0, len(table[model.Mouse]))
	for _, label := range model.ButtonOrder(table[model.Mouse]) {
		n := table[model.Mouse][label]
		mouse = append(mouse, Row{Label: label, Count: n, Flash: r.buttons.Observe(label, n, now)})
	}

	return Frame{
		Totals:   totals,
		Keyboard: rows[start:end],
		Mouse:    mouse,
		Labels:   len(table[model.Keyboard]),
		Visible:  visible,
	}
}

// SortRows orders rows by count, ties by label ascending.
func SortRows(rows []Row, descending bool) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			if descending {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Count < rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
}
