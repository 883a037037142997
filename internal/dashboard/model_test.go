package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zekorei/Keylog/internal/counter"
	"github.com/Zekorei/Keylog/internal/model"
)

func newTestModel(t *testing.T, st *counter.Store) *Model {
	t.Helper()
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	return NewModel(st, Options{
		TopN:          10,
		GrowPadding:   DefaultGrowPadding,
		ShrinkPadding: DefaultShrinkPadding,
		FlashDuration: DefaultFlashDuration,
		Clock:         func() time.Time { return now },
	})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelResizeSetsPageSize(t *testing.T) {
	m := newTestModel(t, counter.NewStore(nil))
	if m.view.PageSize != 1 {
		t.Fatalf("expected page size 1 before the first resize, got %d", m.view.PageSize)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if want := 30 - chromeHeight - DefaultShrinkPadding; m.view.PageSize != want {
		t.Fatalf("expected page size %d, got %d", want, m.view.PageSize)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if want := 40 - chromeHeight - DefaultGrowPadding; m.view.PageSize != want {
		t.Fatalf("expected page size %d after growing, got %d", want, m.view.PageSize)
	}
}

func TestModelKeyActions(t *testing.T) {
	m := newTestModel(t, counter.NewStore(nil))
	m.Update(runeKey("n"))
	if m.view.TopN() != 25 {
		t.Fatalf("expected top-N 25, got %d", m.view.TopN())
	}
	m.Update(runeKey("s"))
	if m.view.SortDescending {
		t.Fatalf("expected ascending sort")
	}
	m.Update(runeKey("d"))
	if !m.view.DebugVisible {
		t.Fatalf("expected debug visible")
	}
	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command on ctrl+c")
	}
}

func TestModelScrollDisabledAtBoundary(t *testing.T) {
	st := counter.NewStore(nil)
	for _, label := range []string{"a", "b", "c", "d", "e", "f"} {
		st.Increment(model.Keyboard, label)
	}
	m := newTestModel(t, st)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: chromeHeight + DefaultShrinkPadding + 3})
	if m.view.PageSize != 3 {
		t.Fatalf("expected page size 3, got %d", m.view.PageSize)
	}
	if m.keys.Up.Enabled() {
		t.Fatalf("up should be disabled at offset 0")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.view.Offset != 0 {
		t.Fatalf("offset moved to %d", m.view.Offset)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.view.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", m.view.Offset)
	}
	if m.keys.Down.Enabled() || m.keys.PageDown.Enabled() {
		t.Fatalf("down should be disabled at the last page")
	}
	m.Update(runeKey("k"))
	if m.view.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", m.view.Offset)
	}
}

func TestModelTickPicksUpNewCounts(t *testing.T) {
	st := counter.NewStore(nil)
	m := newTestModel(t, st)
	st.Increment(model.Keyboard, "x")
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected the next tick to be scheduled")
	}
	if m.frame.Totals.Keyboard != 1 || len(m.frame.Keyboard) != 1 || m.frame.Keyboard[0].Label != "x" {
		t.Fatalf("unexpected frame %+v", m.frame)
	}
}

func TestModelView(t *testing.T) {
	st := counter.NewStore(nil)
	st.Increment(model.Keyboard, "space")
	st.Increment(model.Mouse, "left")
	m := newTestModel(t, st)
	if m.View() != "" {
		t.Fatalf("expected empty view before the first size report")
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(runeKey("d"))
	view := m.View()
	for _, want := range []string{"keylog", "15:04:05", "Keyboard", "Mouse", "space", "left", "Currently Displaying:", "DEBUG: offset=0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if got := len(strings.Split(view, "\n")); got != 30 {
		t.Fatalf("expected 30 lines, got %d", got)
	}
}
