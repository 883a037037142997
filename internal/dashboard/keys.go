package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	TopN     key.Binding
	Debug    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Sort     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		TopN: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle count"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort order"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap. Disabled bindings are skipped by the
// help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TopN, k.Debug, k.Up, k.Down, k.PageUp, k.PageDown, k.Sort, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.TopN, k.Sort, k.Debug, k.Quit},
	}
}

// syncEnabled disables scrolling in a direction that is already at its
// boundary.
func (k *keyMap) syncEnabled(v *ViewState) {
	k.Up.SetEnabled(v.CanScrollUp())
	k.PageUp.SetEnabled(v.CanScrollUp())
	k.Down.SetEnabled(v.CanScrollDown())
	k.PageDown.SetEnabled(v.CanScrollDown())
}
