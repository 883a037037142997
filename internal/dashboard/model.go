package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zekorei/Keylog/internal/model"
)

// DefaultRefreshInterval is the render tick.
const DefaultRefreshInterval = 100 * time.Millisecond

// Snapshotter returns a deep copy of the live counts.
type Snapshotter interface {
	Snapshot() model.CountTable
}

// Options configure the dashboard. A zero RefreshInterval falls back to
// DefaultRefreshInterval. Negative paddings and flash durations fall back to
// their defaults, zero ones are used as given. TopN must be one of
// TopNOptions; zero shows every label and any other value starts at 10.
type Options struct {
	RefreshInterval time.Duration
	FlashDuration   time.Duration
	TopN            int
	GrowPadding     int
	ShrinkPadding   int
	Clock           func() time.Time
}

type tickMsg time.Time

// Model implements the Bubble Tea dashboard.
type Model struct {
	src      Snapshotter
	opts     Options
	view     *ViewState
	renderer *Renderer
	keys     keyMap
	help     help.Model

	frame Frame
	now   time.Time

	width  int
	height int
}

// NewModel constructs a dashboard reading counts from src.
func NewModel(src Snapshotter, opts Options) *Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	m := &Model{
		src:      src,
		opts:     opts,
		view:     NewViewState(opts.TopN, opts.GrowPadding, opts.ShrinkPadding),
		renderer: NewRenderer(opts.FlashDuration),
		keys:     newKeyMap(),
		help:     help.New(),
	}
	m.refresh(opts.Clock())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh(time.Time(msg))
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.view.Resize(m.panelHeight())
		m.refresh(m.opts.Clock())
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.TopN):
			m.view.ToggleTopN()
		case key.Matches(msg, m.keys.Debug):
			m.view.ToggleDebug()
		case key.Matches(msg, m.keys.Up):
			m.view.ScrollUp()
		case key.Matches(msg, m.keys.Down):
			m.view.ScrollDown()
		case key.Matches(msg, m.keys.PageUp):
			m.view.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.view.PageDown()
		case key.Matches(msg, m.keys.Sort):
			m.view.ToggleSort()
		default:
			return m, nil
		}
		m.refresh(m.opts.Clock())
		return m, nil
	}
	return m, nil
}

// refresh snapshots the store and rebuilds the frame.
func (m *Model) refresh(now time.Time) {
	m.now = now
	m.frame = m.renderer.Build(m.src.Snapshot(), m.view, now)
	m.keys.syncEnabled(m.view)
}

// panelHeight is the height left for the keyboard and mouse panels.
func (m *Model) panelHeight() int {
	return maxInt(m.height-chromeHeight, 0)
}
