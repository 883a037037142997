package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// header, summary panel, status line and help bar
const chromeHeight = 1 + 3 + 1 + 1

var (
	accent = lipgloss.Color("#C89A3A")

	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	panelStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	panelTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1)
	labelCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1)
	countCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Padding(0, 1).Align(lipgloss.Right)
	flashStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(accent).Bold(true)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	accentStyle      = lipgloss.NewStyle().Foreground(accent).Bold(true)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	sections := []string{
		fitLines(m.renderHeader(), m.width, 1),
		fitLines(m.renderSummary(), m.width, 3),
	}
	if h := m.panelHeight(); h > 0 {
		sections = append(sections, fitLines(m.renderPanels(h), m.width, h))
	}
	sections = append(sections,
		fitLines(m.renderStatus(), m.width, 1),
		fitLines(m.help.View(m.keys), m.width, 1),
	)
	return fitLines(strings.Join(sections, "\n"), m.width, m.height)
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render("keylog")
	clock := headerStyle.Render(m.now.Format("15:04:05"))
	gap := maxInt(m.width-lipgloss.Width(title)-lipgloss.Width(clock), 1)
	return title + strings.Repeat(" ", gap) + clock
}

func (m *Model) renderSummary() string {
	t := m.frame.Totals
	inner := maxInt(m.width-4, 3)
	cell := inner / 3
	cells := lipgloss.JoinHorizontal(lipgloss.Top,
		summaryCell("Keyboard", t.Keyboard, t.KeyboardFlash, cell),
		summaryCell("Clicks", t.Mouse, t.MouseFlash, cell),
		summaryCell("Total", t.Combined, t.CombinedFlash, inner-2*cell),
	)
	return panelStyle.Width(maxInt(m.width-2, 1)).Render(cells)
}

func summaryCell(label string, n int, flash bool, width int) string {
	value := valueStyle.Render(strconv.Itoa(n))
	if flash {
		value = flashStyle.Render(strconv.Itoa(n))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(panelTitleStyle.Render(label+":") + " " + value)
}

func (m *Model) renderPanels(height int) string {
	kbWidth := m.width / 2
	msWidth := m.width - kbWidth
	kb := renderPanel("Keyboard", "Key", m.frame.Keyboard, kbWidth, height)
	ms := renderPanel("Mouse", "Button", m.frame.Mouse, msWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, kb, ms)
}

// renderPanel draws a bordered panel: title, table header, separator, rows.
func renderPanel(title, column string, rows []Row, width, height int) string {
	innerWidth := maxInt(width-4, 1)
	innerHeight := maxInt(height-2, 1)
	body := panelTitleStyle.Render(title) + "\n" + renderRows(column, rows, innerWidth)
	return panelStyle.Width(maxInt(width-2, 1)).Render(fitLines(body, innerWidth, innerHeight))
}

func renderRows(column string, rows []Row, width int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Headers(column, "Count").
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col == 1 {
					return tableHeaderStyle.Align(lipgloss.Right)
				}
				return tableHeaderStyle
			}
			if col == 0 {
				return labelCellStyle
			}
			if row >= 0 && row < len(rows) && rows[row].Flash {
				return flashStyle.Padding(0, 1).Align(lipgloss.Right)
			}
			return countCellStyle
		})
	for _, r := range rows {
		t.Row(r.Label, strconv.Itoa(r.Count))
	}
	return t.String()
}

func (m *Model) renderStatus() string {
	status := "Currently Displaying: " + accentStyle.Render(m.view.TopNLabel())
	if m.view.DebugVisible {
		debug := fmt.Sprintf("DEBUG: offset=%d page=%d rows=%d/%d",
			m.view.Offset, m.view.PageSize, m.frame.Visible, m.frame.Labels)
		status += "  " + headerStyle.Render(debug)
	}
	return status
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
