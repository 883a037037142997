package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Zekorei/Keylog/internal/model"
)

const (
	maxLabelWidth = 16
	timeLayout    = "2006-01-02 15:04:05"
)

// WriteCounts prints the keyboard and mouse tables with each label's share of
// its category. top limits the keyboard rows; zero prints all of them.
func WriteCounts(w io.Writer, table model.CountTable, top int) error {
	kbTotal := table.Total(model.Keyboard)
	if _, err := fmt.Fprintf(w, "Keyboard (total %d)\n", kbTotal); err != nil {
		return err
	}
	keys := Top(table[model.Keyboard], top)
	if len(keys) == 0 {
		if _, err := fmt.Fprintln(w, "No keys recorded."); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(keys))
		for _, item := range keys {
			rows = append(rows, countRow(item.Label, item.Count, kbTotal))
		}
		if err := writeLines(w, formatTable([]string{"Key", "Count", "Share"}, rows, map[int]bool{1: true, 2: true})); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	msTotal := table.Total(model.Mouse)
	if _, err := fmt.Fprintf(w, "Mouse (total %d)\n", msTotal); err != nil {
		return err
	}
	buttons := model.ButtonOrder(table[model.Mouse])
	rows := make([][]string, 0, len(buttons))
	for _, label := range buttons {
		rows = append(rows, countRow(label, table[model.Mouse][label], msTotal))
	}
	return writeLines(w, formatTable([]string{"Button", "Count", "Share"}, rows, map[int]bool{1: true, 2: true}))
}

func countRow(label string, n, total int) []string {
	return []string{
		truncateCell(label, maxLabelWidth),
		strconv.Itoa(n),
		fmt.Sprintf("%.2f%%", Share(n, total)),
	}
}

// WriteHistory prints recorded backups oldest first, followed by a keyboard
// trend line no wider than width.
func WriteHistory(w io.Writer, backups []model.BackupSummary, width int) error {
	if len(backups) == 0 {
		_, err := fmt.Fprintln(w, "No backups recorded.")
		return err
	}
	headers := []string{"#", "Taken", "Run", "Keys", "+Keys", "Clicks", "Top"}
	rows := make([][]string, 0, len(backups))
	trend := make([]float64, 0, len(backups))
	prev := 0
	for i, b := range backups {
		delta := "-"
		if i > 0 {
			delta = fmt.Sprintf("%+d", b.KeyboardTotal-prev)
		}
		prev = b.KeyboardTotal
		top := "-"
		if b.TopLabel != "" {
			top = fmt.Sprintf("%s=%d", truncateCell(b.TopLabel, maxLabelWidth), b.TopCount)
		}
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.TakenAt.Local().Format(timeLayout),
			shortRun(b.RunID),
			strconv.Itoa(b.KeyboardTotal),
			delta,
			strconv.Itoa(b.MouseTotal),
			top,
		})
		trend = append(trend, float64(b.KeyboardTotal))
	}
	if err := writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 3: true, 4: true, 5: true})); err != nil {
		return err
	}
	if len(trend) < 2 {
		return nil
	}
	const prefix = "Trend: "
	if limit := width - len(prefix); limit > 0 && len(trend) > limit {
		trend = trend[len(trend)-limit:]
	}
	_, err := fmt.Fprintf(w, "\n%s%s\n", prefix, Sparkline(trend))
	return err
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
