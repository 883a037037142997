package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Key", "Count", "Share"}
	rows := [][]string{
		{"a", "12", "97.50%"},
		{"ctrl_l", "3", "2.50%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Key    Count  Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a         12 97.50%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "ctrl_l     3  2.50%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Key", "N"}, [][]string{{"日本", "1"}, {"a", "2"}}, map[int]bool{1: true})
	if lines[1] != "日本 1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "a    2" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("media_volume_down", 8); got != "media_v…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateCell("space", 8); got != "space" {
		t.Fatalf("short label changed: %q", got)
	}
}
