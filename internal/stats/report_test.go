package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Zekorei/Keylog/internal/model"
)

func TestWriteCounts(t *testing.T) {
	table := model.NewCountTable()
	table[model.Keyboard]["a"] = 3
	table[model.Keyboard]["space"] = 1
	table[model.Mouse]["left"] = 2
	table[model.Mouse]["x1"] = 2

	var buf bytes.Buffer
	if err := WriteCounts(&buf, table, 0); err != nil {
		t.Fatalf("write counts: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Keyboard (total 4)", "a         3 75.00%", "Mouse (total 4)", "left       2 50.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "middle") > strings.Index(out, "x1") {
		t.Fatalf("buttons out of order:\n%s", out)
	}
}

func TestWriteCountsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCounts(&buf, model.NewCountTable(), 10); err != nil {
		t.Fatalf("write counts: %v", err)
	}
	if !strings.Contains(buf.String(), "No keys recorded.") {
		t.Fatalf("expected empty keyboard note:\n%s", buf.String())
	}
}

func TestWriteHistory(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	backups := []model.BackupSummary{
		{ID: 1, RunID: "0123456789abcdef", TakenAt: base, KeyboardTotal: 10, MouseTotal: 2, TopLabel: "e", TopCount: 4},
		{ID: 2, RunID: "0123456789abcdef", TakenAt: base.Add(4 * time.Hour), KeyboardTotal: 25, MouseTotal: 3, TopLabel: "e", TopCount: 9},
	}
	var buf bytes.Buffer
	if err := WriteHistory(&buf, backups, 80); err != nil {
		t.Fatalf("write history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2024-03-01 12:00:00", "01234567", "+15", "e=9", "Trend:  @"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHistory(&buf, nil, 80); err != nil {
		t.Fatalf("write history: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No backups recorded." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
