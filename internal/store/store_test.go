package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Zekorei/Keylog/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestRecordAndListBackups(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []int64
	for i := 0; i < 3; i++ {
		table := model.CountTable{
			model.Keyboard: {"a": 2 + i, "b": 5},
			model.Mouse:    {"left": i, "right": 0, "middle": 0},
		}
		id, err := st.RecordBackup(ctx, model.BackupRecord{
			RunID:   "run-1",
			TakenAt: base.Add(time.Duration(i) * time.Hour),
			Path:    "backup.json",
			Table:   table,
		})
		if err != nil {
			t.Fatalf("record backup: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListBackups(ctx, 0)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(all))
	}
	first := all[0]
	if first.ID != ids[0] || first.KeyboardTotal != 7 || first.MouseTotal != 0 {
		t.Fatalf("unexpected first backup: %+v", first)
	}
	if first.TopLabel != "b" || first.TopCount != 5 {
		t.Fatalf("expected top label b=5, got %s=%d", first.TopLabel, first.TopCount)
	}
	if !first.TakenAt.Equal(base) {
		t.Fatalf("unexpected taken_at: %v", first.TakenAt)
	}

	lastTwo, err := st.ListBackups(ctx, 2)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(lastTwo) != 2 || lastTwo[0].ID != ids[1] || lastTwo[1].ID != ids[2] {
		t.Fatalf("unexpected last backups: %+v", lastTwo)
	}
	if lastTwo[1].TopLabel != "b" || lastTwo[1].KeyboardTotal != 9 {
		t.Fatalf("unexpected latest backup: %+v", lastTwo[1])
	}
}

func TestBackupCounts(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	table := model.CountTable{
		model.Keyboard: {"ctrl_l": 4},
		model.Mouse:    {"left": 1},
	}
	id, err := st.RecordBackup(ctx, model.BackupRecord{RunID: "r", TakenAt: time.Now(), Path: "p", Table: table})
	if err != nil {
		t.Fatalf("record backup: %v", err)
	}
	got, err := st.BackupCounts(ctx, id)
	if err != nil {
		t.Fatalf("backup counts: %v", err)
	}
	if got[model.Keyboard]["ctrl_l"] != 4 || got[model.Mouse]["left"] != 1 {
		t.Fatalf("unexpected counts: %v", got)
	}
}

func TestListBackupsOrdersWithinOneSecond(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	whole := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	half := whole.Add(500 * time.Millisecond)

	// recorded out of order so insertion order cannot mask a text sort
	for _, at := range []time.Time{half, whole} {
		if _, err := st.RecordBackup(ctx, model.BackupRecord{RunID: "r", TakenAt: at, Path: "p", Table: model.NewCountTable()}); err != nil {
			t.Fatalf("record backup: %v", err)
		}
	}
	got, err := st.ListBackups(ctx, 0)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(got) != 2 || !got[0].TakenAt.Equal(whole) || !got[1].TakenAt.Equal(half) {
		t.Fatalf("expected chronological order, got %+v", got)
	}
}

func TestBackupCountsUnknownID(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.BackupCounts(context.Background(), 42); !errors.Is(err, ErrBackupNotFound) {
		t.Fatalf("expected ErrBackupNotFound, got %v", err)
	}
}
