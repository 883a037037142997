// Package store handles the SQLite backup history ledger.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Zekorei/Keylog/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrBackupNotFound is returned when a backup ID is not in the ledger.
var ErrBackupNotFound = errors.New("backup not found")

// takenAtLayout is fixed width so text order matches time order.
const takenAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for backup history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS backups (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL,
			taken_at TEXT NOT NULL,
			path TEXT NOT NULL,
			keyboard_total INTEGER NOT NULL,
			mouse_total INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS backup_counts (
			backup_id INTEGER NOT NULL,
			category TEXT NOT NULL,
			label TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (backup_id, category, label)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_backups_taken_at ON backups(taken_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordBackup stores a backup and its per-label counts.
func (s *Store) RecordBackup(ctx context.Context, rec model.BackupRecord) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO backups (run_id, taken_at, path, keyboard_total, mouse_total)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.TakenAt.UTC().Format(takenAtLayout),
		rec.Path,
		rec.Table.Total(model.Keyboard),
		rec.Table.Total(model.Mouse),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO backup_counts (backup_id, category, label, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, cat := range sortedCategories(rec.Table) {
		for label, n := range rec.Table[cat] {
			if _, err = stmt.ExecContext(ctx, id, string(cat), label, n); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListBackups returns ledger rows, oldest first. A positive last keeps only
// the most recent rows.
func (s *Store) ListBackups(ctx context.Context, last int) ([]model.BackupSummary, error) {
	query := `SELECT b.id, b.run_id, b.taken_at, b.path, b.keyboard_total, b.mouse_total,
		COALESCE((SELECT c.label FROM backup_counts c
			WHERE c.backup_id = b.id AND c.category = 'keyboard'
			ORDER BY c.count DESC, c.label ASC LIMIT 1), ''),
		COALESCE((SELECT MAX(c.count) FROM backup_counts c
			WHERE c.backup_id = b.id AND c.category = 'keyboard'), 0)
		FROM backups b
		ORDER BY b.taken_at ASC, b.id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.BackupSummary
	for rows.Next() {
		var sum model.BackupSummary
		var takenAt string
		if err := rows.Scan(&sum.ID, &sum.RunID, &takenAt, &sum.Path, &sum.KeyboardTotal, &sum.MouseTotal, &sum.TopLabel, &sum.TopCount); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, takenAt)
		if err != nil {
			return nil, err
		}
		sum.TakenAt = parsed
		result = append(result, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(result) > last {
		result = result[len(result)-last:]
	}
	return result, nil
}

// BackupCounts returns the count table recorded for a backup.
func (s *Store) BackupCounts(ctx context.Context, backupID int64) (model.CountTable, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM backups WHERE id = ?`, backupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBackupNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, label, count FROM backup_counts WHERE backup_id = ?`, backupID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	table := model.CountTable{}
	for rows.Next() {
		var cat, label string
		var n int
		if err := rows.Scan(&cat, &label, &n); err != nil {
			return nil, err
		}
		if table[model.Category(cat)] == nil {
			table[model.Category(cat)] = map[string]int{}
		}
		table[model.Category(cat)][label] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func sortedCategories(table model.CountTable) []model.Category {
	cats := make([]model.Category, 0, len(table))
	for cat := range table {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
