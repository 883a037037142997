// Package persist runs the autosave and backup tasks for the stats store.
package persist

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Zekorei/Keylog/internal/counter"
	"github.com/Zekorei/Keylog/internal/model"
)

// Default task intervals.
const (
	DefaultSaveInterval   = 10 * time.Second
	DefaultBackupInterval = 4 * time.Hour
)

const backupLayout = "2006-01-02_15_04_05"

// Snapshotter returns a deep copy of the current counts.
type Snapshotter interface {
	Snapshot() model.CountTable
}

// Ledger records written backups. *store.Store satisfies it.
type Ledger interface {
	RecordBackup(ctx context.Context, rec model.BackupRecord) (int64, error)
}

// Options configure a Scheduler. Zero values fall back to defaults.
type Options struct {
	SaveInterval   time.Duration
	BackupInterval time.Duration
	StatsPath      string
	BackupDir      string

	// RunID tags ledger rows written by this process.
	RunID string

	// Ledger is optional.
	Ledger Ledger

	Clock  func() time.Time
	Logger *slog.Logger
}

// Scheduler periodically writes the stats file and timestamped backups.
//
// Start launches the autosave and backup loops. Stop cancels them, waits for
// them to return and then writes the stats file one final time. Start and
// Stop are safe for concurrent use and idempotent.
type Scheduler struct {
	src  Snapshotter
	opts Options

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	started  bool
	stopped  bool
	exitOnce sync.Once
	exitErr  error

	// serializes writers to the stats file
	saveMu sync.Mutex
}

// NewScheduler creates a Scheduler reading counts from src.
func NewScheduler(src Snapshotter, opts Options) *Scheduler {
	if opts.SaveInterval <= 0 {
		opts.SaveInterval = DefaultSaveInterval
	}
	if opts.BackupInterval <= 0 {
		opts.BackupInterval = DefaultBackupInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Scheduler{src: src, opts: opts}
}

// Start begins the autosave and backup loops in background goroutines.
// If Stop was called before Start, Start is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	runCtx := s.ctx
	s.wg.Add(2)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.loop(runCtx, s.opts.SaveInterval, func(context.Context) {
			if err := s.SaveNow(); err != nil {
				s.opts.Logger.Error("autosave failed", slog.String("path", s.opts.StatsPath), slog.Any("err", err))
			}
		})
	}()
	go func() {
		defer s.wg.Done()
		s.loop(runCtx, s.opts.BackupInterval, func(ctx context.Context) {
			if _, err := s.BackupNow(ctx); err != nil {
				s.opts.Logger.Error("backup failed", slog.String("dir", s.opts.BackupDir), slog.Any("err", err))
			}
		})
	}()
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, run func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run(ctx)
		}
	}
}

// Stop cancels both loops, waits for them and performs the exit save.
// The exit save runs exactly once no matter how often Stop is called; every
// call returns its result.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		if s.cancel != nil {
			s.cancel()
		}
	}
	s.mu.Unlock()

	s.wg.Wait()

	s.exitOnce.Do(func() {
		s.exitErr = s.SaveNow()
		if s.exitErr != nil {
			s.opts.Logger.Error("exit save failed", slog.String("path", s.opts.StatsPath), slog.Any("err", s.exitErr))
			return
		}
		s.opts.Logger.Info("stats saved on exit", slog.String("path", s.opts.StatsPath))
	})
	return s.exitErr
}

// SaveNow overwrites the stats file with the current counts.
func (s *Scheduler) SaveNow() error {
	if s.opts.StatsPath == "" {
		return fmt.Errorf("stats path is empty")
	}
	table := s.src.Snapshot()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := counter.Save(s.opts.StatsPath, table); err != nil {
		return err
	}
	s.opts.Logger.Debug("stats saved", slog.String("path", s.opts.StatsPath))
	return nil
}

// BackupNow writes a timestamped copy of the current counts into the backup
// directory and returns its path. Existing backups are never overwritten.
func (s *Scheduler) BackupNow(ctx context.Context) (string, error) {
	if s.opts.BackupDir == "" {
		return "", fmt.Errorf("backup dir is empty")
	}
	table := s.src.Snapshot()
	now := s.opts.Clock()

	if err := os.MkdirAll(s.opts.BackupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup dir: %w", err)
	}
	path, err := freeBackupPath(s.opts.BackupDir, now)
	if err != nil {
		return "", err
	}
	if err := counter.Save(path, table); err != nil {
		return "", err
	}
	s.opts.Logger.Info("backup written", slog.String("path", path))

	if s.opts.Ledger != nil {
		rec := model.BackupRecord{RunID: s.opts.RunID, TakenAt: now, Path: path, Table: table}
		if _, err := s.opts.Ledger.RecordBackup(ctx, rec); err != nil {
			// The backup file is already on disk.
			s.opts.Logger.Warn("failed to record backup in history", slog.String("path", path), slog.Any("err", err))
		}
	}
	return path, nil
}

// BackupName returns the file name for a backup taken at t.
func BackupName(t time.Time) string {
	return backupStem(t) + ".json"
}

func backupStem(t time.Time) string {
	return "backup_at_" + t.Format(backupLayout)
}

func freeBackupPath(dir string, t time.Time) (string, error) {
	base := backupStem(t)
	path := filepath.Join(dir, BackupName(t))
	for n := 1; ; n++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat backup: %w", err)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.json", base, n))
	}
}
