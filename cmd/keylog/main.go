// Package main provides the CLI entrypoint for keylog.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Zekorei/Keylog/internal/capture"
	"github.com/Zekorei/Keylog/internal/counter"
	"github.com/Zekorei/Keylog/internal/dashboard"
	"github.com/Zekorei/Keylog/internal/input"
	"github.com/Zekorei/Keylog/internal/logging"
	"github.com/Zekorei/Keylog/internal/model"
	"github.com/Zekorei/Keylog/internal/persist"
	"github.com/Zekorei/Keylog/internal/store"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keylog",
		Short:         "Count keystrokes and clicks with a live dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDaemonCmd,
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newDevicesCmd())

	return rootCmd
}

func runDaemonCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	for _, dir := range []string{filepath.Dir(cfg.StatsPath), filepath.Dir(cfg.LogPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	runID := uuid.NewString()
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logFile})
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	logger = logger.With(slog.String("run", runID))
	slog.SetDefault(logger)

	initial, err := counter.Load(cfg.StatsPath)
	if err != nil {
		logger.Error("failed to load stats, starting from defaults", slog.String("path", cfg.StatsPath), slog.Any("err", err))
		dest, perr := preserveStats(cfg.StatsPath, err, time.Now())
		if perr != nil {
			// The first autosave would replace the stored counts.
			return fmt.Errorf("failed to load stats: %w (moving it aside also failed: %v)", err, perr)
		}
		logger.Warn("unloadable stats preserved", slog.String("path", dest))
	}
	counts := counter.NewStore(initial)

	var ledger persist.Ledger
	history, err := store.Open(cfg.HistoryPath)
	if err != nil {
		logger.Warn("backup history disabled", slog.String("path", cfg.HistoryPath), slog.Any("err", err))
	} else {
		ledger = history
		defer func() {
			if cerr := history.Close(); cerr != nil {
				logger.Warn("failed to close history", slog.Any("err", cerr))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := persist.NewScheduler(counts, persist.Options{
		SaveInterval:   cfg.SaveInterval,
		BackupInterval: cfg.BackupInterval,
		StatsPath:      cfg.StatsPath,
		BackupDir:      cfg.BackupDir,
		RunID:          runID,
		Ledger:         ledger,
		Logger:         logger,
	})
	scheduler.Start(ctx)
	defer func() {
		if err := scheduler.Stop(); err != nil {
			logErrf("failed to save stats: %v\n", err)
		}
	}()

	sources := captureSources(cfg, logger)
	events := make(chan input.Event, cfg.EventBuffer)
	recorder := input.NewRecorder(counts)
	logger.Info("keylog started", slog.Int("sources", len(sources)), slog.String("stats", cfg.StatsPath))

	g, gctx := errgroup.WithContext(ctx)
	captureCtx, stopCapture := context.WithCancel(gctx)
	defer stopCapture()
	g.Go(func() error {
		if err := capture.Pump(captureCtx, logger, events, sources...); err != nil {
			logger.Warn("capture ended with errors", slog.Any("err", err))
		}
		return nil
	})
	g.Go(func() error {
		recorder.Run(events)
		return nil
	})
	g.Go(func() error {
		defer stopCapture()
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Info("no terminal attached, counting until interrupted")
			<-gctx.Done()
			return nil
		}
		return runDashboard(gctx, counts, cfg)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("keylog stopped")
	return nil
}

func runDashboard(ctx context.Context, counts dashboard.Snapshotter, cfg model.Config) error {
	m := dashboard.NewModel(counts, dashboard.Options{
		RefreshInterval: cfg.RefreshInterval,
		FlashDuration:   cfg.FlashDuration,
		TopN:            cfg.TopN,
		GrowPadding:     cfg.GrowPadding,
		ShrinkPadding:   cfg.ShrinkPadding,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func captureSources(cfg model.Config, logger *slog.Logger) []capture.Source {
	devs, err := resolveDevices(cfg)
	if err != nil {
		logger.Warn("input capture unavailable, showing saved counts only", slog.Any("err", err))
		return nil
	}
	paths := devs.All()
	logger.Info("capturing input", slog.Any("keyboards", devs.Keyboards), slog.Any("mice", devs.Mice))
	return capture.Sources(paths)
}

// preserveStats moves a stats file that failed to load aside so the next
// autosave does not overwrite it. Corrupt files get a .corrupt suffix, files
// that could not be read at all an .unreadable one.
func preserveStats(path string, cause error, now time.Time) (string, error) {
	kind := "unreadable"
	if errors.Is(cause, counter.ErrCorruptStats) {
		kind = "corrupt"
	}
	dest := fmt.Sprintf("%s.%s-%s", path, kind, now.Format("20060102-150405"))
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to move stats aside: %w", err)
	}
	return dest, nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
