package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Zekorei/Keylog/internal/capture"
	"github.com/Zekorei/Keylog/internal/config"
	"github.com/Zekorei/Keylog/internal/counter"
	"github.com/Zekorei/Keylog/internal/model"
	"github.com/Zekorei/Keylog/internal/stats"
	"github.com/Zekorei/Keylog/internal/store"
)

const defaultHistoryWidth = 80

var (
	exportFormat string
	exportTop    int

	historyLast int
	historyShow int64
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print saved counts",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportFormat, "format", "table", "output format: json, yaml or table")
	cmd.Flags().IntVar(&exportTop, "top", 0, "limit keyboard rows in table output (0 = all)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	table, err := counter.Load(cfg.StatsPath)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	return writeExport(cmd.OutOrStdout(), table, exportFormat, exportTop)
}

type yamlTable struct {
	Keyboard map[string]int `yaml:"keyboard"`
	Mouse    map[string]int `yaml:"mouse"`
}

func writeExport(w io.Writer, table model.CountTable, format string, top int) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		data, err := counter.Encode(table)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlTable{Keyboard: table[model.Keyboard], Mouse: table[model.Mouse]}); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "table", "":
		return stats.WriteCounts(w, table, top)
	default:
		return fmt.Errorf("unknown --format %q (use json, yaml or table)", format)
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded backups",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N backups")
	cmd.Flags().Int64Var(&historyShow, "show", 0, "print the counts recorded for backup ID")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyShow < 0 {
		return fmt.Errorf("--show must be a backup ID")
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history: %v\n", cerr)
		}
	}()

	if historyShow > 0 {
		return writeBackup(context.Background(), cmd.OutOrStdout(), st, historyShow)
	}
	backups, err := st.ListBackups(context.Background(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	return stats.WriteHistory(cmd.OutOrStdout(), backups, outputWidth())
}

// writeBackup prints the per-label counts stored for one ledger entry.
func writeBackup(ctx context.Context, w io.Writer, st *store.Store, id int64) error {
	table, err := st.BackupCounts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load backup %d: %w", id, err)
	}
	return stats.WriteCounts(w, table, 0)
}

func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultHistoryWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultHistoryWidth
	}
	return width
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List input devices used for capture",
		Args:  cobra.NoArgs,
		RunE:  runDevicesCmd,
	}
}

func runDevicesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	devs, err := resolveDevices(cfg)
	if err != nil {
		if errors.Is(err, capture.ErrNoDevices) {
			logErrln("No devices found. Check read access to /dev/input (the input group) or set [capture] in the config.")
		}
		return fmt.Errorf("failed to find devices: %w", err)
	}
	return writeDevices(cmd.OutOrStdout(), devs)
}

func writeDevices(w io.Writer, devs capture.Devices) error {
	for _, p := range devs.Keyboards {
		if _, err := fmt.Fprintf(w, "keyboard %s\n", p); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	for _, p := range devs.Mice {
		if _, err := fmt.Fprintf(w, "mouse    %s\n", p); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
