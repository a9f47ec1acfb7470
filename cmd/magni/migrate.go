// ABOUTME: CLI command for copying all data to another storage backend.
// ABOUTME: Refuses to write into a destination that already holds data.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/magni/internal/config"
	"github.com/harperreed/magni/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo    string
	migrateToDir string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy all data to another storage backend",
	Long: `Copy workouts, weights, history, and the current day to another backend.

The destination must be empty. The source is left untouched; switch over by
setting "backend" in ~/.config/magni/config.json afterwards.

EXAMPLES:

  magni migrate --to sqlite
  magni migrate --to badger --to-dir /mnt/backup/magni
  magni --backend sqlite migrate --to charm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := *cfg
		target.Backend = strings.ToLower(migrateTo)
		if migrateToDir != "" {
			target.DataDir = migrateToDir
		}

		switch target.GetBackend() {
		case config.BackendBadger, config.BackendSQLite, config.BackendCharm:
		default:
			return fmt.Errorf("unknown backend: %s (use badger, sqlite, or charm)", migrateTo)
		}
		same := target.GetDataDir() == cfg.GetDataDir() || target.GetBackend() == config.BackendCharm
		if target.GetBackend() == cfg.GetBackend() && same {
			return fmt.Errorf("source and destination are the same %s store", cfg.GetBackend())
		}

		if target.GetBackend() == config.BackendBadger {
			nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(target.GetDataDir(), "badger"))
			if err != nil {
				return err
			}
			if nonEmpty {
				return fmt.Errorf("destination %s already contains data", filepath.Join(target.GetDataDir(), "badger"))
			}
		}

		dst, err := target.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer dst.Close()

		existing, err := dst.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to read destination: %w", err)
		}
		if len(existing.Workouts) > 0 || len(existing.Weights) > 0 || len(existing.History) > 0 {
			return fmt.Errorf("destination %s store already contains data", target.GetBackend())
		}

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Migrated %s → %s\n", cfg.GetBackend(), target.GetBackend())
		fmt.Fprintf(out, "  Workouts:    %d\n", summary.Workouts)
		fmt.Fprintf(out, "  Weights:     %d\n", summary.Weights)
		fmt.Fprintf(out, "  History:     %d\n", summary.History)
		fmt.Fprintf(out, "  Current day: %d\n", summary.CurrentDay)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (badger, sqlite, charm)")
	migrateCmd.Flags().StringVar(&migrateToDir, "to-dir", "", "destination data directory (default: same as source)")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
