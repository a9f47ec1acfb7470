// ABOUTME: Root Cobra command for the magni CLI.
// ABOUTME: Loads config, sets up logging, and opens storage via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/harperreed/magni/internal/config"
	"github.com/harperreed/magni/internal/kv"
	"github.com/harperreed/magni/internal/logging"
	"github.com/harperreed/magni/internal/stats"
	"github.com/harperreed/magni/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagBackend string
	flagDataDir string

	cfg    *config.Config
	store  kv.Store
	repo   storage.Repository
	logger *logrus.Logger
	loc    *time.Location
	calc   *stats.Calculator
)

// commands that never touch storage
var noStorage = map[string]bool{
	"help":          true,
	"completion":    true,
	"install-skill": true,
}

var rootCmd = &cobra.Command{
	Use:   "magni",
	Short: "Strength routine and body weight tracker",
	Long: `Magni tracks a rotating strength routine and your body weight.

THE ROUTINE:

  Workouts live in numbered day slots. Each has a name, weight, sets and reps,
  and can be a superset of, or an alternative to, another workout.

  $ magni workout add "Bench Press" --weight 135 --sets 3 --reps 10 --day 1
  $ magni workout list                 # Whole routine, grouped by day
  $ magni day complete                 # Log today's workouts, move to next day

BODY WEIGHT:

  $ magni weight add 181.4             # Record a reading
  $ magni stats                        # Trend, rolling averages, daily table

SHARING A ROUTINE:

  $ magni export csv -o routine.csv    # Share your routine
  $ magni import routine.csv           # Replace yours with someone else's

MCP INTEGRATION:

  Run 'magni mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "magni": { "command": "magni", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Configured in ~/.config/magni/config.json ("backend": badger, sqlite or
  charm). Every setting can be overridden with MAGNI_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noStorage[cmd.Name()] || (cmd.HasParent() && noStorage[cmd.Parent().Name()]) {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		logFile := cfg.GetLogFile()
		if cmd.Name() == "mcp" && logFile == "" {
			// stdout carries the protocol
			logFile = filepath.Join(cfg.GetDataDir(), "logs", "mcp.log")
		}
		logger = logging.New(logging.Options{Level: cfg.GetLogLevel(), File: logFile})

		loc, err = cfg.Location()
		if err != nil {
			return err
		}
		calc = stats.NewCalculator(loc)

		store, err = cfg.OpenStore(logger)
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
		}
		repo = storage.New(store)
		logger.WithField("backend", cfg.GetBackend()).Debug("storage opened")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
}

// closeStorage releases the backend. It is safe to call twice.
func closeStorage() error {
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo, store = nil, nil
	return err
}

func init() {
	// PersistentPostRunE is skipped when RunE fails.
	cobra.OnFinalize(func() {
		if err := closeStorage(); err != nil && logger != nil {
			logger.WithError(err).Warn("close storage")
		}
	})

	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend (badger, sqlite, charm)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for local backends")
}

// now returns the current time in the configured zone.
func now() time.Time {
	if loc == nil {
		return time.Now()
	}
	return time.Now().In(loc)
}
