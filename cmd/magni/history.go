// ABOUTME: CLI commands for completed workout history.
// ABOUTME: Lists history by date and clears it.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/magni/internal/models"
	"github.com/harperreed/magni/internal/output"
	"github.com/spf13/cobra"
)

var (
	historyDate  string
	historyLimit int
	historyYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review completed workouts",
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List completed workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyDate != "" {
			if _, err := time.Parse(models.HistoryDateLayout, historyDate); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", historyDate)
			}
		}

		entries, err := repo.ListHistory(historyDate)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No history found.")
			return nil
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[:historyLimit]
		}

		tbl := output.NewTable("DATE", "WORKOUT", "SETS×REPS", "NOTES")
		for _, h := range entries {
			notes := ""
			if h.Notes != nil {
				notes = truncate(*h.Notes, 30)
			}
			tbl.AddRow(h.Date, h.Name, describe(&h.Workout), notes)
		}
		tbl.Fprint(out)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !historyYes {
			ok, err := confirm(cmd, "Delete all workout history?")
			if errors.Is(err, errNotInteractive) {
				return fmt.Errorf("refusing to clear history without --yes")
			}
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
				return nil
			}
		}

		if err := repo.ClearHistory(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "✗ History cleared")
		return nil
	},
}

func init() {
	historyListCmd.Flags().StringVar(&historyDate, "date", "", "only this date (YYYY-MM-DD)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "max number of results")
	historyClearCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "skip confirmation")

	historyCmd.AddCommand(historyListCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
