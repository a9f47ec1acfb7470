// ABOUTME: CLI commands for body weight readings.
// ABOUTME: Supports add, list, and delete by ID prefix.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/magni/internal/models"
	"github.com/harperreed/magni/internal/output"
	"github.com/spf13/cobra"
)

var (
	weightAt    string
	weightLimit int
)

var weightCmd = &cobra.Command{
	Use:     "weight",
	Aliases: []string{"wt"},
	Short:   "Record and review body weight",
	Long: `Record body weight readings. Several readings on one day are averaged
for the trend; see 'magni stats'.

COMMANDS:

  add      Record a reading
  list     Show recent readings
  delete   Remove a reading by ID prefix`,
}

var weightAddCmd = &cobra.Command{
	Use:   "add <value>",
	Short: "Record a weight reading",
	Long: `Record a weight reading, now or at a given time.

Examples:
  magni weight add 181.4
  magni weight add 180.8 --at "2024-03-01 07:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		s := models.NewWeightSample(value)
		if weightAt != "" {
			t, err := parseTime(weightAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", weightAt)
			}
			s.WithTimestamp(t)
		}

		if err := repo.CreateWeight(s); err != nil {
			return fmt.Errorf("failed to add weight: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added weight %.1f\n", s.Value)
		fmt.Fprintf(out, "  %s %s\n",
			color.New(color.Faint).Sprint(shortID(s.ID)),
			s.Timestamp.In(loc).Format("2006-01-02 15:04"))
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent weight readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := repo.ListWeights(weightLimit)
		if err != nil {
			return fmt.Errorf("failed to list weights: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(samples) == 0 {
			fmt.Fprintln(out, "No weights recorded.")
			return nil
		}

		tbl := output.NewTable("ID", "RECORDED", "WEIGHT")
		for _, s := range samples {
			tbl.AddRow(shortID(s.ID), s.Timestamp.In(loc).Format("2006-01-02 15:04"), fmt.Sprintf("%.1f", s.Value))
		}
		tbl.Fprint(out)
		return nil
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a weight reading",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteWeight(args[0]); err != nil {
			return fmt.Errorf("failed to delete weight: %w", err)
		}
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted weight %s\n", args[0])
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	weightListCmd.Flags().IntVarP(&weightLimit, "limit", "n", 20, "max number of results")

	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}
