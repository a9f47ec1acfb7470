// ABOUTME: CLI command printing the body weight statistics snapshot.
// ABOUTME: Shows headline trend numbers and a per-day table.
package main

import (
	"fmt"

	"github.com/harperreed/magni/internal/models"
	"github.com/harperreed/magni/internal/output"
	"github.com/harperreed/magni/internal/stats"
	"github.com/spf13/cobra"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show weight trend and daily statistics",
	Long: `Show the current weight (seven-day average when available), the change
over three and seven days, and a table of daily min, max, and averages.

Days are cut at midnight in the configured timezone.

Examples:
  magni stats
  magni stats --days 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := repo.ListWeights(0)
		if err != nil {
			return fmt.Errorf("failed to list weights: %w", err)
		}
		records, err := repo.DailyAverages(loc)
		if err != nil {
			return fmt.Errorf("failed to compute averages: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(samples) == 0 {
			fmt.Fprintln(out, "No weights recorded.")
			return nil
		}

		snap := calc.Compute(samples, records)
		fmt.Fprintln(out, output.Section("Weight"))
		fmt.Fprintln(out, output.Metric("Current", fmt.Sprintf("%.1f", snap.Stats.CurrentWeight)))
		fmt.Fprintln(out, output.Metric("3-day change", output.Change(snap.Stats.ThreeDayChange)))
		fmt.Fprintln(out, output.Metric("7-day change", output.Change(snap.Stats.SevenDayChange)))
		fmt.Fprintln(out, output.Metric("Chart range", fmt.Sprintf("%.1f to %.1f", snap.YDomain.Min, snap.YDomain.Max)))
		fmt.Fprintln(out)

		fmt.Fprintln(out, renderDailyTable(snap, statsDays))
		return nil
	},
}

// renderDailyTable lists the most recent days, newest first.
func renderDailyTable(snap *stats.Snapshot, days int) string {
	averages := make(map[int64]models.DailyAverageRecord, len(snap.AverageData))
	for _, r := range snap.AverageData {
		averages[r.Day.Unix()] = r
	}

	tbl := output.NewTable("DAY", "MIN", "MAX", "AVG", "3-DAY", "7-DAY")
	for i := len(snap.DailyStats) - 1; i >= 0; i-- {
		if days > 0 && tbl.Len() >= days {
			break
		}
		p := snap.DailyStats[i]
		r := averages[p.Day.Unix()]
		tbl.AddRow(p.Day.Format("2006-01-02"),
			fmt.Sprintf("%.1f", p.Min),
			fmt.Sprintf("%.1f", p.Max),
			fmt.Sprintf("%.1f", p.Avg),
			optional(r.ThreeDayAverage),
			optional(r.SevenDayAverage))
	}
	return tbl.Render()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 14, "number of days in the table (0 for all)")
	rootCmd.AddCommand(statsCmd)
}
