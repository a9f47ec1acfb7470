// ABOUTME: CLI commands for the routine's day cycle.
// ABOUTME: Shows, sets, completes, and compacts day slots.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Move through the routine's day cycle",
	Long: `The routine cycles through its day slots. Completing a day records its
workouts in history and moves to the next slot, wrapping back to day 1
after the last.

COMMANDS:

  current    Show the current day and its workouts
  set        Jump to a day
  complete   Record the current day and advance
  compact    Renumber day slots to 1..N`,
}

var dayCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current day",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := repo.CurrentDay()
		if err != nil {
			return fmt.Errorf("failed to read current day: %w", err)
		}
		total, err := repo.UniqueDays()
		if err != nil {
			return fmt.Errorf("failed to count days: %w", err)
		}
		workouts, err := repo.ListWorkouts(&current)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Day %d of %d\n", current, total)
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts scheduled.")
			return nil
		}
		printRoutine(out, workouts, current)
		return nil
	},
}

var daySetCmd = &cobra.Command{
	Use:   "set <day>",
	Short: "Jump to a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid day: %s", args[0])
		}
		if err := repo.SetCurrentDay(day); err != nil {
			return fmt.Errorf("failed to set day: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Current day is %d\n", day)
		return nil
	},
}

var dayCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Record the current day and advance",
	RunE: func(cmd *cobra.Command, args []string) error {
		done, err := repo.CompleteDay(now())
		if err != nil {
			return fmt.Errorf("failed to complete day: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Completed day %d (%d workouts)\n", done.Day, len(done.Recorded))
		fmt.Fprintf(out, "  Next up: day %d\n", done.NextDay)
		return nil
	},
}

var dayCompactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Renumber day slots to 1..N",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.CompactDays(); err != nil {
			return fmt.Errorf("failed to compact days: %w", err)
		}
		total, err := repo.UniqueDays()
		if err != nil {
			return fmt.Errorf("failed to count days: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Routine uses days 1-%d\n", total)
		return nil
	},
}

func init() {
	dayCmd.AddCommand(dayCurrentCmd, daySetCmd, dayCompleteCmd, dayCompactCmd)
	rootCmd.AddCommand(dayCmd)
}
