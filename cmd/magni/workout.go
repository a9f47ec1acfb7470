// ABOUTME: CLI commands for managing the workout routine.
// ABOUTME: Supports add, list, show, delete, and reorder subcommands.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/magni/internal/models"
	"github.com/harperreed/magni/internal/output"
	"github.com/harperreed/magni/internal/storage"
	"github.com/spf13/cobra"
)

var (
	workoutWeight     float64
	workoutSets       int
	workoutReps       int
	workoutDay        int
	workoutNotes      string
	workoutSupersetOf string
	workoutAltOf      string
	workoutListDay    int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage the workout routine",
	Long: `Manage the rotating workout routine.

Each workout sits in a day slot (1, 2, 3, ...) at a position within that day.
A workout can be a superset of another (done back to back) or an alternative
to another (done instead of it).

COMMANDS:

  add       Add a workout to a day
  list      Show the routine, grouped by day
  show      Show one workout with its relationships
  delete    Remove a workout
  reorder   Set the order of a day's workouts`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a workout to the routine",
	Long: `Add a workout at the end of a day slot.

Examples:
  magni workout add "Back Squat" --weight 225 --sets 5 --reps 5
  magni workout add "Dumbbell Fly" --weight 30 --sets 3 --reps 12 --day 2 --superset-of 1a2b3c4d
  magni workout add "Push Up" --sets 3 --reps 20 --alt-of 9f8e7d6c --notes "travel days"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := storage.NextDayOrder(repo, workoutDay)
		if err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		w := models.NewWorkout(args[0], workoutWeight, workoutSets, workoutReps).WithDay(workoutDay, order)
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}
		if workoutSupersetOf != "" {
			parent, err := repo.GetWorkout(workoutSupersetOf)
			if err != nil {
				return fmt.Errorf("superset parent: %w", err)
			}
			w.WithSupersetParent(parent.ID)
		}
		if workoutAltOf != "" {
			parent, err := repo.GetWorkout(workoutAltOf)
			if err != nil {
				return fmt.Errorf("alternative parent: %w", err)
			}
			w.WithAltParent(parent.ID)
		}

		if err := repo.CreateWorkout(w); err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added %s to day %d\n", w.Name, w.Day)
		fmt.Fprintf(out, "  %s %s\n", color.New(color.Faint).Sprint(shortID(w.ID)), describe(w))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		var day *int
		if workoutListDay > 0 {
			day = &workoutListDay
		}

		workouts, err := repo.ListWorkouts(day)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		current, err := repo.CurrentDay()
		if err != nil {
			return fmt.Errorf("failed to read current day: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}

		printRoutine(out, workouts, current)
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %w", err)
		}
		all, err := repo.ListWorkouts(nil)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.Section(w.Name))
		fmt.Fprintln(out, output.Metric("ID", w.ID))
		fmt.Fprintln(out, output.Metric("Day", fmt.Sprintf("%d (position %d)", w.Day, w.DayOrder)))
		fmt.Fprintln(out, output.Metric("Prescription", describe(w)))
		if w.Notes != nil {
			fmt.Fprintln(out, output.Metric("Notes", *w.Notes))
		}
		if w.SupersetParentID != nil {
			fmt.Fprintln(out, output.Metric("Superset of", parentName(*w.SupersetParentID, all)))
		}
		if w.AltParentID != nil {
			fmt.Fprintln(out, output.Metric("Alternative to", parentName(*w.AltParentID, all)))
		}
		if models.IsSuperset(w, all) {
			fmt.Fprintln(out, output.Metric("Has supersets", "yes"))
		}
		if models.IsAlternative(w, all) {
			fmt.Fprintln(out, output.Metric("Has alternatives", "yes"))
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %w", err)
		}
		if err := repo.DeleteWorkout(w.ID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted %s\n", w.Name)
		return nil
	},
}

var workoutReorderCmd = &cobra.Command{
	Use:   "reorder <day> <id>...",
	Short: "Set the order of a day's workouts",
	Long: `Give the workouts of a day in the order they should be done.
Workouts of that day that are not listed keep their position.

Example:
  magni workout reorder 2 9f8e7d6c 1a2b3c4d`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil || day < 1 {
			return fmt.Errorf("invalid day: %s", args[0])
		}

		ids := make([]string, 0, len(args)-1)
		for _, prefix := range args[1:] {
			w, err := repo.GetWorkout(prefix)
			if err != nil {
				return fmt.Errorf("workout not found: %w", err)
			}
			if w.Day != day {
				return fmt.Errorf("%s is on day %d, not day %d", w.Name, w.Day, day)
			}
			ids = append(ids, w.ID)
		}

		if err := repo.ReorderWorkouts(day, ids); err != nil {
			return fmt.Errorf("failed to reorder: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Reordered day %d\n", day)
		return nil
	},
}

func describe(w *models.Workout) string {
	if w.Weight > 0 {
		return fmt.Sprintf("%d×%d @ %g", w.Sets, w.Reps, w.Weight)
	}
	return fmt.Sprintf("%d×%d", w.Sets, w.Reps)
}

func parentName(id string, all []*models.Workout) string {
	for _, w := range all {
		if w.ID == id {
			return fmt.Sprintf("%s (%s)", w.Name, shortID(id))
		}
	}
	return fmt.Sprintf("missing workout %s", shortID(id))
}

// printRoutine writes one table per day, marking the current day.
func printRoutine(out io.Writer, workouts []*models.Workout, current int) {
	var tbl *output.Table
	day := 0
	flush := func() {
		if tbl != nil {
			tbl.Fprint(out)
			fmt.Fprintln(out)
		}
	}

	for _, w := range workouts {
		if w.Day != day {
			flush()
			day = w.Day
			title := fmt.Sprintf("Day %d", day)
			if day == current {
				title += " (current)"
			}
			fmt.Fprintln(out, output.Section(title))
			tbl = output.NewTable("ID", "WORKOUT", "SETS×REPS", "LINK", "NOTES")
		}

		link := ""
		switch {
		case models.SupersetExists(w, workouts):
			link = "superset of " + parentName(*w.SupersetParentID, workouts)
		case models.AltExists(w, workouts):
			link = "alt to " + parentName(*w.AltParentID, workouts)
		}
		notes := ""
		if w.Notes != nil {
			notes = truncate(*w.Notes, 30)
		}
		tbl.AddRow(shortID(w.ID), w.Name, describe(w), link, notes)
	}
	flush()
}

func init() {
	workoutAddCmd.Flags().Float64Var(&workoutWeight, "weight", 0, "working weight")
	workoutAddCmd.Flags().IntVar(&workoutSets, "sets", 3, "number of sets")
	workoutAddCmd.Flags().IntVar(&workoutReps, "reps", 10, "reps per set")
	workoutAddCmd.Flags().IntVar(&workoutDay, "day", 1, "day slot")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "notes")
	workoutAddCmd.Flags().StringVar(&workoutSupersetOf, "superset-of", "", "ID of the workout this is a superset of")
	workoutAddCmd.Flags().StringVar(&workoutAltOf, "alt-of", "", "ID of the workout this is an alternative to")

	workoutListCmd.Flags().IntVar(&workoutListDay, "day", 0, "only this day slot")

	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutShowCmd, workoutDeleteCmd, workoutReorderCmd)
	rootCmd.AddCommand(workoutCmd)
}
