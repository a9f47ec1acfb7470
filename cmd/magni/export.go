// ABOUTME: CLI commands for exporting, importing, and restoring data.
// ABOUTME: CSV shares the routine; JSON, YAML, and Markdown back up everything.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/magni/internal/storage"
	"github.com/harperreed/magni/internal/transfer"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
	importYes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the routine or a full backup",
	Long: `Export data in various formats.

FORMATS:

  csv        The workout routine, for sharing (see 'magni import')
  json       Full backup of workouts, weights, history, and current day
  yaml       Human-readable backup
  markdown   Markdown tables for notes or sharing

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include data since this date (markdown only, YYYY-MM-DD)

EXAMPLES:

  magni export csv -o routine.csv
  magni export json -o backup.json
  magni export markdown --since 2024-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "csv":
			var text string
			text, err = transfer.ExportWorkouts(repo)
			data = []byte(text)
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		case "markdown":
			var since *time.Time
			if exportSince != "" {
				t, perr := time.ParseInLocation("2006-01-02", exportSince, loc)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			var md string
			md, err = storage.ExportMarkdown(repo, since)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "✓ Exported to %s\n", exportOutput)
			if format == "csv" {
				fmt.Fprintf(out, "  Suggested name: %s\n", transfer.ExportFilename(now()))
			}
			return nil
		}

		fmt.Fprintln(out, string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Replace the routine with workouts from a CSV file",
	Long: `Replace the whole workout routine with the workouts in a CSV file
exported by 'magni export csv'.

Every imported workout gets a new ID. Superset and alternative links between
rows of the file are kept; links to workouts outside the file are dropped
with a warning. Rows that fail validation are still imported and listed
with a warning so they can be fixed.

If a routine already exists you are asked to confirm. Pass --yes to skip
the question, which is required when stdin is not a terminal.

EXAMPLES:

  magni import routine.csv
  magni import routine.csv --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		im := transfer.NewImporter(repo, logger)
		if !importYes {
			exists, err := im.HasExistingWorkouts()
			if err != nil {
				return err
			}
			if exists {
				ok, err := confirm(cmd, "This replaces your current routine. Continue?")
				if errors.Is(err, errNotInteractive) {
					return fmt.Errorf("refusing to replace the existing routine without --yes")
				}
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
					return nil
				}
			}
		}

		result, err := im.Import(string(data))
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		warn := color.New(color.FgYellow)
		for _, inv := range result.Invalid {
			warn.Fprintf(out, "⚠ Row %d (%s) has invalid fields: %s\n", inv.Row, inv.Name, inv.Reason)
		}
		for _, d := range result.Dropped {
			warn.Fprintf(out, "⚠ Row %d (%s): dropped %s %s (not in file)\n", d.Row, d.Name, d.Field, d.MissingID)
		}
		color.New(color.FgGreen).Fprintf(out, "✓ Imported %d workouts from %s\n", len(result.Imported), args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Restore a JSON backup",
	Long: `Restore workouts, weights, history, and the current day from a backup
made with 'magni export json'. Records are added to the current data;
a record whose ID already exists stops the restore.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		if err := storage.ImportJSON(repo, data); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Restored from %s\n", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "replace the routine without asking")

	rootCmd.AddCommand(exportCmd, importCmd, restoreCmd)
}
