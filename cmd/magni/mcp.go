// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Serves tools and resources over stdio until a signal arrives.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/magni/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to the configured log file,
or to logs/mcp.log in the data directory.

CONFIGURATION:

  {
    "mcpServers": {
      "magni": {
        "command": "magni",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_weight            Record a body weight reading
  list_weights          List recent readings
  delete_weight         Delete a reading by ID
  get_stats             Trend, rolling averages, and chart domain
  add_workout           Add a workout to a day slot
  list_workouts         List the routine, optionally for one day
  delete_workout        Delete a workout by ID
  complete_day          Log the current day and advance
  export_workouts_csv   Export the routine as CSV
  import_workouts_csv   Replace the routine from CSV

AVAILABLE RESOURCES:

  magni://stats            Weight statistics snapshot
  magni://workouts/today   Workouts for the current day
  magni://history/recent   Recently completed workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, loc, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
