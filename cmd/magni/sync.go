// ABOUTME: CLI commands for Charm cloud sync.
// ABOUTME: Supports link, unlink, status, now, and reset on the charm backend.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/harperreed/magni/internal/kv"
	"github.com/spf13/cobra"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync data across devices",
	Long: `Sync data across devices using Charm Cloud.

Requires "backend": "charm" in ~/.config/magni/config.json (or MAGNI_BACKEND=charm).
Data is E2E encrypted with your SSH key before upload.

COMMANDS:

  link     Link this device to your Charm account
  unlink   Disconnect this device from Charm
  status   Show sync status and account info
  now      Sync immediately
  reset    Reset local data and restore from cloud (destructive)

Data syncs automatically after each change.`,
}

// charmStore returns the open Charm store or an error naming the backend in use.
func charmStore() (*kv.CharmStore, error) {
	cs, ok := store.(*kv.CharmStore)
	if !ok {
		return nil, fmt.Errorf("sync needs the charm backend (current: %s)", cfg.GetBackend())
	}
	return cs, nil
}

func runCharm(cmd *cobra.Command, arg string) error {
	charmCmd := exec.Command("charm", arg)
	charmCmd.Stdin = os.Stdin
	charmCmd.Stdout = cmd.OutOrStdout()
	charmCmd.Stderr = cmd.ErrOrStderr()
	return charmCmd.Run()
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charmStore()
		if err != nil {
			return err
		}
		if err := runCharm(cmd, "link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintln(out, "\n✓ Device linked to Charm")
		if err := cs.Sync(); err != nil {
			color.New(color.FgYellow).Fprintf(out, "⚠ Initial sync failed: %v\n", err)
		} else {
			color.New(color.FgGreen).Fprintln(out, "✓ Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long:  `Disconnect this device from Charm. Local data is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := charmStore(); err != nil {
			return err
		}
		if err := runCharm(cmd, "unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Device unlinked from Charm")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charmStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		id, err := cs.ID()
		if err != nil {
			color.New(color.FgYellow).Fprintln(out, "Not linked to Charm")
			fmt.Fprintln(out, "\nRun 'magni sync link' to connect to Charm.")
			return nil
		}

		host := cfg.CharmHost
		if host == "" {
			host = kv.DefaultCharmHost
		}
		fmt.Fprintln(out, "Charm ID:", id)
		fmt.Fprintln(out, "Server:", host)
		if cs.IsReadOnly() {
			color.New(color.FgYellow).Fprintln(out, "⚠ Read-only: another process holds the database")
		}
		fmt.Fprintln(out)

		data, err := repo.GetAllData()
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(out, "✓ Connected to Charm")
		fmt.Fprintf(out, "  Workouts: %d\n", len(data.Workouts))
		fmt.Fprintf(out, "  Weights:  %d\n", len(data.Weights))
		fmt.Fprintf(out, "  History:  %d\n", len(data.History))
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charmStore()
		if err != nil {
			return err
		}
		if err := cs.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Synced")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore it from Charm Cloud.

Use this to fix sync conflicts or reset a device to the cloud state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := charmStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !syncYes {
			ok, err := confirm(cmd, "This will DELETE all local data and restore from cloud. Continue?")
			if errors.Is(err, errNotInteractive) {
				return fmt.Errorf("refusing to reset without --yes")
			}
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
		}

		if err := cs.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.New(color.FgGreen).Fprintln(out, "✓ Local data reset and restored from cloud")
		return nil
	},
}

func init() {
	syncResetCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "skip confirmation")

	syncCmd.AddCommand(syncLinkCmd, syncUnlinkCmd, syncStatusCmd, syncNowCmd, syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
