package app

import (
	"github.com/spf13/cobra"
)

var (
	flagScope string
	flagKind  string

	// RootCmd is the root command for autostart.
	RootCmd = &cobra.Command{
		Use:   "autostart",
		Short: "Manage Windows auto-start entries",
		Long: `autostart manages Windows auto-start entries across the registry
Run/RunOnce keys and the per-user/all-users startup folders.

Scopes:
  current_user   Per-user hive / startup folder (no elevation needed)
  all_users      Machine-wide hive / shared folder (requires administrator)

Kinds:
  run            Registry Run key, persists across reboots
  run_once       Registry RunOnce key, consumed by the OS after one logon
  startup_folder Shortcut (.lnk) file in a startup directory

Examples:
  # List every autostart entry
  autostart list

  # Register notepad at logon for the current user
  autostart add --name Notepad --target C:\Windows\System32\notepad.exe

  # Check and remove it again
  autostart exists --name Notepad
  autostart remove --name Notepad`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&flagScope, "scope", "current_user", "entry scope (current_user, all_users)")
	RootCmd.PersistentFlags().StringVar(&flagKind, "kind", "run", "entry kind (run, run_once, startup_folder)")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(existsCmd)
	RootCmd.AddCommand(refreshCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
