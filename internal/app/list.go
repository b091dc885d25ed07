package app

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all auto-start entries",
	Long: `List every auto-start entry visible to the current user, across the
registry Run/RunOnce keys and both startup folders.

Entries are printed in provider order: registry first, then startup
folders, each enumerated per scope. RunOnce entries may disappear on
their own after the next logon; the OS consumes them outside this
tool's control.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, log := buildManager()
		defer log.Sync()

		entries, err := mgr.ListAll()
		if err != nil {
			return err
		}
		return printEntries(entries)
	},
}
