package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeName string

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete an auto-start entry",
	Long: `Delete the named auto-start entry for the given scope and kind.
Removing an entry that does not exist is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, kind, err := parseTarget()
		if err != nil {
			return err
		}

		mgr, log := buildManager()
		defer log.Sync()

		if err := mgr.Remove(removeName, scope, kind); err != nil {
			return err
		}
		fmt.Printf("Removed %q (%s, %s)\n", removeName, kind, scope)
		return nil
	},
}

func init() {
	removeCmd.Flags().StringVar(&removeName, "name", "", "entry name (required)")
	removeCmd.MarkFlagRequired("name")
}
