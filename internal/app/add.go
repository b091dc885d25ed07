package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

var (
	addName   string
	addTarget string
	addArgs   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an auto-start entry",
	Long: `Register a program to run at logon.

Adding an entry whose name, scope, and kind already exist replaces the
stored target and arguments instead of creating a duplicate. Writing to
the all_users scope requires administrator rights.`,
	Example: `  # Run notepad at logon for the current user
  autostart add --name Notepad --target C:\Windows\System32\notepad.exe

  # Machine-wide startup-folder shortcut with arguments
  autostart add --name Backup --target "C:\Tools\backup.exe" --args "--nightly" \
    --scope all_users --kind startup_folder`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, kind, err := parseTarget()
		if err != nil {
			return err
		}

		mgr, log := buildManager()
		defer log.Sync()

		entry := types.StartupEntry{
			Name:       addName,
			TargetPath: addTarget,
			Arguments:  addArgs,
			Scope:      scope,
			Kind:       kind,
		}
		if err := mgr.Add(entry); err != nil {
			return err
		}
		fmt.Printf("Added %q (%s, %s)\n", entry.Name, entry.Kind, entry.Scope)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "entry name (required)")
	addCmd.Flags().StringVar(&addTarget, "target", "", "program path to launch (required)")
	addCmd.Flags().StringVar(&addArgs, "args", "", "argument string passed to the program")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("target")
}
