package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var existsName string

var existsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Check whether an auto-start entry is registered",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, kind, err := parseTarget()
		if err != nil {
			return err
		}

		mgr, log := buildManager()
		defer log.Sync()

		present, err := mgr.Exists(existsName, scope, kind)
		if err != nil {
			return err
		}
		if present {
			fmt.Printf("%q is registered (%s, %s)\n", existsName, kind, scope)
		} else {
			fmt.Printf("%q is not registered (%s, %s)\n", existsName, kind, scope)
		}
		return nil
	},
}

func init() {
	existsCmd.Flags().StringVar(&existsName, "name", "", "entry name (required)")
	existsCmd.MarkFlagRequired("name")
}
