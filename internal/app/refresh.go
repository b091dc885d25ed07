package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the entry cache and print the fresh listing",
	Long: `Reload every provider in parallel through the cached manager and
print the resulting snapshot. The snapshot's lifetime is controlled by
AUTOSTART_CACHE_TTL.

A provider that cannot be read contributes nothing to the listing;
its failure is reported as a warning instead of aborting the refresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, log := buildCachedManager()
		defer log.Sync()
		defer cm.Close()

		entries, err := cm.Refresh()
		if err != nil {
			return err
		}
		for _, d := range cm.Diagnostics() {
			fmt.Fprintf(os.Stderr, "warning: provider %s: %v\n", d.Provider, d.Err)
		}
		return printEntries(entries)
	},
}
