package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/TristanAtze/WindowsAutostartApi/internal/autostart"
	"github.com/TristanAtze/WindowsAutostartApi/internal/config"
	"github.com/TristanAtze/WindowsAutostartApi/internal/logging"
	"github.com/TristanAtze/WindowsAutostartApi/internal/providers"
	"github.com/TristanAtze/WindowsAutostartApi/internal/regstore"
	"github.com/TristanAtze/WindowsAutostartApi/internal/shortcut"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// buildProviders wires config, logging, and the available providers.
// Off Windows the registry store is unavailable; the CLI then runs with
// the startup-folder provider alone.
func buildProviders() ([]providers.Provider, *config.Config, *logging.Logger) {
	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewNop()
	}

	var provs []providers.Provider
	if store, err := regstore.NewSystemStore(); err != nil {
		log.Warn("registry provider unavailable", zap.Error(err))
	} else {
		provs = append(provs, providers.NewRegistry(store, log))
	}

	dirs := providers.DefaultStartupDirs()
	if cfg.Folders.UserDir != "" {
		dirs[types.ScopeCurrentUser] = cfg.Folders.UserDir
	}
	if cfg.Folders.MachineDir != "" {
		dirs[types.ScopeAllUsers] = cfg.Folders.MachineDir
	}
	provs = append(provs, providers.NewFolder(dirs, shortcut.NewLinkCodec(), log))

	return provs, cfg, log
}

func buildManager() (*autostart.Manager, *logging.Logger) {
	provs, _, log := buildProviders()
	return autostart.NewManager(log, provs...), log
}

func buildCachedManager() (*autostart.CachedManager, *logging.Logger) {
	provs, cfg, log := buildProviders()
	return autostart.NewCachedManager(cfg.Cache.TTL, log, provs...), log
}

// printEntries renders entries as the table shared by list and refresh.
func printEntries(entries []types.StartupEntry) error {
	if len(entries) == 0 {
		fmt.Println("No auto-start entries found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tSCOPE\tTARGET\tARGUMENTS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Kind, e.Scope, e.TargetPath, e.Arguments)
	}
	return w.Flush()
}

// parseTarget resolves the shared --scope and --kind flags.
func parseTarget() (types.Scope, types.Kind, error) {
	scope, ok := types.ParseScope(flagScope)
	if !ok {
		return "", "", fmt.Errorf("unknown scope %q", flagScope)
	}
	kind, ok := types.ParseKind(flagKind)
	if !ok {
		return "", "", fmt.Errorf("unknown kind %q", flagKind)
	}
	return scope, kind, nil
}
