package autostart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/TristanAtze/WindowsAutostartApi/internal/logging"
	"github.com/TristanAtze/WindowsAutostartApi/internal/providers"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// Result is a tagged operation outcome. Nothing crosses the
// ResultManager boundary as a Go error; failures carry a human-readable
// message plus the original cause.
type Result struct {
	Success bool
	Error   string
	Cause   error
}

// ListResult is the outcome of TryListAll.
type ListResult struct {
	Result
	Entries []types.StartupEntry
}

// ExistsResult is the outcome of TryExists.
type ExistsResult struct {
	Result
	Present bool
}

// ResultManager applies Manager's routing and validation rules but
// reports every outcome, including per-provider listing failures, as a
// Result value.
type ResultManager struct {
	mgr *Manager
	log *logging.Logger
}

// NewResultManager creates a result-returning manager over providers.
func NewResultManager(log *logging.Logger, provs ...providers.Provider) *ResultManager {
	if log == nil {
		log = logging.NewNop()
	}
	return &ResultManager{mgr: NewManager(log, provs...), log: log}
}

// TryListAll collects what every provider can deliver. Individual
// provider failures are logged and swallowed; the overall outcome is
// always success with whatever entries were gathered.
func (r *ResultManager) TryListAll() ListResult {
	var entries []types.StartupEntry
	for _, p := range r.mgr.Providers() {
		part, err := p.ListAll()
		if err != nil {
			r.log.Warn("provider failed during listing",
				zap.String("provider", p.Name()), zap.Error(err))
			continue
		}
		entries = append(entries, part...)
	}
	return ListResult{Result: ok(), Entries: entries}
}

// TryExists reports presence of the named entry.
func (r *ResultManager) TryExists(name string, scope types.Scope, kind types.Kind) ExistsResult {
	present, err := r.mgr.Exists(name, scope, kind)
	if err != nil {
		return ExistsResult{Result: failed(fmt.Sprintf("checking %q failed", name), err)}
	}
	return ExistsResult{Result: ok(), Present: present}
}

// TryAdd validates and stores the entry.
func (r *ResultManager) TryAdd(entry types.StartupEntry) Result {
	if err := r.mgr.Add(entry); err != nil {
		return failed(fmt.Sprintf("adding %q failed", entry.Name), err)
	}
	return ok()
}

// TryRemove deletes the named entry.
func (r *ResultManager) TryRemove(name string, scope types.Scope, kind types.Kind) Result {
	if err := r.mgr.Remove(name, scope, kind); err != nil {
		return failed(fmt.Sprintf("removing %q failed", name), err)
	}
	return ok()
}

func ok() Result {
	return Result{Success: true}
}

func failed(msg string, cause error) Result {
	return Result{
		Success: false,
		Error:   fmt.Sprintf("%s: %v", msg, cause),
		Cause:   cause,
	}
}
