package providers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/TristanAtze/WindowsAutostartApi/internal/logging"
	"github.com/TristanAtze/WindowsAutostartApi/internal/shortcut"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// StartupDirs maps each scope to its startup directory.
type StartupDirs map[types.Scope]string

// DefaultStartupDirs resolves the conventional per-user and all-users
// startup directories from the environment. A scope whose base variable
// is unset gets no directory and is skipped during enumeration.
func DefaultStartupDirs() StartupDirs {
	dirs := StartupDirs{}
	if appData := os.Getenv("APPDATA"); appData != "" {
		dirs[types.ScopeCurrentUser] = filepath.Join(appData,
			"Microsoft", "Windows", "Start Menu", "Programs", "Startup")
	}
	if programData := os.Getenv("ProgramData"); programData != "" {
		dirs[types.ScopeAllUsers] = filepath.Join(programData,
			"Microsoft", "Windows", "Start Menu", "Programs", "StartUp")
	}
	return dirs
}

// Folder serves startup-folder shortcut entries.
type Folder struct {
	dirs  StartupDirs
	codec shortcut.Codec
	log   *logging.Logger
	mu    sync.Mutex
}

// NewFolder creates a folder provider writing shortcuts via codec.
func NewFolder(dirs StartupDirs, codec shortcut.Codec, log *logging.Logger) *Folder {
	if log == nil {
		log = logging.NewNop()
	}
	return &Folder{dirs: dirs, codec: codec, log: log}
}

// Name implements Provider.
func (f *Folder) Name() string { return "startup-folder" }

// Supports implements Provider.
func (f *Folder) Supports(kind types.Kind) bool {
	return kind == types.KindStartupFolder
}

// ListAll enumerates *.lnk files in both scopes' directories. A missing
// or unreadable directory contributes zero entries; shortcuts that do
// not decode to a target are skipped.
func (f *Folder) ListAll() ([]types.StartupEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var entries []types.StartupEntry
	for _, scope := range types.Scopes() {
		dir, ok := f.dirs[scope]
		if !ok {
			continue
		}
		items, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, item := range items {
			if item.IsDir() || !strings.EqualFold(filepath.Ext(item.Name()), ".lnk") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, item.Name()))
			if err != nil {
				continue
			}
			target, args, err := f.codec.Decode(data)
			if err != nil || target == "" {
				f.log.Debug("skipping undecodable shortcut",
					zap.String("file", item.Name()), zap.String("scope", string(scope)))
				continue
			}
			name := strings.TrimSuffix(item.Name(), filepath.Ext(item.Name()))
			entries = append(entries, types.StartupEntry{
				Name:       name,
				TargetPath: target,
				Arguments:  args,
				Scope:      scope,
				Kind:       types.KindStartupFolder,
			})
		}
	}
	return entries, nil
}

// Exists checks file presence only, without decoding.
func (f *Folder) Exists(name string, scope types.Scope, kind types.Kind) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path, err := f.shortcutPath(name, scope)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, f.translate("stat", name, scope, err)
	}
	return true, nil
}

// Add writes or overwrites <name>.lnk in the scope's directory, creating
// the directory first. Overwriting makes Add idempotent by construction.
func (f *Folder) Add(entry types.StartupEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path, err := f.shortcutPath(entry.Name, entry.Scope)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return f.translate("add", entry.Name, entry.Scope, err)
	}
	data, err := f.codec.Encode(entry.TargetPath, entry.Arguments)
	if err != nil {
		return &types.OperationError{Op: "add", Entry: entry.Name, Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return f.translate("add", entry.Name, entry.Scope, err)
	}
	return nil
}

// Remove deletes the shortcut file; an absent file is a no-op.
func (f *Folder) Remove(name string, scope types.Scope, kind types.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path, err := f.shortcutPath(name, scope)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return f.translate("remove", name, scope, err)
}

func (f *Folder) shortcutPath(name string, scope types.Scope) (string, error) {
	dir, ok := f.dirs[scope]
	if !ok {
		return "", &types.OperationError{
			Op:    "resolve",
			Entry: name,
			Cause: fmt.Errorf("no startup directory configured for scope %q", scope),
		}
	}
	return filepath.Join(dir, name+".lnk"), nil
}

func (f *Folder) translate(op, name string, scope types.Scope, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &types.AccessError{Scope: scope, Cause: err}
	}
	return &types.OperationError{Op: op, Entry: name, Cause: err}
}
