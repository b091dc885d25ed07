package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with the given arguments.
func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestAddExistsRemoveViaCLI(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "startup")
	t.Setenv("AUTOSTART_USER_STARTUP_DIR", dir)

	require.NoError(t, runCmd(t,
		"add", "--name", "SmokeTest",
		"--target", `C:\Windows\System32\notepad.exe`,
		"--kind", "startup_folder"))

	require.NoError(t, runCmd(t,
		"exists", "--name", "SmokeTest", "--kind", "startup_folder"))

	require.NoError(t, runCmd(t,
		"remove", "--name", "SmokeTest", "--kind", "startup_folder"))
}

func TestRefreshCommandRegistered(t *testing.T) {
	for _, cmd := range RootCmd.Commands() {
		if cmd.Name() == "refresh" {
			return
		}
	}
	t.Fatal("refresh command is not registered on the root command")
}

func TestRefreshViaCLI(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "startup")
	t.Setenv("AUTOSTART_USER_STARTUP_DIR", dir)
	t.Setenv("AUTOSTART_CACHE_TTL", "1m")

	require.NoError(t, runCmd(t,
		"add", "--name", "CachedTool",
		"--target", `C:\Windows\System32\notepad.exe`,
		"--kind", "startup_folder"))

	require.NoError(t, runCmd(t, "refresh"))
}

func TestAddRejectsInvalidTarget(t *testing.T) {
	t.Setenv("AUTOSTART_USER_STARTUP_DIR", t.TempDir())

	err := runCmd(t,
		"add", "--name", "Bad",
		"--target", "CON",
		"--kind", "startup_folder")
	require.Error(t, err)
}

func TestUnknownScopeFails(t *testing.T) {
	err := runCmd(t,
		"exists", "--name", "X", "--scope", "everyone")
	require.Error(t, err)
}
