package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/config"
)

// =============================================================================
// Config Discovery Tests
// =============================================================================
//
// These exercise the full search order against a real directory tree: explicit
// path, working directory, parent walk with the git-root stop, and the global
// fallback under $HOME. The per-step behavior is covered in the config
// package; here the steps run against each other.

// chdir moves the test into dir and restores the old working directory on
// cleanup. Discovery starts from the working directory, so every test here
// needs a controlled one.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// sameFile compares paths through symlinks, since temp directories are
// symlinked on some systems.
func sameFile(t *testing.T, want, got string) {
	t.Helper()
	wantReal, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, wantReal, gotReal)
}

func TestDiscoveryStopsAtGitRoot(t *testing.T) {
	// A config above the repository root must not leak into the run.
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(outer, config.ConfigFileName), []byte("samples: 99\n"), 0o644))

	repo := filepath.Join(outer, "repo")
	work := filepath.Join(repo, "cmd", "tool")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(work, 0o755))

	t.Setenv("HOME", t.TempDir())
	chdir(t, work)

	found, err := config.Find("")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDiscoveryGlobalFallback(t *testing.T) {
	home := t.TempDir()
	globalDir := filepath.Join(home, config.GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	globalPath := filepath.Join(globalDir, config.GlobalConfigFile)
	require.NoError(t, os.WriteFile(globalPath, []byte("samples: 7\ntdelay: 3\n"), 0o644))

	// Work from inside a git checkout with no config of its own, so the
	// parent walk stops before it can wander.
	base := t.TempDir()
	work := filepath.Join(base, "project", "src")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "project", ".git"), 0o755))
	require.NoError(t, os.MkdirAll(work, 0o755))

	t.Setenv("HOME", home)
	chdir(t, work)

	found, err := config.Find("")
	require.NoError(t, err)
	sameFile(t, globalPath, found)

	cfg, err := config.LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Samples)
	assert.Equal(t, 3, cfg.Delay)
	assert.True(t, cfg.ShowSystem)
	assert.True(t, cfg.ShowUsers)
}

func TestDiscoveryLocalBeatsGlobal(t *testing.T) {
	home := t.TempDir()
	globalDir := filepath.Join(home, config.GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(globalDir, config.GlobalConfigFile), []byte("samples: 7\n"), 0o644))

	work := t.TempDir()
	localPath := filepath.Join(work, config.ConfigFileName)
	require.NoError(t, os.WriteFile(localPath, []byte("samples: 4\n"), 0o644))

	t.Setenv("HOME", home)
	chdir(t, work)

	cfg, err := config.LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Samples)
}

func TestDiscoveryDefaultsWithoutAnyFile(t *testing.T) {
	base := t.TempDir()
	work := filepath.Join(base, "project", "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "project", ".git"), 0o755))
	require.NoError(t, os.MkdirAll(work, 0o755))

	t.Setenv("HOME", t.TempDir())
	chdir(t, work)

	cfg, err := config.LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestDiscoveredConfigSurvivesValidation(t *testing.T) {
	work := t.TempDir()
	content := "samples: 3\ntdelay: 2\nuser: false\ngraphics: true\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(work, config.ConfigFileName), []byte(content), 0o644))

	t.Setenv("HOME", t.TempDir())
	chdir(t, work)

	cfg, err := config.LoadOrDefault()
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, 3, cfg.Samples)
	assert.Equal(t, 2, cfg.Delay)
	assert.True(t, cfg.ShowSystem)
	assert.False(t, cfg.ShowUsers)
	assert.True(t, cfg.Graphics)
	assert.False(t, cfg.Sequential)
}

func TestDiscoveredConfigCanFailValidation(t *testing.T) {
	work := t.TempDir()
	content := "system: false\nuser: false\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(work, config.ConfigFileName), []byte(content), 0o644))

	t.Setenv("HOME", t.TempDir())
	chdir(t, work)

	cfg, err := config.LoadOrDefault()
	require.NoError(t, err)

	err = config.Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nothing to monitor")
}
