package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.Samples)
	assert.Equal(t, 1, cfg.Delay)
	assert.True(t, cfg.ShowSystem)
	assert.True(t, cfg.ShowUsers)
	assert.False(t, cfg.Graphics)
	assert.False(t, cfg.Sequential)
}

func TestInterval(t *testing.T) {
	cfg := &Config{Delay: 3}
	assert.Equal(t, 3*time.Second, cfg.Interval())

	cfg.Delay = 0
	assert.Equal(t, time.Duration(0), cfg.Interval())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, `
samples: 5
tdelay: 2
graphics: true
sequential: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Samples)
	assert.Equal(t, 2, cfg.Delay)
	assert.True(t, cfg.Graphics)
	assert.True(t, cfg.Sequential)
	// Keys the file does not name keep their defaults.
	assert.True(t, cfg.ShowSystem)
	assert.True(t, cfg.ShowUsers)
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "samples: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Samples)
	assert.Equal(t, 1, cfg.Delay, "unset keys should keep defaults")
	assert.False(t, cfg.Graphics)
}

func TestLoad_SectionToggles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, `
system: true
user: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.ShowSystem)
	assert.False(t, cfg.ShowUsers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "samples: [not closed\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

// The yaml tags and the mapstructure tags must describe the same keys, or a
// file written from a Config would not read back through the loader.
func TestConfigTagsRoundTrip(t *testing.T) {
	want := &Config{
		Samples:    7,
		Delay:      4,
		ShowSystem: true,
		ShowUsers:  false,
		Graphics:   true,
		Sequential: false,
	}

	data, err := yaml.Marshal(want)
	require.NoError(t, err)

	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, string(data))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "samples: 2\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "samples: 2\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	found, err := Find("")
	require.NoError(t, err)

	// Resolve symlinks so the comparison works on systems where the temp
	// directory itself is behind one.
	wantReal, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	foundReal, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantReal, foundReal)
}

func TestFind_ParentDirectory(t *testing.T) {
	parent := t.TempDir()
	path := writeConfig(t, parent, ConfigFileName, "samples: 2\n")

	child := filepath.Join(parent, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(child))
	defer func() { _ = os.Chdir(wd) }()

	found, err := Find("")
	require.NoError(t, err)

	wantReal, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	foundReal, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantReal, foundReal)
}
