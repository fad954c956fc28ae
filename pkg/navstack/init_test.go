package navstack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
)

func resetDefaults(t *testing.T) {
	t.Cleanup(func() {
		SetDefaultOptions(options.Empty)
		SetLocale(constants.DefaultLocale)
	})
}

func TestInit_LoadsDefaultOptions(t *testing.T) {
	resetDefaults(t)
	path := filepath.Join(t.TempDir(), "defaults.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[topBar]
visible = false

[animations.push]
enabled = false
`), 0o644))

	require.NoError(t, Init(Options{DefaultOptionsPath: path}))

	defaults := DefaultOptions()
	assert.True(t, defaults.TopBar.Visible.IsFalse())
	assert.True(t, defaults.Animations.Push.Enabled.IsFalse())
	assert.False(t, defaults.Animations.Pop.Enabled.HasValue())
}

func TestInit_DefaultOptionsFromEnv(t *testing.T) {
	resetDefaults(t)
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topBar:\n  title: Home\n"), 0o644))
	t.Setenv(constants.DefaultOptionsEnvVar, path)

	require.NoError(t, Init(Options{}))
	assert.Equal(t, "Home", DefaultOptions().TopBar.Title.Get())
}

func TestInit_BadDefaultOptions(t *testing.T) {
	resetDefaults(t)

	err := Init(Options{DefaultOptionsPath: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
	assert.False(t, DefaultOptions().HasValue())
}

func TestInit_NoConfiguration(t *testing.T) {
	resetDefaults(t)
	t.Setenv(constants.DefaultOptionsEnvVar, "")

	assert.NoError(t, Init(Options{}))
	assert.NotNil(t, GetLogger())
}
