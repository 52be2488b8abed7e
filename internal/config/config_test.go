package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scene2motn/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, filepath.Join(tempHome, ".config", "scene2motn", "config.toml"), resolved)

	assert.Equal(t, "AE", cfg.Export.Destination)
	assert.Equal(t, config.DestinationAE, cfg.Destination())
	assert.Equal(t, 500, cfg.Export.MaxStatic)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, filepath.IsAbs(cfg.Export.OutputDir))
	assert.False(t, cfg.Stats.Enabled)
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene2motn.toml")
	content := `
[export]
destination = "shake"
max_static = 12
object_types = ["Camera", " Empty ", ""]
output_dir = "~/renders"

[logging]
format = "JSON"
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, resolved, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, config.DestinationShake, cfg.Destination())
	assert.Equal(t, 12, cfg.Export.MaxStatic)
	assert.Equal(t, []string{"Camera", "Empty"}, cfg.Export.ObjectTypes)
	assert.Equal(t, filepath.Join(home, "renders"), cfg.Export.OutputDir)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"destination", "[export]\ndestination = \"nuke\"\n"},
		{"max static", "[export]\nmax_static = -1\n"},
		{"log format", "[logging]\nformat = \"xml\"\n"},
		{"log level", "[logging]\nlevel = \"trace\"\n"},
		{"unknown key", "[export]\nspeed = 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, _, _, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSampleConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, config.WriteSample(path))
	assert.Error(t, config.WriteSample(path), "second write must refuse to overwrite")

	cfg, _, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, config.DestinationAE, cfg.Destination())
}

func TestDestination(t *testing.T) {
	tests := []struct {
		in         string
		want       config.Destination
		scale      float64
		capsStatic bool
	}{
		{"AE", config.DestinationAE, 100, true},
		{"afterfx", config.DestinationAE, 100, true},
		{"Shake", config.DestinationShake, 1, true},
		{" maya ", config.DestinationMaya, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := config.ParseDestination(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
			assert.Equal(t, tt.scale, d.Scale())
			assert.Equal(t, tt.capsStatic, d.CapsStatic())
		})
	}

	_, err := config.ParseDestination("nuke")
	assert.Error(t, err)
}

func TestWantsType(t *testing.T) {
	cfg := config.Default()
	assert.True(t, cfg.WantsType("MESH"))

	cfg.Export.ObjectTypes = []string{"Camera", "Empty"}
	assert.True(t, cfg.WantsType("CAMERA"))
	assert.True(t, cfg.WantsType("empty"))
	assert.False(t, cfg.WantsType("MESH"))
}
