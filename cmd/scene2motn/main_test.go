package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scene2motn/internal/curve"
	"github.com/ivlev/scene2motn/internal/engine"
)

const testScene = `name: dolly
frame_start: 1
frame_end: 4
camera: Camera
objects:
  - name: Camera
    type: CAMERA
    keys:
      - frame: 1
        location: [0, 0, 0]
      - frame: 4
        location: [3, 0, 0]
  - name: Null.001
    type: EMPTY
    location: [1, 1, 1]
`

type cliEnv struct {
	dir        string
	configPath string
	scenePath  string
	outputDir  string
}

func setupCLITestEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	env := cliEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.toml"),
		scenePath:  filepath.Join(dir, "scenes", "dolly.yaml"),
		outputDir:  filepath.Join(dir, "out"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(env.scenePath), 0o755))
	require.NoError(t, os.WriteFile(env.scenePath, []byte(testScene), 0o644))

	cfg := strings.Join([]string{
		"[export]",
		`destination = "SHAKE"`,
		`output_dir = "` + env.outputDir + `"`,
		`scene_dir = "` + filepath.Dir(env.scenePath) + `"`,
		"[logging]",
		`level = "error"`,
		"[stats]",
		`log_path = "` + filepath.Join(dir, "benchmark.log") + `"`,
	}, "\n")
	require.NoError(t, os.WriteFile(env.configPath, []byte(cfg), 0o644))
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestExportCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.dir, "shot")

	out, _, err := runCLI(t, []string{"export", env.scenePath, "-o", target, "-d", "ae"}, env.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "[+] Exported 2 objects over 4 frames (AE)")

	data, err := os.ReadFile(target + ".motn")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<layer name="Null_001" id="10001">`)
	assert.Contains(t, string(data), "<value>300.0</value>")
}

func TestExportCommandPicksLatestScene(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"export", "--stats"}, env.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "[*] Selected scene: "+env.scenePath)
	assert.Contains(t, out, "PERFORMANCE REPORT")

	entries, err := os.ReadDir(env.outputDir)
	require.NoError(t, err)
	var motn []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".motn") {
			motn = append(motn, e.Name())
		}
	}
	require.Len(t, motn, 1)
	assert.True(t, strings.HasPrefix(motn[0], "dolly_"))
	assert.FileExists(t, filepath.Join(env.dir, "benchmark.log"))
}

func TestExportCommandRejectsUnknownDestination(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"export", env.scenePath, "-d", "nuke"}, env.configPath)
	assert.ErrorContains(t, err, "unknown destination")
}

func TestExportCommandMissingCamera(t *testing.T) {
	env := setupCLITestEnv(t)
	noCamera := filepath.Join(env.dir, "empty.yaml")
	require.NoError(t, os.WriteFile(noCamera, []byte("frame_start: 1\nframe_end: 2\nobjects:\n  - name: A\n    type: EMPTY\n"), 0o644))

	_, _, err := runCLI(t, []string{"export", noCamera, "-o", filepath.Join(env.dir, "x")}, env.configPath)
	assert.ErrorContains(t, err, "no active camera")
	assert.NoFileExists(t, filepath.Join(env.dir, "x.motn"))
}

func TestInspectCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"inspect", env.scenePath}, env.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Null_001")
	assert.Contains(t, out, "camera")
	assert.Contains(t, out, "static")
	assert.Contains(t, out, "Frames 1..4 (4) @ 24 fps | SHAKE | 2 objects")

	_, err = os.Stat(env.outputDir)
	assert.True(t, os.IsNotExist(err), "inspect must not write output")
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", target}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample configuration")
	assert.FileExists(t, target)

	_, _, err = runCLI(t, []string{"config", "init", target}, "")
	assert.ErrorContains(t, err, "already exists")

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	require.NoError(t, err)
	assert.Contains(t, out, "Destination: AE (scale 100, static cap true)")
	assert.Contains(t, out, "Configuration valid")
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	got := defaultOutputPath("out", "/scenes/my shot.yaml", now)
	assert.Equal(t, filepath.Join("out", "my_shot_2024-03-09_14-05-06.motn"), got)
}

func TestSceneInitThenExport(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.dir, "sample.yaml")

	out, _, err := runCLI(t, []string{"scene", "init", target}, env.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample scene")

	out, _, err = runCLI(t, []string{"export", target, "-o", filepath.Join(env.dir, "sample.motn")}, env.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "over 48 frames")
	assert.FileExists(t, filepath.Join(env.dir, "sample.motn"))

	_, _, err = runCLI(t, []string{"scene", "init", target}, env.configPath)
	assert.ErrorContains(t, err, "already exists")
}

func TestRenderPlan(t *testing.T) {
	res := &engine.Result{Objects: []engine.ObjectSummary{
		{Name: "Camera", Source: "Camera", Type: "CAMERA", Role: curve.RoleCamera, Samples: 40,
			Keys: map[curve.Group]int{curve.GroupPosition: 6, curve.GroupRotation: 3, curve.GroupScale: 3, curve.GroupObject: 1}},
		{Name: "Null_001", Source: "Null.001", Type: "EMPTY", Static: true, Skipped: true, Samples: 36,
			Keys: map[curve.Group]int{curve.GroupPosition: 3, curve.GroupRotation: 3, curve.GroupScale: 3}},
	}}

	lines := strings.Split(renderPlan(res), "\n")
	var camRow, nullRow string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Camera"):
			camRow = l
		case strings.Contains(l, "Null_001"):
			nullRow = l
		}
	}
	require.NotEmpty(t, camRow)
	require.NotEmpty(t, nullRow)
	assert.Contains(t, camRow, "camera")
	assert.Contains(t, camRow, "animated")
	assert.Contains(t, nullRow, "Null.001")
	assert.Contains(t, nullRow, "skipped")
	assert.Contains(t, nullRow, " - ")
}
