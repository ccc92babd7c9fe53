package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vectormath/internal/config"
	"vectormath/vmath"
)

const sceneYAML = `
output_dir: out
format: tga
frames: 12
camera:
  fov_y: 45
  distance: 8
  pitch: -20
nodes:
  - name: base
    mesh: cube
    color: [0.8, 0.2, 0.2, 1]
    translation: [0, -1, 0]
  - name: arm
    parent: base
    mesh: octahedron
    rotation: [0, 0, 45]
    scale: [0.5, 2, 0.5]
    keys:
      - time: 0
        rotation: [0, 0, 0]
      - time: 1
        rotation: [0, 90, 0]
        translation: [1, 0, 0]
background_keys:
  - time: 0
    offset: [10, 20]
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", sceneYAML)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.BaseDir)
	assert.Equal(t, "tga", cfg.Format)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, 45.0, cfg.Camera.FovY)
	require.Len(t, cfg.Nodes, 2)
	assert.Equal(t, vmath.Vector4{X: 0.8, Y: 0.2, Z: 0.2, W: 1}, cfg.Nodes[0].Color)
	assert.Equal(t, vmath.Vector3{Y: -1}, cfg.Nodes[0].Translation)
	assert.Equal(t, "base", cfg.Nodes[1].Parent)
	require.Len(t, cfg.Nodes[1].Keys, 2)
	assert.Equal(t, vmath.Vector3{X: 1}, cfg.Nodes[1].Keys[1].Translation)
	assert.Equal(t, vmath.Vector2{X: 10, Y: 20}, cfg.BackgroundKeys[0].Offset)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "scene.json", `{"format": "png", "nodes": [{"name": "a", "mesh": "plane", "scale": [2, 2, 2]}]}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, vmath.Vector3{X: 2, Y: 2, Z: 2}, cfg.Nodes[0].Scale)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	path := writeFile(t, "bad.yaml", "nodes:\n  - name: a\n    translation: [1, 2]\n")
	_, err = config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestResolveDefaultsAndFlags(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "scene.yaml", sceneYAML))
	require.NoError(t, err)

	cfg.Resolve(config.Flags{Format: "webp", Workers: 3, Size: 128})
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 128, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, "none", cfg.Fit)
	assert.Equal(t, 0.9, cfg.FillRatio)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "out"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "textures"), cfg.TextureDir)
	assert.Equal(t, 0.1, cfg.Camera.Near)
	assert.Equal(t, 100.0, cfg.Camera.Far)
	assert.Equal(t, 8.0, cfg.Camera.Distance)

	base := cfg.Nodes[0]
	assert.Equal(t, vmath.Vector3{X: 1, Y: 1, Z: 1}, base.Scale)
	arm := cfg.Nodes[1]
	assert.Equal(t, vmath.Vector3{X: 0.5, Y: 2, Z: 0.5}, arm.Keys[0].Scale)
	assert.NotEqual(t, vmath.Vector4Zero, arm.Color)
	assert.Equal(t, vmath.Vector2{X: 1, Y: 1}, cfg.BackgroundKeys[0].Scale)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"format", func(c *config.Config) { c.Format = "gif" }, "unknown format"},
		{"fit", func(c *config.Config) { c.Fit = "stretch" }, "unknown fit"},
		{"fill", func(c *config.Config) { c.FillRatio = 1.5 }, "fill_ratio"},
		{"planes", func(c *config.Config) { c.Camera.Near, c.Camera.Far = 10, 1 }, "must be greater than near"},
		{"fov", func(c *config.Config) { c.Camera.FovY = 180 }, "fov_y"},
		{"unnamed", func(c *config.Config) { c.Nodes = append(c.Nodes, config.Node{}) }, "without name"},
		{"duplicate", func(c *config.Config) { c.Nodes = append(c.Nodes, config.Node{Name: "base"}) }, "duplicate node"},
		{"parent order", func(c *config.Config) {
			c.Nodes = append([]config.Node{{Name: "early", Parent: "base"}}, c.Nodes...)
		}, "must be declared before"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, "scene.yaml", sceneYAML))
			require.NoError(t, err)
			cfg.Resolve(config.Flags{})
			tc.mutate(&cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
