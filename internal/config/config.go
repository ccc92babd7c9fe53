package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"sigs.k8s.io/yaml"

	"vectormath/vmath"
)

// Config holds the scene description and render settings. Files may be YAML
// or JSON; vectors are written as arrays, e.g. translation: [0, 1, 0].
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	OutputDir  string `json:"output_dir"`
	TextureDir string `json:"texture_dir"`
	Background string `json:"background"`

	// Render settings
	Format      string `json:"format"`
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Frames      int    `json:"frames"`

	// Framing: "none", "crop" or "standardize"
	Fit          string  `json:"fit"`
	FillRatio    float64 `json:"fill_ratio"`
	DisplayAngle float64 `json:"display_angle"`

	Camera         Camera          `json:"camera"`
	Nodes          []Node          `json:"nodes"`
	BackgroundKeys []BackgroundKey `json:"background_keys"`
}

// Camera orbits the origin. Angles are in degrees.
type Camera struct {
	FovY         float64 `json:"fov_y"`
	Near         float64 `json:"near"`
	Far          float64 `json:"far"`
	Distance     float64 `json:"distance"`
	Pitch        float64 `json:"pitch"`
	Yaw          float64 `json:"yaw"`
	Spin         float64 `json:"spin"`
	Orthographic bool    `json:"orthographic"`
	OrthoHeight  float64 `json:"ortho_height"`
}

// Node is one mesh instance in the hierarchy. Rotation holds pitch, yaw and
// roll in degrees.
type Node struct {
	Name        string        `json:"name"`
	Parent      string        `json:"parent"`
	Mesh        string        `json:"mesh"`
	Color       vmath.Vector4 `json:"color"`
	Translation vmath.Vector3 `json:"translation"`
	Rotation    vmath.Vector3 `json:"rotation"`
	Scale       vmath.Vector3 `json:"scale"`
	Keys        []Key         `json:"keys"`
}

// Key is an animation keyframe at Time in [0, 1].
type Key struct {
	Time        float64       `json:"time"`
	Translation vmath.Vector3 `json:"translation"`
	Rotation    vmath.Vector3 `json:"rotation"`
	Scale       vmath.Vector3 `json:"scale"`
}

// BackgroundKey places the background texture at Time. Offset is in output
// pixels, Rotation in degrees.
type BackgroundKey struct {
	Time     float64       `json:"time"`
	Offset   vmath.Vector2 `json:"offset"`
	Rotation float64       `json:"rotation"`
	Scale    vmath.Vector2 `json:"scale"`
}

// Load reads a YAML or JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}
	c.OutputDir = c.resolvePath(c.OutputDir, "renders")
	c.TextureDir = c.resolvePath(c.TextureDir, "textures")

	// Defaults for render settings
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Fit == "" {
		c.Fit = "none"
	}
	if c.FillRatio <= 0 {
		c.FillRatio = 0.9
	}

	cam := &c.Camera
	if cam.FovY <= 0 {
		cam.FovY = 60
	}
	if cam.Near <= 0 {
		cam.Near = 0.1
	}
	if cam.Far <= 0 {
		cam.Far = 100
	}
	if cam.Distance <= 0 {
		cam.Distance = 5
	}
	if cam.OrthoHeight <= 0 {
		cam.OrthoHeight = 4
	}

	for i := range c.Nodes {
		n := &c.Nodes[i]
		if n.Scale == vmath.Vector3Zero {
			n.Scale = vmath.Vector3{X: 1, Y: 1, Z: 1}
		}
		if n.Color == vmath.Vector4Zero {
			n.Color = vmath.Vector4{X: 0.63, Y: 0.63, Z: 0.67, W: 1}
		}
		for k := range n.Keys {
			if n.Keys[k].Scale == vmath.Vector3Zero {
				n.Keys[k].Scale = n.Scale
			}
		}
	}
	for i := range c.BackgroundKeys {
		if c.BackgroundKeys[i].Scale == vmath.Vector2Zero {
			c.BackgroundKeys[i].Scale = vmath.Vector2{X: 1, Y: 1}
		}
	}
}

func (c *Config) resolvePath(p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Validate reports settings that would make rendering impossible.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "tga", "png":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	switch c.Fit {
	case "none", "crop", "standardize":
	default:
		return fmt.Errorf("config: unknown fit %q", c.Fit)
	}
	if c.FillRatio > 1 {
		return fmt.Errorf("config: fill_ratio %v out of range", c.FillRatio)
	}
	if !(c.Camera.Far > c.Camera.Near) {
		return fmt.Errorf("config: camera far (%v) must be greater than near (%v)", c.Camera.Far, c.Camera.Near)
	}
	if c.Camera.FovY >= 180 {
		return fmt.Errorf("config: camera fov_y %v out of range", c.Camera.FovY)
	}

	seen := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if n.Name == "" {
			return fmt.Errorf("config: node without name")
		}
		if seen[n.Name] {
			return fmt.Errorf("config: duplicate node %q", n.Name)
		}
		if n.Parent != "" && !seen[n.Parent] {
			return fmt.Errorf("config: node %q: parent %q must be declared before it", n.Name, n.Parent)
		}
		seen[n.Name] = true
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Format      string
	Size        int
	Supersample int
	Workers     int
	Frames      int
}
