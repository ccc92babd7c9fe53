package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"k8s.io/klog/v2"

	"vectormath/internal/config"
	"vectormath/internal/postprocess"
	"vectormath/internal/raster"
	"vectormath/internal/scene"
	"vectormath/internal/texture"
	"vectormath/vmath"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string
	RenderSize  int
	Supersample int
	Workers     int
	Frames      int

	Fit          string
	FillRatio    float64
	DisplayAngle float64

	Camera          raster.Camera
	Light           raster.LightConfig
	Nodes           []scene.Node
	Background      image.Image
	BackgroundTrack scene.BackgroundTrack
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	File    string
	Success bool
	Error   string
}

// FromConfig builds the batch settings from a resolved, validated config.
func FromConfig(c config.Config, textures texture.Resolver) (Config, error) {
	nodes, err := scene.FromConfig(c.Nodes)
	if err != nil {
		return Config{}, err
	}

	bc := Config{
		OutputDir:       c.OutputDir,
		Format:          c.Format,
		RenderSize:      c.RenderSize,
		Supersample:     c.Supersample,
		Workers:         c.Workers,
		Frames:          c.Frames,
		Fit:             c.Fit,
		FillRatio:       c.FillRatio,
		DisplayAngle:    c.DisplayAngle,
		Camera:          raster.CameraFromConfig(c.Camera),
		Light:           raster.DefaultLightConfig(),
		Nodes:           nodes,
		BackgroundTrack: scene.BackgroundFromConfig(c.BackgroundKeys),
	}

	if c.Background != "" {
		bg := textures.Resolve(c.Background)
		if bg == nil {
			return Config{}, fmt.Errorf("batch: background texture %q not found", c.Background)
		}
		bc.Background = bg
	}
	return bc, nil
}

// FrameTime maps frame i of n onto [0, 1]. A single frame sits at 0.
func FrameTime(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Run renders all frames using a worker pool. Manifest entries are only
// filled for frames that succeeded.
func Run(cfg Config) ([]Result, []ManifestEntry) {
	total := cfg.Frames
	results := make([]Result, total)
	entries := make([]ManifestEntry, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					klog.InfoS("Rendering", "done", p, "total", total, "framesPerSec", float64(p)/elapsed)
				}
			}
		}
	}()

	workers := max(cfg.Workers, 1)
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx], entries[idx] = processFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	var ok []ManifestEntry
	for i, r := range results {
		if r.Success {
			ok = append(ok, entries[i])
		}
	}
	return results, ok
}

// PosedWorlds returns the world matrix of every node at t.
func PosedWorlds(cfg Config, t float64) []vmath.Matrix4 {
	return scene.BuildWorldMatrices(scene.Pose(cfg.Nodes, t))
}

// RenderFrame poses the scene at t and returns the finished image along with
// the camera and world matrices used.
func RenderFrame(cfg Config, t float64) (*image.NRGBA, raster.Camera, []vmath.Matrix4) {
	cam := cfg.Camera.At(t)
	nodes := scene.Pose(cfg.Nodes, t)
	worlds := scene.BuildWorldMatrices(nodes)

	opts := raster.Options{
		Size:                cfg.RenderSize,
		Supersample:         cfg.Supersample,
		Light:               cfg.Light,
		Background:          cfg.Background,
		BackgroundTransform: cfg.BackgroundTrack.Sample(t),
	}
	img := postprocess.Downsample(raster.Render(nodes, worlds, cam, opts), cfg.RenderSize)

	switch cfg.Fit {
	case "crop":
		img = postprocess.CropAndCenter(img, cfg.RenderSize, cfg.FillRatio)
	case "standardize":
		img = postprocess.Standardize(img, cfg.RenderSize, cfg.DisplayAngle, cfg.FillRatio)
	}
	return img, cam, worlds
}

func processFrame(cfg Config, frame int) (Result, ManifestEntry) {
	t := FrameTime(frame, cfg.Frames)
	name := fmt.Sprintf("frame_%04d.%s", frame, cfg.Format)
	res := Result{Frame: frame, File: name}

	img, cam, worlds := RenderFrame(cfg, t)

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res, ManifestEntry{}
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res, ManifestEntry{}
	}
	defer f.Close()

	if err := Encode(f, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res, ManifestEntry{}
	}

	res.Success = true
	return res, newManifestEntry(frame, t, name, cam, worlds, cfg.RenderSize)
}

// Encode writes img in the named format: webp (lossless), tga or png.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
		return nil
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
