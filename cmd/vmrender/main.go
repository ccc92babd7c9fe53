package main

import (
	goflag "flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"vectormath/internal/batch"
	"vectormath/internal/config"
	"vectormath/internal/raster"
	"vectormath/internal/texture"
)

var version = "dev"

type options struct {
	configFile string
	flags      config.Flags
}

func main() {
	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	defer klog.Flush()

	root := newRootCommand()
	root.PersistentFlags().AddGoFlagSet(klogFlags)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "vmrender",
		Short:        "Render animated primitive scenes to image sequences",
		SilenceUsage: true,
	}
	addConfigFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		&cobra.Command{
			Use:   "render",
			Short: "Render every frame and write manifest.json",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runRender(opts)
			},
		},
		&cobra.Command{
			Use:   "inspect",
			Short: "Print the camera and node matrices for each frame",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runInspect(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

func addConfigFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.configFile, "config", "c", "", "Path to scene YAML or JSON file")
	fs.StringVarP(&opts.flags.OutputDir, "output", "o", "", "Output directory (default: <config dir>/renders)")
	fs.StringVar(&opts.flags.Format, "format", "", "Image format: webp, tga or png (default: webp)")
	fs.IntVar(&opts.flags.Frames, "frames", 0, "Number of frames (default: 1)")
	fs.IntVar(&opts.flags.Workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	fs.IntVar(&opts.flags.Size, "size", 0, "Output size in pixels (default: 256)")
	fs.IntVar(&opts.flags.Supersample, "supersample", 0, "Supersampling factor (default: 2)")
}

func loadConfig(opts *options) (config.Config, error) {
	var cfg config.Config
	if opts.configFile != "" {
		var err error
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	// CLI flags override config file
	cfg.Resolve(opts.flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadBatch(cfg config.Config) (batch.Config, error) {
	texIndex := texture.BuildIndex(cfg.TextureDir)
	klog.V(1).InfoS("Indexed textures", "dir", cfg.TextureDir, "count", texIndex.Len())
	return batch.FromConfig(cfg, texture.NewCache(texIndex))
}

func runRender(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	bc, err := loadBatch(cfg)
	if err != nil {
		return err
	}
	if len(bc.Nodes) == 0 {
		klog.InfoS("Scene has no nodes; frames will only show the background")
	}

	klog.InfoS("Rendering", "frames", bc.Frames, "workers", bc.Workers, "format", bc.Format, "output", bc.OutputDir)
	start := time.Now()

	results, entries := batch.Run(bc)

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	klog.InfoS("Done", "elapsed", time.Since(start).Round(time.Millisecond), "rendered", len(results)-len(failed), "total", len(results))

	limit := min(len(failed), 20)
	for _, r := range failed[:limit] {
		klog.ErrorS(nil, "Frame failed", "frame", r.Frame, "file", r.File, "error", r.Error)
	}

	// Write manifest
	manifestPath := filepath.Join(bc.OutputDir, "manifest.json")
	if err := os.MkdirAll(bc.OutputDir, 0755); err != nil {
		return err
	}
	if err := batch.WriteManifest(manifestPath, entries); err != nil {
		klog.Warningf("manifest write failed: %v", err)
	} else {
		klog.InfoS("Wrote manifest", "path", manifestPath)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d frames failed", len(failed), len(results))
	}
	return nil
}

func runInspect(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	bc, err := loadBatch(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < bc.Frames; i++ {
		t := batch.FrameTime(i, bc.Frames)
		cam := bc.Camera.At(t)
		proj := raster.NewProjector(cam, bc.RenderSize)
		fmt.Fprintf(out, "frame %d (t=%.3f)\n", i, t)
		fmt.Fprintf(out, "  camera     %v orbit %v\n", cam.Position(), cam.Orbit)
		fmt.Fprintf(out, "  view       %v\n", proj.View)
		fmt.Fprintf(out, "  projection %v\n", proj.Projection)
		fmt.Fprintf(out, "  background %v\n", bc.BackgroundTrack.Sample(t))

		posed := batch.PosedWorlds(bc, t)
		for n, w := range posed {
			screen, ok := proj.ProjectPoint(w.Translation())
			fmt.Fprintf(out, "  node %-12s origin %v screen %v visible=%v\n", bc.Nodes[n].Name, w.Translation(), screen, ok)
		}
	}
	return nil
}
