package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"whitted-tracer/internal/batch"
	"whitted-tracer/internal/config"
	"whitted-tracer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", ".", "Directory holding the frame documents")
	pattern := flag.String("pattern", batch.DefaultPattern, "Glob selecting frame documents")
	testN := flag.Int("test", 0, "Render only the first N frames for testing")
	outputDir := flag.String("output", "", "Output directory (default: <input>/rendered)")
	format := flag.String("format", "", "Output format: png, webp, bmp, ppm (default: png)")
	mode := flag.String("mode", "", "Render mode override: binary or phong")
	depth := flag.Int("depth", -1, "Max recursion depth override (default: scene nbounces, else 5)")
	shadow := flag.String("shadow", "", "Shadow mode: dim or occlude (default: dim)")
	textureDir := flag.String("textures", "", "Directory searched for material textures")
	preview := flag.Int("preview", 0, "Also write previews with this max dimension")
	workers := flag.Int("workers", 0, "Row worker goroutines per frame (default: NumCPU)")
	frameWorkers := flag.Int("frames", 0, "Frames rendered concurrently (default: config or 1)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *frameWorkers > 0 {
		cfg.FrameWorkers = *frameWorkers
	}
	if *outputDir == "" && cfg.OutputDir == "" {
		*outputDir = filepath.Join(*inputDir, "rendered")
	}

	// CLI flags override config file
	flags := config.Flags{
		OutputDir:  *outputDir,
		TextureDir: *textureDir,
		Format:     *format,
		Mode:       *mode,
		ShadowMode: *shadow,
		Preview:    *preview,
		Workers:    *workers,
	}
	if *depth >= 0 {
		flags.MaxDepth = depth
	}
	cfg.Resolve(flags)

	batchCfg, err := batch.NewConfig(cfg, raster.StdoutLogger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames, err := batch.Discover(*inputDir, *pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *testN > 0 && *testN < len(frames) {
		frames = frames[:*testN]
	}
	if len(frames) == 0 {
		fmt.Println("No frames to render.")
		os.Exit(0)
	}

	fmt.Printf("Whitted ray tracer → %s sequence\n", batchCfg.Format)
	fmt.Printf("Frames: %d, Frame workers: %d, Row workers: %d\n", len(frames), batchCfg.FrameWorkers, batchCfg.Workers)
	fmt.Printf("Output: %s\n", batchCfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results := batch.Run(ctx, batchCfg, frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(batchCfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, results)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
