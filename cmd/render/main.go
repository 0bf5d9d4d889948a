package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"whitted-tracer/internal/batch"
	"whitted-tracer/internal/config"
	"whitted-tracer/internal/imageout"
	"whitted-tracer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene document to render (or first argument)")
	outFile := flag.String("o", "", "Output image; the extension selects the format")
	outputDir := flag.String("output", "", "Output directory when -o is not given (default: .)")
	format := flag.String("format", "", "Output format: png, webp, bmp, ppm (default: png)")
	mode := flag.String("mode", "", "Render mode override: binary or phong")
	depth := flag.Int("depth", -1, "Max recursion depth override (default: scene nbounces, else 5)")
	shadow := flag.String("shadow", "", "Shadow mode: dim or occlude (default: dim)")
	textureDir := flag.String("textures", "", "Directory searched for material textures")
	preview := flag.Int("preview", 0, "Also write a preview with this max dimension")
	workers := flag.Int("workers", 0, "Number of row worker goroutines (default: NumCPU)")

	flag.Parse()

	if *scenePath == "" && flag.NArg() > 0 {
		*scenePath = flag.Arg(0)
	}
	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no scene document. Use -scene or pass a path.")
		os.Exit(1)
	}

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

	frame := batch.NewFrame(*scenePath)
	if *outFile != "" {
		f, err := imageout.FormatFromPath(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		*format = string(f)
		*outputDir = filepath.Dir(*outFile)
		frame.Name = strings.TrimSuffix(filepath.Base(*outFile), filepath.Ext(*outFile))
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
	batchCfg.Verbose = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Scene: %s\n", frame.Path)
	fmt.Println("------------------------------------------------------------")

	res := batch.RenderFrame(ctx, batchCfg, frame)

	fmt.Println("------------------------------------------------------------")
	if !res.Success {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %s\n", res.Name, res.Error)
		os.Exit(1)
	}
	fmt.Printf("Done in %.2fs\n", res.Elapsed.Seconds())
	fmt.Printf("Image: %s\n", res.Image)
	if res.Preview != "" {
		fmt.Printf("Preview: %s\n", res.Preview)
	}
}
