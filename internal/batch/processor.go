package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"whitted-tracer/internal/config"
	"whitted-tracer/internal/imageout"
	"whitted-tracer/internal/raster"
	"whitted-tracer/internal/sceneio"
	"whitted-tracer/internal/shading"
	"whitted-tracer/internal/texture"
	"whitted-tracer/internal/tracer"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Format    imageout.Format
	Preview   int // max preview dimension, 0 disables

	Load     sceneio.Options
	Mode     string // overrides the document's rendermode when set
	MaxDepth *int   // overrides the document's nbounces when set
	Shading  shading.Config

	Workers      int // row workers per frame
	FrameWorkers int
	Logger       raster.Logger
	Verbose      bool // pass Logger through to each frame's render
}

// NewConfig converts resolved settings into a batch configuration.
func NewConfig(cfg config.Config, log raster.Logger) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	format, err := imageout.ParseFormat(cfg.Format)
	if err != nil {
		return Config{}, err
	}
	shadowMode, err := shading.ParseShadowMode(cfg.ShadowMode)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.RenderMode != "" {
		if _, err := raster.ParseMode(cfg.RenderMode); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	sh := shading.DefaultConfig()
	sh.Mode = shadowMode
	sh.Bias = cfg.Bias
	if cfg.ShadowFactor != nil {
		sh.ShadowFactor = *cfg.ShadowFactor
	}
	if err := sh.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	load := sceneio.DefaultOptions()
	if cfg.AmbientFactor != nil {
		load.AmbientFactor = *cfg.AmbientFactor
	}
	if cfg.TextureDir != "" {
		load.Textures = texture.NewCache(texture.BuildIndex(cfg.TextureDir))
	}
	if log == nil {
		log = raster.NopLogger{}
	}

	return Config{
		OutputDir:    cfg.OutputDir,
		Format:       format,
		Preview:      cfg.Preview,
		Load:         load,
		Mode:         cfg.RenderMode,
		MaxDepth:     cfg.MaxDepth,
		Shading:      sh,
		Workers:      cfg.Workers,
		FrameWorkers: max(cfg.FrameWorkers, 1),
		Logger:       log,
	}, nil
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Name    string
	Source  string
	Image   string
	Preview string
	Success bool
	Error   string
	Elapsed time.Duration
}

// Run renders all frames using a worker pool. A failed frame is recorded in
// its Result and does not stop the run. Cancelling ctx fails the frames not yet finished.
func Run(ctx context.Context, cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64
	log := cfg.logger()

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
					rate := float64(p) / elapsed
					log.Printf("  [%d/%d] %.2f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := max(cfg.FrameWorkers, 1)
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = RenderFrame(ctx, cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// RenderFrame loads, renders and writes a single frame.
func RenderFrame(ctx context.Context, cfg Config, frame Frame) Result {
	start := time.Now()
	res := Result{Name: frame.Name, Source: frame.Path}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Elapsed = time.Since(start)
		return res
	}

	job, err := sceneio.Load(frame.Path, cfg.Load)
	if err != nil {
		return fail(err)
	}
	opts, err := cfg.renderOptions(job)
	if err != nil {
		return fail(err)
	}
	fb, err := raster.Render(ctx, job.Scene, job.Camera, opts)
	if err != nil {
		return fail(err)
	}

	img := fb.ToNRGBA()
	res.Image = cfg.outputPath(frame.Name)
	if opts.Mode == raster.ModeBinary && cfg.Format == imageout.PPM {
		err = imageout.Write(res.Image, imageout.ToGray(img), cfg.Format)
	} else {
		err = imageout.Write(res.Image, img, cfg.Format)
	}
	if err != nil {
		res.Image = ""
		return fail(err)
	}

	if cfg.Preview > 0 {
		res.Preview = cfg.outputPath(frame.Name + "_preview")
		if err := imageout.Write(res.Preview, imageout.Preview(img, cfg.Preview), cfg.Format); err != nil {
			res.Preview = ""
			return fail(fmt.Errorf("preview: %w", err))
		}
	}

	res.Success = true
	res.Elapsed = time.Since(start)
	return res
}

func (c *Config) renderOptions(job *sceneio.Job) (raster.Options, error) {
	mode := job.Mode
	if c.Mode != "" {
		m, err := raster.ParseMode(c.Mode)
		if err != nil {
			return raster.Options{}, err
		}
		mode = m
	}
	depth := job.MaxDepth
	if c.MaxDepth != nil {
		depth = *c.MaxDepth
	}

	opts := raster.Options{
		Mode:    mode,
		Workers: c.Workers,
		Tracer:  tracer.Options{MaxDepth: depth, Shading: c.Shading},
		Logger:  raster.NopLogger{},
	}
	if c.Verbose {
		opts.Logger = c.logger()
	}
	return opts, nil
}

func (c *Config) outputPath(name string) string {
	return filepath.Join(c.OutputDir, name+c.Format.Ext())
}

func (c *Config) logger() raster.Logger {
	if c.Logger == nil {
		return raster.NopLogger{}
	}
	return c.Logger
}
