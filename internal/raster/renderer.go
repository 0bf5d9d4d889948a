package raster

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"whitted-tracer/internal/camera"
	"whitted-tracer/internal/scene"
	"whitted-tracer/internal/tracer"
)

// Mode selects what a primary ray computes.
type Mode string

const (
	// ModeBinary writes white where a primary ray hits any shape, black elsewhere.
	ModeBinary Mode = "binary"
	// ModePhong runs the full recursive tracer.
	ModePhong Mode = "phong"
)

// ParseMode accepts "binary" and "phong" (or empty, meaning phong).
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModePhong, nil
	case ModeBinary, ModePhong:
		return m, nil
	}
	return "", scene.ConfigErrorf("unknown render mode %q", s)
}

// Options controls a render.
type Options struct {
	Mode    Mode
	Workers int // <= 0 means runtime.NumCPU()
	Tracer  tracer.Options
	Logger  Logger
}

// DefaultOptions returns phong mode with default tracer parameters.
func DefaultOptions() Options {
	return Options{
		Mode:   ModePhong,
		Tracer: tracer.DefaultOptions(),
	}
}

// Render traces every pixel of cam over sc and returns the tone-mapped buffer.
//
// Configuration errors are reported before any ray is traced. Rows are
// distributed over a worker pool; ctx is checked between rows and a
// cancelled render returns no buffer.
func Render(ctx context.Context, sc *scene.Scene, cam scene.Camera, opts Options) (*FrameBuffer, error) {
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	gen, err := camera.NewGenerator(cam)
	if err != nil {
		return nil, fmt.Errorf("raster: camera: %w", err)
	}
	tr, err := tracer.New(sc, opts.Tracer)
	if err != nil {
		return nil, fmt.Errorf("raster: scene: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = NopLogger{}
	}

	w, h := gen.Size()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}

	shade := func(x, y int) scene.Color {
		ray := gen.Ray(x, y)
		if mode == ModeBinary {
			return tr.Covered(ray)
		}
		return ToneMap(tr.Trace(ray, 0), cam.Exposure)
	}

	log.Printf("Rendering %dx%d (%s, %d shapes, %d lights, depth %d) with %d workers\n",
		w, h, mode, len(sc.Shapes), len(sc.Lights), tr.MaxDepth(), workers)
	start := time.Now()

	fb := NewFrameBuffer(w, h)
	rows := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				row := fb.Row(y)
				for x := range row {
					row[x] = shade(x, y)
				}
			}
		}()
	}

feed:
	for y := 0; y < h; y++ {
		select {
		case <-ctx.Done():
			break feed
		case rows <- y:
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("raster: render interrupted: %w", err)
	}
	log.Printf("Rendered in %.2fs\n", time.Since(start).Seconds())
	return fb, nil
}
