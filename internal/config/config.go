package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Render defaults applied by Resolve.
const (
	DefaultFormat        = "png"
	DefaultShadowMode    = "dim"
	DefaultShadowFactor  = 0.6
	DefaultAmbientFactor = 0.3
	DefaultBias          = 1e-4
)

// Formats lists the accepted output formats.
var Formats = []string{"png", "webp", "bmp", "ppm"}

// Config holds output paths and render settings shared by the CLIs.
type Config struct {
	// Paths
	OutputDir  string `json:"output_dir"`
	TextureDir string `json:"texture_dir"`

	// Output
	Format  string `json:"format"`
	Preview int    `json:"preview"` // max preview dimension, 0 disables

	// Render settings. Nil pointers defer to the scene document or the defaults.
	RenderMode    string   `json:"render_mode"`
	MaxDepth      *int     `json:"max_depth"`
	ShadowMode    string   `json:"shadow_mode"`
	ShadowFactor  *float64 `json:"shadow_factor"`
	AmbientFactor *float64 `json:"ambient_factor"`
	Bias          float64  `json:"bias"`

	Workers      int `json:"workers"`       // row workers per frame
	FrameWorkers int `json:"frame_workers"` // frames rendered concurrently
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and a nil MaxDepth leave the file setting alone.
type Flags struct {
	OutputDir  string
	TextureDir string
	Format     string
	Mode       string
	MaxDepth   *int
	ShadowMode string
	Preview    int
	Workers    int
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Mode != "" {
		c.RenderMode = flags.Mode
	}
	if flags.MaxDepth != nil {
		depth := *flags.MaxDepth
		c.MaxDepth = &depth
	}
	if flags.ShadowMode != "" {
		c.ShadowMode = flags.ShadowMode
	}
	if flags.Preview > 0 {
		c.Preview = flags.Preview
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.ShadowMode == "" {
		c.ShadowMode = DefaultShadowMode
	}
	if c.ShadowFactor == nil {
		f := DefaultShadowFactor
		c.ShadowFactor = &f
	}
	if c.AmbientFactor == nil {
		f := DefaultAmbientFactor
		c.AmbientFactor = &f
	}
	if c.Bias <= 0 {
		c.Bias = DefaultBias
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FrameWorkers <= 0 {
		c.FrameWorkers = 1
	}
	if c.OutputDir != "" {
		c.OutputDir = filepath.Clean(c.OutputDir)
	}
}

// Validate checks the settings Resolve cannot default.
func (c *Config) Validate() error {
	known := false
	for _, f := range Formats {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("config: unknown output format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth %d < 0", *c.MaxDepth)
	}
	if c.Preview < 0 {
		return fmt.Errorf("config: preview %d < 0", c.Preview)
	}
	return nil
}

// OutputPath returns the image path for a frame name with the configured extension.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name+"."+c.Format)
}
