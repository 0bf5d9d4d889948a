package shading

import (
	"strings"

	"whitted-tracer/internal/intersect"
	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

// ShadowMode selects how occluded lights affect the local colour.
type ShadowMode int

const (
	// ShadowDim scales the whole local colour by ShadowFactor when any light is occluded.
	ShadowDim ShadowMode = iota
	// ShadowOcclude drops the diffuse and specular terms of occluded lights only.
	ShadowOcclude
)

func (m ShadowMode) String() string {
	if m == ShadowOcclude {
		return "occlude"
	}
	return "dim"
}

// ParseShadowMode accepts "dim" (or empty) and "occlude".
func ParseShadowMode(s string) (ShadowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dim":
		return ShadowDim, nil
	case "occlude":
		return ShadowOcclude, nil
	}
	return ShadowDim, scene.ConfigErrorf("unknown shadow mode %q", s)
}

// DefaultShadowFactor is the multiplier applied in ShadowDim mode. It is a visual
// tuning value rather than a derived quantity.
const DefaultShadowFactor = 0.6

// Config holds shading parameters.
type Config struct {
	Mode         ShadowMode
	ShadowFactor float64
	Bias         float64
}

// DefaultConfig returns the standard shading parameters.
func DefaultConfig() Config {
	return Config{
		Mode:         ShadowDim,
		ShadowFactor: DefaultShadowFactor,
		Bias:         DefaultBias,
	}
}

// Validate checks parameter ranges.
func (c Config) Validate() error {
	if c.ShadowFactor < 0 || c.ShadowFactor > 1 {
		return scene.ConfigErrorf("shadow factor %g outside [0,1]", c.ShadowFactor)
	}
	if c.Bias <= 0 {
		return scene.ConfigErrorf("bias %g <= 0", c.Bias)
	}
	if c.Mode != ShadowDim && c.Mode != ShadowOcclude {
		return scene.ConfigErrorf("shadow mode %d", c.Mode)
	}
	return nil
}

// Engine computes the shadowed local colour of a hit.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine parameters.
func (e *Engine) Config() Config {
	return e.cfg
}

// Shade returns the local illumination at hit, adjusted for shadows.
// viewDir points from the hit towards the viewer.
func (e *Engine) Shade(hit *intersect.Hit, viewDir mathutil.Vec3, sc *scene.Scene) scene.Color {
	mat := hit.Shape.Material
	mat.DiffuseColor = mat.DiffuseAt(hit.U, hit.V)
	normal := hit.FacingNormal()

	if e.cfg.Mode == ShadowOcclude {
		visible := make([]scene.Light, 0, len(sc.Lights))
		for i := range sc.Lights {
			if !Occluded(hit.Point, sc.Shapes, &sc.Lights[i], e.cfg.Bias) {
				visible = append(visible, sc.Lights[i])
			}
		}
		return LocalIllumination(hit.Point, normal, &mat, viewDir, visible)
	}

	color := LocalIllumination(hit.Point, normal, &mat, viewDir, sc.Lights)
	for i := range sc.Lights {
		if Occluded(hit.Point, sc.Shapes, &sc.Lights[i], e.cfg.Bias) {
			return color.Scale(e.cfg.ShadowFactor)
		}
	}
	return color
}
