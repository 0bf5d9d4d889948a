// Package tracer implements the recursive Whitted tracer: local shading plus
// mirror reflection and Snell refraction, bounded by a maximum depth.
package tracer

import (
	"fmt"

	"whitted-tracer/internal/intersect"
	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
	"whitted-tracer/internal/shading"
)

// DefaultMaxDepth bounds secondary rays per primary ray.
const DefaultMaxDepth = 5

// Options configures a Tracer.
type Options struct {
	MaxDepth int
	Shading  shading.Config
}

// DefaultOptions returns the standard tracer parameters.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Shading:  shading.DefaultConfig(),
	}
}

// Tracer traces rays against a read-only scene. It is safe for concurrent use.
type Tracer struct {
	scene    *scene.Scene
	engine   *shading.Engine
	maxDepth int
	bias     float64
}

// New validates the scene and options and returns a Tracer.
func New(sc *scene.Scene, opts Options) (*Tracer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("tracer: %w", scene.ConfigErrorf("max depth %d < 0", opts.MaxDepth))
	}
	if err := opts.Shading.Validate(); err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	return &Tracer{
		scene:    sc,
		engine:   shading.NewEngine(opts.Shading),
		maxDepth: opts.MaxDepth,
		bias:     opts.Shading.Bias,
	}, nil
}

// MaxDepth returns the recursion limit.
func (t *Tracer) MaxDepth() int {
	return t.maxDepth
}

// Trace returns the colour seen along ray. depth is 0 for primary rays; at
// MaxDepth only the local colour is returned.
func (t *Tracer) Trace(ray mathutil.Ray, depth int) scene.Color {
	hit, ok := intersect.ClosestHit(ray, t.scene.Shapes)
	if !ok {
		return t.scene.Background
	}

	color := t.engine.Shade(&hit, ray.Direction.Neg(), t.scene)
	if depth >= t.maxDepth {
		return color
	}

	mat := &hit.Shape.Material
	if mat.IsReflective && mat.Reflectivity > 0 {
		color = color.Lerp(t.traceReflection(ray, &hit, depth), mat.Reflectivity)
	}
	if mat.IsRefractive && mat.Transparency > 0 {
		color = color.Lerp(t.traceRefraction(ray, &hit, depth), mat.Transparency)
	}
	return color.Clamp()
}

// Covered reports white when ray hits any shape and black otherwise.
func (t *Tracer) Covered(ray mathutil.Ray) scene.Color {
	if intersect.AnyHit(ray, t.scene.Shapes) {
		return scene.White
	}
	return scene.Black
}

func (t *Tracer) traceReflection(ray mathutil.Ray, hit *intersect.Hit, depth int) scene.Color {
	n := hit.FacingNormal()
	dir := Reflect(ray.Direction, n).Normalize()
	next := mathutil.Ray{Origin: hit.Point.Add(n.Scale(t.bias)), Direction: dir}
	return t.Trace(next, depth+1)
}

// traceRefraction follows the transmitted ray. On total internal reflection the
// mirrored ray is traced instead.
func (t *Tracer) traceRefraction(ray mathutil.Ray, hit *intersect.Hit, depth int) scene.Color {
	ior := hit.Shape.Material.RefractiveIndex
	eta := ior
	if hit.FrontFace {
		eta = 1 / ior
	}

	n := hit.FacingNormal()
	dir, ok := Refract(ray.Direction, n, eta)
	if !ok {
		return t.traceReflection(ray, hit, depth)
	}
	next := mathutil.Ray{Origin: hit.Point.Sub(n.Scale(t.bias)), Direction: dir}
	return t.Trace(next, depth+1)
}
