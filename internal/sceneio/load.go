// Package sceneio reads JSON scene documents into a validated scene and camera.
package sceneio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"whitted-tracer/internal/raster"
	"whitted-tracer/internal/scene"
	"whitted-tracer/internal/texture"
	"whitted-tracer/internal/tracer"
)

// Job is everything needed to render one document.
type Job struct {
	Name     string // file stem, e.g. "frame_0001"
	Mode     raster.Mode
	MaxDepth int
	Camera   scene.Camera
	Scene    *scene.Scene
}

// Options controls how documents become scenes.
type Options struct {
	// AmbientFactor derives a material's ambient colour from its diffuse
	// colour when the document does not give one.
	AmbientFactor float64
	// Textures resolves material texture references. Nil resolves them
	// relative to the document's directory.
	Textures texture.Resolver
}

// DefaultOptions returns the standard ambient factor and no texture resolver.
func DefaultOptions() Options {
	return Options{AmbientFactor: scene.DefaultAmbientFactor}
}

// Load reads and converts the document at path.
func Load(path string, opts Options) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: read %s: %w", path, err)
	}
	defer f.Close()

	if opts.Textures == nil {
		opts.Textures = texture.NewCache(texture.BuildIndex(filepath.Dir(path)))
	}
	job, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("sceneio: load %s: %w", path, err)
	}
	job.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return job, nil
}

// Decode reads a document from r. UTF-8 input with or without a byte order
// mark and UTF-16 input with a byte order mark are accepted.
func Decode(r io.Reader, opts Options) (*Job, error) {
	if opts.Textures == nil {
		opts.Textures = texture.NewCache(nil)
	}
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return doc.Job(opts)
}

// Job converts the document, applying defaults and validating the result.
func (d *Document) Job(opts Options) (*Job, error) {
	mode, err := raster.ParseMode(d.RenderMode)
	if err != nil {
		return nil, err
	}

	depth := tracer.DefaultMaxDepth
	if d.NBounces != nil {
		depth = max(*d.NBounces, 0)
	}

	if d.Camera == nil {
		return nil, scene.ConfigErrorf("document has no camera")
	}
	cam := d.Camera.camera()
	if err := cam.Validate(); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	sc, err := d.Scene.scene(opts)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &Job{Mode: mode, MaxDepth: depth, Camera: cam, Scene: sc}, nil
}

func (c *CameraDocument) camera() scene.Camera {
	projection := strings.ToLower(c.Type)
	if projection == "" {
		projection = scene.ProjectionPinhole
	}
	exposure := 1.0
	if c.Exposure != nil {
		exposure = *c.Exposure
	}
	return scene.Camera{
		Projection: projection,
		Width:      c.Width,
		Height:     c.Height,
		Position:   c.Position,
		LookAt:     c.LookAt,
		Up:         c.UpVector,
		FOV:        c.FOV,
		Exposure:   exposure,
	}
}

func (s *SceneDocument) scene(opts Options) (*scene.Scene, error) {
	sc := &scene.Scene{
		Background: toColor(s.BackgroundColor),
		Lights:     make([]scene.Light, 0, len(s.LightSources)),
		Shapes:     make([]scene.Shape, 0, len(s.Shapes)),
	}

	for i, l := range s.LightSources {
		if t := strings.ToLower(l.Type); t != "pointlight" && t != "" {
			return nil, scene.ConfigErrorf("light %d: unknown type %q", i, l.Type)
		}
		sc.Lights = append(sc.Lights, scene.Light{Position: l.Position, Intensity: toColor(l.Intensity)})
	}

	for i := range s.Shapes {
		shape, err := s.Shapes[i].shape(opts)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		sc.Shapes = append(sc.Shapes, shape)
	}
	return sc, nil
}

func (s *ShapeDocument) shape(opts Options) (scene.Shape, error) {
	mat, err := s.Material.material(opts)
	if err != nil {
		return scene.Shape{}, err
	}
	switch strings.ToLower(s.Type) {
	case "sphere":
		return scene.NewSphere(s.Center, s.Radius, mat), nil
	case "cylinder":
		return scene.NewCylinder(s.Center, s.Axis, s.Radius, s.Height, mat), nil
	case "triangle":
		return scene.NewTriangle(s.V0, s.V1, s.V2, mat), nil
	}
	return scene.Shape{}, scene.ConfigErrorf("unknown type %q", s.Type)
}

func (m *MaterialDocument) material(opts Options) (scene.Material, error) {
	diffuse := toColor(m.DiffuseColor)
	mat := scene.Material{
		DiffuseColor:     diffuse,
		SpecularColor:    toColor(m.SpecularColor),
		Kd:               valueOr(m.Kd, 1),
		Ks:               valueOr(m.Ks, 1),
		SpecularExponent: m.SpecularExponent,
		IsReflective:     m.IsReflective,
		Reflectivity:     m.Reflectivity,
		IsRefractive:     m.IsRefractive,
		RefractiveIndex:  m.RefractiveIndex,
		Transparency:     valueOr(m.Transparency, scene.DefaultTransparency),
		TexturePath:      m.Texture,
	}

	if m.AmbientColor != nil {
		mat.AmbientColor = toColor(*m.AmbientColor)
	} else {
		mat.AmbientColor = scene.DefaultAmbient(diffuse, opts.AmbientFactor)
	}

	if m.Texture != "" {
		tex, err := opts.Textures.Resolve(m.Texture)
		if err != nil {
			return scene.Material{}, err
		}
		mat.Texture = tex
	}
	return mat, nil
}

func toColor(c [3]float64) scene.Color {
	return scene.Color{R: c[0], G: c[1], B: c[2]}
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
