package main

import (
	"flag"
	"fmt"
	"os"

	"whitted-tracer/internal/camera"
	"whitted-tracer/internal/intersect"
	"whitted-tracer/internal/scene"
	"whitted-tracer/internal/sceneio"
	"whitted-tracer/internal/tracer"
)

func main() {
	px := flag.Int("x", -1, "Trace the primary ray through this pixel column")
	py := flag.Int("y", -1, "Trace the primary ray through this pixel row")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [-x N -y N] scene.json")
		os.Exit(1)
	}
	path := flag.Arg(0)

	job, err := sceneio.Load(path, sceneio.DefaultOptions())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cam := job.Camera
	fmt.Printf("Mode: %s, max depth: %d\n", job.Mode, job.MaxDepth)
	fmt.Printf("Camera: %dx%d fov=%.1f exposure=%.3f\n", cam.Width, cam.Height, cam.FOV, cam.Exposure)
	gen, err := camera.NewGenerator(cam)
	if err != nil {
		fmt.Printf("  Basis: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Right=%.3v Up=%.3v Forward=%.3v\n", gen.Right, gen.Up, gen.Forward)

	sc := job.Scene
	fmt.Printf("Background: %.3v\n", sc.Background)
	fmt.Printf("Lights: %d\n", len(sc.Lights))
	for i, l := range sc.Lights {
		fmt.Printf("  Light[%d]: pos=%.3v intensity=%.3v\n", i, l.Position, l.Intensity)
	}

	fmt.Printf("Shapes: %d\n", len(sc.Shapes))
	for i := range sc.Shapes {
		s := &sc.Shapes[i]
		m := &s.Material
		switch s.Kind {
		case scene.KindSphere:
			fmt.Printf("  Shape[%d]: sphere center=%.3v r=%.3f\n", i, s.Sphere.Center, s.Sphere.Radius)
		case scene.KindCylinder:
			c := s.Cylinder
			fmt.Printf("  Shape[%d]: cylinder center=%.3v axis=%.3v r=%.3f h=%.3f\n", i, c.Center, c.Axis, c.Radius, c.Height)
			fmt.Printf("    Caps: top=%.3v bottom=%.3v\n", c.TopCenter(), c.BottomCenter())
		default:
			t := s.Triangle
			e1, e2 := t.Edges()
			fmt.Printf("  Shape[%d]: triangle %.3v %.3v %.3v area=%.3f\n", i, t.V0, t.V1, t.V2, 0.5*e1.Cross(e2).Len())
		}
		fmt.Printf("    kd=%.2f ks=%.2f exp=%d diffuse=%.3v", m.Kd, m.Ks, m.SpecularExponent, m.DiffuseColor)
		if m.IsReflective {
			fmt.Printf(" reflect=%.2f", m.Reflectivity)
		}
		if m.IsRefractive {
			fmt.Printf(" ior=%.2f transparency=%.2f", m.RefractiveIndex, m.Transparency)
		}
		if m.TexturePath != "" {
			fmt.Printf(" texture=%q", m.TexturePath)
		}
		fmt.Println()
	}

	if *px < 0 || *py < 0 {
		return
	}
	if *px >= cam.Width || *py >= cam.Height {
		fmt.Printf("Pixel (%d,%d) outside %dx%d\n", *px, *py, cam.Width, cam.Height)
		os.Exit(1)
	}

	ray := gen.Ray(*px, *py)
	fmt.Printf("Pixel (%d,%d): dir=%.4v\n", *px, *py, ray.Direction)
	hit, ok := intersect.ClosestHit(ray, sc.Shapes)
	if !ok {
		fmt.Println("  Miss")
		return
	}
	fmt.Printf("  Hit shape %d (%s) t=%.4f point=%.4v normal=%.3v front=%v uv=(%.3f, %.3f)\n",
		hit.Index, hit.Shape.Kind, hit.Distance, hit.Point, hit.Normal, hit.FrontFace, hit.U, hit.V)

	opts := tracer.DefaultOptions()
	opts.MaxDepth = job.MaxDepth
	tr, err := tracer.New(sc, opts)
	if err != nil {
		fmt.Printf("  Tracer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Colour: %.4v\n", tr.Trace(ray, 0))
}
