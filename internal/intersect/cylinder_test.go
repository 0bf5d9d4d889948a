package intersect

import (
	"math"
	"testing"

	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/scene"
)

func TestCylinder_Hit(t *testing.T) {
	// Unit-radius cylinder along +y, spanning y in [-1, 1].
	c := scene.NewCylinder(mathutil.Vec3{0, 0, 5}, mathutil.Vec3{0, 1, 0}, 1, 2, scene.Material{}).Cylinder

	tests := []struct {
		name      string
		ray       mathutil.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "side head on",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0, 0, 0}, Direction: mathutil.Vec3{0, 0, 1}},
			expectHit: true,
			expectedT: 4,
		},
		{
			name:      "above extent misses side and caps",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0, 1.5, 0}, Direction: mathutil.Vec3{0, 0, 1}},
			expectHit: false,
		},
		{
			name:      "down the axis hits top cap",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0, 10, 5}, Direction: mathutil.Vec3{0, -1, 0}},
			expectHit: true,
			expectedT: 9,
		},
		{
			name:      "up the axis hits bottom cap",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0.5, -4, 5}, Direction: mathutil.Vec3{0, 1, 0}},
			expectHit: true,
			expectedT: 3,
		},
		{
			name:      "parallel to axis outside radius",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{3, 10, 5}, Direction: mathutil.Vec3{0, -1, 0}},
			expectHit: false,
		},
		{
			name:      "oblique through top cap",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0, 3, 3}, Direction: mathutil.Vec3{0, -1, 1}.Normalize()},
			expectHit: true,
			expectedT: 2 * math.Sqrt2,
		},
		{
			name:      "origin inside exits through side",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0, 0, 5}, Direction: mathutil.Vec3{1, 0, 0}},
			expectHit: true,
			expectedT: 1,
		},
		{
			name:      "cylinder behind",
			ray:       mathutil.Ray{Origin: mathutil.Vec3{0, 0, 0}, Direction: mathutil.Vec3{0, 0, -1}},
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Cylinder(tt.ray, c)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t (t=%v)", tt.expectHit, ok, got)
			}
			if ok && math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, got)
			}
		})
	}
}

func TestCylinder_CapNormal(t *testing.T) {
	s := scene.NewCylinder(mathutil.Vec3{0, 0, 5}, mathutil.Vec3{0, 1, 0}, 1, 2, scene.Material{})
	ray := mathutil.Ray{Origin: mathutil.Vec3{0.2, 10, 5}, Direction: mathutil.Vec3{0, -1, 0}}

	hit, ok := Intersect(ray, &s)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Normal.Sub(mathutil.Vec3{0, 1, 0}).Len() > 1e-9 {
		t.Errorf("Expected top cap normal +y, got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
}

func TestCylinder_TiltedAxis(t *testing.T) {
	axis := mathutil.Vec3{1, 1, 0}
	s := scene.NewCylinder(mathutil.Vec3{}, axis, 0.5, 4, scene.Material{})

	// Shoot at the centre perpendicular to the axis.
	ray := mathutil.Ray{Origin: mathutil.Vec3{0, 0, -10}, Direction: mathutil.Vec3{0, 0, 1}}
	hit, ok := Intersect(ray, &s)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.Distance-9.5) > 1e-9 {
		t.Errorf("Expected t=9.5, got %v", hit.Distance)
	}
	if math.Abs(hit.Normal.Dot(s.Cylinder.Axis)) > 1e-9 {
		t.Errorf("Expected side normal perpendicular to axis, got %v", hit.Normal)
	}
}

func TestCylinder_CapHitNearRim(t *testing.T) {
	s := scene.NewCylinder(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, 1, 2, scene.Material{})

	ray := mathutil.Ray{Origin: mathutil.Vec3{0.9999997, 5, 0}, Direction: mathutil.Vec3{0, -1, 0}}
	hit, ok := Intersect(ray, &s)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected t=4, got %v", hit.Distance)
	}
	if hit.Normal.Sub(mathutil.Vec3{0, 1, 0}).Len() > 1e-9 {
		t.Errorf("Expected top cap normal +y, got %v", hit.Normal)
	}
}
