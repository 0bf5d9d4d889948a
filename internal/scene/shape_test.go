package scene

import (
	"errors"
	"math"
	"testing"

	"whitted-tracer/internal/mathutil"
)

func TestCylinder_CapCentersProjectToHalfHeight(t *testing.T) {
	tests := []struct {
		name   string
		center mathutil.Vec3
		axis   mathutil.Vec3
		height float64
	}{
		{"y axis", mathutil.Vec3{0, 0, 0}, mathutil.Vec3{0, 1, 0}, 2},
		{"tilted", mathutil.Vec3{1, -2, 3}, mathutil.Vec3{1, 1, 0}, 3.5},
		{"unnormalized axis", mathutil.Vec3{-4, 0.5, 7}, mathutil.Vec3{0, 0, 10}, 0.25},
		{"oblique", mathutil.Vec3{2, 2, 2}, mathutil.Vec3{-1, 2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCylinder(tt.center, tt.axis, 1, tt.height, Material{})
			c := s.Cylinder
			base := mathutil.ProjectAlong(c.Center, c.Axis)
			top := mathutil.ProjectAlong(c.TopCenter(), c.Axis) - base
			bottom := mathutil.ProjectAlong(c.BottomCenter(), c.Axis) - base

			const tolerance = 1e-12
			if math.Abs(top-tt.height/2) > tolerance {
				t.Errorf("Expected top offset %v, got %v", tt.height/2, top)
			}
			if math.Abs(bottom+tt.height/2) > tolerance {
				t.Errorf("Expected bottom offset %v, got %v", -tt.height/2, bottom)
			}
		})
	}
}

func TestShape_NormalAt(t *testing.T) {
	sphere := NewSphere(mathutil.Vec3{0, 0, 5}, 2, Material{})
	cyl := NewCylinder(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, 1, 2, Material{})
	tri := NewTriangle(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, Material{})

	tests := []struct {
		name     string
		shape    Shape
		point    mathutil.Vec3
		expected mathutil.Vec3
	}{
		{"sphere front", sphere, mathutil.Vec3{0, 0, 3}, mathutil.Vec3{0, 0, -1}},
		{"sphere top", sphere, mathutil.Vec3{0, 2, 5}, mathutil.Vec3{0, 1, 0}},
		{"cylinder side", cyl, mathutil.Vec3{1, 0.3, 0}, mathutil.Vec3{1, 0, 0}},
		{"cylinder top cap", cyl, mathutil.Vec3{0.2, 1, 0.1}, mathutil.Vec3{0, 1, 0}},
		{"cylinder bottom cap", cyl, mathutil.Vec3{0, -1, -0.5}, mathutil.Vec3{0, -1, 0}},
		{"cylinder top cap near rim", cyl, mathutil.Vec3{0.9999997, 1, 0}, mathutil.Vec3{0, 1, 0}},
		{"cylinder side near top", cyl, mathutil.Vec3{1, 0.9999997, 0}, mathutil.Vec3{1, 0, 0}},
		{"triangle ccw", tri, mathutil.Vec3{0.2, 0.2, 0}, mathutil.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.NormalAt(tt.point)
			if got.Sub(tt.expected).Len() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTriangle_NormalFollowsWinding(t *testing.T) {
	a, b, c := mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}
	ccw := NewTriangle(a, b, c, Material{})
	cw := NewTriangle(a, c, b, Material{})
	if got := ccw.NormalAt(a).Add(cw.NormalAt(a)); got.Len() > 1e-12 {
		t.Errorf("Expected opposite normals, sum was %v", got)
	}
}

func TestShape_Validate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"valid sphere", NewSphere(mathutil.Vec3{}, 1, Material{}), false},
		{"zero radius sphere", NewSphere(mathutil.Vec3{}, 0, Material{}), true},
		{"negative radius cylinder", NewCylinder(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, -1, 1, Material{}), true},
		{"zero height cylinder", NewCylinder(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, 1, 0, Material{}), true},
		{"zero axis cylinder", NewCylinder(mathutil.Vec3{}, mathutil.Vec3{}, 1, 1, Material{}), true},
		{"collinear triangle", NewTriangle(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 1, 1}, mathutil.Vec3{2, 2, 2}, Material{}), true},
		{"unknown kind", Shape{Kind: Kind(42)}, true},
		{"bad reflectivity", NewSphere(mathutil.Vec3{}, 1, Material{IsReflective: true, Reflectivity: 1.5}), true},
		{"bad refractive index", NewSphere(mathutil.Vec3{}, 1, Material{IsRefractive: true, RefractiveIndex: 0, Transparency: 1}), true},
		{"negative exponent", NewSphere(mathutil.Vec3{}, 1, Material{SpecularExponent: -1}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestShape_UnknownKindNormalIsZero(t *testing.T) {
	s := Shape{Kind: Kind(9)}
	if got := s.NormalAt(mathutil.Vec3{1, 2, 3}); got != (mathutil.Vec3{}) {
		t.Errorf("Expected zero normal, got %v", got)
	}
	if s.Kind.String() != "unknown" {
		t.Errorf("Expected unknown, got %s", s.Kind)
	}
}
