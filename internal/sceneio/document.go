package sceneio

import "whitted-tracer/internal/mathutil"

// Document is the on-disk JSON layout of a scene. Keys are lowercase except
// the camera vectors, which keep their camelCase names.
type Document struct {
	RenderMode string          `json:"rendermode"`
	NBounces   *int            `json:"nbounces"`
	Camera     *CameraDocument `json:"camera"`
	Scene      SceneDocument   `json:"scene"`
}

type CameraDocument struct {
	Type     string        `json:"type"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Position mathutil.Vec3 `json:"position"`
	LookAt   mathutil.Vec3 `json:"lookAt"`
	UpVector mathutil.Vec3 `json:"upVector"`
	FOV      float64       `json:"fov"`
	Exposure *float64      `json:"exposure"`
}

type SceneDocument struct {
	BackgroundColor [3]float64      `json:"backgroundcolor"`
	LightSources    []LightDocument `json:"lightsources"`
	Shapes          []ShapeDocument `json:"shapes"`
}

type LightDocument struct {
	Type      string        `json:"type"`
	Position  mathutil.Vec3 `json:"position"`
	Intensity [3]float64    `json:"intensity"`
}

// ShapeDocument carries the union of every shape's fields; Type selects which apply.
type ShapeDocument struct {
	Type     string           `json:"type"`
	Material MaterialDocument `json:"material"`

	// sphere, cylinder
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius"`

	// cylinder
	Axis   mathutil.Vec3 `json:"axis"`
	Height float64       `json:"height"`

	// triangle
	V0 mathutil.Vec3 `json:"v0"`
	V1 mathutil.Vec3 `json:"v1"`
	V2 mathutil.Vec3 `json:"v2"`
}

type MaterialDocument struct {
	Ks               *float64    `json:"ks"`
	Kd               *float64    `json:"kd"`
	SpecularExponent int         `json:"specularexponent"`
	DiffuseColor     [3]float64  `json:"diffusecolor"`
	SpecularColor    [3]float64  `json:"specularcolor"`
	AmbientColor     *[3]float64 `json:"ambientcolor"`
	IsReflective     bool        `json:"isreflective"`
	Reflectivity     float64     `json:"reflectivity"`
	IsRefractive     bool        `json:"isrefractive"`
	RefractiveIndex  float64     `json:"refractiveindex"`
	Transparency     *float64    `json:"transparency"`
	Texture          string      `json:"texture"`
}
