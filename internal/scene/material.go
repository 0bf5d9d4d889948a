package scene

// DefaultAmbientFactor scales the diffuse colour into the ambient colour when a
// material does not supply one. It is a visual tuning value, not a physical quantity.
const DefaultAmbientFactor = 0.3

// DefaultTransparency is the refraction blend weight used when a refractive
// material does not supply one.
const DefaultTransparency = 0.9

// Texture modulates a material's diffuse colour at surface coordinates (u, v) in [0,1]².
type Texture interface {
	Sample(u, v float64) Color
}

// Material holds the Blinn-Phong coefficients and the reflection/refraction flags of a surface.
type Material struct {
	DiffuseColor  Color
	SpecularColor Color
	AmbientColor  Color

	Kd               float64 // diffuse coefficient
	Ks               float64 // specular coefficient
	SpecularExponent int

	IsReflective bool
	Reflectivity float64 // blend weight in [0,1]

	IsRefractive    bool
	RefractiveIndex float64
	Transparency    float64 // refraction blend weight in [0,1]

	Texture     Texture // optional
	TexturePath string  // source of Texture, kept for diagnostics
}

// DefaultAmbient derives an ambient colour from a diffuse colour.
func DefaultAmbient(diffuse Color, factor float64) Color {
	return diffuse.Scale(factor)
}

// DiffuseAt returns the diffuse colour at surface coordinates (u, v),
// modulated by the texture when one is attached.
func (m *Material) DiffuseAt(u, v float64) Color {
	if m.Texture == nil {
		return m.DiffuseColor
	}
	return m.Texture.Sample(u, v).Mul(m.DiffuseColor)
}

// Validate checks coefficient ranges.
func (m *Material) Validate() error {
	if m.SpecularExponent < 0 {
		return ConfigErrorf("specular exponent %d < 0", m.SpecularExponent)
	}
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return ConfigErrorf("reflectivity %g outside [0,1]", m.Reflectivity)
	}
	if m.IsRefractive {
		if m.RefractiveIndex <= 0 {
			return ConfigErrorf("refractive index %g <= 0", m.RefractiveIndex)
		}
		if m.Transparency < 0 || m.Transparency > 1 {
			return ConfigErrorf("transparency %g outside [0,1]", m.Transparency)
		}
	}
	return nil
}
