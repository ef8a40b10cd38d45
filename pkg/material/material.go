package material

import (
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
)

// Albedo blend weights, indexed into Material.Albedo.
// AlbedoReflect is reserved and unused by the current shading paths.
const (
	AlbedoDiffuse = iota
	AlbedoSpecular
	AlbedoReflect
	AlbedoRefract
)

// ColorSource provides the base surface color at a UV coordinate.
// The two implementations, SolidColor and Texture, make the flat and
// textured shading paths explicit.
type ColorSource interface {
	ColorAt(u, v float64) core.Color
}

// SolidColor is a uniform color source
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAt returns the solid color regardless of UV
func (s *SolidColor) ColorAt(u, v float64) core.Color {
	return s.Color
}

// Material holds the shading parameters for a surface. Materials are
// immutable after construction and shared by pointer across every
// primitive that references them.
type Material struct {
	Specular        float64    // Specular exponent (>= 0)
	Albedo          [4]float64 // Blend weights, see Albedo* constants
	RefractiveIndex float64    // 0 = opaque; > 1.0 enables the refraction branch
	Surface         ColorSource
}

// NewFlat creates a material with a uniform diffuse color
func NewFlat(diffuse core.Color, specular float64, albedo [4]float64, refractiveIndex float64) *Material {
	return &Material{
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Surface:         NewSolidColor(diffuse),
	}
}

// NewTextured creates a material whose base color is sampled from a texture
func NewTextured(texture *Texture, specular float64, albedo [4]float64, refractiveIndex float64) *Material {
	return &Material{
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Surface:         texture,
	}
}

// Black returns an inert black material, used as the placeholder on
// empty intersection records
func Black() *Material {
	return NewFlat(core.Black(), 0, [4]float64{}, 0)
}
