package renderer

import (
	"math"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/geometry"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/lights"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/scene"
)

// Config contains the casting engine constants
type Config struct {
	SkyColor   core.Color // Returned for rays that miss every object
	MaxDepth   int        // Refraction recursion cutoff; depth 0 is the primary ray
	OriginBias float64    // Secondary-ray origin offset off the surface
	FOV        float64    // Vertical field of view in radians
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		SkyColor:   core.NewColor(68, 142, 228),
		MaxDepth:   3,
		OriginBias: 1e-4,
		FOV:        math.Pi / 3,
	}
}

// Raytracer casts rays through a scene and shades the hits. The scene
// is read-only for the lifetime of a render.
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a raytracer for the given scene with default configuration
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s, config: DefaultConfig()}
}

// SetConfig replaces the engine configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// Config returns the current engine configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// reflectDir returns the reflection of an incident direction about a normal
func reflectDir(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// refractDir returns the refracted direction through a surface with
// the given refractive index, via the vector form of Snell's law.
// Flipping the normal and inverting the relative index handles rays
// exiting the medium; total internal reflection falls back to a
// mirror reflection.
func refractDir(incident, normal core.Vec3, etaT float64) core.Vec3 {
	cosi := -math.Min(math.Max(incident.Dot(normal), -1), 1)

	var nCosi, eta float64
	var n core.Vec3
	if cosi < 0 {
		// Ray is inside the object, exiting
		nCosi = -cosi
		eta = 1 / etaT
		n = normal.Negate()
	} else {
		nCosi = cosi
		eta = etaT
		n = normal
	}

	k := 1 - eta*eta*(1-nCosi*nCosi)
	if k < 0 {
		return reflectDir(incident, n)
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*nCosi - math.Sqrt(k)))
}

// offsetOrigin nudges a secondary-ray origin off the surface along
// the normal, away from the side the new ray leaves through, to avoid
// immediate self-intersection.
func (rt *Raytracer) offsetOrigin(isect geometry.Intersect, direction core.Vec3) core.Vec3 {
	offset := isect.Normal.Multiply(rt.config.OriginBias)
	if direction.Dot(isect.Normal) < 0 {
		return isect.Point.Subtract(offset)
	}
	return isect.Point.Add(offset)
}

// castShadow returns the shadow attenuation at a surface point for
// one light: 0 when unoccluded, approaching 1 as an occluder nears
// the surface. The first occluder found wins; intensity follows
// 1 - min(1, hitDistance/lightDistance)^2.
func (rt *Raytracer) castShadow(isect geometry.Intersect, light *lights.Light) float64 {
	lightDir := light.Position.Subtract(isect.Point).Normalize()
	lightDistance := light.Position.Subtract(isect.Point).Length()
	shadowOrigin := rt.offsetOrigin(isect, lightDir)

	for _, object := range rt.scene.Objects {
		shadowIsect := object.RayIntersect(shadowOrigin, lightDir)
		if shadowIsect.Hit && shadowIsect.Distance < lightDistance {
			ratio := math.Min(shadowIsect.Distance/lightDistance, 1.0)
			return 1.0 - ratio*ratio
		}
	}

	return 0.0
}

// CastRay traces a ray through the scene and returns its color.
// Misses and exhausted recursion return the sky color.
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Color {
	if depth > rt.config.MaxDepth {
		return rt.config.SkyColor
	}

	// Nearest hit by linear scan; strict less-than keeps the first of
	// equally distant objects
	closest := geometry.NoIntersect()
	zbuffer := math.Inf(1)
	for _, object := range rt.scene.Objects {
		isect := object.RayIntersect(origin, direction)
		if isect.Hit && isect.Distance < zbuffer {
			zbuffer = isect.Distance
			closest = isect
		}
	}

	if !closest.Hit {
		return rt.config.SkyColor
	}

	mat := closest.Material

	var u, v float64
	if closest.HasUV {
		u, v = closest.UV.X, closest.UV.Y
	}
	finalColor := mat.Surface.ColorAt(u, v)

	viewDir := origin.Subtract(closest.Point).Normalize()

	if mat.RefractiveIndex > 1.0 {
		// Transparent surface: recurse through it and blend with the
		// base color. No specular or reflective term on this path.
		refractedDir := refractDir(direction, closest.Normal, mat.RefractiveIndex)
		refractedOrigin := rt.offsetOrigin(closest, refractedDir)
		refractedColor := rt.CastRay(refractedOrigin, refractedDir, depth+1)

		finalColor = finalColor.Multiply(mat.Albedo[material.AlbedoDiffuse]).
			Add(refractedColor.Multiply(mat.Albedo[material.AlbedoRefract]))
	} else {
		for _, light := range rt.scene.Lights {
			lightDir := light.Position.Subtract(closest.Point).Normalize()
			lightReflectDir := reflectDir(lightDir.Negate(), closest.Normal).Normalize()
			shadowIntensity := rt.castShadow(closest, light)
			lightIntensity := light.Intensity * (1.0 - shadowIntensity)

			diffuseIntensity := math.Min(math.Max(closest.Normal.Dot(lightDir), 0), 1)
			diffuse := finalColor.Multiply(mat.Albedo[material.AlbedoDiffuse] * diffuseIntensity * lightIntensity)

			specularIntensity := math.Pow(math.Max(viewDir.Dot(lightReflectDir), 0), mat.Specular)
			specular := light.Color.Multiply(mat.Albedo[material.AlbedoSpecular] * specularIntensity * lightIntensity)

			finalColor = finalColor.Add(diffuse.Add(specular))
		}
	}

	return finalColor
}
