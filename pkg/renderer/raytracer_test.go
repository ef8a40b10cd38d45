package renderer

import (
	"math"
	"testing"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/geometry"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/lights"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/scene"
)

// singleCubeScene builds a unit cube at the origin with a diffuse-only
// material and one white light.
func singleCubeScene(lightPos core.Vec3) *scene.Scene {
	s := scene.NewScene()
	mat := material.NewFlat(core.NewColor(100, 100, 100), 15, [4]float64{0.9, 0.1, 0, 0}, 0)
	s.AddCube(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), mat)
	s.AddLight(lightPos, core.NewColor(255, 255, 255), 1.0)
	return s
}

func TestCastRay_MissReturnsSkyColor(t *testing.T) {
	rt := NewRaytracer(singleCubeScene(core.NewVec3(0, 0, -5)))

	// The intersector works on the full ray line, so a miss means the
	// line itself clears the cube
	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{name: "Passing above", origin: core.NewVec3(0, 3, -10), direction: core.NewVec3(0, 0, 1)},
		{name: "Parallel beside", origin: core.NewVec3(2, 0, -10), direction: core.NewVec3(0, 0, 1)},
		{name: "Line clears the corner", origin: core.NewVec3(0, 4, -4), direction: core.NewVec3(0, 1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := rt.CastRay(tt.origin, tt.direction, 0)
			if c != rt.Config().SkyColor {
				t.Errorf("Expected sky color %v, got %v", rt.Config().SkyColor, c)
			}
		})
	}
}

func TestCastRay_DepthCutoffReturnsSkyColor(t *testing.T) {
	// Scene content must not matter once the budget is spent: aim the
	// ray straight at the cube
	rt := NewRaytracer(singleCubeScene(core.NewVec3(0, 0, -5)))

	for depth := 4; depth <= 8; depth++ {
		c := rt.CastRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), depth)
		if c != rt.Config().SkyColor {
			t.Errorf("Expected sky color at depth %d, got %v", depth, c)
		}
	}

	// Depth 3 is still within the budget
	c := rt.CastRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 3)
	if c == rt.Config().SkyColor {
		t.Error("Depth 3 must still shade the hit")
	}
}

func TestCastRay_LitCubeBrightensAsLightApproaches(t *testing.T) {
	origin := core.NewVec3(0, 0, -10)
	direction := core.NewVec3(0, 0, 1)
	baseLuminance := core.NewColor(100, 100, 100).Luminance()

	var previous float64
	for i, z := range []float64{-5, -4, -3, -2} {
		rt := NewRaytracer(singleCubeScene(core.NewVec3(0, 0, z)))
		c := rt.CastRay(origin, direction, 0)

		if c == rt.Config().SkyColor {
			t.Fatalf("Expected a lit surface color, got sky")
		}
		lum := c.Luminance()
		if lum <= baseLuminance {
			t.Errorf("Expected surface brighter than its base color, got %v", lum)
		}
		if i > 0 && lum < previous {
			t.Errorf("Expected brightness to be non-decreasing as light nears (z=%v): %v < %v", z, lum, previous)
		}
		previous = lum
	}
}

func TestCastRay_FirstHitWinsOnTie(t *testing.T) {
	s := scene.NewScene()
	front := material.NewFlat(core.NewColor(200, 0, 0), 15, [4]float64{1, 0, 0, 0}, 0)
	back := material.NewFlat(core.NewColor(0, 200, 0), 15, [4]float64{1, 0, 0, 0}, 0)
	// Two identical cubes at the same position; the strict less-than
	// scan must keep the first one
	s.AddCube(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), front)
	s.AddCube(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), back)

	rt := NewRaytracer(s)
	c := rt.CastRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0)
	if c.R <= c.G {
		t.Errorf("Expected the first cube's red surface, got %v", c)
	}
}

func TestRefractDir_TotalInternalReflection(t *testing.T) {
	// Grazing incidence past the critical angle: the discriminant goes
	// negative and the direction must equal the mirror reflection
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0.995, -0.1, 0).Normalize()

	refracted := refractDir(incident, normal, 1.5)
	reflected := reflectDir(incident, normal)

	if refracted.Subtract(reflected).Length() > 1e-9 {
		t.Errorf("Expected TIR fallback %v, got %v", reflected, refracted)
	}
}

func TestRefractDir_StraightThrough(t *testing.T) {
	// Normal incidence passes straight through regardless of index
	normal := core.NewVec3(0, 0, -1)
	incident := core.NewVec3(0, 0, 1)

	refracted := refractDir(incident, normal, 1.5)
	if refracted.Normalize().Subtract(incident).Length() > 1e-9 {
		t.Errorf("Expected straight-through refraction, got %v", refracted)
	}
}

func TestRefractDir_SnellsLaw(t *testing.T) {
	// 30 degree incidence, below the critical angle for the applied
	// relative index of 1.5: sin(theta_t) = 1.5 * sin(30)
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0.5, -math.Sqrt(3)/2, 0)

	refracted := refractDir(incident, normal, 1.5).Normalize()

	expectedSin := 1.5 * 0.5
	if math.Abs(math.Abs(refracted.X)-expectedSin) > 1e-9 {
		t.Errorf("Expected sin(theta_t)=%v, got %v", expectedSin, math.Abs(refracted.X))
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray must continue into the medium, got %v", refracted)
	}
	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %v", refracted.Length())
	}
}

func TestReflectDir(t *testing.T) {
	incident := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)

	reflected := reflectDir(incident, normal)
	expected := core.NewVec3(1, 1, 0).Normalize()
	if reflected.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

// floatingIntersect builds a synthetic surface point that lies on no
// scene object, so shadow tests control exactly which objects the
// shadow ray can meet.
func floatingIntersect(point, normal core.Vec3) geometry.Intersect {
	return geometry.Intersect{
		Hit:      true,
		Distance: 1,
		Point:    point,
		Normal:   normal,
		Material: material.Black(),
	}
}

func TestCastShadow_UnoccludedIsZero(t *testing.T) {
	s := scene.NewScene()
	// A cube far off the light line
	s.AddCube(core.NewVec3(20, 0, 20), core.NewVec3(21, 1, 21), material.Black())
	rt := NewRaytracer(s)

	isect := floatingIntersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	light := lights.NewLight(core.NewVec3(0, 10, 0), core.NewColor(255, 255, 255), 1.0)

	if shadow := rt.castShadow(isect, light); shadow != 0 {
		t.Errorf("Expected no shadow, got %v", shadow)
	}
}

func TestCastShadow_OccluderAttenuation(t *testing.T) {
	light := lights.NewLight(core.NewVec3(0, 10, 0), core.NewColor(255, 255, 255), 1.0)
	isect := floatingIntersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	t.Run("Single occluder matches the falloff formula", func(t *testing.T) {
		s := scene.NewScene()
		s.AddCube(core.NewVec3(-0.5, 4, -0.5), core.NewVec3(0.5, 5, 0.5), material.Black())
		rt := NewRaytracer(s)

		shadow := rt.castShadow(isect, light)
		// Occluder at distance 4 of a light distance 10:
		// 1 - (4/10)^2, up to the origin bias
		expected := 1.0 - math.Pow(4.0/10.0, 2)
		if math.Abs(shadow-expected) > 1e-3 {
			t.Errorf("Expected shadow %v, got %v", expected, shadow)
		}
	})

	t.Run("Occluders closer to the point shade more", func(t *testing.T) {
		previous := -0.1
		for _, y := range []float64{8, 6, 4, 2} {
			s := scene.NewScene()
			s.AddCube(core.NewVec3(-0.5, y, -0.5), core.NewVec3(0.5, y+0.5, 0.5), material.Black())
			rt := NewRaytracer(s)

			shadow := rt.castShadow(isect, light)
			if shadow <= previous {
				t.Errorf("Expected stronger shadow for occluder at y=%v: %v <= %v", y, shadow, previous)
			}
			if shadow < 0 || shadow > 1 {
				t.Errorf("Shadow out of range at y=%v: %v", y, shadow)
			}
			previous = shadow
		}
	})

	t.Run("Occluder beyond the light casts nothing", func(t *testing.T) {
		s := scene.NewScene()
		s.AddCube(core.NewVec3(-0.5, 15, -0.5), core.NewVec3(0.5, 16, 0.5), material.Black())
		rt := NewRaytracer(s)

		if shadow := rt.castShadow(isect, light); shadow != 0 {
			t.Errorf("Expected no shadow from occluder past the light, got %v", shadow)
		}
	})
}

func TestCastRay_RefractionRecursionTerminatesAtSky(t *testing.T) {
	// A refractive cube re-enters itself through the biased origin, so
	// the recursion runs to the depth cutoff and resolves to the sky
	// color scaled by albedo[3] at every level
	s := scene.NewScene()
	glass := material.NewFlat(core.NewColor(10, 10, 10), 125, [4]float64{0, 0.5, 0.1, 0.8}, 1.5)
	s.AddCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), glass)
	s.AddLight(core.NewVec3(0, 0, -5), core.NewColor(255, 255, 255), 1.0)

	rt := NewRaytracer(s)
	c := rt.CastRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0)

	// depth 4 exceeds the budget: sky * 0.8^4, base term zeroed by
	// albedo[0] = 0
	expected := rt.Config().SkyColor.Multiply(math.Pow(0.8, 4))
	if math.Abs(c.R-expected.R) > 1e-9 || math.Abs(c.G-expected.G) > 1e-9 || math.Abs(c.B-expected.B) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestCastRay_RefractiveZeroWeightContributesNothing(t *testing.T) {
	// albedo[3] = 0 makes the refraction recursion invisible: the
	// result is exactly base * albedo[0]
	s := scene.NewScene()
	glass := material.NewFlat(core.NewColor(100, 150, 200), 125, [4]float64{0.1, 0.1, 0.8, 0}, 1.5)
	s.AddCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), glass)
	s.AddLight(core.NewVec3(0, 0, -5), core.NewColor(255, 255, 255), 1.0)

	rt := NewRaytracer(s)
	c := rt.CastRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0)

	expected := core.NewColor(100, 150, 200).Multiply(0.1)
	if math.Abs(c.R-expected.R) > 1e-9 || math.Abs(c.G-expected.G) > 1e-9 || math.Abs(c.B-expected.B) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestCastRay_TexturedSurfaceSamplesUV(t *testing.T) {
	// A 2x1 texture, left half red and right half green: a ray into
	// the left half of the front face must pick up the left texel
	pixels := []core.Color{core.NewColor(200, 0, 0), core.NewColor(0, 200, 0)}
	tex, err := material.NewTexture(pixels, 2, 1)
	if err != nil {
		t.Fatalf("Failed to build texture: %v", err)
	}

	s := scene.NewScene()
	mat := material.NewTextured(tex, 15, [4]float64{1, 0, 0, 0}, 0)
	s.AddCube(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), mat)
	s.AddLight(core.NewVec3(0.25, 0.5, -5), core.NewColor(255, 255, 255), 1.0)

	rt := NewRaytracer(s)
	// Front face (z-min) maps u from local x
	c := rt.CastRay(core.NewVec3(0.25, 0.5, -10), core.NewVec3(0, 0, 1), 0)
	if c.R <= c.G {
		t.Errorf("Expected the red texel to dominate, got %v", c)
	}
}

func TestCastRay_ConfigOverrides(t *testing.T) {
	rt := NewRaytracer(scene.NewScene())
	custom := Config{
		SkyColor:   core.NewColor(1, 2, 3),
		MaxDepth:   0,
		OriginBias: 1e-4,
		FOV:        math.Pi / 3,
	}
	rt.SetConfig(custom)

	c := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)
	if c != custom.SkyColor {
		t.Errorf("Expected overridden sky color, got %v", c)
	}

	// MaxDepth 0 means depth 1 is already past the budget
	if c := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1); c != custom.SkyColor {
		t.Errorf("Expected sky at depth 1 with MaxDepth 0, got %v", c)
	}
}
