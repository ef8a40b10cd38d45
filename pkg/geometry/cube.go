package geometry

import (
	"math"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
)

// normalTolerance is the absolute distance within which a hit point is
// considered to lie on an axis-aligned face.
const normalTolerance = 1e-3

// Cube is an axis-aligned box defined by its min/max corners. The
// caller is responsible for min < max on every axis. The material is
// shared and read-only.
type Cube struct {
	Min      core.Vec3
	Max      core.Vec3
	Material *material.Material
}

// NewCube creates a new axis-aligned cube
func NewCube(min, max core.Vec3, mat *material.Material) *Cube {
	return &Cube{Min: min, Max: max, Material: mat}
}

// Size returns the extent of the cube along each axis
func (c *Cube) Size() core.Vec3 {
	return c.Max.Subtract(c.Min)
}

// invComponent returns the reciprocal of a ray direction component,
// mapping zero to +Inf so rays parallel to a slab produce an
// unbounded interval on that axis.
func invComponent(d float64) float64 {
	if d != 0 {
		return 1.0 / d
	}
	return math.Inf(1)
}

// RayIntersect tests the ray against the cube using the slab method.
// The hit distance is the entry point tmin; misses report a distance
// of +Inf.
func (c *Cube) RayIntersect(origin, direction core.Vec3) Intersect {
	invDirX := invComponent(direction.X)
	invDirY := invComponent(direction.Y)
	invDirZ := invComponent(direction.Z)

	tmin := (c.Min.X - origin.X) * invDirX
	tmax := (c.Max.X - origin.X) * invDirX
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}

	tymin := (c.Min.Y - origin.Y) * invDirY
	tymax := (c.Max.Y - origin.Y) * invDirY
	if tymin > tymax {
		tymin, tymax = tymax, tymin
	}

	if tmin > tymax || tymin > tmax {
		return NoIntersect()
	}
	if tymin > tmin {
		tmin = tymin
	}
	if tymax < tmax {
		tmax = tymax
	}

	tzmin := (c.Min.Z - origin.Z) * invDirZ
	tzmax := (c.Max.Z - origin.Z) * invDirZ
	if tzmin > tzmax {
		tzmin, tzmax = tzmax, tzmin
	}

	if tmin > tzmax || tzmin > tmax {
		return NoIntersect()
	}
	if tzmin > tmin {
		tmin = tzmin
	}

	point := origin.Add(direction.Multiply(tmin))
	normal := c.normalAt(point)
	u, v := c.uvAt(point, normal)

	return Intersect{
		Hit:      true,
		Distance: tmin,
		Point:    point,
		Normal:   normal,
		Material: c.Material,
		UV:       core.NewVec2(u, v),
		HasUV:    true,
	}
}

// normalAt derives the outward face normal from the hit point. Faces
// are checked in a fixed order (x-min, x-max, y-min, y-max, z-min,
// else z-max), so edge and corner hits resolve to the first matching
// axis.
func (c *Cube) normalAt(point core.Vec3) core.Vec3 {
	switch {
	case math.Abs(point.X-c.Min.X) < normalTolerance:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(point.X-c.Max.X) < normalTolerance:
		return core.NewVec3(1, 0, 0)
	case math.Abs(point.Y-c.Min.Y) < normalTolerance:
		return core.NewVec3(0, -1, 0)
	case math.Abs(point.Y-c.Max.Y) < normalTolerance:
		return core.NewVec3(0, 1, 0)
	case math.Abs(point.Z-c.Min.Z) < normalTolerance:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// uvAt maps the hit point to texture coordinates on the hit face. The
// axis pair is chosen by the first nonzero normal component; a
// dominant-axis check would be more robust, but this matches the
// established rendering of existing scenes. Taking the absolute value
// of the mod keeps UVs in [0,1).
func (c *Cube) uvAt(point, normal core.Vec3) (float64, float64) {
	local := point.Subtract(c.Min)
	size := c.Size()

	var u, v float64
	switch {
	case math.Abs(normal.X) > 0:
		// Face parallel to the YZ plane
		u = math.Mod(local.Z/size.Z, 1.0)
		v = math.Mod(local.Y/size.Y, 1.0)
	case math.Abs(normal.Y) > 0:
		// Face parallel to the XZ plane
		u = math.Mod(local.X/size.X, 1.0)
		v = math.Mod(local.Z/size.Z, 1.0)
	default:
		// Face parallel to the XY plane
		u = math.Mod(local.X/size.X, 1.0)
		v = math.Mod(local.Y/size.Y, 1.0)
	}

	return math.Abs(u), math.Abs(v)
}
