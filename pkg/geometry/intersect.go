package geometry

import (
	"math"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
)

// Intersect carries the result of a ray-primitive hit test from the
// intersector to the shader. Records are built fresh per test and
// consumed immediately; they are never persisted.
type Intersect struct {
	Hit      bool
	Distance float64
	Point    core.Vec3
	Normal   core.Vec3
	Material *material.Material
	UV       core.Vec2
	HasUV    bool
}

// NoIntersect returns the miss record: no hit, distance at +Inf
func NoIntersect() Intersect {
	return Intersect{
		Distance: math.Inf(1),
		Material: material.Black(),
	}
}
