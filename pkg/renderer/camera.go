package renderer

import (
	"math"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
)

// minRadius keeps zoom from collapsing the camera onto its target.
const minRadius = 0.1

// pitchLimit keeps orbit away from the poles, where the up vector and
// the view direction become parallel.
const pitchLimit = math.Pi/2 - 0.1

// Camera orbits a fixed look-at target. It keeps yaw/pitch/radius
// state and recomputes the eye position on the sphere around the
// target whenever that state changes.
type Camera struct {
	Eye    core.Vec3
	Center core.Vec3
	Up     core.Vec3

	yaw    float64
	pitch  float64
	radius float64
}

// NewCamera creates a camera at eye looking at center. Yaw, pitch and
// orbit radius are derived from the initial eye position.
func NewCamera(eye, center, up core.Vec3) *Camera {
	c := &Camera{Eye: eye, Center: center, Up: up}

	offset := eye.Subtract(center)
	c.radius = offset.Length()
	if c.radius < minRadius {
		c.radius = minRadius
	}
	c.yaw = math.Atan2(offset.Z, offset.X)
	c.pitch = math.Asin(offset.Y / c.radius)
	c.updateEye()

	return c
}

// updateEye places the eye on the orbit sphere from the current
// yaw/pitch/radius state.
func (c *Camera) updateEye() {
	c.Eye = c.Center.Add(core.NewVec3(
		c.radius*math.Cos(c.pitch)*math.Cos(c.yaw),
		c.radius*math.Sin(c.pitch),
		c.radius*math.Cos(c.pitch)*math.Sin(c.yaw),
	))
}

// Orbit rotates the camera around the target by the given yaw and
// pitch deltas, clamping pitch away from the poles.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.yaw = math.Mod(c.yaw+deltaYaw, 2*math.Pi)
	c.pitch += deltaPitch
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
	c.updateEye()
}

// Zoom moves the camera along the view axis by shrinking the orbit
// radius. A positive delta zooms in; the radius stays positive.
func (c *Camera) Zoom(delta float64) {
	c.radius -= delta
	if c.radius < minRadius {
		c.radius = minRadius
	}
	c.updateEye()
}

// Radius returns the current orbit radius
func (c *Camera) Radius() float64 {
	return c.radius
}

// BaseChange rotates a camera-local direction (camera looks along -Z)
// into world space through the orthonormal basis derived from the
// current eye, target and up vectors.
func (c *Camera) BaseChange(dir core.Vec3) core.Vec3 {
	forward := c.Center.Subtract(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	rotated := right.Multiply(dir.X).
		Add(up.Multiply(dir.Y)).
		Subtract(forward.Multiply(dir.Z))

	return rotated.Normalize()
}
