package lights

import (
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
)

// Light is a point light. Its position is mutable so the input loop
// can move it between frames; color and intensity are fixed.
type Light struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, color core.Color, intensity float64) *Light {
	return &Light{Position: position, Color: color, Intensity: intensity}
}

// Translate moves the light by the given delta
func (l *Light) Translate(delta core.Vec3) {
	l.Position = l.Position.Add(delta)
}
