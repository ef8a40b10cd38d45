package scene

import (
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/geometry"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/lights"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
)

// Scene contains all the elements needed for rendering: an ordered
// sequence of cubes and the lights illuminating them. The casting
// engine only reads the scene; construction and mutation happen here
// and in the input loop.
type Scene struct {
	Objects []*geometry.Cube
	Lights  []*lights.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Objects: make([]*geometry.Cube, 0),
		Lights:  make([]*lights.Light, 0),
	}
}

// AddCube appends a cube to the scene
func (s *Scene) AddCube(min, max core.Vec3, mat *material.Material) {
	s.Objects = append(s.Objects, geometry.NewCube(min, max, mat))
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color, intensity float64) *lights.Light {
	light := lights.NewLight(position, color, intensity)
	s.Lights = append(s.Lights, light)
	return light
}
