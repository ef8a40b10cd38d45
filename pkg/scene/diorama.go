package scene

import (
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
)

// Textures holds the optional surface textures for the diorama. Any
// nil entry falls back to a flat color so the scene renders without
// image assets.
type Textures struct {
	Dirt        *material.Texture
	Grass       *material.Texture
	Cobblestone *material.Texture
	Plank       *material.Texture
	Glass       *material.Texture
	Door        *material.Texture
}

// surfaceMaterial builds a textured material, or a flat-colored one
// when the texture is missing.
func surfaceMaterial(tex *material.Texture, fallback core.Color, specular float64, albedo [4]float64, refractiveIndex float64) *material.Material {
	if tex != nil {
		return material.NewTextured(tex, specular, albedo, refractiveIndex)
	}
	return material.NewFlat(fallback, specular, albedo, refractiveIndex)
}

// NewDioramaScene builds the voxel house diorama: a 10x10 dirt floor,
// a cobblestone west half and grass east half on top of it, and a
// 6x5x4 plank house with a door, glass windows and a roof skylight.
// One white point light illuminates the scene.
func NewDioramaScene(tex Textures) *Scene {
	dirt := surfaceMaterial(tex.Dirt, core.NewColor(110, 80, 50), 15, [4]float64{0.5, 0.3, 0, 0}, 0)
	grass := surfaceMaterial(tex.Grass, core.NewColor(80, 160, 60), 15, [4]float64{0.5, 0.5, 0, 0}, 0)
	cobblestone := surfaceMaterial(tex.Cobblestone, core.NewColor(130, 130, 130), 15, [4]float64{0.5, 0.5, 0, 0}, 0)
	plank := surfaceMaterial(tex.Plank, core.NewColor(180, 140, 90), 15, [4]float64{0.5, 0.5, 0, 0}, 0)
	door := surfaceMaterial(tex.Door, core.NewColor(90, 60, 30), 15, [4]float64{0.5, 0.5, 0, 0}, 0)

	// Glass keeps albedo[3] = 0 from the established scene even though
	// the refraction blend reads it; the refractive index alone drives
	// the transparent look.
	glass := surfaceMaterial(tex.Glass, core.NewColor(200, 220, 240), 15, [4]float64{0.1, 0.1, 0.8, 0}, 1.5)

	s := NewScene()

	const (
		gridSize = 10
		cubeSize = 1.0
	)

	// Dirt floor, one level below the surface
	for x := 0; x < gridSize; x++ {
		for z := 0; z < gridSize; z++ {
			xPos := float64(x)*cubeSize - gridSize*cubeSize/2
			zPos := float64(z)*cubeSize - gridSize*cubeSize/2
			yPos := -1.0
			s.AddCube(
				core.NewVec3(xPos, yPos, zPos),
				core.NewVec3(xPos+cubeSize, yPos+cubeSize, zPos+cubeSize),
				dirt,
			)
		}
	}

	// Cobblestone surface on the west half
	for x := 0; x < gridSize/2; x++ {
		for z := 0; z < gridSize; z++ {
			xPos := float64(x)*cubeSize - gridSize*cubeSize/2
			zPos := float64(z)*cubeSize - gridSize*cubeSize/2
			s.AddCube(
				core.NewVec3(xPos, 0, zPos),
				core.NewVec3(xPos+cubeSize, cubeSize, zPos+cubeSize),
				cobblestone,
			)
		}
	}

	// Grass surface on the east half
	for x := gridSize / 2; x < gridSize; x++ {
		for z := 0; z < gridSize; z++ {
			xPos := float64(x)*cubeSize - gridSize*cubeSize/2
			zPos := float64(z)*cubeSize - gridSize*cubeSize/2
			s.AddCube(
				core.NewVec3(xPos, 0, zPos),
				core.NewVec3(xPos+cubeSize, cubeSize, zPos+cubeSize),
				grass,
			)
		}
	}

	// The house: plank walls with a front door, front and side glass
	// windows, and a skylight in the roof
	const (
		houseWidth  = 6
		houseHeight = 5
		houseDepth  = 4
	)

	for y := 0; y < houseHeight; y++ {
		for x := 0; x < houseWidth; x++ {
			for z := 0; z < houseDepth; z++ {
				xPos := float64(x)*cubeSize - gridSize*cubeSize/4
				zPos := float64(z)*cubeSize - gridSize*cubeSize/2
				yPos := float64(y)

				var mat *material.Material
				switch {
				case y == 0 && x == houseWidth/2 && z == 0:
					// Door on the front facade
					mat = door
				case (y == 2 || y == 3) && (x == 1 || x == houseWidth-2) && (z == 0 || z == houseDepth-1):
					// Two-block front and back windows
					mat = glass
				case (y == 2 || y == 3) && (x == 0 || x == houseWidth-1) && z == houseDepth/2:
					// Side windows
					mat = glass
				case y == 2 && (x == 0 || x == houseWidth-1) && z == houseDepth/2+1:
					// Plank spacer between the side windows
					mat = plank
				case (y == 2 || y == 3) && (x == 0 || x == houseWidth-1) && z == houseDepth/2-1:
					// Second side window
					mat = glass
				case y == houseHeight-1 && x >= 1 && x <= 4 && z == 1:
					// Skylight in the roof
					mat = glass
				default:
					mat = plank
				}

				s.AddCube(
					core.NewVec3(xPos, yPos, zPos),
					core.NewVec3(xPos+cubeSize, yPos+cubeSize, zPos+cubeSize),
					mat,
				)
			}
		}
	}

	s.AddLight(core.NewVec3(5, 5, -10), core.NewColor(255, 255, 255), 1.0)

	return s
}
