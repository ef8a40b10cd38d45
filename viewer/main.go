package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/lights"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/loaders"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/renderer"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/scene"
)

const (
	windowWidth  = 800
	windowHeight = 600

	orbitStep = math.Pi / 10
	zoomStep  = 0.1
	lightStep = 0.1
)

// pixelBuffer renders into a flat RGBA slice so the frame can be
// uploaded to a raylib texture without repacking.
type pixelBuffer struct {
	width  int
	height int
	pixels []color.RGBA
}

func newPixelBuffer(width, height int) *pixelBuffer {
	return &pixelBuffer{
		width:  width,
		height: height,
		pixels: make([]color.RGBA, width*height),
	}
}

func (pb *pixelBuffer) Size() (int, int) {
	return pb.width, pb.height
}

func (pb *pixelBuffer) SetPixel(x, y int, c core.Color) {
	pb.pixels[y*pb.width+x] = c.ToRGBA()
}

func main() {
	renderWidth := flag.Int("render-width", 320, "Internal render width in pixels")
	renderHeight := flag.Int("render-height", 240, "Internal render height in pixels")
	assets := flag.String("assets", "assets", "Directory with block textures")
	flag.Parse()

	textures := loadSceneTextures(*assets)
	diorama := scene.NewDioramaScene(textures)
	fmt.Printf("Scene built: %d cubes, %d lights\n", len(diorama.Objects), len(diorama.Lights))

	camera := renderer.NewCamera(
		core.NewVec3(0, 3, -10),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	raytracer := renderer.NewRaytracer(diorama)
	light := diorama.Lights[0]

	fb := newPixelBuffer(*renderWidth, *renderHeight)

	rl.InitWindow(windowWidth, windowHeight, "Diorama Raytracer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	raytracer.Render(camera, fb)

	frame := rl.GenImageColor(fb.width, fb.height, rl.Black)
	texture := rl.LoadTextureFromImage(frame)
	rl.UnloadImage(frame)
	defer rl.UnloadTexture(texture)
	rl.UpdateTexture(texture, fb.pixels)

	for !rl.WindowShouldClose() {
		if handleInput(camera, light) {
			raytracer.Render(camera, fb)
			rl.UpdateTexture(texture, fb.pixels)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(fb.width), Height: float32(fb.height)},
			rl.Rectangle{X: 0, Y: 0, Width: float32(windowWidth), Height: float32(windowHeight)},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawText("Arrows: orbit  W/S: zoom  I/K J/L U/O: move light", 10, 10, 20, rl.RayWhite)
		rl.DrawFPS(10, 35)
		rl.EndDrawing()
	}
}

// handleInput applies camera and light controls, reporting whether the
// frame must be re-rendered.
func handleInput(camera *renderer.Camera, light *lights.Light) bool {
	dirty := false

	if rl.IsKeyDown(rl.KeyLeft) {
		camera.Orbit(-orbitStep, 0)
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyRight) {
		camera.Orbit(orbitStep, 0)
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyUp) {
		camera.Orbit(0, orbitStep)
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyDown) {
		camera.Orbit(0, -orbitStep)
		dirty = true
	}

	if rl.IsKeyDown(rl.KeyW) {
		camera.Zoom(zoomStep)
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyS) {
		camera.Zoom(-zoomStep)
		dirty = true
	}

	if rl.IsKeyDown(rl.KeyJ) {
		light.Translate(core.NewVec3(-lightStep, 0, 0))
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyL) {
		light.Translate(core.NewVec3(lightStep, 0, 0))
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyI) {
		light.Translate(core.NewVec3(0, lightStep, 0))
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyK) {
		light.Translate(core.NewVec3(0, -lightStep, 0))
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyU) {
		light.Translate(core.NewVec3(0, 0, lightStep))
		dirty = true
	}
	if rl.IsKeyDown(rl.KeyO) {
		light.Translate(core.NewVec3(0, 0, -lightStep))
		dirty = true
	}

	return dirty
}

// loadSceneTextures loads block textures, falling back to flat colors
// for anything missing from the assets directory.
func loadSceneTextures(assetsDir string) scene.Textures {
	load := func(name string) *material.Texture {
		tex, err := loaders.LoadTexture(filepath.Join(assetsDir, name))
		if err != nil {
			fmt.Printf("Warning: %s not loaded, using flat color (%v)\n", name, err)
			return nil
		}
		return tex
	}

	return scene.Textures{
		Dirt:        load("dirt.png"),
		Grass:       load("grass.png"),
		Cobblestone: load("cobblestone.png"),
		Plank:       load("plank.png"),
		Glass:       load("glass.png"),
		Door:        load("door.png"),
	}
}
