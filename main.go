package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/loaders"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/renderer"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/scene"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 800, "Output image width in pixels")
	height := flag.Int("height", 600, "Output image height in pixels")
	output := flag.String("output", "", "Output PNG path (default output/render_<timestamp>.png)")
	assets := flag.String("assets", "assets", "Directory with block textures")
	yaw := flag.Float64("yaw", 0, "Initial camera yaw offset in radians")
	pitch := flag.Float64("pitch", 0, "Initial camera pitch offset in radians")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Diorama Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Blocks without a matching texture in the assets directory")
		fmt.Println("fall back to flat colors.")
		return
	}

	fmt.Println("Starting Diorama Raytracer...")

	textures := loadSceneTextures(*assets)
	diorama := scene.NewDioramaScene(textures)
	fmt.Printf("Scene built: %d cubes, %d lights\n", len(diorama.Objects), len(diorama.Lights))

	camera := renderer.NewCamera(
		core.NewVec3(0, 3, -10),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	camera.Orbit(*yaw, *pitch)

	raytracer := renderer.NewRaytracer(diorama)

	startTime := time.Now()
	img := raytracer.RenderImage(camera, *width, *height)
	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v (%dx%d)\n", renderTime, *width, *height)

	filename := outputPath(*output)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// loadSceneTextures loads the block textures from the assets directory.
// Missing or unreadable files only produce a warning: the scene builder
// substitutes flat colors for nil textures.
func loadSceneTextures(assetsDir string) scene.Textures {
	load := func(name string) *material.Texture {
		path := filepath.Join(assetsDir, name)
		tex, err := loaders.LoadTexture(path)
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

// outputPath resolves the output flag, defaulting to a timestamped
// file under output/
func outputPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
}
