package renderer

import (
	"image"
	"math"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
)

// Framebuffer is the external pixel consumer the render loop writes
// into. Implementations own the packing and presentation of colors.
type Framebuffer interface {
	Size() (width, height int)
	SetPixel(x, y int, c core.Color)
}

// ImageFramebuffer adapts an image.RGBA to the Framebuffer interface
// for offline PNG output.
type ImageFramebuffer struct {
	Image *image.RGBA
}

// NewImageFramebuffer creates an image-backed framebuffer of the given size
func NewImageFramebuffer(width, height int) *ImageFramebuffer {
	return &ImageFramebuffer{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the framebuffer dimensions
func (fb *ImageFramebuffer) Size() (int, int) {
	bounds := fb.Image.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// SetPixel writes a color, clamped and packed, at (x, y)
func (fb *ImageFramebuffer) SetPixel(x, y int, c core.Color) {
	fb.Image.SetRGBA(x, y, c.ToRGBA())
}

// Render iterates the framebuffer pixels, builds a primary ray per
// pixel through the camera, casts it and writes the resulting color.
// Rendering is sequential and deterministic.
func (rt *Raytracer) Render(camera *Camera, fb Framebuffer) {
	width, height := fb.Size()
	fWidth := float64(width)
	fHeight := float64(height)
	aspectRatio := fWidth / fHeight
	perspectiveScale := math.Tan(rt.config.FOV * 0.5)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Map the pixel to [-1,1] screen space, with +Y up
			screenX := 2.0*float64(x)/fWidth - 1.0
			screenY := -2.0*float64(y)/fHeight + 1.0

			rayDirection := core.NewVec3(
				screenX*aspectRatio*perspectiveScale,
				screenY*perspectiveScale,
				-1.0,
			).Normalize()
			rotatedDirection := camera.BaseChange(rayDirection)

			fb.SetPixel(x, y, rt.CastRay(camera.Eye, rotatedDirection, 0))
		}
	}
}

// RenderImage renders a full frame into a new image.RGBA
func (rt *Raytracer) RenderImage(camera *Camera, width, height int) *image.RGBA {
	fb := NewImageFramebuffer(width, height)
	rt.Render(camera, fb)
	return fb.Image
}
