package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/material"
)

// LoadTexture loads a PNG or JPEG image file and converts it into a
// texture with 0-255 color channels.
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 255]
			pixels[y*width+x] = core.NewColor(
				float64(r)/257.0,
				float64(g)/257.0,
				float64(b)/257.0,
			)
		}
	}

	tex, err := material.NewTexture(pixels, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to build texture: %w", err)
	}
	return tex, nil
}
