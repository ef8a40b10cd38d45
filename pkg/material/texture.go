package material

import (
	"fmt"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
)

// Texture is an immutable 2D grid of colors sampled by normalized UV
// coordinates. Pixels are stored row-major: pixels[y*width + x].
type Texture struct {
	width  int
	height int
	pixels []core.Color
}

// NewTexture creates a texture from row-major pixel data. It fails if
// the pixel count does not match the declared dimensions.
func NewTexture(pixels []core.Color, width, height int) (*Texture, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("texture data size %d does not match dimensions %dx%d", len(pixels), width, height)
	}
	return &Texture{width: width, height: height, pixels: pixels}, nil
}

// Width returns the texture width in pixels
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels
func (t *Texture) Height() int { return t.height }

// ColorAt samples the texture at normalized coordinates using
// nearest-neighbor filtering. Coordinates are clamped to [0,1], and
// u=1 or v=1 resolves to the last column/row rather than reading out
// of range.
func (t *Texture) ColorAt(u, v float64) core.Color {
	if len(t.pixels) == 0 {
		return core.Black()
	}

	u = clamp01(u)
	v = clamp01(v)

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))

	if x > t.width-1 {
		x = t.width - 1
	}
	if y > t.height-1 {
		y = t.height - 1
	}

	return t.pixels[y*t.width+x]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
