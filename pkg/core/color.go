package core

import "image/color"

// Color is an RGB color with float64 channels in the 0-255 domain.
// Arithmetic never clamps, so lighting contributions can accumulate
// past channel bounds; clamping happens only when the color is packed
// for an external consumer (ToHex, ToRGBA).
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color from 0-255 channel values
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// clampChannel clamps a channel value to the displayable 0-255 range
func clampChannel(v float64) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

// ToHex packs the color into a 24-bit 0xRRGGBB integer, clamping each
// channel to 0-255
func (c Color) ToHex() uint32 {
	return clampChannel(c.R)<<16 | clampChannel(c.G)<<8 | clampChannel(c.B)
}

// ToRGBA converts the color to an image/color RGBA value with full alpha
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clampChannel(c.R)),
		G: uint8(clampChannel(c.G)),
		B: uint8(clampChannel(c.B)),
		A: 255,
	}
}
