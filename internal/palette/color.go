package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable straight-alpha RGBA value with 8 bits per channel.
// It is comparable, so == is value equality.
type Color struct {
	R, G, B, A uint8
}

// compile-time check that Color can be handed to image/draw and friends
var _ color.Color = Color{}

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel)
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as a standard library non-premultiplied value
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Components returns red, green, blue and alpha normalized to [0,1]
func (c Color) Components() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Opaque reports whether the alpha channel is fully set
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// colorful drops alpha; callers that need it read c.A directly
func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.Components()
	return colorful.Color{R: r, G: g, B: b}
}

// Hex returns the #rrggbb form, ignoring alpha
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// HexA returns the #rrggbbaa form
func (c Color) HexA() string {
	return fmt.Sprintf("%s%02x", c.Hex(), c.A)
}

// HSL returns hue in degrees [0,360) and saturation/lightness in [0,1]
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// CSS returns an rgb() or rgba() functional notation
func (c Color) CSS() string {
	if c.Opaque() {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	_, _, _, a := c.Components()
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, a)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.HexA()
}
