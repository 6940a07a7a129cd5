package lattice

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256,
// and true color. Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses a hex color string ("#RRGGBB" or "#RGB") into a Color.
func HexColor(hex string) (Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		// colorful only accepts the 6-digit form; expand #RGB.
		hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// MustHexColor parses a hex color string, panicking on invalid input.
// Use only for compile-time constant colors.
func MustHexColor(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Type returns the color's representation type.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// RGB returns the color components. Only meaningful for ColorRGB colors.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// ANSI returns the palette index. Only meaningful for ColorANSI colors.
func (c Color) ANSI() uint8 {
	return c.r
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.r == other.r
	default:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
}

// IsLight reports whether the color is perceptually light, using relative
// luminance. Default colors are treated as dark; ANSI palette colors use
// the standard xterm palette approximation.
func (c Color) IsLight() bool {
	if c.typ == ColorDefault {
		return false
	}
	_, _, l := c.colorful().Hsl()
	return l > 0.5
}

// Blend linearly interpolates between two colors in Lab space.
// t is clamped to [0, 1]. Default colors blend as black.
func (c Color) Blend(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a := c.colorful()
	b := other.colorful()
	r, g, bb := a.BlendLab(b, t).Clamped().RGB255()
	return RGBColor(r, g, bb)
}

func (c Color) colorful() colorful.Color {
	switch c.typ {
	case ColorANSI:
		r, g, b := ansiRGB(c.r)
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	case ColorRGB:
		return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
	default:
		return colorful.Color{}
	}
}

// ansiRGB approximates an ANSI 256 palette index as RGB components using
// the standard xterm palette layout.
func ansiRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		// Standard and bright colors.
		base := [16][3]uint8{
			{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
			{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
			{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		c := base[index]
		return c[0], c[1], c[2]
	case index < 232:
		// 6x6x6 color cube.
		i := index - 16
		steps := [6]uint8{0, 95, 135, 175, 215, 255}
		return steps[i/36], steps[(i/6)%6], steps[i%6]
	default:
		// Grayscale ramp.
		v := 8 + 10*(index-232)
		return v, v, v
	}
}

// Basic ANSI colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// GradientDirection controls how a gradient maps onto a region.
type GradientDirection uint8

const (
	GradientHorizontal GradientDirection = iota
	GradientVertical
)

// Gradient is a linear blend between two colors.
type Gradient struct {
	From      Color
	To        Color
	Direction GradientDirection
}

// At returns the gradient color at position t in [0, 1].
func (g Gradient) At(t float64) Color {
	return g.From.Blend(g.To, t)
}
