// Package colour provides colour-space conversions and WCAG contrast helpers
// for the huewheel colour wheel.
//
// All functions are pure and safe for concurrent use. Conversions assume
// well-formed input: callers validate with IsHexCode, IsValidHex or
// ParseColour first, and malformed values otherwise propagate as NaN.
package colour

import (
	"fmt"
	"image/color"

	"fortio.org/safecast"
)

// RGB is a colour with channels in [0, 255]. Channels may be fractional,
// as produced by HSVToRGB; HSLToRGB returns whole numbers.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// String returns the colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%s, %s, %s)", formatNumber(rgb.R), formatNumber(rgb.G), formatNumber(rgb.B))
}

// Rounded returns the colour with each channel rounded half-up.
func (rgb RGB) Rounded() RGB {
	return RGB{R: roundHalfUp(rgb.R), G: roundHalfUp(rgb.G), B: roundHalfUp(rgb.B)}
}

// Hex returns the rounded colour as a hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	r := rgb.Rounded()
	return RGBToHex(formatNumber(r.R) + " " + formatNumber(r.G) + " " + formatNumber(r.B))
}

// ToRGBA converts the colour to an opaque color.RGBA.
// It fails if any rounded channel falls outside [0, 255] or is NaN.
func ToRGBA(rgb RGB) (color.RGBA, error) {
	r, err := safecast.Round[uint8](rgb.R)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("red channel %v: %w", rgb.R, err)
	}
	g, err := safecast.Round[uint8](rgb.G)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("green channel %v: %w", rgb.G, err)
	}
	b, err := safecast.Round[uint8](rgb.B)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("blue channel %v: %w", rgb.B, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// HSL is a hue in degrees with saturation and lightness in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour in CSS form, e.g. "hsl(120, 50%, 25%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L))
}

// HSV is a hue in degrees with saturation and value. The scale of S and V
// depends on the producing function: HSLToHSV uses percent, the wheel
// functions use fractions in [0, 1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the colour as "hsv(h, s, v)" without units.
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%s, %s, %s)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.V))
}

// Point is a position on the wheel canvas, origin at the top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
