package colour

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Harmony names a set of hue offsets that produce related colours.
type Harmony string

// Supported harmonies.
const (
	Triad         Harmony = "triad"
	Tetradic      Harmony = "tetradic"
	Complementary Harmony = "complementary"
	Analogous     Harmony = "analogous"
	Square        Harmony = "square"
)

// ErrUnknownHarmony is returned by ParseHarmony for unrecognised names.
var ErrUnknownHarmony = errors.New("unknown harmony")

var harmonyOffsets = map[Harmony][]float64{
	Triad:         {120, 240},
	Tetradic:      {60, 180, 240},
	Complementary: {180},
	Analogous:     {-30, 30},
	Square:        {90, 180, 270},
}

// Harmonies returns all supported harmonies in display order.
func Harmonies() []Harmony {
	return []Harmony{Triad, Tetradic, Complementary, Analogous, Square}
}

// String returns the harmony name.
func (h Harmony) String() string {
	return string(h)
}

// Offsets returns the hue offsets of h in degrees.
func Offsets(h Harmony) ([]float64, bool) {
	offsets, ok := harmonyOffsets[h]
	if !ok {
		return nil, false
	}
	return slices.Clone(offsets), true
}

// ParseHarmony resolves a harmony name, ignoring case and surrounding space.
func ParseHarmony(s string) (Harmony, error) {
	h := Harmony(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := harmonyOffsets[h]; !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownHarmony, s, harmonyNames())
	}
	return h, nil
}

func harmonyNames() string {
	names := make([]string, 0, len(harmonyOffsets))
	for _, h := range Harmonies() {
		names = append(names, h.String())
	}
	return strings.Join(names, ", ")
}

// WrapHue brings a hue offset result into [0, 360).
func WrapHue(hue float64) float64 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}

// ExpandHarmony returns the related hues of baseHue under h, in offset
// order. The base hue itself is not included. An unknown harmony yields nil.
func ExpandHarmony(baseHue float64, h Harmony) []float64 {
	offsets := harmonyOffsets[h]
	if len(offsets) == 0 {
		return nil
	}
	hues := make([]float64, len(offsets))
	for i, off := range offsets {
		hues[i] = WrapHue(baseHue + off)
	}
	return hues
}

// Swatch is one colour of a harmony together with its marker position on
// the wheel. Saturation and value are fractions.
type Swatch struct {
	Point
	HSV
}

// RGB returns the swatch colour.
func (s Swatch) RGB() RGB {
	return HSVToRGB(s.H, s.S, s.V)
}

// HarmonySwatches returns the colour combination for a wheel selection:
// the selected colour first, followed by one swatch per harmony hue at the
// same distance from the centre.
func HarmonySwatches(p Point, radius float64, h Harmony) []Swatch {
	r, phi := XYToPolar(p.X-radius, p.Y-radius)
	base := HSV{H: RadToDeg(phi), S: r / radius, V: 1.0}

	swatches := []Swatch{{Point: p, HSV: base}}
	for _, hue := range ExpandHarmony(base.H, h) {
		x, y := PolarToXY(r, hue*(math.Pi/180))
		swatches = append(swatches, Swatch{
			Point: Point{X: -x + radius, Y: -y + radius},
			HSV:   HSV{H: hue, S: base.S, V: base.V},
		})
	}
	return swatches
}
