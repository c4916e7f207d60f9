package colour

import (
	"image/color"
	"math"
	"strconv"
)

// Tone is the winner of BestContrast: light text or dark text.
type Tone string

// Text tones.
const (
	Light Tone = "Light"
	Dark  Tone = "Dark"
)

// Rating is a WCAG conformance level for a contrast ratio.
type Rating string

// WCAG ratings.
const (
	RatingAAA  Rating = "AAA"
	RatingAA   Rating = "AA"
	RatingFail Rating = "FAIL"
)

const (
	white = "#ffffff"
	black = "#000000"
)

// gammaCorrect converts a gamma-encoded channel fraction to linear light.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGB returns the linear-light fraction of a two-digit hex channel,
// e.g. "ff" is 1. A channel that does not parse as hex yields NaN.
func SRGB(channel string) float64 {
	return gammaCorrect(parseHexPrefix(channel) / 255)
}

// Luminance returns the WCAG relative luminance of a "#rrggbb" colour,
// from 0 (black) to 1 (white). Channels are read from positions [1,3),
// [3,5) and the final two characters.
func Luminance(hex string) float64 {
	return 0.2126*SRGB(substr(hex, 1, 2)) +
		0.7152*SRGB(substr(hex, 3, 2)) +
		0.0722*SRGB(substr(hex, -2, 2))
}

// RGBLuminance returns the WCAG relative luminance of channels in [0, 255].
func RGBLuminance(r, g, b float64) float64 {
	return 0.2126*gammaCorrect(r/255) + 0.7152*gammaCorrect(g/255) + 0.0722*gammaCorrect(b/255)
}

// Contrast returns the WCAG contrast ratio between two "#rrggbb" colours,
// from 1 (identical luminance) to 21 (black on white). It is symmetric.
func Contrast(a, b string) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// ColorLuminance calculates the relative luminance of a color.Color.
func ColorLuminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	return RGBLuminance(float64(r>>8), float64(g>>8), float64(b>>8))
}

// ContrastRatio calculates the contrast ratio between two color.Color values.
// Meets WCAG AA for normal text at 4.5:1, large text at 3:1.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := ColorLuminance(c1)
	l2 := ColorLuminance(c2)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ForcedHSL returns the HSL of r, g, b (on a 0-255 scale) as an
// "hsl(h,s%,l%)" string with the lightness forced to 98% when lighten is
// set and 2% otherwise. The lightened hue is shifted by +15°, the darkened
// hue by -15° unless that would not stay positive. Saturation keeps one
// decimal place.
func ForcedHSL(r, g, b float64, lighten bool) string {
	r /= 255
	g /= 255
	b /= 255

	cmin := math.Min(r, math.Min(g, b))
	cmax := math.Max(r, math.Max(g, b))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h = roundHalfUp(h * 60)
	if h < 0 {
		h += 360
	}

	l := (cmax + cmin) / 2

	s := 0.0
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}
	s = toFixed(s*100, 1)

	if lighten {
		h += 15
		l = 98
	} else {
		if h-15 > 0 {
			h -= 15
		}
		l = 2
	}

	return "hsl(" + formatNumber(h) + "," + formatNumber(s) + "%," + strconv.Itoa(int(l)) + "%)"
}

// linearChannels returns the linear-light channels of a "#rrggbb" colour.
func linearChannels(bg string) (r, g, b float64) {
	return SRGB(substr(bg, 1, 2)), SRGB(substr(bg, 3, 2)), SRGB(substr(bg, -2, 2))
}

// BestContrast decides whether light or dark text reads better on bg.
//
// The candidates are the forced-HSL variants of bg's linear-light channels.
// Those fractions are passed on the 0-255 scale ForcedHSL expects, which
// keeps the candidate hue while pulling its saturation towards the
// channel ratio. Each candidate is compared by contrast against bg.
func BestContrast(bg string) Tone {
	r, g, b := linearChannels(bg)

	lightContrast := Contrast(HSLStringToHex(ForcedHSL(r, g, b, true)), bg)
	darkContrast := Contrast(HSLStringToHex(ForcedHSL(r, g, b, false)), bg)
	if lightContrast > darkContrast {
		return Light
	}
	return Dark
}

// TextColour returns the text colour for bg as an "hsl(h,s%,l%)" string:
// the candidate that wins BestContrast.
func TextColour(bg string) string {
	r, g, b := linearChannels(bg)
	return ForcedHSL(r, g, b, BestContrast(bg) == Light)
}

// TextColor returns "#ffffff" or "#000000", whichever contrasts more with bg.
func TextColor(bg string) string {
	if Contrast(bg, white) > Contrast(bg, black) {
		return white
	}
	return black
}

// RateNormalText rates a contrast ratio for body text:
// AAA from 7:1, AA from 4.5:1.
func RateNormalText(ratio float64) Rating {
	switch {
	case ratio >= 7:
		return RatingAAA
	case ratio >= 4.5:
		return RatingAA
	}
	return RatingFail
}

// RateLargeText rates a contrast ratio for large text:
// AAA from 4.5:1, AA from 3:1.
func RateLargeText(ratio float64) Rating {
	switch {
	case ratio >= 4.5:
		return RatingAAA
	case ratio >= 3:
		return RatingAA
	}
	return RatingFail
}
