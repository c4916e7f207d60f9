package colour

import "math"

// HSVToRGB converts HSV to RGB.
// hue is in degrees [0, 360], saturation and value are fractions in [0, 1].
// The result is not rounded. A hue outside [0, 360] yields a grey of the
// colour's minimum channel.
// See https://en.wikipedia.org/wiki/HSL_and_HSV#From_HSV.
func HSVToRGB(hue, saturation, value float64) RGB {
	chroma := value * saturation
	hue1 := hue / 60
	x := chroma * (1 - math.Abs(math.Mod(hue1, 2)-1))

	var r1, g1, b1 float64
	// Sector bounds are inclusive at both ends; the first match wins.
	switch {
	case hue1 >= 0 && hue1 <= 1:
		r1, g1, b1 = chroma, x, 0
	case hue1 >= 1 && hue1 <= 2:
		r1, g1, b1 = x, chroma, 0
	case hue1 >= 2 && hue1 <= 3:
		r1, g1, b1 = 0, chroma, x
	case hue1 >= 3 && hue1 <= 4:
		r1, g1, b1 = 0, x, chroma
	case hue1 >= 4 && hue1 <= 5:
		r1, g1, b1 = x, 0, chroma
	case hue1 >= 5 && hue1 <= 6:
		r1, g1, b1 = chroma, 0, x
	}

	m := value - chroma
	return RGB{
		R: 255 * (r1 + m),
		G: 255 * (g1 + m),
		B: 255 * (b1 + m),
	}
}

// HSLToRGB converts HSL to RGB with channels rounded to whole numbers.
// hue is in degrees [0, 360), saturation and lightness are in percent.
func HSLToRGB(hue, saturation, lightness float64) RGB {
	saturation /= 100
	lightness /= 100

	c := (1 - math.Abs(2*lightness-1)) * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := lightness - c/2

	var r, g, b float64
	switch {
	case 0 <= hue && hue < 60:
		r, g, b = c, x, 0
	case 60 <= hue && hue < 120:
		r, g, b = x, c, 0
	case 120 <= hue && hue < 180:
		r, g, b = 0, c, x
	case 180 <= hue && hue < 240:
		r, g, b = 0, x, c
	case 240 <= hue && hue < 300:
		r, g, b = x, 0, c
	case 300 <= hue && hue < 360:
		r, g, b = c, 0, x
	}

	return RGB{
		R: roundHalfUp((r + m) * 255),
		G: roundHalfUp((g + m) * 255),
		B: roundHalfUp((b + m) * 255),
	}
}

// HSLToHSV converts HSL to HSV. Saturation, lightness and value are in
// percent on both sides.
func HSLToHSV(h, s, l float64) HSV {
	s /= 100
	l /= 100

	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v != 0 {
		sv = 2 * (1 - l/v)
	}
	return HSV{H: h, S: sv * 100, V: v * 100}
}

// HSVToHSL converts HSV to HSL. Saturation, value and lightness are in
// percent on both sides.
func HSVToHSL(h, s, v float64) HSL {
	s /= 100
	v /= 100

	l := v - v*s/2
	sl := 0.0
	if l != 0 && l != 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return HSL{H: h, S: sl * 100, L: l * 100}
}
