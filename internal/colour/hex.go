package colour

import (
	"math"
	"regexp"
	"strings"
)

var (
	hexCodePattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)
	validHexPattern  = regexp.MustCompile(`(?i)^#([0-9A-F]{3}){1,2}$`)
	channelSeparator = regexp.MustCompile(`[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029},]+`)
	hslFunctionName  = regexp.MustCompile(`[a-z]{3}\(`)
)

// HexToRGB converts a hex colour to space-separated decimal channels,
// e.g. "#f00" becomes "255 0 0".
func HexToRGB(hex string) string {
	return HexToRGBWith(hex, " ", "")
}

// HexToRGBWith converts a hex colour to decimal channels joined by
// delimiter. A non-empty opacity is appended as a fourth token.
//
// Every '#' is dropped. Three remaining digits are doubled per channel;
// otherwise channels are taken from positions [0,2), [2,4) and [4,6).
// Channels that do not parse as hex render as "NaN".
func HexToRGBWith(hex, delimiter, opacity string) string {
	digits := []rune(strings.ReplaceAll(hex, "#", ""))

	var channels [3]string
	if len(digits) == 3 {
		for i, d := range digits {
			channels[i] = strings.Repeat(string(d), 2)
		}
	} else {
		channels[0] = sliceRunes(digits, 0, 2)
		channels[1] = sliceRunes(digits, 2, 4)
		channels[2] = sliceRunes(digits, 4, 6)
	}

	parts := make([]string, 0, 4)
	for _, c := range channels {
		parts = append(parts, formatNumber(parseHexPrefix(c)))
	}
	if opacity != "" {
		parts = append(parts, opacity)
	}
	return strings.Join(parts, delimiter)
}

func sliceRunes(r []rune, start, end int) string {
	start = min(start, len(r))
	end = min(end, len(r))
	return string(r[start:end])
}

// RGBToHex converts a string of channels separated by whitespace and/or
// commas to a hex colour, e.g. "0, 0, 255" becomes "#0000ff".
//
// Channels are neither clamped nor padded: "255 0" becomes "#ff00",
// fractional channels keep a hexadecimal fraction and non-numeric
// channels render as "NaN".
func RGBToHex(rgb string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, token := range channelSeparator.Split(rgb, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		digits := formatRadix16(parseNumber(token))
		if len(digits) < 2 {
			b.WriteString(strings.Repeat("0", 2-len(digits)))
		}
		b.WriteString(digits)
	}
	return b.String()
}

// IsHexCode reports whether s is a '#' followed by exactly 3 or 6 hex digits.
func IsHexCode(s string) bool {
	return hexCodePattern.MatchString(s)
}

// IsValidHex reports whether s is a valid hex colour for form input.
// It accepts the same strings as IsHexCode.
func IsValidHex(s string) bool {
	return validHexPattern.MatchString(s)
}

// NormaliseHex returns the six-digit lower-case form of a hex colour,
// expanding the three-digit shorthand.
func NormaliseHex(hex string) string {
	return RGBToHex(HexToRGB(hex))
}

// HexToHSL converts a six-digit hex colour to HSL with all components
// rounded to whole numbers. A single leading '#' is optional.
func HexToHSL(hex string) HSL {
	hex = strings.TrimPrefix(hex, "#")

	r := parseHexPrefix(substring(hex, 0, 2)) / 255
	g := parseHexPrefix(substring(hex, 2, 4)) / 255
	b := parseHexPrefix(substring(hex, 4, 6)) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))

	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		delta := hi - lo

		if l > 0.5 {
			s = delta / (2 - hi - lo)
		} else {
			s = delta / (hi + lo)
		}

		switch hi {
		case r:
			h = (g - b) / delta
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/delta + 2
		case b:
			h = (r-g)/delta + 4
		}

		h /= 6
	}

	return HSL{
		H: roundHalfUp(h * 360),
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}
}

// HSLStringToHex converts an "hsl(h,s%,l%)" string to a six-digit hex colour.
// Missing or malformed components are NaN and render as "NaN" digits.
func HSLStringToHex(hsl string) string {
	body := strings.ReplaceAll(hslFunctionName.ReplaceAllString(hsl, ""), ")", "")
	parts := strings.Split(body, ",")
	component := func(i int, unit string) float64 {
		if i >= len(parts) {
			return math.NaN()
		}
		return parseNumber(strings.Replace(parts[i], unit, "", 1))
	}

	h := component(0, "")
	s := component(1, "%")
	l := component(2, "%") / 100

	a := s * math.Min(l, 1-l) / 100
	channel := func(n float64) string {
		k := math.Mod(n+h/30, 12)
		c := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		digits := formatRadix16(roundHalfUp(255 * c))
		if len(digits) < 2 {
			digits = "0" + digits
		}
		return digits
	}

	return "#" + channel(0) + channel(8) + channel(4)
}
