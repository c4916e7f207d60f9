package colour

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number parsing and formatting used by the string-based conversions.
//
// Hex strings and RGB strings arrive from free-text inputs and are parsed
// leniently: a malformed channel yields NaN instead of an error, and NaN is
// then carried through the arithmetic and rendered as "NaN".

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseHexPrefix parses the longest run of leading hex digits in s after
// optional whitespace, an optional sign and an optional 0x prefix.
// It returns NaN when no digit is found.
func parseHexPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	value := 0.0
	digits := 0
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			break
		}
		value = value*16 + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * value
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// parseNumber converts a whole token to a number. Blank input is 0,
// 0x/0o/0b prefixed integers and signed Infinity are accepted, anything
// else that is not a plain decimal literal is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if v, err := strconv.ParseUint(s[2:], base, 64); err == nil && !strings.ContainsRune(s[2:], '_') {
				return float64(v)
			}
			return math.NaN()
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Out-of-range literals come back as ±Inf alongside a range error.
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// roundHalfUp rounds half-way cases towards positive infinity.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// formatNumber renders v in the shortest decimal form that round-trips,
// without exponent for the magnitudes colour maths produces.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// toFixed rounds v to the given number of decimal places using its exact
// binary value. Exact ties round away from zero.
func toFixed(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	// v sits exactly half-way between two candidates only when v*2^(digits+1)
	// is an odd integer; FormatFloat would send those to even.
	q := math.Ldexp(v, digits+1)
	if q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		scale := math.Pow(10, float64(digits))
		return math.Copysign(roundHalfUp(math.Abs(v)*scale)/scale, v)
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	return r
}

const radixChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// formatRadix16 renders v in base 16, including a fractional part when v is
// not an integer. The fraction is emitted digit by digit until the remaining
// value is below half an ulp of v, rounding the last digit to even.
func formatRadix16(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	const radix = 16
	negative := v < 0
	if negative {
		v = -v
	}

	integer := math.Floor(v)
	fraction := v - integer

	delta := 0.5 * (math.Nextafter(v, math.Inf(1)) - v)
	delta = math.Max(math.Nextafter(0, 1), delta)

	var frac []byte
	if fraction >= delta {
		for {
			fraction *= radix
			delta *= radix
			digit := int(fraction)
			frac = append(frac, radixChars[digit])
			fraction -= float64(digit)
			if fraction > 0.5 || (fraction == 0.5 && digit&1 == 1) {
				if fraction+delta > 1 {
					// Round up, propagating the carry through written digits.
					for {
						last := len(frac) - 1
						if last < 0 {
							integer++
							break
						}
						d := strings.IndexByte(radixChars, frac[last])
						if d+1 < radix {
							frac[last] = radixChars[d+1]
							break
						}
						frac = frac[:last]
					}
					break
				}
			}
			if fraction < delta {
				break
			}
		}
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(formatIntegerRadix16(integer))
	if len(frac) > 0 {
		b.WriteByte('.')
		b.Write(frac)
	}
	return b.String()
}

func formatIntegerRadix16(integer float64) string {
	if integer < 1<<63 {
		return strconv.FormatUint(uint64(integer), 16)
	}
	var digits []byte
	for integer >= 1 {
		rem := math.Mod(integer, 16)
		digits = append(digits, radixChars[int(rem)])
		integer = (integer - rem) / 16
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// substr returns length characters of s starting at start. A negative
// start counts back from the end. Out-of-range bounds are clamped.
func substr(s string, start, length int) string {
	n := len(s)
	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		return ""
	}
	end := min(start+length, n)
	if end <= start {
		return ""
	}
	return s[start:end]
}

// substring returns s[start:end] with both bounds clamped to [0, len(s)]
// and swapped when start > end.
func substring(s string, start, end int) string {
	n := len(s)
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if start > end {
		start, end = end, start
	}
	return s[start:end]
}
