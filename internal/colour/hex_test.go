package colour

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name      string
		hex       string
		delimiter string
		opacity   string
		want      string
	}{
		{name: "three digit", hex: "#f00", delimiter: " ", want: "255 0 0"},
		{name: "six digit", hex: "#00ff00", delimiter: " ", want: "0 255 0"},
		{name: "custom delimiter", hex: "#0000ff", delimiter: "-", want: "0-0-255"},
		{name: "opacity", hex: "#ff00ff", delimiter: " ", opacity: "0.5", want: "255 0 255 0.5"},
		{name: "no hash", hex: "abc", delimiter: ",", want: "170,187,204"},
		{name: "empty delimiter", hex: "#010203", delimiter: "", want: "123"},
		{name: "five digits", hex: "#12345", delimiter: " ", want: "18 52 5"},
		{name: "not hex", hex: "#zzzzzz", delimiter: " ", want: "NaN NaN NaN"},
		{name: "empty", hex: "", delimiter: " ", want: "NaN NaN NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGBWith(tt.hex, tt.delimiter, tt.opacity); got != tt.want {
				t.Errorf("HexToRGBWith(%q, %q, %q) = %q, want %q", tt.hex, tt.delimiter, tt.opacity, got, tt.want)
			}
		})
	}

	if got := HexToRGB("#f00"); got != "255 0 0" {
		t.Errorf("HexToRGB(%q) = %q, want %q", "#f00", got, "255 0 0")
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces", input: "255 0 0", want: "#ff0000"},
		{name: "leading and trailing spaces", input: "  0 255 0   ", want: "#00ff00"},
		{name: "commas", input: "0, 0, 255", want: "#0000ff"},
		{name: "commas without spaces", input: "17,34,51", want: "#112233"},
		{name: "short input is not padded", input: "255  0  ", want: "#ff00"},
		{name: "out of range is not clamped", input: "300 0 0", want: "#12c0000"},
		{name: "negative", input: "-1 0 0", want: "#-10000"},
		{name: "fraction", input: "128.5", want: "#80.8"},
		{name: "not a number", input: "abc 0 0", want: "#NaN0000"},
		{name: "empty", input: "", want: "#"},
		{name: "no-break spaces", input: "255\u00a00\u00a00", want: "#ff0000"},
		{name: "byte order mark and line separator", input: "\ufeff0\u20280\u2029255", want: "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHex(tt.input); got != tt.want {
				t.Errorf("RGBToHex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 15 {
				hex := fmt.Sprintf("#%02X%02x%02X", r, g, b)
				if got := RGBToHex(HexToRGB(hex)); got != strings.ToLower(hex) {
					t.Fatalf("RGBToHex(HexToRGB(%q)) = %q", hex, got)
				}
			}
		}
	}
}

func TestIsHexCode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "#f0f", want: true},
		{input: "#abcdef", want: true},
		{input: "#ABCDEF", want: true},
		{input: "#12345", want: false},
		{input: "", want: false},
		{input: "f0f", want: false},
		{input: "#abcdefa", want: false},
		{input: "#ggg", want: false},
		{input: "#f0f\n", want: false},
	}

	for _, tt := range tests {
		if got := IsHexCode(tt.input); got != tt.want {
			t.Errorf("IsHexCode(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := IsValidHex(tt.input); got != tt.want {
			t.Errorf("IsValidHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormaliseHex(t *testing.T) {
	tests := map[string]string{
		"#F0A":    "#ff00aa",
		"#ABCDEF": "#abcdef",
		"123456":  "#123456",
	}
	for input, want := range tests {
		if got := NormaliseHex(input); got != want {
			t.Errorf("NormaliseHex(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{hex: "#ff0000", want: HSL{H: 0, S: 100, L: 50}},
		{hex: "#00ff00", want: HSL{H: 120, S: 100, L: 50}},
		{hex: "#0000ff", want: HSL{H: 240, S: 100, L: 50}},
		{hex: "ffffff", want: HSL{H: 0, S: 0, L: 100}},
		{hex: "#000000", want: HSL{H: 0, S: 0, L: 0}},
		{hex: "#808080", want: HSL{H: 0, S: 0, L: 50}},
		{hex: "#ff8000", want: HSL{H: 30, S: 100, L: 50}},
		{hex: "#ff00ff", want: HSL{H: 300, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := HexToHSL(tt.hex); got != tt.want {
				t.Errorf("HexToHSL(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}

	got := HexToHSL("#zz0000")
	if !math.IsNaN(got.S) || !math.IsNaN(got.L) {
		t.Errorf("HexToHSL of malformed input = %+v, want NaN saturation and lightness", got)
	}
}

func TestHSLStringToHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "hsl(15,0%,98%)", want: "#fafafa"},
		{input: "hsl(0,0%,2%)", want: "#050505"},
		{input: "hsl(0,100%,50%)", want: "#ff0000"},
		{input: "hsl(120, 100%, 50%)", want: "#00ff00"},
		{input: "hsl(0,0%)", want: "#NaNNaNNaN"},
	}

	for _, tt := range tests {
		if got := HSLStringToHex(tt.input); got != tt.want {
			t.Errorf("HSLStringToHex(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
