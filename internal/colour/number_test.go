package colour

import (
	"math"
	"testing"
)

func TestParseHexPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "lower", input: "ff", want: 255},
		{name: "upper", input: "FF", want: 255},
		{name: "zero", input: "00", want: 0},
		{name: "prefixed", input: "0x1f", want: 31},
		{name: "trailing garbage", input: "1g", want: 1},
		{name: "negative", input: "-a", want: -10},
		{name: "leading space", input: " 7f", want: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseHexPrefix(tt.input); got != tt.want {
				t.Errorf("parseHexPrefix(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, input := range []string{"", "zz", "#f", "-"} {
		if got := parseHexPrefix(input); !math.IsNaN(got) {
			t.Errorf("parseHexPrefix(%q) = %v, want NaN", input, got)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "12", want: 12},
		{input: " 7 ", want: 7},
		{input: "1e2", want: 100},
		{input: "128.5", want: 128.5},
		{input: ".5", want: 0.5},
		{input: "-3", want: -3},
		{input: "0x10", want: 16},
		{input: "0b101", want: 5},
		{input: "", want: 0},
		{input: "Infinity", want: math.Inf(1)},
	}

	for _, tt := range tests {
		if got := parseNumber(tt.input); got != tt.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, input := range []string{"abc", "12px", "inf", "NaN", "0x", "1_000", "0x1p3"} {
		if got := parseNumber(input); !math.IsNaN(got) {
			t.Errorf("parseNumber(%q) = %v, want NaN", input, got)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{input: 2.5, want: 3},
		{input: 2.4, want: 2},
		{input: -7.5, want: -7},
		{input: -7.6, want: -8},
		{input: 0.49999999999999994, want: 0},
		{input: 127.5, want: 128},
	}

	for _, tt := range tests {
		if got := roundHalfUp(tt.input); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		input  float64
		digits int
		want   float64
	}{
		{input: 33.3333, digits: 1, want: 33.3},
		{input: 0.25, digits: 1, want: 0.3},
		{input: 0.75, digits: 1, want: 0.8},
		{input: 0.125, digits: 2, want: 0.13},
		{input: 1.005, digits: 2, want: 1},
		{input: 16.6666, digits: 2, want: 16.67},
		{input: 0, digits: 1, want: 0},
	}

	for _, tt := range tests {
		if got := toFixed(tt.input, tt.digits); got != tt.want {
			t.Errorf("toFixed(%v, %d) = %v, want %v", tt.input, tt.digits, got, tt.want)
		}
	}
}

func TestFormatRadix16(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0, want: "0"},
		{input: 15, want: "f"},
		{input: 255, want: "ff"},
		{input: 300, want: "12c"},
		{input: -1, want: "-1"},
		{input: 0.5, want: "0.8"},
		{input: 128.5, want: "80.8"},
		{input: 255.25, want: "ff.4"},
		{input: math.NaN(), want: "NaN"},
		{input: math.Inf(1), want: "Infinity"},
	}

	for _, tt := range tests {
		if got := formatRadix16(tt.input); got != tt.want {
			t.Errorf("formatRadix16(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 255, want: "255"},
		{input: 47.6, want: "47.6"},
		{input: math.Copysign(0, -1), want: "0"},
		{input: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.input); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		s      string
		start  int
		length int
		want   string
	}{
		{s: "#ff0000", start: 1, length: 2, want: "ff"},
		{s: "#ff0000", start: 3, length: 2, want: "00"},
		{s: "#ff0000", start: -2, length: 2, want: "00"},
		{s: "#f00", start: 3, length: 2, want: "0"},
		{s: "#f00", start: 5, length: 2, want: ""},
		{s: "f", start: -2, length: 2, want: "f"},
		{s: "", start: 1, length: 2, want: ""},
	}

	for _, tt := range tests {
		if got := substr(tt.s, tt.start, tt.length); got != tt.want {
			t.Errorf("substr(%q, %d, %d) = %q, want %q", tt.s, tt.start, tt.length, got, tt.want)
		}
	}

	if got := substring("abc", 5, 1); got != "bc" {
		t.Errorf("substring swapped bounds = %q, want %q", got, "bc")
	}
}
