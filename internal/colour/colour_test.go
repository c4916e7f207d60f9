package colour

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255}, want: "#ff0000"},
		{name: "rounds channels", rgb: RGB{R: 254.6, G: 127.5, B: 0.4}, want: "#ff8000"},
		{name: "black", rgb: RGB{}, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	if got := (RGB{R: 255, G: 127.5, B: 0}).String(); got != "rgb(255, 127.5, 0)" {
		t.Errorf("String() = %q", got)
	}
	if got := (HSL{H: 120, S: 50, L: 25}).String(); got != "hsl(120, 50%, 25%)" {
		t.Errorf("String() = %q", got)
	}
	if got := (HSV{H: 120, S: 0.5, V: 1}).String(); got != "hsv(120, 0.5, 1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestToRGBA(t *testing.T) {
	got, err := ToRGBA(RGB{R: 12.4, G: 0, B: 255})
	if err != nil {
		t.Fatalf("ToRGBA error: %v", err)
	}
	if want := (color.RGBA{R: 12, G: 0, B: 255, A: 255}); got != want {
		t.Errorf("ToRGBA = %v, want %v", got, want)
	}

	for _, rgb := range []RGB{{R: 256}, {G: -1}, {B: math.NaN()}} {
		if _, err := ToRGBA(rgb); err == nil {
			t.Errorf("ToRGBA(%+v) should fail", rgb)
		}
	}
}
