package colour

import (
	"image/color"
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	got := Preview(color.RGBA{R: 255, A: 255}, 2)
	if want := "\033[48;2;255;0;0m  \033[0m"; got != want {
		t.Errorf("Preview = %q, want %q", got, want)
	}

	if got := Preview(color.RGBA{A: 255}, 0); strings.Count(got, " ") != defaultWidth {
		t.Errorf("Preview with zero width = %q, want %d spaces", got, defaultWidth)
	}
}

func TestPreviewWithText(t *testing.T) {
	tests := []struct {
		name string
		bg   color.RGBA
		fg   string
	}{
		{name: "dark background", bg: color.RGBA{A: 255}, fg: "\033[38;2;255;255;255m"},
		{name: "light background", bg: color.RGBA{R: 255, G: 255, B: 255, A: 255}, fg: "\033[38;2;0;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviewWithText(tt.bg, "AA", 6)
			if !strings.Contains(got, tt.fg) {
				t.Errorf("PreviewWithText = %q, want foreground %q", got, tt.fg)
			}
			if !strings.Contains(got, "  AA  ") {
				t.Errorf("PreviewWithText = %q, want centred text", got)
			}
		})
	}

	if got := PreviewWithText(color.RGBA{A: 255}, "truncated", 4); !strings.Contains(got, "trun\033[0m") {
		t.Errorf("PreviewWithText = %q, want truncated text", got)
	}

	// Width counts characters, not bytes.
	if got := PreviewWithText(color.RGBA{A: 255}, "héllo", 7); !strings.Contains(got, " héllo \033[0m") {
		t.Errorf("PreviewWithText = %q, want centred multi-byte text", got)
	}
	if got := PreviewWithText(color.RGBA{A: 255}, "★☆★☆", 3); !strings.Contains(got, "★☆★\033[0m") {
		t.Errorf("PreviewWithText = %q, want truncation on a character boundary", got)
	}
}
