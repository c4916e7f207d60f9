package colour

import (
	"fmt"
	"image/color"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

func bgEscape(c color.RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgEscape(c color.RGBA) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// Preview returns a solid block of width spaces on a c background.
func Preview(c color.RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bgEscape(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a block of c with text centred on it. The text is
// black or white, whichever TextColor picks for the background.
func PreviewWithText(c color.RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := color.RGBA{A: 255}
	if TextColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)) == white {
		fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	runes := []rune(text)
	displayText := text
	if len(runes) > width {
		displayText = string(runes[:width])
	} else if len(runes) < width {
		padding := (width - len(runes)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(runes)-padding)
	}

	return bgEscape(c) + fgEscape(fg) + displayText + ansiReset
}

// Colourise returns text in the foreground colour c.
func Colourise(c color.RGBA, text string) string {
	return fgEscape(c) + text + ansiReset
}
