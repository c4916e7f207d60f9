package colour

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColour is returned by ParseColour for unrecognised input.
var ErrInvalidColour = errors.New("invalid colour")

// ParseColour validates user input and returns it as a six-digit
// lower-case hex colour. It accepts SVG colour names ("cornflowerblue"),
// "#rgb" and "#rrggbb", with or without the leading '#'.
func ParseColour(s string) (string, error) {
	in := strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(in)]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	if !strings.HasPrefix(in, "#") {
		in = "#" + in
	}
	if !IsHexCode(in) {
		return "", fmt.Errorf("%w %q: expected #rgb, #rrggbb or a colour name", ErrInvalidColour, s)
	}
	return NormaliseHex(in), nil
}
