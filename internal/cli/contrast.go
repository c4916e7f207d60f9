package cli

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/spf13/cobra"
)

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colours",
		Long: `Compute the WCAG 2.0 contrast ratio of two colours and rate it for
normal text (AA from 4.5:1, AAA from 7:1) and large text (AA from 3:1,
AAA from 4.5:1).

Examples:
  huewheel contrast '#000' '#fff'
  huewheel contrast navy lightyellow`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.ParseColour(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colour.ParseColour(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			ratio := colour.Contrast(fg, bg)
			a.logger.Debug("contrast", "foreground", fg, "background", bg, "ratio", ratio)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ratio: %s:1\n", strconv.FormatFloat(ratio, 'f', 2, 64))
			fmt.Fprintf(out, "normal text: %s\n", colour.RateNormalText(ratio))
			fmt.Fprintf(out, "large text: %s\n", colour.RateLargeText(ratio))
			return nil
		},
	}
}

func newTextColourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "text-colour <background>",
		Aliases: []string{"text-color"},
		Short:   "Pick a readable text colour for a background",
		Long: `Pick a readable text colour for a background.

Prints the winning tone (Light or Dark), the tinted text colour as HSL and
hex, and the plain black or white alternative.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}

			tone := colour.BestContrast(bg)
			text := colour.TextColour(bg)
			textHex := colour.HSLStringToHex(text)
			plain := colour.TextColor(bg)
			a.logger.Debug("text colour", "background", bg, "tone", tone, "text", text)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tone: %s\n", tone)
			fmt.Fprintf(out, "text: %s\n", text)
			fmt.Fprintf(out, "hex: %s\n", textHex)
			fmt.Fprintf(out, "plain: %s\n", plain)

			if a.previewEnabled(out) {
				if c, err := hexToRGBA(bg); err == nil {
					fmt.Fprintln(out, colour.PreviewWithText(c, "Sample", 16))
				}
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hex>",
		Short: "Check that a value is a #rgb or #rrggbb colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !colour.IsValidHex(args[0]) {
				return fmt.Errorf("%w %q: expected #rgb or #rrggbb", colour.ErrInvalidColour, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%s)\n", args[0], colour.NormaliseHex(args[0]))
			return nil
		},
	}
}

// hexToRGBA converts a normalised "#rrggbb" colour for the preview helpers.
func hexToRGBA(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w %q", colour.ErrInvalidColour, hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %w", colour.ErrInvalidColour, hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
