package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/spf13/cobra"
)

// swatchReport is the JSON form of one harmony swatch.
type swatchReport struct {
	Hex      string       `json:"hex"`
	HSV      colour.HSV   `json:"hsv"`
	Position colour.Point `json:"position"`
}

// harmonyReport is the JSON output of the harmony command.
type harmonyReport struct {
	Colour   string         `json:"colour"`
	Harmony  colour.Harmony `json:"harmony"`
	Radius   float64        `json:"radius"`
	Swatches []swatchReport `json:"swatches"`
}

func newHarmonyCmd(a *app) *cobra.Command {
	harmony := harmonyValue(colour.Analogous)
	if h, err := colour.ParseHarmony(a.config.Harmony); err == nil {
		harmony = harmonyValue(h)
	} else {
		a.warnings = append(a.warnings, fmt.Sprintf("ignoring HUEWHEEL_HARMONY: %v", err))
	}
	format := formatText
	radius := a.config.Radius

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Derive a colour harmony from a base colour",
		Long: `Derive a colour harmony from a base colour.

The colour is placed on a wheel of the given radius. Each harmony hue is
marked at the same distance from the centre and keeps the base colour's
saturation and value.

Harmonies: triad, tetradic, complementary, analogous, square.

Examples:
  huewheel harmony '#ff8000'
  huewheel harmony --harmony triad teal
  huewheel harmony --harmony square --format json 336699`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if radius <= 0 {
				return fmt.Errorf("radius must be positive, got %v", radius)
			}
			hex, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}

			h := colour.Harmony(harmony)
			swatches := harmonySwatches(hex, radius, h)
			a.logger.Debug("harmony", "colour", hex, "harmony", h, "swatches", len(swatches))

			report := harmonyReport{Colour: hex, Harmony: h, Radius: radius}
			for _, s := range swatches {
				report.Swatches = append(report.Swatches, swatchReport{
					Hex:      s.RGB().Hex(),
					HSV:      s.HSV,
					Position: s.Point,
				})
			}

			if format == formatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			a.renderHarmony(cmd, report)
			return nil
		},
	}

	cmd.Flags().Var(&harmony, "harmony", "harmony (triad, tetradic, complementary, analogous, square)")
	cmd.Flags().VarP(&format, "format", "f", "output format (text, json)")
	cmd.Flags().Float64VarP(&radius, "radius", "r", radius, "wheel radius in pixels")
	return cmd
}

// harmonySwatches places hex on the wheel and expands h around it. The
// wheel fixes value at 1, so each swatch gets the base colour's value back.
func harmonySwatches(hex string, radius float64, h colour.Harmony) []colour.Swatch {
	hsl := colour.HexToHSL(hex)
	hsv := colour.HSLToHSV(hsl.H, hsl.S, hsl.L)
	p := colour.HSVToXY(hsv.H, hsv.S/100, hsv.V/100, radius)

	swatches := colour.HarmonySwatches(p, radius, h)
	for i := range swatches {
		swatches[i].V = hsv.V / 100
	}
	return swatches
}

func (a *app) renderHarmony(cmd *cobra.Command, report harmonyReport) {
	out := cmd.OutOrStdout()
	preview := a.previewEnabled(out)

	headers := []string{"Hex", "Hue", "Saturation", "Value", "X", "Y"}
	if preview {
		headers = append(headers, "Preview")
	}
	table := NewTable(headers)
	for i := 1; i < 6; i++ {
		table.SetColumnAlign(i, AlignRight)
	}

	for _, s := range report.Swatches {
		row := []string{
			s.Hex,
			formatFixed(s.HSV.H, 1),
			formatFixed(s.HSV.S, 3),
			formatFixed(s.HSV.V, 3),
			formatFixed(s.Position.X, 2),
			formatFixed(s.Position.Y, 2),
		}
		if preview {
			if c, err := hexToRGBA(s.Hex); err == nil {
				row = append(row, colour.Preview(c, 0))
			}
		}
		table.AddRow(row)
	}

	fmt.Fprintf(out, "%s harmony of %s\n\n", report.Harmony, report.Colour)
	fmt.Fprint(out, table.Render())
}

func formatFixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}
