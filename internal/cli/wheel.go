package cli

import (
	"fmt"
	"math"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/spf13/cobra"
)

func newWheelCmd(a *app) *cobra.Command {
	radius := a.config.Radius

	wheelCmd := &cobra.Command{
		Use:   "wheel",
		Short: "Map between wheel positions and colours",
		Long: `Map between positions on a colour wheel and colours.

The wheel is a square canvas of side 2*radius with its origin at the top
left. Hue runs around the centre with 0 on the left and saturation grows
from 0 at the centre to 1 at the rim. Value is always 1 on the wheel.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.setupLogger(cmd.ErrOrStderr())
			if radius <= 0 {
				return fmt.Errorf("radius must be positive, got %v", radius)
			}
			return nil
		},
	}
	wheelCmd.PersistentFlags().Float64VarP(&radius, "radius", "r", radius, "wheel radius in pixels")

	wheelCmd.AddCommand(&cobra.Command{
		Use:   "pick <x> <y>",
		Short: "Show the colour under a wheel position",
		Long: `Show the colour under a wheel position. Positions outside the wheel are
moved back onto the rim along the same angle.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args, "x", "y")
			if err != nil {
				return err
			}
			p := colour.Point{X: values[0], Y: values[1]}
			if r, _ := colour.XYToPolar(p.X-radius, p.Y-radius); r > radius {
				clamped := colour.ClampToWheel(p, radius)
				a.logger.Warn("position outside wheel, clamping", "x", p.X, "y", p.Y,
					"clamped_x", clamped.X, "clamped_y", clamped.Y)
				p = clamped
			}

			hsv := colour.WheelPosition(p, radius)
			rgb := colour.XYToRGB(p.X, p.Y, radius)
			a.logger.Debug("pick", "x", p.X, "y", p.Y, "hsv", hsv.String())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hsv: %s\n", hsv)
			fmt.Fprintf(out, "rgb: %s\n", rgb)
			a.printWithPreview(cmd, "hex: "+rgb.Hex(), rgb)
			return nil
		},
	})

	wheelCmd.AddCommand(&cobra.Command{
		Use:   "locate <h> <s> <v>",
		Short: "Show the wheel position of an HSV colour",
		Long: `Show the wheel position of an HSV colour. Saturation and value are
fractions in [0, 1]; value has no position on the wheel.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, s, v, err := parseTriple(args, "hue", "saturation", "value", 1)
			if err != nil {
				return err
			}
			p := colour.HSVToXY(h, s, v, radius)
			a.logger.Debug("locate", "h", h, "s", s, "x", p.X, "y", p.Y)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "x: %s\n", formatFixed(clearNegativeZero(p.X), 2))
			fmt.Fprintf(out, "y: %s\n", formatFixed(clearNegativeZero(p.Y), 2))
			return nil
		},
	})

	return wheelCmd
}

// clearNegativeZero keeps tiny negative results from printing as "-0.00".
func clearNegativeZero(v float64) float64 {
	if math.Abs(v) < 0.005 {
		return 0
	}
	return v
}
