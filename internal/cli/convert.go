package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/spf13/cobra"
)

var channelSplit = regexp.MustCompile(`[\s,]+`)

func newConvertCmd(a *app) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert colours between hex, RGB, HSL and HSV",
		Long: `Convert colours between hex, RGB, HSL and HSV.

Saturation, lightness and value are percentages for the HSL and HSV
conversions, except hsv-to-rgb which takes fractions in [0, 1] as the
colour wheel does.

Examples:
  huewheel convert hex-to-rgb '#f00'
  huewheel convert hex-to-rgb --delimiter , --opacity 0.5 336699
  huewheel convert rgb-to-hex 0 0 255
  huewheel convert hex-to-hsl '#ff8000'
  huewheel convert hsl-to-rgb 120 100 50
  huewheel convert hsv-to-rgb 240 1 1
  huewheel convert hsl-to-hsv 0 100 50`,
	}

	convertCmd.AddCommand(newHexToRGBCmd(a))
	convertCmd.AddCommand(&cobra.Command{
		Use:   "rgb-to-hex <channels...>",
		Short: "Convert RGB channels (0-255) to hex",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runRGBToHex,
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hex-to-hsl <colour>",
		Short: "Convert a hex colour to whole-number HSL",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runHexToHSL,
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hsl-to-rgb <h> <s> <l>",
		Short: "Convert HSL (degrees, percent, percent) to RGB",
		Args:  cobra.ExactArgs(3),
		RunE:  a.runHSLToRGB,
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hsv-to-rgb <h> <s> <v>",
		Short: "Convert HSV (degrees, fraction, fraction) to RGB",
		Args:  cobra.ExactArgs(3),
		RunE:  a.runHSVToRGB,
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hsl-to-hsv <h> <s> <l>",
		Short: "Convert HSL to HSV (percent on both sides)",
		Args:  cobra.ExactArgs(3),
		RunE:  a.runHSLToHSV,
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hsv-to-hsl <h> <s> <v>",
		Short: "Convert HSV to HSL (percent on both sides)",
		Args:  cobra.ExactArgs(3),
		RunE:  a.runHSVToHSL,
	})

	return convertCmd
}

func newHexToRGBCmd(a *app) *cobra.Command {
	var delimiter, opacity string

	cmd := &cobra.Command{
		Use:   "hex-to-rgb <colour>",
		Short: "Convert a hex colour to decimal channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}
			out := colour.HexToRGBWith(hex, delimiter, opacity)
			a.logger.Debug("converted", "op", "hex-to-rgb", "in", hex, "out", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", a.config.Delimiter, "separator between channels")
	cmd.Flags().StringVar(&opacity, "opacity", "", "optional fourth token appended to the channels")
	return cmd
}

func (a *app) runRGBToHex(cmd *cobra.Command, args []string) error {
	var channels []string
	for _, token := range channelSplit.Split(strings.Join(args, " "), -1) {
		if token != "" {
			channels = append(channels, token)
		}
	}
	if len(channels) != 3 {
		return fmt.Errorf("expected 3 channels, got %d", len(channels))
	}

	values, err := parseFloats(channels, "red", "green", "blue")
	if err != nil {
		return err
	}
	for i, name := range []string{"red", "green", "blue"} {
		if err := checkRange(name, values[i], 0, 255); err != nil {
			return err
		}
	}

	out := colour.RGBToHex(strings.Join(channels, " "))
	a.logger.Debug("converted", "op", "rgb-to-hex", "in", channels, "out", out)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (a *app) runHexToHSL(cmd *cobra.Command, args []string) error {
	hex, err := colour.ParseColour(args[0])
	if err != nil {
		return err
	}
	hsl := colour.HexToHSL(hex)
	a.logger.Debug("converted", "op", "hex-to-hsl", "in", hex, "out", hsl.String())

	// Rounding can carry the hue up to 360, so preview the input itself.
	out := cmd.OutOrStdout()
	if c, err := hexToRGBA(hex); err == nil && a.previewEnabled(out) {
		fmt.Fprintf(out, "%s  %s\n", colour.Preview(c, 0), hsl)
		return nil
	}
	fmt.Fprintln(out, hsl.String())
	return nil
}

func (a *app) runHSLToRGB(cmd *cobra.Command, args []string) error {
	h, s, l, err := parseTriple(args, "hue", "saturation", "lightness", 100)
	if err != nil {
		return err
	}
	// 360 is accepted as an alias of 0; HSLToRGB only covers [0, 360).
	rgb := colour.HSLToRGB(colour.WrapHue(h), s, l)
	a.logger.Debug("converted", "op", "hsl-to-rgb", "h", h, "s", s, "l", l, "out", rgb.String())
	a.printWithPreview(cmd, rgb.String()+" "+rgb.Hex(), rgb)
	return nil
}

func (a *app) runHSVToRGB(cmd *cobra.Command, args []string) error {
	h, s, v, err := parseTriple(args, "hue", "saturation", "value", 1)
	if err != nil {
		return err
	}
	rgb := colour.HSVToRGB(h, s, v)
	a.logger.Debug("converted", "op", "hsv-to-rgb", "h", h, "s", s, "v", v, "out", rgb.String())
	a.printWithPreview(cmd, rgb.String()+" "+rgb.Hex(), rgb)
	return nil
}

func (a *app) runHSLToHSV(cmd *cobra.Command, args []string) error {
	h, s, l, err := parseTriple(args, "hue", "saturation", "lightness", 100)
	if err != nil {
		return err
	}
	hsv := colour.HSLToHSV(h, s, l)
	a.logger.Debug("converted", "op", "hsl-to-hsv", "out", hsv.String())
	fmt.Fprintln(cmd.OutOrStdout(), hsv.String())
	return nil
}

func (a *app) runHSVToHSL(cmd *cobra.Command, args []string) error {
	h, s, v, err := parseTriple(args, "hue", "saturation", "value", 100)
	if err != nil {
		return err
	}
	hsl := colour.HSVToHSL(h, s, v)
	a.logger.Debug("converted", "op", "hsv-to-hsl", "out", hsl.String())
	fmt.Fprintln(cmd.OutOrStdout(), hsl.String())
	return nil
}

// parseTriple parses a hue in [0, 360] and two components in [0, limit].
func parseTriple(args []string, hName, aName, bName string, limit float64) (h, x, y float64, err error) {
	values, err := parseFloats(args, hName, aName, bName)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := checkRange(hName, values[0], 0, 360); err != nil {
		return 0, 0, 0, err
	}
	if err := checkRange(aName, values[1], 0, limit); err != nil {
		return 0, 0, 0, err
	}
	if err := checkRange(bName, values[2], 0, limit); err != nil {
		return 0, 0, 0, err
	}
	return values[0], values[1], values[2], nil
}

// printWithPreview writes line followed by a preview block of rgb when
// previews are enabled.
func (a *app) printWithPreview(cmd *cobra.Command, line string, rgb colour.RGB) {
	out := cmd.OutOrStdout()
	if !a.previewEnabled(out) {
		fmt.Fprintln(out, line)
		return
	}
	c, err := colour.ToRGBA(rgb)
	if err != nil {
		a.logger.Debug("skipping preview", "error", err)
		fmt.Fprintln(out, line)
		return
	}
	fmt.Fprintf(out, "%s  %s\n", colour.Preview(c, 0), line)
}
