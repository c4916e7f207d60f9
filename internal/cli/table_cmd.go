package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	format := formatText

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the WCAG text colour demonstration table",
		Long: `Show the WCAG text colour demonstration table.

Each sample background is paired with the text colour huewheel picks for
it. Pass reports whether the picked tone matches the expected one; the
ratio is rated for normal and large text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples := colour.DemoSamples()
			reports := make([]colour.SampleReport, 0, len(samples))
			failed := 0
			for _, s := range samples {
				r := colour.EvaluateSample(s)
				if !r.Pass {
					failed++
				}
				reports = append(reports, r)
			}
			a.logger.Debug("evaluated samples", "count", len(reports), "failed", failed)

			out := cmd.OutOrStdout()
			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}

			preview := a.previewEnabled(out)
			table := NewTable([]string{"Background", "Text", "Foreground", "Expected", "Result", "Pass", "Ratio", "Normal", "Large"})
			table.SetColumnAlign(6, AlignRight)
			for _, r := range reports {
				background := r.Background
				if preview {
					if c, err := hexToRGBA(colour.NormaliseHex(r.Background)); err == nil {
						background = colour.PreviewWithText(c, r.Background, 9)
					}
				}
				table.AddRow([]string{
					background,
					r.TextColour,
					r.Foreground,
					string(r.Expected),
					string(r.Result),
					strconv.FormatBool(r.Pass),
					formatFixed(r.Ratio, 2),
					string(r.NormalText),
					string(r.LargeText),
				})
			}
			fmt.Fprint(out, table.Render())
			fmt.Fprintf(out, "\n%d of %d samples match the expected tone\n", len(reports)-failed, len(reports))
			return nil
		},
	}

	cmd.Flags().VarP(&format, "format", "f", "output format (text, json)")
	return cmd
}
