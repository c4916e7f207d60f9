// Package cli provides the command-line interface for huewheel.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/huewheel/internal/config"
	"github.com/jmylchreest/huewheel/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries state shared by every command of one root command tree.
type app struct {
	config   config.Config
	warnings []string
	logger   hclog.Logger

	verbose  bool
	quiet    bool
	noColour bool
	preview  previewValue
}

// NewRootCmd builds a fresh huewheel command tree. Defaults come from the
// HUEWHEEL_* environment variables.
func NewRootCmd() *cobra.Command {
	cfg, warnings := config.NewBuilder().
		WithEnvConfig().
		Build()

	a := &app{
		config:   cfg,
		warnings: warnings,
		logger:   hclog.NewNullLogger(),
		preview:  previewValue(cfg.Preview),
	}

	rootCmd := &cobra.Command{
		Use:   "huewheel",
		Short: "Colour wheel conversions, contrast checks and harmonies",
		Long: `huewheel converts between hex, RGB, HSL and HSV, computes WCAG contrast
ratios and text colours, and derives colour harmonies from positions on a
colour wheel.

Colours may be given as #rgb, #rrggbb (the '#' is optional) or as an SVG
colour name such as "cornflowerblue".`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setupLogger(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().Var(&a.preview, "preview", "colour previews (auto, always, never)")
	rootCmd.PersistentFlags().BoolVar(&a.noColour, "no-colour", false, "disable colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newContrastCmd(a))
	rootCmd.AddCommand(newTextColourCmd(a))
	rootCmd.AddCommand(newHarmonyCmd(a))
	rootCmd.AddCommand(newWheelCmd(a))
	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// setupLogger configures the logger from the verbosity flags and reports
// any ignored environment settings.
func (a *app) setupLogger(w io.Writer) {
	level := hclog.Warn
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "huewheel",
		Output: w,
		Level:  level,
	})

	for _, msg := range a.warnings {
		a.logger.Warn(msg)
	}
}

// previewEnabled reports whether ANSI previews should be written to w.
func (a *app) previewEnabled(w io.Writer) bool {
	if a.noColour {
		return false
	}
	switch config.PreviewMode(a.preview) {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	format := formatText

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, Go version and supported harmonies.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetInfo()
			if format == formatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().VarP(&format, "format", "f", "output format (text, json)")
	return cmd
}
