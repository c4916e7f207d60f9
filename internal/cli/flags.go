package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/config"
	"github.com/spf13/pflag"
)

// harmonyValue is a pflag.Value accepting a harmony name.
type harmonyValue colour.Harmony

var _ pflag.Value = (*harmonyValue)(nil)

func (h *harmonyValue) String() string { return string(*h) }

func (h *harmonyValue) Set(s string) error {
	parsed, err := colour.ParseHarmony(s)
	if err != nil {
		return err
	}
	*h = harmonyValue(parsed)
	return nil
}

func (h *harmonyValue) Type() string { return "harmony" }

// previewValue is a pflag.Value accepting a preview mode.
type previewValue config.PreviewMode

var _ pflag.Value = (*previewValue)(nil)

func (p *previewValue) String() string { return string(*p) }

func (p *previewValue) Set(s string) error {
	mode, err := config.ParsePreviewMode(s)
	if err != nil {
		return err
	}
	*p = previewValue(mode)
	return nil
}

func (p *previewValue) Type() string { return "mode" }

// outputFormat is a pflag.Value for the text and json renderers.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON:
		*f = v
		return nil
	}
	return fmt.Errorf("invalid format %q (valid: text, json)", s)
}

func (f *outputFormat) Type() string { return "format" }

// parseFloats parses positional numeric arguments named by names.
func parseFloats(args []string, names ...string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			name := "value"
			if i < len(names) {
				name = names[i]
			}
			return nil, fmt.Errorf("invalid %s %q: %w", name, arg, err)
		}
		values[i] = v
	}
	return values, nil
}

// checkRange returns an error if v lies outside [lo, hi].
func checkRange(name string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %s out of range [%s, %s]", name,
			strconv.FormatFloat(v, 'f', -1, 64),
			strconv.FormatFloat(lo, 'f', -1, 64),
			strconv.FormatFloat(hi, 'f', -1, 64))
	}
	return nil
}
