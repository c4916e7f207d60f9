// Package config provides environment-driven defaults for the huewheel CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by WithEnvConfig.
const (
	EnvRadius    = "HUEWHEEL_RADIUS"
	EnvHarmony   = "HUEWHEEL_HARMONY"
	EnvDelimiter = "HUEWHEEL_DELIMITER"
	EnvPreview   = "HUEWHEEL_PREVIEW"
	EnvNoColor   = "NO_COLOR"
)

// PreviewMode controls ANSI colour previews in command output.
type PreviewMode string

// Preview modes.
const (
	PreviewAuto   PreviewMode = "auto"
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// ParsePreviewMode resolves a preview mode name.
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch m := PreviewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PreviewAuto, PreviewAlways, PreviewNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid preview mode %q (valid: auto, always, never)", s)
}

// Config holds CLI defaults.
type Config struct {
	// Radius is the wheel radius in pixels used by the wheel commands.
	Radius float64

	// Harmony is the default harmony name for the harmony command.
	Harmony string

	// Delimiter joins channels in hex-to-rgb output.
	Delimiter string

	// Preview selects when ANSI colour previews are drawn.
	Preview PreviewMode
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Radius:    100,
		Harmony:   "analogous",
		Delimiter: " ",
		Preview:   PreviewAuto,
	}
}

// Builder provides a fluent interface for assembling a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithConfig replaces the starting configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig overlays HUEWHEEL_* environment variables and NO_COLOR.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build returns the assembled Config. Invalid environment values are
// reported as warnings and leave the corresponding default in place.
func (b *Builder) Build() (Config, []string) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	var warnings []string
	if v, ok := b.lookup(EnvRadius); ok && v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			warnings = append(warnings, fmt.Sprintf("ignoring %s=%q: want a positive number", EnvRadius, v))
		} else {
			config.Radius = r
		}
	}
	if v, ok := b.lookup(EnvHarmony); ok && v != "" {
		config.Harmony = v
	}
	if v, ok := b.lookup(EnvDelimiter); ok {
		config.Delimiter = v
	}
	if v, ok := b.lookup(EnvPreview); ok && v != "" {
		mode, err := ParsePreviewMode(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring %s: %v", EnvPreview, err))
		} else {
			config.Preview = mode
		}
	}
	// https://no-color.org: any non-empty value disables colour.
	if v, ok := b.lookup(EnvNoColor); ok && v != "" {
		config.Preview = PreviewNever
	}

	return config, warnings
}
