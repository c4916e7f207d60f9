// huewheel - colour wheel conversions, contrast checks and harmonies.
//
// huewheel converts between hex, RGB, HSL and HSV, computes WCAG contrast
// ratios and readable text colours, and derives colour harmonies from
// positions on a colour wheel.
package main

import (
	"os"

	"github.com/jmylchreest/huewheel/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
