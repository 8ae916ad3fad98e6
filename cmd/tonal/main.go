// Tonal - WCAG contrast and accessible colour ramp toolkit
//
// Tonal computes WCAG contrast ratios, picks readable foreground
// colours and derives accessible colour ramps for UI states.
package main

import (
	"os"

	"github.com/tonal-dev/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
