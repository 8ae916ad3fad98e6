// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonal-dev/tonal/internal/colour"
	"github.com/tonal-dev/tonal/internal/image"
)

var (
	// Ramp command flags
	rampSteps   int
	rampDark    bool
	rampFormat  string
	rampOutput  string
	rampPreview bool
	rampImage   string
)

// rampCmd represents the ramp command.
var rampCmd = &cobra.Command{
	Use:   "ramp [base]",
	Short: "Generate an accessible colour ramp from a base colour",
	Long: `Ramp derives an ordered list of colours from a base colour, each one
individually targeting the 4.5:1 WCAG contrast ratio against the
implied background: rgb(32, 32, 32) with --dark, white otherwise.

The ramp is perceptually graded in LCH space, so entries suit related
UI states such as normal, hover, pressed and disabled. Entry 0 stays
closest to the base colour; later entries move toward the compliant
lightness extreme. Entries that cannot be coerced into compliance are
returned best-effort; re-check them with "tonal check" when a hard
guarantee is needed.

Instead of a base colour argument, --image samples the average colour
of an image file (JPEG, PNG, GIF, WebP).

Examples:
  # Four hover/pressed/disabled states on a light surface
  tonal ramp --steps 4 "#0078d7"

  # Dark-mode ramp with terminal previews
  tonal ramp --dark --preview "#0078d7"

  # JSON output for design tooling
  tonal ramp --format json --steps 5 "50,50,50"

  # Base colour sampled from a wallpaper
  tonal ramp --dark --image wallpaper.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRamp,
}

func init() {
	rampCmd.Flags().IntVarP(&rampSteps, "steps", "s", 4, "number of ramp entries")
	rampCmd.Flags().BoolVarP(&rampDark, "dark", "d", false, "target the dark-mode background rgb(32, 32, 32)")
	rampCmd.Flags().StringVarP(&rampFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	rampCmd.Flags().StringVarP(&rampOutput, "output", "o", "", "output file (default: stdout)")
	rampCmd.Flags().BoolVar(&rampPreview, "preview", false, "show colour previews in terminal")
	rampCmd.Flags().StringVar(&rampImage, "image", "", "sample the base colour from an image file")
}

// runRamp executes the ramp command.
func runRamp(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	base, err := resolveBaseColour(cmd, args)
	if err != nil {
		return err
	}

	background := colour.LightModeBackground
	if rampDark {
		background = colour.DarkModeBackground
	}

	logger.Debug("generating ramp",
		"base", base.Hex(),
		"steps", rampSteps,
		"dark", rampDark,
		"background", background.Hex(),
	)

	ramp := colour.GenerateAccessibleRamp(base, rampSteps, rampDark)
	for i, c := range ramp {
		logger.Debug("ramp entry",
			"index", i,
			"colour", c.Hex(),
			"ratio", colour.Contrast(background, c),
		)
	}

	output, err := formatRamp(base, background, rampDark, ramp, rampFormat, rampPreview)
	if err != nil {
		return err
	}

	if rampOutput != "" {
		if err := os.WriteFile(rampOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("ramp written", "path", rampOutput)
		return nil
	}
	fmt.Print(output)
	return nil
}

// resolveBaseColour resolves the ramp base from the positional argument
// or, with --image, from the average colour of an image file.
func resolveBaseColour(cmd *cobra.Command, args []string) (colour.RGB, error) {
	if rampImage != "" {
		if len(args) > 0 {
			return colour.RGB{}, fmt.Errorf("--image and a base colour argument are mutually exclusive")
		}
		img, err := image.Load(rampImage)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to load base image: %w", err)
		}
		base := image.AverageRGB(img)
		newLogger(cmd).Debug("sampled base colour from image", "path", rampImage, "base", base.Hex())
		return base, nil
	}

	if len(args) == 0 {
		return colour.RGB{}, fmt.Errorf("a base colour argument or --image is required")
	}
	base, err := parseColour(args[0])
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid base colour: %w", err)
	}
	return base, nil
}
