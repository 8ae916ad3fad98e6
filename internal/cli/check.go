// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonal-dev/tonal/internal/colour"
)

var (
	// Check command flags
	checkRatio    float64
	checkTextSize float64
	checkBold     bool
	checkUI       bool
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check <background> <foreground>",
	Short: "Check the WCAG contrast ratio of a colour pair",
	Long: `Check computes the WCAG 2.0 contrast ratio between a background and a
foreground colour and reports whether the pair meets the required
threshold.

Colours are given as hex (#1a2b3c, #abc) or decimal triples (26,43,60).

The threshold defaults to 4.5:1 (WCAG AA, normal text). Use --text-size
and --bold to apply the large-text rule, --ui for the 3:1 UI-element
rule, or --ratio for an explicit value.

The command exits non-zero when the pair is non-compliant, so it can
gate CI pipelines:

  tonal check "#ffffff" "#767676" || echo "fails AA"

Examples:
  # Normal text (4.5:1)
  tonal check "#1e1e1e" "#9cdcfe"

  # Large text: 18pt regular or 14pt bold need only 3:1
  tonal check --text-size 18 "#1e1e1e" "#808080"
  tonal check --text-size 14 --bold "#1e1e1e" "#808080"

  # Non-text UI element (3:1)
  tonal check --ui "#ffffff" "255,120,0"`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Float64Var(&checkRatio, "ratio", 0, "explicit required contrast ratio (overrides other rules)")
	checkCmd.Flags().Float64Var(&checkTextSize, "text-size", 0, "text size in points (applies the text-size rule)")
	checkCmd.Flags().BoolVar(&checkBold, "bold", false, "text is bold (lowers the large-text boundary to 14pt)")
	checkCmd.Flags().BoolVar(&checkUI, "ui", false, "use the UI-element threshold (3:1)")
}

// requiredRatio resolves the threshold from the shared rule flags.
func requiredRatio(ratio, textSize float64, bold, ui bool) float64 {
	switch {
	case ratio > 0:
		return ratio
	case textSize > 0:
		return colour.RequiredRatioForText(textSize, bold)
	case ui:
		return colour.RatioLargeText
	default:
		return colour.RatioNormalText
	}
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	background, err := parseColour(args[0])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	foreground, err := parseColour(args[1])
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}

	required := requiredRatio(checkRatio, checkTextSize, checkBold, checkUI)
	ratio := colour.Contrast(background, foreground)
	compliant := ratio >= required

	logger.Debug("contrast check",
		"background", background.Hex(),
		"foreground", foreground.Hex(),
		"ratio", ratio,
		"required", required,
	)

	verdict := "FAIL"
	if compliant {
		verdict = "PASS"
	}
	fmt.Printf("%s on %s  ratio %.2f:1  required %.1f:1  %s\n",
		colour.SwatchWithText(background, foreground.Hex(), 10),
		background.Hex(), ratio, required, verdict)

	if !compliant {
		// Non-zero exit for scripting, without cobra printing usage.
		cmd.SilenceErrors = true
		return fmt.Errorf("contrast ratio %.2f:1 below required %.1f:1", ratio, required)
	}
	return nil
}
