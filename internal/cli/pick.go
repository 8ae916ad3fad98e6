// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonal-dev/tonal/internal/colour"
)

var (
	// Pick command flags
	pickRatio    float64
	pickTextSize float64
	pickBold     bool
	pickUI       bool
)

// pickCmd represents the pick command.
var pickCmd = &cobra.Command{
	Use:   "pick <background>",
	Short: "Pick a black or white foreground for a background",
	Long: `Pick selects black or white as a foreground colour for the given
background, whichever best satisfies the contrast threshold.

The threshold defaults to 4.5:1 (WCAG AA, normal text). Use --text-size
and --bold for the text-size rule, --ui for the 3:1 UI-element rule, or
--ratio for an explicit value. If neither extreme can reach the
threshold the higher-contrast one is returned as a best effort.

Examples:
  # Foreground for body text on a brand colour
  tonal pick "#0078d7"

  # Foreground for a large heading
  tonal pick --text-size 24 "#0078d7"

  # Foreground for an icon (UI element rule)
  tonal pick --ui "128,128,128"`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().Float64Var(&pickRatio, "ratio", 0, "explicit required contrast ratio (overrides other rules)")
	pickCmd.Flags().Float64Var(&pickTextSize, "text-size", 0, "text size in points (applies the text-size rule)")
	pickCmd.Flags().BoolVar(&pickBold, "bold", false, "text is bold (lowers the large-text boundary to 14pt)")
	pickCmd.Flags().BoolVar(&pickUI, "ui", false, "use the UI-element threshold (3:1)")
}

// runPick executes the pick command.
func runPick(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	background, err := parseColour(args[0])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	required := requiredRatio(pickRatio, pickTextSize, pickBold, pickUI)
	picked := colour.SelectContrastColor(background, required)
	ratio := colour.Contrast(background, picked)

	logger.Debug("foreground picked",
		"background", background.Hex(),
		"foreground", picked.Hex(),
		"ratio", ratio,
		"required", required,
	)

	fmt.Printf("%s %s on %s  ratio %.2f:1\n",
		colour.SwatchWithText(background, picked.Hex(), 10),
		picked.Hex(), background.Hex(), ratio)
	return nil
}
