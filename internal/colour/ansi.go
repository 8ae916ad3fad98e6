// Package colour provides terminal swatch rendering.
package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for truecolour terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput suppresses all ANSI colour sequences when true.
var DisableColourOutput = false

// Swatch returns an ANSI-coloured preview block for a colour. Width
// specifies how many characters wide the block should be.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if !ColourOutputEnabled() {
		return strings.Repeat(" ", width)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a colour preview with a text overlay. The
// overlay colour is picked with the best-contrast selector so the text
// stays readable on any swatch.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if !ColourOutputEnabled() {
		return display
	}

	overlay := GetContrastColor(c)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, overlay.R, overlay.G, overlay.B, ansiSuffix)
	return bg + fg + display + ansiReset
}

// FormatSwatch formats a colour with its preview block and hex code.
func FormatSwatch(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", Swatch(rgb, width), rgb.Hex())
}

// FormatSwatchWithLabel formats a colour with a label, preview block
// and hex code.
func FormatSwatchWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(rgb, width), label, rgb.Hex())
}

// ColourOutputEnabled reports whether ANSI colour sequences should be
// emitted: colour output has not been disabled, NO_COLOR is unset,
// TERM is not "dumb", and stdout is a terminal.
func ColourOutputEnabled() bool {
	if DisableColourOutput {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
