// Package cli provides colour argument parsing and output formatting.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tonal-dev/tonal/internal/colour"
)

// parseColour parses a colour argument in either "#rgb"/"#rrggbb" hex
// notation or as a decimal "r,g,b" triple.
func parseColour(s string) (colour.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colour.RGB{}, fmt.Errorf("colour cannot be empty")
	}

	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	return colour.ParseHex(s)
}

// parseTriple parses a decimal "r,g,b" colour triple.
func parseTriple(s string) (colour.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colour.RGB{}, fmt.Errorf("invalid colour %q: expected r,g,b", s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("invalid colour %q: channel %d out of range 0-255", s, i+1)
		}
		channels[i] = uint8(v)
	}
	return colour.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// colourJSON is the JSON output shape for a single colour.
type colourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// rampJSON is the JSON output shape for a generated ramp.
type rampJSON struct {
	Base       colourJSON   `json:"base"`
	Background colourJSON   `json:"background"`
	DarkMode   bool         `json:"dark_mode"`
	Steps      []colourJSON `json:"steps"`
}

// toColourJSON converts an RGB colour to its JSON output shape.
func toColourJSON(rgb colour.RGB) colourJSON {
	return colourJSON{Hex: rgb.Hex(), RGB: rgb}
}

// formatRamp renders a ramp in the requested format.
func formatRamp(base, background colour.RGB, darkMode bool, ramp []colour.RGB, format string, preview bool) (string, error) {
	switch format {
	case "hex":
		var sb strings.Builder
		for _, c := range ramp {
			if preview {
				sb.WriteString(colour.FormatSwatch(c, 8))
			} else {
				sb.WriteString(c.Hex())
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil
	case "rgb":
		var sb strings.Builder
		for _, c := range ramp {
			if preview {
				sb.WriteString(colour.FormatSwatch(c, 8))
				sb.WriteString("  ")
			}
			sb.WriteString(c.String())
			sb.WriteString("\n")
		}
		return sb.String(), nil
	case "json":
		out := rampJSON{
			Base:       toColourJSON(base),
			Background: toColourJSON(background),
			DarkMode:   darkMode,
			Steps:      make([]colourJSON, len(ramp)),
		}
		for i, c := range ramp {
			out.Steps[i] = toColourJSON(c)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal ramp: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}
