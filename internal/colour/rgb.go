// Package colour implements the WCAG contrast and colour-space engine:
// relative luminance, contrast ratios, black/white foreground selection,
// sRGB/XYZ/LAB/LCH conversions and accessible colour ramp generation.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RGB represents an 8-bit sRGB colour. It is an immutable value type;
// all engine functions take and return copies.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a "#rgb" or "#rrggbb" hex string into an RGB colour.
// The leading "#" is optional.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) == 3 {
		raw = fmt.Sprintf("%c%c%c%c%c%c", raw[0], raw[0], raw[1], raw[1], raw[2], raw[2])
	}
	if len(raw) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(raw), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// ToRGB converts a color.Color to RGB. Alpha is discarded; callers that
// need compositing must pre-flatten before entering the engine.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Color converts the RGB value to a color.Color (RGBA) with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// clampChannel sanitises a floating-point channel value at the RGB
// boundary: NaN becomes 0, and the result is rounded and clamped to
// [0, 255]. All conversions back from float spaces pass through here,
// so no NaN/Inf component ever enters an RGB value.
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
