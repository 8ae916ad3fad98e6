package colour

import "math"

// WCAG 2.0 contrast-ratio thresholds.
// https://www.w3.org/TR/WCAG20/#visual-audio-contrast-contrast.
const (
	// RatioNormalText is the minimum contrast ratio for normal text (WCAG AA).
	RatioNormalText = 4.5
	// RatioLargeText is the minimum contrast ratio for large text and
	// non-text UI elements (WCAG AA).
	RatioLargeText = 3.0

	// Large-text boundaries: 18pt regular, or 14pt bold.
	largeTextPt     = 18.0
	largeTextBoldPt = 14.0
)

// linearTable maps an 8-bit sRGB channel value to its linear-light
// equivalent. Built once at package initialisation and read-only
// thereafter, so concurrent callers never race on it.
var linearTable = buildLinearTable()

func buildLinearTable() [256]float64 {
	var table [256]float64
	for i := range table {
		v := float64(i) / 255.0
		if v <= 0.03928 {
			table[i] = v / 12.92
		} else {
			table[i] = math.Pow((v+0.055)/1.055, 2.4)
		}
	}
	return table
}

// LinearizeChannel converts an 8-bit sRGB channel value to linear light
// using the piecewise sRGB decode curve. O(1) table lookup.
func LinearizeChannel(v uint8) float64 {
	return linearTable[v]
}

// RelativeLuminance calculates the relative luminance of a colour
// according to WCAG 2.0. Returns a value between 0 (darkest) and
// 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	return 0.2126*linearTable[rgb.R] + 0.7152*linearTable[rgb.G] + 0.0722*linearTable[rgb.B]
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two
// relative luminances. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(l1, l2 float64) float64 {
	// Ensure l1 is the lighter luminance.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast calculates the contrast ratio between two colours.
func Contrast(a, b RGB) float64 {
	return ContrastRatio(RelativeLuminance(a), RelativeLuminance(b))
}

// IsCompliant reports whether the foreground colour meets the required
// contrast ratio against the background. A requiredRatio of 0 uses the
// WCAG AA threshold for normal text (4.5:1).
func IsCompliant(background, foreground RGB, requiredRatio float64) bool {
	if requiredRatio <= 0 {
		requiredRatio = RatioNormalText
	}
	return Contrast(background, foreground) >= requiredRatio
}

// IsTextCompliant reports whether text of the given size and weight
// meets the WCAG AA contrast requirement against the background.
func IsTextCompliant(background, foreground RGB, textSizePt float64, isBold bool) bool {
	return IsCompliant(background, foreground, RequiredRatioForText(textSizePt, isBold))
}

// IsUIElementCompliant reports whether a non-text UI element meets the
// required contrast ratio against the background. A requiredRatio of 0
// uses the WCAG AA threshold for UI components (3:1).
func IsUIElementCompliant(background, element RGB, requiredRatio float64) bool {
	if requiredRatio <= 0 {
		requiredRatio = RatioLargeText
	}
	return IsCompliant(background, element, requiredRatio)
}

// RequiredRatioForText returns the WCAG AA contrast threshold for text
// of the given size: 3:1 for large text (18pt, or 14pt bold), 4.5:1
// otherwise.
func RequiredRatioForText(sizePt float64, isBold bool) float64 {
	if sizePt >= largeTextPt || (isBold && sizePt >= largeTextBoldPt) {
		return RatioLargeText
	}
	return RatioNormalText
}
