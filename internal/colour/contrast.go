// Package colour provides foreground colour selection logic.
package colour

// Black and White are the two candidate foregrounds considered by the
// best-contrast selector.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// SelectContrastColor picks black or white as a foreground for the
// given background, preferring whichever meets the required ratio.
//
// - If both extremes pass, the one with the higher ratio wins.
// - If only one passes, it wins regardless of which ratio is higher.
// - If neither passes (impossible for ratios <= 21, but handled for
//   graceful degradation), the higher ratio wins as a best effort and
//   callers must re-check compliance themselves.
//
// When the two ratios are exactly equal, white is returned. Equality
// cannot occur for real backgrounds because luminance 0 and 1 bracket
// the range asymmetrically; the preference is fixed so the function
// stays deterministic.
func SelectContrastColor(background RGB, requiredRatio float64) RGB {
	lum := RelativeLuminance(background)
	ratioBlack := ContrastRatio(lum, 0.0)
	ratioWhite := ContrastRatio(lum, 1.0)

	blackPasses := ratioBlack >= requiredRatio
	whitePasses := ratioWhite >= requiredRatio

	if blackPasses != whitePasses {
		if blackPasses {
			return Black
		}
		return White
	}

	// Both pass or neither passes: take the higher ratio either way.
	if ratioBlack > ratioWhite {
		return Black
	}
	return White
}

// GetContrastColor returns black or white, whichever best contrasts
// with the background at the WCAG AA normal-text threshold (4.5:1).
func GetContrastColor(background RGB) RGB {
	return SelectContrastColor(background, RatioNormalText)
}

// GetContrastColorForText returns black or white for text of the given
// size and weight, using the text-size contrast rule (3:1 for large
// text, 4.5:1 otherwise).
func GetContrastColorForText(background RGB, textSizePt float64, isBold bool) RGB {
	return SelectContrastColor(background, RequiredRatioForText(textSizePt, isBold))
}

// GetContrastColorForUIElement returns black or white for a non-text
// UI element. A requiredRatio of 0 uses the WCAG AA threshold for UI
// components (3:1).
func GetContrastColorForUIElement(background RGB, requiredRatio float64) RGB {
	if requiredRatio <= 0 {
		requiredRatio = RatioLargeText
	}
	return SelectContrastColor(background, requiredRatio)
}
