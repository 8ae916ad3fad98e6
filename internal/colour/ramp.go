// Package colour provides accessible colour ramp generation.
package colour

import "math"

// Implied ramp backgrounds. Dark mode assumes a near-black surface,
// light mode a white one; every ramp entry targets the WCAG AA
// normal-text ratio (4.5:1) against the implied background.
var (
	DarkModeBackground  = RGB{R: 32, G: 32, B: 32}
	LightModeBackground = RGB{R: 255, G: 255, B: 255}
)

// Search parameters for the compliance heuristic.
const (
	lightnessScanStep = 5.0 // end-lightness scan granularity
	lightnessSearches = 2   // binary-search iterations on L per step
	chromaStep        = 5.0 // chroma relief delta
	maxChroma         = 100.0
	hueStep           = 2.0 // hue relief delta, degrees
)

// GenerateAccessibleRamp derives an ordered list of colours from the
// base colour, perceptually graded in LCH space, where each entry
// individually targets the 4.5:1 contrast ratio against the implied
// background (RGB(32,32,32) in dark mode, white in light mode).
//
// Index 0 is the least adjusted from the base; later indices move
// increasingly toward the compliant lightness extreme. Returns an empty
// slice when steps <= 0. The search is a bounded heuristic: an entry
// that cannot be coerced into compliance is returned as a best effort,
// so callers needing a hard guarantee must re-check with IsCompliant.
//
// The algorithm is fully deterministic; identical arguments always
// produce identical output.
func GenerateAccessibleRamp(base RGB, steps int, darkMode bool) []RGB {
	if steps <= 0 {
		return []RGB{}
	}

	background := LightModeBackground
	if darkMode {
		background = DarkModeBackground
	}
	bgLum := RelativeLuminance(background)

	lch := RGBToLCH(base)
	endL := findEndLightness(lch, bgLum, darkMode)

	ramp := make([]RGB, steps)
	for i := 0; i < steps; i++ {
		// With a single step the interpolation fraction i/(steps-1)
		// degenerates to 0/0; pin it to 0 so the lone entry is derived
		// from the base lightness itself.
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		guessL := lch.L + (endL-lch.L)*t
		ramp[i] = attemptCompliance(LCH{L: guessL, C: lch.C, H: lch.H}, bgLum, darkMode)
	}
	return ramp
}

// findEndLightness scans lightness away from the base toward the
// compliant extreme (100 in dark mode, 0 in light mode) in fixed
// increments, returning the first lightness whose colour passes the
// contrast threshold at the base chroma and hue. Falls back to the
// boundary value when the scan exhausts the range.
func findEndLightness(base LCH, bgLum float64, darkMode bool) float64 {
	if darkMode {
		for l := base.L; l <= 100.0; l += lightnessScanStep {
			if rampCompliant(LCH{L: l, C: base.C, H: base.H}, bgLum) {
				return l
			}
		}
		return 100.0
	}
	for l := base.L; l >= 0.0; l -= lightnessScanStep {
		if rampCompliant(LCH{L: l, C: base.C, H: base.H}, bgLum) {
			return l
		}
	}
	return 0.0
}

// attemptCompliance coerces a single LCH candidate toward the contrast
// threshold: accept as-is, then a bounded binary search on lightness,
// then chroma relief (±5), then hue relief (±2°). When nothing passes,
// the last candidate tried is returned as an explicit best effort.
func attemptCompliance(candidate LCH, bgLum float64, darkMode bool) RGB {
	if rampCompliant(candidate, bgLum) {
		return LCHToRGB(candidate)
	}

	// Bounded binary search on L, bracketed toward the compliant
	// extreme. The last midpoint becomes the working lightness whether
	// or not it passed.
	lo, hi := candidate.L, 100.0
	if !darkMode {
		lo, hi = 0.0, candidate.L
	}
	for i := 0; i < lightnessSearches; i++ {
		mid := (lo + hi) / 2.0
		trial := LCH{L: mid, C: candidate.C, H: candidate.H}
		if rampCompliant(trial, bgLum) {
			return LCHToRGB(trial)
		}
		// A failed midpoint is below the target ratio, so the bracket
		// always narrows toward the compliant extreme: lighter on a
		// dark surface, darker on a light one.
		if darkMode {
			lo = mid
		} else {
			hi = mid
		}
		candidate.L = mid
	}

	// Chroma relief: desaturating often pulls a colour over the
	// threshold without a visible lightness jump; resaturating is the
	// symmetric fallback.
	for _, delta := range []float64{-chromaStep, chromaStep} {
		trial := candidate
		trial.C = math.Max(0.0, math.Min(maxChroma, candidate.C+delta))
		if rampCompliant(trial, bgLum) {
			return LCHToRGB(trial)
		}
	}

	// Hue relief: a small rotation can cross into a part of the gamut
	// with more usable lightness headroom.
	last := candidate
	for _, delta := range []float64{hueStep, -hueStep} {
		trial := candidate
		trial.H = math.Mod(candidate.H+delta+360.0, 360.0)
		if rampCompliant(trial, bgLum) {
			return LCHToRGB(trial)
		}
		last = trial
	}

	// Best effort: non-compliant, but never an error.
	return LCHToRGB(last)
}

// rampCompliant reports whether the LCH candidate, converted to sRGB,
// meets the ramp contrast threshold against the background luminance.
func rampCompliant(lch LCH, bgLum float64) bool {
	return ContrastRatio(RelativeLuminance(LCHToRGB(lch)), bgLum) >= RatioNormalText
}
