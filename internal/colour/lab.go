// Package colour provides CIE colour-space conversions.
package colour

import "math"

// D65 reference white point.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labEpsilon is the linear/cube-root crossover of the CIE LAB transfer
// function (216/24389, conventionally quoted as 0.008856).
const labEpsilon = 0.008856

// XYZ is a colour in the CIE 1931 XYZ space, normalised so that the
// D65 white point maps to Y = 1.
type XYZ struct {
	X, Y, Z float64
}

// LAB is a colour in the CIE L*a*b* space. L is nominal lightness in
// [0, 100]; a and b are unbounded opponent axes and may leave the sRGB
// gamut during ramp searches. Out-of-gamut values are clamped when
// converted back to RGB.
type LAB struct {
	L, A, B float64
}

// LCH is the polar form of LAB: lightness, chroma magnitude (>= 0) and
// hue angle in degrees, normalised to [0, 360). The ramp search works
// in LCH because lightness, chroma and hue are independently adjustable
// perceptual knobs.
type LCH struct {
	L, C, H float64
}

// RGBToXYZ converts an sRGB colour to XYZ using the standard sRGB
// matrix and the shared linearisation table.
func RGBToXYZ(rgb RGB) XYZ {
	r := linearTable[rgb.R]
	g := linearTable[rgb.G]
	b := linearTable[rgb.B]

	return XYZ{
		X: 0.4124*r + 0.3576*g + 0.1805*b,
		Y: 0.2126*r + 0.7152*g + 0.0722*b,
		Z: 0.0193*r + 0.1192*g + 0.9505*b,
	}
}

// XYZToRGB converts an XYZ colour back to sRGB: inverse matrix, gamma
// encode, then round and clamp each channel to [0, 255].
func XYZToRGB(xyz XYZ) RGB {
	r := 3.2406*xyz.X - 1.5372*xyz.Y - 0.4986*xyz.Z
	g := -0.9689*xyz.X + 1.8758*xyz.Y + 0.0415*xyz.Z
	b := 0.0557*xyz.X - 0.2040*xyz.Y + 1.0570*xyz.Z

	return RGB{
		R: clampChannel(gammaEncode(r) * 255.0),
		G: clampChannel(gammaEncode(g) * 255.0),
		B: clampChannel(gammaEncode(b) * 255.0),
	}
}

// gammaEncode applies the piecewise sRGB encode curve to a linear
// channel value.
func gammaEncode(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// XYZToLAB converts XYZ to L*a*b* using the D65 white point.
func XYZToLAB(xyz XYZ) LAB {
	fx := labCompress(xyz.X / whiteX)
	fy := labCompress(xyz.Y / whiteY)
	fz := labCompress(xyz.Z / whiteZ)

	return LAB{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LABToXYZ converts L*a*b* back to XYZ using the D65 white point.
func LABToXYZ(lab LAB) XYZ {
	fy := (lab.L + 16.0) / 116.0
	fx := fy + lab.A/500.0
	fz := fy - lab.B/200.0

	return XYZ{
		X: labUncompress(fx) * whiteX,
		Y: labUncompress(fy) * whiteY,
		Z: labUncompress(fz) * whiteZ,
	}
}

// labCompress applies the CIE LAB transfer function: cube root above
// the crossover, linear segment below.
func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// labUncompress inverts labCompress.
func labUncompress(ft float64) float64 {
	t3 := ft * ft * ft
	if t3 > labEpsilon {
		return t3
	}
	return (ft - 16.0/116.0) / 7.787
}

// LABToLCH converts rectangular LAB to polar LCH with the hue angle
// normalised to [0, 360).
func LABToLCH(lab LAB) LCH {
	c := math.Sqrt(lab.A*lab.A + lab.B*lab.B)
	h := math.Atan2(lab.B, lab.A) * 180.0 / math.Pi
	if h < 0 {
		h += 360.0
	}
	return LCH{L: lab.L, C: c, H: h}
}

// LCHToLAB converts polar LCH back to rectangular LAB.
func LCHToLAB(lch LCH) LAB {
	rad := lch.H * math.Pi / 180.0
	return LAB{
		L: lch.L,
		A: lch.C * math.Cos(rad),
		B: lch.C * math.Sin(rad),
	}
}

// RGBToLCH converts an sRGB colour to LCH via XYZ and LAB.
func RGBToLCH(rgb RGB) LCH {
	return LABToLCH(XYZToLAB(RGBToXYZ(rgb)))
}

// LCHToRGB converts an LCH colour to sRGB via LAB and XYZ, clamping to
// the 8-bit gamut.
func LCHToRGB(lch LCH) RGB {
	return XYZToRGB(LABToXYZ(LCHToLAB(lch)))
}
