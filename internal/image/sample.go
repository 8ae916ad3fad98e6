package image

import (
	"image"

	"github.com/tonal-dev/tonal/internal/colour"
)

// maxSampleDim caps how many pixels per axis AverageRGB inspects, so
// averaging stays cheap on large wallpapers.
const maxSampleDim = 128

// AverageRGB returns the mean colour of the image, suitable as a ramp
// base colour. Pixels are sampled on a grid of at most maxSampleDim
// points per axis. Transparency is flattened against white before the
// colour reaches the contrast engine, which never sees alpha.
func AverageRGB(img image.Image) colour.RGB {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return colour.White
	}

	strideX := max(1, w/maxSampleDim)
	strideY := max(1, h/maxSampleDim)

	var sumR, sumG, sumB, count uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += strideY {
		for x := bounds.Min.X; x < bounds.Max.X; x += strideX {
			rgb := flattenOnWhite(img.At(x, y).RGBA())
			sumR += uint64(rgb.R)
			sumG += uint64(rgb.G)
			sumB += uint64(rgb.B)
			count++
		}
	}

	return colour.RGB{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
	}
}

// SampleRGB returns the colour of a single pixel, with the coordinates
// clamped into the image bounds. Transparency is flattened against
// white.
func SampleRGB(img image.Image, x, y int) colour.RGB {
	bounds := img.Bounds()
	x = min(max(x, bounds.Min.X), bounds.Max.X-1)
	y = min(max(y, bounds.Min.Y), bounds.Max.Y-1)
	return flattenOnWhite(img.At(x, y).RGBA())
}

// flattenOnWhite composites 16-bit premultiplied RGBA over a white
// background and reduces to 8-bit RGB.
func flattenOnWhite(r, g, b, a uint32) colour.RGB {
	if a == 0 {
		return colour.White
	}
	flatten := func(c uint32) uint8 {
		// c is premultiplied; add the white showing through (0xffff - a).
		v := c + (0xffff - a)
		if v > 0xffff {
			v = 0xffff
		}
		return uint8(v >> 8)
	}
	return colour.RGB{R: flatten(r), G: flatten(g), B: flatten(b)}
}
