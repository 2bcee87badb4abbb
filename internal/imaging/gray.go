package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Grayscale converts an image to a single luminance channel using the
// ITU-R BT.601 weighting: round(0.299*R + 0.587*G + 0.114*B) on 8-bit
// channels. The result is a fresh *image.Gray with zero-origin bounds; the
// input is never modified.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gray := image.NewGray(image.Rect(0, 0, width, height))

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
				r8 := float64(r >> 8)
				g8 := float64(g >> 8)
				b8 := float64(b >> 8)
				gray.Pix[y*gray.Stride+x] = uint8(math.Round(0.299*r8 + 0.587*g8 + 0.114*b8))
			}
		}
	})

	return gray
}

// AdjustBrightness adds a signed offset to every luminance sample and
// clamps the result to [0,255]. The offset is fractional-capable; the
// clamped value narrows back to uint8 by truncation. Returns a fresh image
// with zero-origin bounds.
func AdjustBrightness(src *image.Gray, offset float64) *image.Gray {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := image.NewGray(image.Rect(0, 0, width, height))

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			srcRow := y * src.Stride
			for x := 0; x < width; x++ {
				v := float64(src.Pix[srcRow+x]) + offset
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				out.Pix[y*out.Stride+x] = uint8(v)
			}
		}
	})

	return out
}

// ResizeLanczos resamples an image to the exact target dimensions with a
// Lanczos filter. Nearest-neighbor is not acceptable here: text grids are
// far coarser than source pixels, so downsampling ratios are large and
// aliasing would visibly degrade the output.
func ResizeLanczos(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
