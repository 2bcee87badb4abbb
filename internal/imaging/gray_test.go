package imaging

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGrayscale_Weights(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want uint8
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 255},
		{"mid gray", color.RGBA{128, 128, 128, 255}, 128},
		{"pure red", color.RGBA{255, 0, 0, 255}, 76},    // round(0.299*255)
		{"pure green", color.RGBA{0, 255, 0, 255}, 150}, // round(0.587*255)
		{"pure blue", color.RGBA{0, 0, 255, 255}, 29},   // round(0.114*255)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := Grayscale(solidImage(4, 4, tt.in))
			if got := gray.GrayAt(0, 0).Y; got != tt.want {
				t.Errorf("luminance: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGrayscale_ZeroOriginBounds(t *testing.T) {
	// Sub-images carry non-zero origins; the grayscale copy must not.
	src := solidImage(20, 20, color.RGBA{90, 90, 90, 255})
	sub := src.SubImage(image.Rect(5, 5, 15, 15))

	gray := Grayscale(sub)
	if gray.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("bounds: got %v, want (0,0)-(10,10)", gray.Bounds())
	}
	if got := gray.GrayAt(0, 0).Y; got != 90 {
		t.Errorf("luminance: got %d, want 90", got)
	}
}

func TestGrayscale_DoesNotModifyInput(t *testing.T) {
	src := solidImage(4, 4, color.RGBA{10, 200, 30, 255})
	Grayscale(src)
	if got := src.RGBAAt(2, 2); got != (color.RGBA{10, 200, 30, 255}) {
		t.Errorf("input mutated: %+v", got)
	}
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name   string
		in     uint8
		offset float64
		want   uint8
	}{
		{"no-op", 128, 0, 128},
		{"add", 128, 100, 228},
		{"subtract", 128, -100, 28},
		{"clamp high", 200, 100, 255},
		{"clamp low", 50, -100, 0},
		{"fractional truncates", 100, 0.5, 100},
		{"negative fractional truncates", 100, -0.5, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewGray(image.Rect(0, 0, 3, 3))
			for i := range src.Pix {
				src.Pix[i] = tt.in
			}

			out := AdjustBrightness(src, tt.offset)
			if got := out.GrayAt(1, 1).Y; got != tt.want {
				t.Errorf("AdjustBrightness(%d, %v): got %d, want %d", tt.in, tt.offset, got, tt.want)
			}
			// Source stays untouched.
			if src.GrayAt(1, 1).Y != tt.in {
				t.Error("input mutated")
			}
		})
	}
}

func TestAdjustBrightness_SubImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 100
	}
	// Mark a pixel inside the sub-region to confirm the right rows are read.
	src.SetGray(4, 4, color.Gray{Y: 200})

	sub := src.SubImage(image.Rect(2, 2, 8, 8)).(*image.Gray)
	out := AdjustBrightness(sub, 10)

	if out.Bounds() != image.Rect(0, 0, 6, 6) {
		t.Fatalf("bounds: got %v, want (0,0)-(6,6)", out.Bounds())
	}
	if got := out.GrayAt(0, 0).Y; got != 110 {
		t.Errorf("corner: got %d, want 110", got)
	}
	if got := out.GrayAt(2, 2).Y; got != 210 {
		t.Errorf("marked pixel: got %d, want 210", got)
	}
}

func TestResizeLanczos(t *testing.T) {
	src := solidImage(40, 20, color.RGBA{128, 128, 128, 255})

	out := ResizeLanczos(src, 10, 5)
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 5 {
		t.Fatalf("dimensions: got %dx%d, want 10x5", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// A uniform image stays uniform under a normalized kernel.
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if got := out.NRGBAAt(x, y).R; got != 128 {
				t.Fatalf("pixel (%d,%d): got %d, want 128", x, y, got)
			}
		}
	}
}

func TestResizeLanczos_Upscale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	out := ResizeLanczos(src, 7, 9)
	if out.Bounds().Dx() != 7 || out.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 7x9", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
