package ascii

import (
	"errors"
	"image"
	"io/fs"
	"strings"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/textshade/img2ascii/internal/imaging"
)

// Art is the output of a conversion: one string per sampled row, every row
// the same glyph count. An Art is produced fresh on every call and never
// mutated afterwards.
type Art struct {
	// Rows holds the glyph rows top to bottom. len(Rows) == Height and
	// each row contains exactly Width glyphs (runes, not bytes).
	Rows []string `json:"rows"`

	// Width is the sampled width in glyphs.
	Width int `json:"width"`

	// Height is the sampled height in rows.
	Height int `json:"height"`
}

// String joins the rows with single newlines, no trailing separator.
func (a *Art) String() string {
	return strings.Join(a.Rows, "\n")
}

// Convert runs the full pipeline against a source path: decode (through the
// cache), grayscale, optional crop, optional brightness, Lanczos resize,
// quantization, and row assembly.
//
// A missing or unreadable path returns a KindNoValidImage error; a codec
// failure returns KindDecode; an out-of-range parameter returns
// KindInvalidParameter before any pixel work happens.
func Convert(cache *imaging.ImageCache, path string, p Params) (*Art, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	img, err := cache.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errNoValidImage(path, err)
		}
		return nil, errDecode(path, err)
	}

	return ConvertImage(img, p)
}

// ConvertImage runs the pipeline on an already decoded image. The caller
// keeps ownership of img; it is read but never written.
func ConvertImage(img image.Image, p Params) (*Art, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ramp, err := p.ramp()
	if err != nil {
		return nil, err
	}

	gray := imaging.Grayscale(img)

	if p.Crop != nil {
		b := gray.Bounds()
		gray = gray.SubImage(p.Crop.bounds(b.Dx(), b.Dy())).(*image.Gray)
	}

	if p.Brightness != 0 {
		gray = imaging.AdjustBrightness(gray, p.Brightness)
	}

	b := gray.Bounds()
	width, height := p.targetSize(b.Dx(), b.Dy())
	resized := imaging.ResizeLanczos(gray, width, height)

	// The resize output is NRGBA with equal channels for gray input; the
	// red channel is the luminance sample.
	rows := make([]string, height)
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			var sb strings.Builder
			sb.Grow(width)
			for x := 0; x < width; x++ {
				g := resized.Pix[y*resized.Stride+x*4]
				sb.WriteRune(ramp.Glyph(g, p.Invert))
			}
			rows[y] = sb.String()
		}
	})

	return &Art{Rows: rows, Width: width, Height: height}, nil
}
