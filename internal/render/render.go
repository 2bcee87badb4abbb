// Package render turns ASCII art back into a raster image.
//
// This is the export-only counterpart to the sampling pipeline: a
// deterministic transform over validated parameters with no algorithmic
// depth beyond geometry arithmetic. Canvas width is maxRowLength *
// (fontSize/2) and height is rowCount * (fontSize+2); rows are drawn at
// that fixed line pitch with a monospaced face.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/textshade/img2ascii/internal/ascii"
)

// Background and text color names accepted alongside "#RRGGBB" hex values.
const (
	BackgroundBlack       = "black"
	BackgroundWhite       = "white"
	BackgroundTransparent = "transparent"

	TextWhite = "white"
	TextBlack = "black"
	TextGreen = "green"
)

// Options controls the rendered output.
type Options struct {
	// FontSize in points, valid range [8,48].
	FontSize int `json:"font_size"`

	// Background is "black", "white", "transparent", or a "#RRGGBB" hex
	// value.
	Background string `json:"background"`

	// TextColor is "white", "black", "green", or a "#RRGGBB" hex value.
	TextColor string `json:"text_color"`
}

// DefaultOptions mirrors the original export dialog defaults.
func DefaultOptions() Options {
	return Options{
		FontSize:   12,
		Background: BackgroundBlack,
		TextColor:  TextWhite,
	}
}

// Validate checks the option ranges and color names without rendering.
func (o Options) Validate() error {
	if o.FontSize < 8 || o.FontSize > 48 {
		return fmt.Errorf("font size %d out of range [8,48]", o.FontSize)
	}
	if _, _, err := resolveBackground(o.Background); err != nil {
		return err
	}
	if _, err := resolveText(o.TextColor); err != nil {
		return err
	}
	return nil
}

// Render draws the art row by row onto a fresh canvas. The result is
// always NRGBA; a transparent background leaves the alpha channel at zero
// outside the glyphs.
func Render(art *ascii.Art, o Options) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if art == nil || len(art.Rows) == 0 {
		return nil, fmt.Errorf("nothing to render: empty art")
	}

	maxLen := 0
	for _, row := range art.Rows {
		if n := utf8.RuneCountInString(row); n > maxLen {
			maxLen = n
		}
	}

	lineHeight := o.FontSize + 2
	width := maxLen * (o.FontSize / 2)
	height := len(art.Rows) * lineHeight
	if width < 1 {
		width = 1
	}

	bg, transparent, err := resolveBackground(o.Background)
	if err != nil {
		return nil, err
	}
	fg, err := resolveText(o.TextColor)
	if err != nil {
		return nil, err
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	if !transparent {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	face := monospaceFace(o.FontSize)
	ascent := face.Metrics().Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	for i, row := range art.Rows {
		drawer.Dot = fixed.P(0, i*lineHeight+ascent)
		drawer.DrawString(row)
	}

	return canvas, nil
}

// Encode writes the image in the named format: "png" or "jpeg".
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// Save writes the image to path, picking the format from the extension.
// Paths without a recognized extension default to PNG.
func Save(img image.Image, path string) error {
	format := "png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		format = "jpeg"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func resolveBackground(name string) (color.NRGBA, bool, error) {
	switch strings.ToLower(name) {
	case BackgroundBlack, "":
		return color.NRGBA{0, 0, 0, 255}, false, nil
	case BackgroundWhite:
		return color.NRGBA{255, 255, 255, 255}, false, nil
	case BackgroundTransparent:
		return color.NRGBA{}, true, nil
	}
	c, err := parseHex(name)
	if err != nil {
		return color.NRGBA{}, false, fmt.Errorf("unknown background color %q", name)
	}
	return c, false, nil
}

func resolveText(name string) (color.NRGBA, error) {
	switch strings.ToLower(name) {
	case TextWhite, "":
		return color.NRGBA{255, 255, 255, 255}, nil
	case TextBlack:
		return color.NRGBA{0, 0, 0, 255}, nil
	case TextGreen:
		return color.NRGBA{0, 255, 0, 255}, nil
	}
	c, err := parseHex(name)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("unknown text color %q", name)
	}
	return c, nil
}

func parseHex(s string) (color.NRGBA, error) {
	// colorful.Hex scans leniently, so enforce the exact #RRGGBB shape
	// before handing it the string.
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("not a #RRGGBB value: %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
