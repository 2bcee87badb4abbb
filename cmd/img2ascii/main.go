package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/textshade/img2ascii/internal/ascii"
	"github.com/textshade/img2ascii/internal/imaging"
	"github.com/textshade/img2ascii/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		showVersion = flag.Bool("version", false, "print version information")
		outPath     = flag.String("out", "", "write ASCII text to this file instead of stdout")
		renderPath  = flag.String("render", "", "render the ASCII art to a PNG/JPEG image at this path")
		widthScale  = flag.Float64("width", 100, "horizontal resize percentage (0.001-1000)")
		heightScale = flag.Float64("height", 100, "vertical resize percentage (0.001-1000)")
		charset     = flag.String("charset", ascii.RampStandard, "glyph ramp preset: "+strings.Join(ascii.RampNames(), ", "))
		chars       = flag.String("chars", "", "explicit dark-to-light glyph sequence (implies -charset custom)")
		invert      = flag.Bool("invert", false, "reverse the glyph ramp")
		brightness  = flag.Float64("brightness", 0, "signed luminance offset (-100 to 100)")
		crop        = flag.String("crop", "", "crop region: preset name ("+strings.Join(ascii.CropPresetNames(), ", ")+") or start_x,start_y,end_x,end_y percentages")
		fontSize    = flag.Int("font-size", 12, "rendered font size in points (8-48)")
		background  = flag.String("bg", render.BackgroundBlack, "rendered background: black, white, transparent, or #RRGGBB")
		textColor   = flag.String("fg", render.TextWhite, "rendered text color: white, black, green, or #RRGGBB")
		preview     = flag.Bool("preview", false, "show the result in a scrollable terminal preview")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: img2ascii [options] <image>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Converts a raster image (PNG/JPEG/GIF/BMP/TIFF/WebP, local path or s3:// URI)\nto ASCII art.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("img2ascii %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	params := ascii.DefaultParams()
	params.WidthScale = *widthScale
	params.HeightScale = *heightScale
	params.Charset = *charset
	params.Invert = *invert
	params.Brightness = *brightness
	if *chars != "" {
		params.Charset = ascii.RampCustom
		params.CustomChars = *chars
	}

	if *crop != "" {
		region, err := parseCrop(*crop)
		if err != nil {
			log.Fatalf("Invalid -crop value: %v", err)
		}
		params.Crop = region
	}

	cache := imaging.NewImageCache(nil)
	art, err := ascii.Convert(cache, path, params)
	if err != nil {
		if ascii.IsNoValidImage(err) {
			log.Fatalf("Please select a valid image file: %v", err)
		}
		log.Fatalf("Conversion failed: %v", err)
	}

	if *preview {
		if err := runPreview(path, art); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	if *renderPath != "" {
		opts := render.Options{
			FontSize:   *fontSize,
			Background: *background,
			TextColor:  *textColor,
		}
		img, err := render.Render(art, opts)
		if err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		if err := render.Save(img, *renderPath); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
	}

	text := art.String()
	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(text), 0o644); err != nil {
			log.Fatalf("Failed to save ASCII art: %v", err)
		}
	} else if *renderPath == "" {
		fmt.Println(text)
	}
}

// parseCrop accepts a preset name or four comma-separated percentages
// (start_x,start_y,end_x,end_y).
func parseCrop(s string) (*ascii.CropRegion, error) {
	if region, ok := ascii.CropPreset(s); ok {
		return &region, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("want a preset name or start_x,start_y,end_x,end_y, got %q", s)
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad percentage %q: %w", part, err)
		}
		vals[i] = v
	}
	return &ascii.CropRegion{StartX: vals[0], StartY: vals[1], EndX: vals[2], EndY: vals[3]}, nil
}
