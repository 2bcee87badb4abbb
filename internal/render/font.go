package render

import (
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Monospace font files tried in order, matching the original tool's
// preference list, plus the directories they commonly live in per platform.
var fontCandidates = []string{
	"consola.ttf",
	"cour.ttf",
	"monaco.ttf",
	"DejaVuSansMono.ttf",
	"LiberationMono-Regular.ttf",
	"UbuntuMono-R.ttf",
}

var fontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts/truetype/ubuntu",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts/Supplemental",
	`C:\Windows\Fonts`,
}

// monospaceFace resolves a monospaced font face at the given point size.
// It walks the candidate list across the known font directories and falls
// back to the built-in bitmap face when no TrueType candidate parses. The
// fallback ignores the requested size; it is a last resort, not a scaling
// path.
func monospaceFace(size int) font.Face {
	for _, name := range fontCandidates {
		for _, dir := range fontDirs {
			face := tryFace(filepath.Join(dir, name), size)
			if face != nil {
				return face
			}
		}
		// Bare name resolves against the working directory, mirroring
		// how the original tool probed for fonts.
		if face := tryFace(name, size); face != nil {
			return face
		}
	}
	return basicfont.Face7x13
}

func tryFace(path string, size int) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}
