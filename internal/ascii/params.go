package ascii

import (
	"image"
	"math"
)

// CropRegion selects a sub-rectangle of the source image using percentage
// coordinates in [0,100]. Percentages are always relative to the original
// decoded image, so the same region means the same pixels regardless of the
// resize scales in effect.
type CropRegion struct {
	StartX float64 `json:"start_x"`
	StartY float64 `json:"start_y"`
	EndX   float64 `json:"end_x"`
	EndY   float64 `json:"end_y"`
}

// Named crop presets matching the original preview controls.
var cropPresets = map[string]CropRegion{
	"center": {StartX: 25, StartY: 25, EndX: 75, EndY: 75},
	"top":    {StartX: 0, StartY: 0, EndX: 100, EndY: 50},
	"bottom": {StartX: 0, StartY: 50, EndX: 100, EndY: 100},
	"left":   {StartX: 0, StartY: 0, EndX: 50, EndY: 100},
	"right":  {StartX: 50, StartY: 0, EndX: 100, EndY: 100},
	"full":   {StartX: 0, StartY: 0, EndX: 100, EndY: 100},
}

// CropPreset resolves a named crop region. The second return value is false
// for unknown names.
func CropPreset(name string) (CropRegion, bool) {
	r, ok := cropPresets[name]
	return r, ok
}

// CropPresetNames returns the available preset names.
func CropPresetNames() []string {
	return []string{"center", "top", "bottom", "left", "right", "full"}
}

func (c CropRegion) validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"start_x", c.StartX},
		{"start_y", c.StartY},
		{"end_x", c.EndX},
		{"end_y", c.EndY},
	} {
		if v.value < 0 || v.value > 100 {
			return errInvalidParam("crop %s %.3f out of range [0,100]", v.name, v.value)
		}
	}
	if c.StartX >= c.EndX || c.StartY >= c.EndY {
		return errInvalidParam("crop end coordinates must be greater than start coordinates")
	}
	return nil
}

// bounds converts the percentage region to pixel coordinates for a source of
// the given dimensions. Starts floor to [0,dim-1]; ends clamp to
// [start+1,dim], so the region is never empty.
func (c CropRegion) bounds(width, height int) image.Rectangle {
	startX := int(float64(width) * c.StartX / 100)
	startY := int(float64(height) * c.StartY / 100)
	endX := int(float64(width) * c.EndX / 100)
	endY := int(float64(height) * c.EndY / 100)

	startX = clampInt(startX, 0, width-1)
	startY = clampInt(startY, 0, height-1)
	endX = clampInt(endX, startX+1, width)
	endY = clampInt(endY, startY+1, height)

	return image.Rect(startX, startY, endX, endY)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Params is an immutable snapshot of conversion parameters. Construct one
// per call; a shared mutable parameter object must not be handed to
// concurrent conversions.
type Params struct {
	// WidthScale and HeightScale are resize percentages in [0.001,1000].
	// The two axes are independent; aspect locking is a caller convenience.
	WidthScale  float64 `json:"width_scale"`
	HeightScale float64 `json:"height_scale"`

	// Charset names a ramp preset. Empty means "standard".
	Charset string `json:"charset"`

	// CustomChars overrides the "custom" preset with an explicit glyph
	// sequence. Ignored for other presets.
	CustomChars string `json:"custom_chars,omitempty"`

	// Invert reflects each quantized index through the ramp.
	Invert bool `json:"invert"`

	// Brightness is a signed luminance offset in [-100,100] applied after
	// crop and before resize.
	Brightness float64 `json:"brightness"`

	// Crop is applied before everything but grayscale. Nil disables
	// cropping.
	Crop *CropRegion `json:"crop,omitempty"`
}

// DefaultParams returns the parameter snapshot the original tool starts
// with: full size, standard ramp, no adjustments.
func DefaultParams() Params {
	return Params{
		WidthScale:  100,
		HeightScale: 100,
		Charset:     RampStandard,
	}
}

// Validate checks every parameter independently and rejects the whole
// snapshot on the first violation. No partial application: a conversion
// either sees a fully valid snapshot or none of it.
func (p Params) Validate() error {
	if p.WidthScale < 0.001 || p.WidthScale > 1000 {
		return errInvalidParam("width scale %.3f out of range [0.001,1000]", p.WidthScale)
	}
	if p.HeightScale < 0.001 || p.HeightScale > 1000 {
		return errInvalidParam("height scale %.3f out of range [0.001,1000]", p.HeightScale)
	}
	if p.Brightness < -100 || p.Brightness > 100 {
		return errInvalidParam("brightness %.1f out of range [-100,100]", p.Brightness)
	}
	if _, err := p.ramp(); err != nil {
		return err
	}
	if p.Crop != nil {
		if err := p.Crop.validate(); err != nil {
			return err
		}
	}
	return nil
}

// ramp resolves the effective glyph ramp for this snapshot.
func (p Params) ramp() (Ramp, error) {
	name := p.Charset
	if name == "" {
		name = RampStandard
	}
	if name == RampCustom && p.CustomChars != "" {
		return NewRamp(p.CustomChars)
	}
	r, ok := RampByName(name)
	if !ok {
		return nil, errInvalidParam("unknown charset %q", name)
	}
	return r, nil
}

// targetSize computes the post-crop resize target: round(dim * scale/100)
// per axis, floored to a minimum of 1 so the output is never empty.
func (p Params) targetSize(width, height int) (int, int) {
	w := int(math.Round(float64(width) * p.WidthScale / 100))
	h := int(math.Round(float64(height) * p.HeightScale / 100))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
