package ascii

// Ramp is an ordered glyph lookup table indexed by quantized luminance.
// Index 0 is rendered for the darkest samples and the last index for the
// lightest, so ramps read dark-to-light left to right. Ramps are rune
// slices because several presets use multi-byte glyphs.
type Ramp []rune

// Named ramp presets. "custom" shares the standard ramp until the caller
// supplies an explicit sequence via Params.CustomChars.
const (
	RampStandard = "standard"
	RampDetailed = "detailed"
	RampSimple   = "simple"
	RampBlocks   = "blocks"
	RampDots     = "dots"
	RampCustom   = "custom"
)

var rampPresets = map[string]string{
	RampStandard: " .:-=+*#%@",
	RampDetailed: " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
	RampSimple:   " .#",
	RampBlocks:   " ░▒▓█",
	RampDots:     " ··●●",
	RampCustom:   " .:-=+*#%@",
}

// rampOrder fixes the enumeration order for UIs and tool listings.
var rampOrder = []string{RampStandard, RampDetailed, RampSimple, RampBlocks, RampDots, RampCustom}

// RampNames returns the preset names in display order.
func RampNames() []string {
	names := make([]string, len(rampOrder))
	copy(names, rampOrder)
	return names
}

// RampByName looks up a preset ramp. The second return value is false for
// unknown names.
func RampByName(name string) (Ramp, bool) {
	chars, ok := rampPresets[name]
	if !ok {
		return nil, false
	}
	return Ramp(chars), true
}

// NewRamp builds a ramp from an explicit glyph sequence. A ramp needs at
// least two glyphs so the quantization denominator len-1 is never zero.
func NewRamp(chars string) (Ramp, error) {
	r := Ramp(chars)
	if len(r) < 2 {
		return nil, errInvalidParam("ramp %q has %d glyphs, need at least 2", chars, len(r))
	}
	return r, nil
}

// Reversed returns a copy of the ramp with the glyph order flipped.
func (r Ramp) Reversed() Ramp {
	out := make(Ramp, len(r))
	for i, g := range r {
		out[len(r)-1-i] = g
	}
	return out
}

// Glyph maps a luminance sample in [0,255] to a ramp glyph using direct
// linear quantization: floor(g * (len-1) / 255), reflected when invert is
// set. Integer division supplies the floor.
func (r Ramp) Glyph(g uint8, invert bool) rune {
	idx := int(g) * (len(r) - 1) / 255
	if invert {
		idx = len(r) - 1 - idx
	}
	return r[idx]
}
