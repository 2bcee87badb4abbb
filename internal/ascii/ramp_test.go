package ascii

import "testing"

func TestRampPresets(t *testing.T) {
	tests := []struct {
		name   string
		length int
		first  rune
		last   rune
	}{
		{RampStandard, 10, ' ', '@'},
		{RampDetailed, 70, ' ', '$'},
		{RampSimple, 3, ' ', '#'},
		{RampBlocks, 5, ' ', '█'},
		{RampDots, 5, ' ', '●'},
		{RampCustom, 10, ' ', '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := RampByName(tt.name)
			if !ok {
				t.Fatalf("preset %q not found", tt.name)
			}
			if len(r) != tt.length {
				t.Errorf("length: got %d, want %d", len(r), tt.length)
			}
			if r[0] != tt.first {
				t.Errorf("first glyph: got %q, want %q", r[0], tt.first)
			}
			if r[len(r)-1] != tt.last {
				t.Errorf("last glyph: got %q, want %q", r[len(r)-1], tt.last)
			}
		})
	}
}

func TestRampByName_Unknown(t *testing.T) {
	if _, ok := RampByName("nope"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestRampNames_Order(t *testing.T) {
	names := RampNames()
	want := []string{"standard", "detailed", "simple", "blocks", "dots", "custom"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d]: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNewRamp(t *testing.T) {
	r, err := NewRamp("01")
	if err != nil {
		t.Fatalf("two glyphs should be accepted: %v", err)
	}
	if len(r) != 2 {
		t.Errorf("length: got %d, want 2", len(r))
	}

	for _, chars := range []string{"", "x"} {
		if _, err := NewRamp(chars); err == nil {
			t.Errorf("NewRamp(%q) should fail", chars)
		}
		if _, err := NewRamp(chars); !IsInvalidParameter(err) {
			t.Errorf("NewRamp(%q): want KindInvalidParameter, got %v", chars, err)
		}
	}
}

func TestRamp_Reversed(t *testing.T) {
	r := Ramp(" .#")
	rev := r.Reversed()
	if string(rev) != "#. " {
		t.Errorf("Reversed: got %q, want %q", string(rev), "#. ")
	}
	// Original must be untouched.
	if string(r) != " .#" {
		t.Errorf("receiver mutated: %q", string(r))
	}
}

func TestRamp_GlyphQuantization(t *testing.T) {
	r, _ := RampByName(RampStandard)

	tests := []struct {
		g      uint8
		invert bool
		want   rune
	}{
		{0, false, ' '},    // darkest pixel, first glyph
		{255, false, '@'},  // lightest pixel, last glyph
		{128, false, '='},  // floor(128*9/255) = 4
		{128, true, '+'},   // reflected: 9-4 = 5
		{0, true, '@'},     // reflected extremes
		{255, true, ' '},
		{28, false, ' '},   // floor(28*9/255) = 0
		{29, false, '.'},   // floor(29*9/255) = 1
	}

	for _, tt := range tests {
		if got := r.Glyph(tt.g, tt.invert); got != tt.want {
			t.Errorf("Glyph(%d, %v): got %q, want %q", tt.g, tt.invert, got, tt.want)
		}
	}
}

func TestRamp_GlyphMonotonic(t *testing.T) {
	for _, name := range RampNames() {
		r, _ := RampByName(name)

		// Some ramps repeat glyphs ("dots"), so compare quantized indexes
		// directly rather than glyph positions.
		prev := 0
		for g := 0; g <= 255; g++ {
			idx := g * (len(r) - 1) / 255
			if idx < prev {
				t.Fatalf("%s: index decreased at g=%d", name, g)
			}
			prev = idx
			if got := r.Glyph(uint8(g), false); got != r[idx] {
				t.Fatalf("%s: Glyph(%d) = %q, want %q", name, g, got, r[idx])
			}
		}
	}
}
