package lattice

import "testing"

func TestHexColor(t *testing.T) {
	tests := map[string]struct {
		hex     string
		wantRGB [3]uint8
		wantErr bool
	}{
		"six digit":   {hex: "#ff8000", wantRGB: [3]uint8{255, 128, 0}},
		"three digit": {hex: "#f80", wantRGB: [3]uint8{255, 136, 0}},
		"black":       {hex: "#000000", wantRGB: [3]uint8{0, 0, 0}},
		"no hash":     {hex: "ff8000", wantErr: true},
		"garbage":     {hex: "#zzzzzz", wantErr: true},
		"empty":       {hex: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tc.hex)
			if tc.wantErr {
				if err == nil {
					t.Fatal("HexColor() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("HexColor() error = %v", err)
			}
			r, g, b := c.RGB()
			if got := [3]uint8{r, g, b}; got != tc.wantRGB {
				t.Errorf("RGB() = %v, want %v", got, tc.wantRGB)
			}
		})
	}
}

func TestColor_Equal(t *testing.T) {
	if !DefaultColor().Equal(DefaultColor()) {
		t.Error("default colors not equal")
	}
	if RGBColor(1, 2, 3).Equal(ANSIColor(1)) {
		t.Error("RGB and ANSI compared equal")
	}
	if !RGBColor(10, 20, 30).Equal(RGBColor(10, 20, 30)) {
		t.Error("identical RGB colors not equal")
	}
}

func TestColor_IsLight(t *testing.T) {
	tests := map[string]struct {
		color Color
		want  bool
	}{
		"white":   {RGBColor(255, 255, 255), true},
		"black":   {RGBColor(0, 0, 0), false},
		"default": {DefaultColor(), false},
		"ansi 15": {BrightWhite, true},
		"ansi 0":  {Black, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.color.IsLight(); got != tc.want {
				t.Errorf("IsLight() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestColor_Blend(t *testing.T) {
	a := RGBColor(0, 0, 0)
	b := RGBColor(255, 255, 255)

	if got := a.Blend(b, 0); !got.Equal(RGBColor(0, 0, 0)) {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := a.Blend(b, 1); !got.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("Blend(1) = %v, want white", got)
	}

	// Out-of-range t clamps instead of extrapolating.
	if got := a.Blend(b, 2); !got.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("Blend(2) = %v, want clamped white", got)
	}

	mid := a.Blend(b, 0.5)
	r, g, bl := mid.RGB()
	if r != g || g != bl || r == 0 || r == 255 {
		t.Errorf("Blend(0.5) = %v, want mid gray", mid)
	}
}

func TestGradient_At(t *testing.T) {
	g := Gradient{From: RGBColor(0, 0, 0), To: RGBColor(255, 255, 255)}
	if got := g.At(0); !got.Equal(RGBColor(0, 0, 0)) {
		t.Errorf("At(0) = %v, want From", got)
	}
	if got := g.At(1); !got.Equal(RGBColor(255, 255, 255)) {
		t.Errorf("At(1) = %v, want To", got)
	}
}
