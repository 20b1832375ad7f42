package udfc

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/udfc/text"
)

// With multiplier 2 the square ink of fakeSource lands on pixels
// x 2..3, y 2..5 of a 7×11 raster.
func alignedConfig() RenderConfig {
	c := plainConfig()
	c.Multiplier = 2
	return c
}

func inInk(x, y int) bool { return x >= 2 && x <= 3 && y >= 2 && y <= 5 }

func TestRenderSolid(t *testing.T) {
	out, err := Render(fakeSource{}, 'A', alignedConfig())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.Width() != 7 || out.Height() != 11 {
		t.Fatalf("size = %dx%d, want 7x11", out.Width(), out.Height())
	}
	for y := range out.Height() {
		for x := range out.Width() {
			got := out.NRGBAAt(x, y)
			want := color.NRGBA{}
			if inInk(x, y) {
				want = Black
			}
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		name  string
		cfg   func(*RenderConfig)
		wantW int
		wantH int
	}{
		{"multiplier 1", func(c *RenderConfig) {}, 6, 10},
		{"outline 1", func(c *RenderConfig) { c.OutlineWidth = 1 }, 7, 11},
		{"outline 3", func(c *RenderConfig) { c.OutlineWidth = 3 }, 11, 15},
		{"shadow", func(c *RenderConfig) { c.Shadow = true }, 7, 11},
		{"outline 2 and shadow", func(c *RenderConfig) { c.OutlineWidth = 2; c.Shadow = true }, 13, 17},
		{"fractional multiplier", func(c *RenderConfig) { c.Multiplier = 1.4 }, 6, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := plainConfig()
			tt.cfg(&cfg)
			out, err := Render(fakeSource{}, 'A', cfg)
			if err != nil {
				t.Fatal(err)
			}
			if out.Width() != tt.wantW || out.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", out.Width(), out.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderEmptyCharacter(t *testing.T) {
	src := fakeSource{shapes: map[rune]text.Shape{0: {Advance: 0, Ascent: 6, Descent: 2}}}
	for _, pal := range []*Palette{nil, RGBCube6()} {
		cfg := plainConfig()
		cfg.OutlineWidth = 2
		cfg.Shadow = true
		cfg.Palette = pal

		out, err := Render(src, 0, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if out.Width() != 1 || out.Height() != 1 {
			t.Fatalf("size = %dx%d, want 1x1", out.Width(), out.Height())
		}
		if got := out.NRGBAAt(0, 0); got.A != 0 {
			t.Errorf("pixel = %v, want transparent", got)
		}
	}
}

func TestRenderSourceError(t *testing.T) {
	_, err := Render(fakeSource{strict: true}, 'x', plainConfig())
	if !errors.Is(err, errNoGlyph) {
		t.Errorf("error = %v, want wrapped source error", err)
	}
}

func TestRenderGradient(t *testing.T) {
	cfg := alignedConfig()
	cfg.Gradient = true
	cfg.Foreground = Black
	cfg.Background = White

	out, err := Render(fakeSource{}, 'A', cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Ink spans rows 2..6 in raster space.
	tests := []struct {
		y    int
		want uint8
	}{
		{2, 32},  // t = 0.125
		{3, 96},  // t = 0.375
		{5, 223}, // t = 0.875
	}
	for _, tt := range tests {
		got := out.NRGBAAt(2, tt.y)
		if got.R != tt.want || got.G != tt.want || got.B != tt.want || got.A != 255 {
			t.Errorf("row %d = %v, want gray %d", tt.y, got, tt.want)
		}
	}
}

func TestRenderAntialiasPremultiply(t *testing.T) {
	cfg := plainConfig() // multiplier 1 puts the ink edges on half pixels
	cfg.Antialias = true
	cfg.Foreground = color.NRGBA{200, 100, 50, 255}

	out, err := Render(fakeSource{}, 'A', cfg)
	if err != nil {
		t.Fatal(err)
	}
	var partial int
	for y := range out.Height() {
		for x := range out.Width() {
			c := out.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			a := uint32(c.A)
			want := color.NRGBA{
				R: uint8((200*a + 127) / 255),
				G: uint8((100*a + 127) / 255),
				B: uint8((50*a + 127) / 255),
				A: c.A,
			}
			if c != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, c, want)
			}
			if c.A < 255 {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("no partially covered pixels; antialiasing had no effect")
	}
}

func TestRenderNoAntialiasIsBinary(t *testing.T) {
	cfg := plainConfig()
	out, err := Render(goFace(t, 20), 'S', cfg)
	if err != nil {
		t.Fatal(err)
	}
	for y := range out.Height() {
		for x := range out.Width() {
			if a := out.NRGBAAt(x, y).A; a != 0 && a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d without antialiasing", x, y, a)
			}
		}
	}
}

func TestRenderOutline(t *testing.T) {
	cfg := plainConfig()
	cfg.Foreground = White
	cfg.OutlineWidth = 1
	cfg.OutlineColor = color.NRGBA{0, 0, 255, 40} // alpha is forced opaque

	out, err := Render(fakeSource{}, 'A', cfg)
	if err != nil {
		t.Fatal(err)
	}
	for y := range out.Height() {
		for x := range out.Width() {
			got := out.NRGBAAt(x, y)
			var want color.NRGBA
			switch {
			case inInk(x, y):
				want = White
			case x >= 1 && x <= 4 && y >= 1 && y <= 6:
				want = Blue
			}
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderShadow(t *testing.T) {
	cfg := alignedConfig()
	cfg.Multiplier = 1
	cfg.Shadow = true // padding 2, same geometry as alignedConfig
	cfg.ShadowAngle = 0
	cfg.Foreground = White
	cfg.ShadowColor = color.NRGBA{100, 100, 100, 255}

	out, err := Render(fakeSource{}, 'A', cfg)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 7 || out.Height() != 11 {
		t.Fatalf("size = %dx%d", out.Width(), out.Height())
	}

	// Ink is never overdrawn.
	for y := 2; y <= 5; y++ {
		for x := 2; x <= 3; x++ {
			if got := out.NRGBAAt(x, y); got != White {
				t.Errorf("ink pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		// Blurred alpha at (3,3) is 0.720991, sqrt ~0.8491.
		{4, 3, color.NRGBA{85, 85, 85, 255}},
		// Blurred alpha at (4,3) is 0.279011, sqrt ~0.5282.
		{5, 3, color.NRGBA{53, 53, 53, 255}},
		// Shadow goes right only.
		{1, 3, color.NRGBA{}},
		{6, 3, color.NRGBA{}},
	}
	for _, tt := range tests {
		if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderShadowNeverOverwrites(t *testing.T) {
	face := goFace(t, 24)
	for _, angle := range []int{0, 45, 90, 135, 180, 270, 315} {
		base := plainConfig()
		base.OutlineWidth = 1
		base.Shadow = true
		base.ShadowAngle = angle
		base.ShadowColor = Red

		withShadow, err := Render(face, 'G', base)
		if err != nil {
			t.Fatal(err)
		}
		base.Shadow = false
		// Same padding, shadow stage skipped.
		base.Multiplier = 2
		without, err := Render(face, 'G', base)
		if err != nil {
			t.Fatal(err)
		}
		if without.Bounds() != withShadow.Bounds() {
			t.Fatalf("angle %d: bounds differ %v vs %v", angle, without.Bounds(), withShadow.Bounds())
		}
		var painted int
		for y := range without.Height() {
			for x := range without.Width() {
				before := without.NRGBAAt(x, y)
				after := withShadow.NRGBAAt(x, y)
				if before.A > 0 && after != before {
					t.Fatalf("angle %d: pixel (%d,%d) overwritten %v -> %v", angle, x, y, before, after)
				}
				if before.A == 0 && after.A > 0 {
					painted++
				}
			}
		}
		if painted == 0 {
			t.Errorf("angle %d: no shadow pixels", angle)
		}
	}
}

func TestRenderOutlineInvariant(t *testing.T) {
	face := goFace(t, 18)
	cfg := plainConfig()
	cfg.Antialias = true
	cfg.Foreground = Yellow
	cfg.OutlineColor = Blue

	for _, width := range []int{1, 2} {
		plain := cfg
		plain.Multiplier = 2 * float64(width) // same padding as the outlined render
		before, err := Render(face, 'a', plain)
		if err != nil {
			t.Fatal(err)
		}
		outlined := cfg
		outlined.OutlineWidth = width
		after, err := Render(face, 'a', outlined)
		if err != nil {
			t.Fatal(err)
		}
		for y := range before.Height() {
			for x := range before.Width() {
				b := before.NRGBAAt(x, y)
				a := after.NRGBAAt(x, y)
				if b.A > 0 {
					if a != b {
						t.Fatalf("width %d: glyph pixel (%d,%d) changed", width, x, y)
					}
					continue
				}
				if a.A != 0 && a != Blue {
					t.Fatalf("width %d: pixel (%d,%d) = %v, want outline color or empty", width, x, y, a)
				}
			}
		}
	}
}

func TestRenderQuantized(t *testing.T) {
	cfg := alignedConfig()
	cfg.Palette = RGBCube6()

	out, err := Render(fakeSource{}, 'A', cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Indexed() {
		t.Fatal("raster not quantized")
	}
	for y := range out.Height() {
		for x := range out.Width() {
			want := uint8(0)
			if inInk(x, y) {
				// Black is not an opaque entry; the nearest one is (0,0,85).
				want = 1
			}
			if got := out.ColorIndexAt(x, y); got != want {
				t.Errorf("index at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestRenderQuantizedMembership(t *testing.T) {
	face := goFace(t, 16)
	pal := RGBCube8()
	cfg := DefaultRenderConfig()
	cfg.Antialias = true
	cfg.Gradient = true
	cfg.OutlineWidth = 1
	cfg.Shadow = true
	cfg.Palette = pal

	members := make(map[color.NRGBA]bool, pal.Len())
	for _, c := range pal.Colors() {
		members[c] = true
	}
	for _, r := range "Wg@" {
		out, err := Render(face, r, cfg)
		if err != nil {
			t.Fatal(err)
		}
		for y := range out.Height() {
			for x := range out.Width() {
				if c := out.NRGBAAt(x, y); !members[c] {
					t.Fatalf("%q: pixel (%d,%d) = %v not in palette", r, x, y, c)
				}
			}
		}
	}
}

func TestRendererValidates(t *testing.T) {
	cfg := plainConfig()
	cfg.Multiplier = -1
	if _, err := NewRenderer(fakeSource{}, cfg); err == nil {
		t.Fatal("NewRenderer accepted invalid config")
	}

	r, err := NewRenderer(fakeSource{}, alignedConfig())
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render('Z')
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 7 {
		t.Errorf("width = %d, want 7", out.Width())
	}
	if r.Config().Multiplier != 2 {
		t.Errorf("Config() = %+v", r.Config())
	}
}
