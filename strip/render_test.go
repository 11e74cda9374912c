package strip_test

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/clktmr/fontstrip/fonts"
	"github.com/clktmr/fontstrip/strip"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// wide widens a single glyph of a monospaced face.
type wide struct {
	*fonts.Face
	r rune
}

func (f wide) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	adv, ok := f.Face.GlyphAdvance(r)
	if r == f.r {
		adv += fixed.I(1)
	}
	return adv, ok
}

// holey pretends a face has no glyph for a single rune.
type holey struct {
	*fonts.Face
	r rune
}

func (f holey) HasGlyph(r rune) bool { return r != f.r && f.Face.HasGlyph(r) }

func loadFace(t testing.TB, data []byte, size int) *fonts.Face {
	t.Helper()
	fonts.Init()
	face, err := fonts.Parse(data, size, &fonts.Options{Hinting: font.HintingFull})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { face.Close() })
	return face
}

func TestChars(t *testing.T) {
	chars := strip.Chars()
	if len(chars) != strip.NumGlyphs || chars[0] != ' ' || chars[len(chars)-1] != '~' {
		t.Fatalf("unexpected characters %q", chars)
	}
}

func TestOutputName(t *testing.T) {
	tests := map[string]struct {
		font string
		size int
		want string
	}{
		"plain":     {"Arial.ttf", 16, "Arial_16.BMP"},
		"directory": {"fonts/mono.ttf", 12, "fonts/mono_12.BMP"},
		"noExt":     {"mono", 8, "mono_8.BMP"},
		"dottedDir": {"my.fonts/mono", 8, "my.fonts/mono_8.BMP"},
		"multiExt":  {"mono.tar.ttf", 10, "mono.tar_10.BMP"},
		"upperExt":  {"MONO.TTF", 9, "MONO_9.BMP"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := strip.OutputName(tc.font, tc.size); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	basic := fonts.Basic()
	tests := map[string]struct {
		face  font.Face
		width int
		err   *strip.NotMonospacedError
	}{
		"basic":     {basic, 7, nil},
		"gomono":    {loadFace(t, gomono.TTF, 12), 7, nil},
		"wideA":     {wide{basic, 'A'}, 0, &strip.NotMonospacedError{Rune: 'A', Width: 8, Expected: 7}},
		"wideSpace": {wide{basic, ' '}, 0, &strip.NotMonospacedError{Rune: '!', Width: 7, Expected: 8}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			width, err := strip.Measure(tc.face)
			if tc.err == nil {
				if err != nil {
					t.Fatal(err)
				}
				if width != tc.width {
					t.Fatalf("expected width %d, got %d", tc.width, width)
				}
				return
			}
			var nme *strip.NotMonospacedError
			if !errors.As(err, &nme) {
				t.Fatalf("expected NotMonospacedError, got %v", err)
			}
			if diff := cmp.Diff(tc.err, nme); diff != "" {
				t.Fatalf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMeasureProportional(t *testing.T) {
	_, err := strip.Measure(loadFace(t, goregular.TTF, 12))
	var nme *strip.NotMonospacedError
	if !errors.As(err, &nme) {
		t.Fatalf("expected NotMonospacedError, got %v", err)
	}
}

func TestRender(t *testing.T) {
	img, err := strip.Render(fonts.Basic(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(0, 0, strip.NumGlyphs*7, 13); img.Bounds() != want {
		t.Fatalf("expected bounds %v, got %v", want, img.Bounds())
	}
	if diff := cmp.Diff(strip.Palette, img.Palette); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}

	// The space must be empty, every other glyph must have some ink.
	for i := 0; i < strip.NumGlyphs; i++ {
		ink := 0
		for y := 0; y < 13; y++ {
			for x := i * 7; x < (i+1)*7; x++ {
				switch img.ColorIndexAt(x, y) {
				case strip.Ink:
					ink++
				case strip.Background:
				default:
					t.Fatalf("unexpected color index at (%d,%d)", x, y)
				}
			}
		}
		if r := rune(strip.First + i); (ink == 0) != (r == ' ') {
			t.Errorf("glyph %q has %d ink pixels", r, ink)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{8, 12, 16, 24} {
		face := loadFace(t, gomono.TTF, size)
		width, err := strip.Measure(face)
		if err != nil {
			t.Fatal(err)
		}
		img, err := strip.Render(face, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := image.Rect(0, 0, strip.NumGlyphs*width, strip.LineHeight(face))
		if img.Bounds() != want {
			t.Errorf("size %d: expected bounds %v, got %v", size, want, img.Bounds())
		}
	}
}

func TestRenderMissingGlyph(t *testing.T) {
	face := holey{fonts.Basic(), 'x'}

	_, err := strip.Render(face, nil)
	var mge *strip.MissingGlyphError
	if !errors.As(err, &mge) || mge.Rune != 'x' {
		t.Fatalf("expected missing glyph 'x', got %v", err)
	}

	if _, err := strip.Render(face, &strip.Options{AllowMissing: true}); err != nil {
		t.Fatal(err)
	}
}

func TestRenderThreshold(t *testing.T) {
	face := loadFace(t, gomono.TTF, 16)
	count := func(threshold uint8) (ink int) {
		img, err := strip.Render(face, &strip.Options{Threshold: threshold})
		if err != nil {
			t.Fatal(err)
		}
		return bytes.Count(img.Pix, []byte{strip.Ink})
	}
	if low, high := count(1), count(255); low < high {
		t.Fatalf("threshold 1 has less ink (%d) than threshold 255 (%d)", low, high)
	}
}

func TestRenderDeterministic(t *testing.T) {
	face := loadFace(t, gomono.TTF, 12)
	a, err := strip.Render(face, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := strip.Render(face, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("rendering differs between runs")
	}
}

func BenchmarkRender(b *testing.B) {
	face := loadFace(b, gomono.TTF, 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strip.Render(face, nil)
	}
}
