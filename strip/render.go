package strip

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a font face that can tell missing glyphs apart from fallback glyphs.
type Face interface {
	font.Face
	HasGlyph(r rune) bool
}

// DefaultThreshold is the coverage at which a pixel becomes ink.
const DefaultThreshold = 0x80

type Options struct {
	// Threshold is the minimum coverage of an ink pixel. Zero selects
	// DefaultThreshold.
	Threshold uint8

	// AllowMissing accepts fonts that lack glyphs of the strip. The face's
	// fallback glyph is drawn in their place.
	AllowMissing bool
}

func (o *Options) threshold() uint8 {
	if o == nil || o.Threshold == 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// CheckGlyphs returns a *MissingGlyphError for the first rune of the strip
// the face has no glyph for.
func CheckGlyphs(face Face) error {
	for r := rune(First); r <= Last; r++ {
		if !face.HasGlyph(r) {
			return &MissingGlyphError{r}
		}
	}
	return nil
}

// Measure returns the width in pixels shared by all glyphs of the strip, or a
// *NotMonospacedError naming the first glyph of a different width.
func Measure(face font.Face) (width int, err error) {
	for r := rune(First); r <= Last; r++ {
		adv, _ := face.GlyphAdvance(r)
		w := adv.Ceil()
		if r == First {
			width = w
		} else if w != width {
			return 0, &NotMonospacedError{Rune: r, Width: w, Expected: width}
		}
	}
	if width <= 0 {
		return 0, ErrZeroWidth
	}
	return width, nil
}

// LineHeight returns the height of a strip rendered with face.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	h := m.Height.Ceil()
	if extent := m.Ascent.Ceil() + m.Descent.Ceil(); extent > h {
		h = extent
	}
	return h
}

// Render draws all glyphs of the strip into a single row. Each glyph is drawn
// at a whole pixel multiple of the glyph width with its baseline at the face's
// ascent. Coverage is not antialiased: it is thresholded to the two colors of
// Palette.
func Render(face Face, opts *Options) (*image.Paletted, error) {
	if opts == nil || !opts.AllowMissing {
		if err := CheckGlyphs(face); err != nil {
			return nil, err
		}
	}
	width, err := Measure(face)
	if err != nil {
		return nil, err
	}
	height := LineHeight(face)
	if height <= 0 {
		return nil, ErrZeroHeight
	}

	coverage := image.NewAlpha(image.Rect(0, 0, NumGlyphs*width, height))
	drawer := font.Drawer{Dst: coverage, Src: image.Opaque, Face: face}
	baseline := face.Metrics().Ascent.Ceil()
	for i, r := range Chars() {
		drawer.Dot = fixed.P(i*width, baseline)
		drawer.DrawString(string(r))
	}

	dst := image.NewPaletted(coverage.Bounds(), Palette)
	threshold := opts.threshold()
	for i, a := range coverage.Pix {
		if a >= threshold {
			dst.Pix[i] = Ink
		}
	}
	return dst, nil
}
