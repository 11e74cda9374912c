package strip

import (
	"errors"
	"fmt"
)

var (
	ErrNotStrip   = errors.New("strip: image width is not a multiple of 95")
	ErrZeroWidth  = errors.New("strip: glyphs have zero width")
	ErrZeroHeight = errors.New("strip: face has zero line height")
)

// NotMonospacedError is returned if a glyph's width differs from the width of
// the first glyph.
type NotMonospacedError struct {
	Rune            rune
	Width, Expected int
}

func (e *NotMonospacedError) Error() string {
	return fmt.Sprintf("font is not monospaced: %q is %dpx wide, expected %dpx", e.Rune, e.Width, e.Expected)
}

// MissingGlyphError is returned if the font has no glyph for a rune of the
// strip.
type MissingGlyphError struct {
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("font has no glyph for %q", e.Rune)
}
