package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is a font face at a fixed pixel size.
type Face struct {
	font.Face

	// Name is the full name of the font, if the font file provides one.
	Name string

	has func(r rune) bool
}

// HasGlyph reports whether the font has its own glyph for r. Faces without a
// glyph usually draw a fallback box.
func (f *Face) HasGlyph(r rune) bool {
	if f.has == nil {
		_, ok := f.GlyphAdvance(r)
		return ok
	}
	return f.has(r)
}

// Basic returns the 7x13 X11 misc-fixed face. It needs neither Init nor a font
// file.
func Basic() *Face {
	return &Face{Face: basicfont.Face7x13, Name: "basicfont 7x13"}
}
