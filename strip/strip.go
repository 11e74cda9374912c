// Package strip renders and reads glyph strips.
//
// A glyph strip is a single row bitmap holding the printable ASCII characters
// from ' ' to '~' side by side in codepoint order. All glyphs have the same
// width, so the glyph of rune r starts at x = (r - First) * width. Strips are
// stored as uncompressed 8 bit BMP files, where palette index 0 is the
// background and every other index is ink.
package strip

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
)

const (
	First     = ' '
	Last      = '~'
	NumGlyphs = int(Last - First + 1)
)

// Palette indices of rendered strips.
const (
	Background uint8 = iota
	Ink
)

// Palette is the palette of rendered strips: white on black.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

// Chars returns all characters of a strip in order.
func Chars() string {
	var sb strings.Builder
	sb.Grow(NumGlyphs)
	for r := rune(First); r <= Last; r++ {
		sb.WriteRune(r)
	}
	return sb.String()
}

// OutputName returns the name of the strip file rendered from fontfile at the
// given size. The file is placed next to the font.
func OutputName(fontfile string, size int) string {
	base := strings.TrimSuffix(fontfile, filepath.Ext(fontfile))
	return fmt.Sprintf("%s_%d.BMP", base, size)
}
