package strip

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"io"
	"slices"
	"strings"

	"github.com/embeddedgo/display/font/subfont"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

// Strip is a decoded glyph strip. It implements [subfont.Data].
type Strip struct {
	img   *image.Paletted
	mask  *image.Alpha // opaque where img has ink
	width int
}

// Decode reads a strip from a BMP file.
func Decode(r io.Reader) (*Strip, error) {
	m, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return New(m)
}

// New returns a strip for an image. Paletted images are used as they are.
// Other images are reduced to two colors, the darker one becomes the
// background.
func New(m image.Image) (*Strip, error) {
	dx := m.Bounds().Dx()
	if dx == 0 || dx%NumGlyphs != 0 {
		return nil, ErrNotStrip
	}
	p, ok := m.(*image.Paletted)
	if !ok {
		p = reduce(m)
	}
	return &Strip{img: p, mask: inkMask(p), width: dx / NumGlyphs}, nil
}

func inkMask(p *image.Paletted) *image.Alpha {
	b := p.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p.ColorIndexAt(x, y) != Background {
				mask.SetAlpha(x, y, color.Alpha{0xff})
			}
		}
	}
	return mask
}

func reduce(m image.Image) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, 2), m)
	if len(p) == 0 {
		p = slices.Clone(Palette)
	}
	slices.SortStableFunc(p, func(a, b color.Color) int {
		return cmp.Compare(luma(a), luma(b))
	})
	dst := image.NewPaletted(m.Bounds(), p)
	draw.Draw(dst, dst.Bounds(), m, m.Bounds().Min, draw.Src)
	return dst
}

func luma(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// GlyphWidth returns the width of each glyph in pixels.
func (s *Strip) GlyphWidth() int { return s.width }

// Height returns the line height in pixels.
func (s *Strip) Height() int { return s.img.Bounds().Dy() }

// Image returns the underlying image.
func (s *Strip) Image() *image.Paletted { return s.img }

func (s *Strip) cell(i int) image.Rectangle {
	b := s.img.Bounds()
	x := b.Min.X + i*s.width
	return image.Rect(x, b.Min.Y, x+s.width, b.Max.Y)
}

// Advance implements [subfont.Data].
func (s *Strip) Advance(i int) int {
	return s.width
}

// Glyph implements [subfont.Data]. The origin is the top left corner of the
// glyph's cell.
func (s *Strip) Glyph(i int) (img image.Image, origin image.Point, advance int) {
	r := s.cell(i)
	return s.img.SubImage(r), r.Min, s.width
}

// Subfont returns a subfont covering all runes of the strip.
func (s *Strip) Subfont() *subfont.Subfont {
	return &subfont.Subfont{
		First:  First,
		Last:   Last,
		Offset: 0,
		Data:   s,
	}
}

// Face returns a face with the strip as its only subfont. Glyph origins are
// the top left corners of the cells, so the ascent is zero.
func (s *Strip) Face() *subfont.Face {
	return &subfont.Face{
		Height:   int16(s.Height()),
		Subfonts: []*subfont.Subfont{s.Subfont()},
	}
}

// DrawString draws text with its top left corner at pt, coloring the ink
// pixels of each glyph with c. A '\n' starts a new line below, '\r' is
// ignored. Runes outside the strip are drawn as '?'. It returns the width of
// the last line.
func (s *Strip) DrawString(dst draw.Image, pt image.Point, text string, c color.Color) int {
	face := s.Face()
	src := image.NewUniform(c)
	enc := ASCII.NewEncoder()
	x := pt.X
	for _, line := range strings.Split(text, "\n") {
		glyphs, _ := enc.Bytes([]byte(line))
		x = pt.X
		for _, i := range glyphs {
			img, origin, advance := face.Glyph(First + rune(i))
			if img == nil {
				continue
			}
			r := img.Bounds()
			draw.DrawMask(dst, r.Sub(origin).Add(image.Pt(x, pt.Y)), src, image.Point{}, s.mask, r.Min, draw.Over)
			x += advance
		}
		pt.Y += int(face.Height)
	}
	return x - pt.X
}
