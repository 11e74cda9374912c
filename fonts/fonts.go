// Package fonts loads TrueType and OpenType fonts at a fixed pixel size.
//
// Two rasterizers are available: "opentype" uses golang.org/x/image/font/opentype
// and "freetype" uses the Freetype-Go port. Init must be called once before
// any font is loaded.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

var (
	ErrNotInitialized = errors.New("fonts: Init was not called")
	ErrUnknownEngine  = errors.New("fonts: unknown engine")
	ErrInvalidSize    = errors.New("fonts: size must be positive")
)

// DefaultEngine is used if Options.Engine is empty.
const DefaultEngine = "opentype"

// Options configure how a font is rasterized.
type Options struct {
	Engine string // DefaultEngine if empty

	// DPI is the resolution the size is scaled with. At the default of 72,
	// sizes are in pixels.
	DPI     float64
	Hinting font.Hinting
}

func (o *Options) engine() string {
	if o == nil || o.Engine == "" {
		return DefaultEngine
	}
	return o.Engine
}

func (o *Options) dpi() float64 {
	if o == nil || o.DPI == 0 {
		return 72
	}
	return o.DPI
}

func (o *Options) hinting() font.Hinting {
	if o == nil {
		return font.HintingNone
	}
	return o.Hinting
}

type engine func(data []byte, size float64, opts *Options) (*Face, error)

var (
	initOnce sync.Once
	engines  map[string]engine
)

// Init registers the available rasterizers. It is safe to call Init more than
// once, only the first call has an effect.
func Init() {
	initOnce.Do(func() {
		engines = map[string]engine{
			"opentype": newOpenTypeFace,
			"freetype": newFreetypeFace,
		}
	})
}

// Engines returns the names of the registered rasterizers in sorted order.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load reads the font file at path and returns a face of the given pixel size.
func Load(path string, size int, opts *Options) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	face, err := Parse(data, size, opts)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return face, nil
}

// Parse returns a face of the given pixel size for the font data.
func Parse(data []byte, size int, opts *Options) (*Face, error) {
	if engines == nil {
		return nil, ErrNotInitialized
	}
	newFace, ok := engines[opts.engine()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, opts.engine())
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return newFace(data, float64(size), opts)
}

// ParseHinting converts a hinting name as used on the command line.
func ParseHinting(s string) (font.Hinting, error) {
	switch s {
	case "none":
		return font.HintingNone, nil
	case "vertical":
		return font.HintingVertical, nil
	case "full":
		return font.HintingFull, nil
	}
	return font.HintingNone, fmt.Errorf("unknown hinting %q", s)
}

func newOpenTypeFace(data []byte, size float64, opts *Options) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     opts.dpi(),
		Hinting: opts.hinting(),
	})
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	name, _ := f.Name(&buf, sfnt.NameIDFull)
	return &Face{
		Face: face,
		Name: name,
		has: func(r rune) bool {
			x, err := f.GlyphIndex(&buf, r)
			return err == nil && x != 0
		},
	}, nil
}

func newFreetypeFace(data []byte, size float64, opts *Options) (*Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     opts.dpi(),
		Hinting: opts.hinting(),
	})
	return &Face{
		Face: face,
		Name: f.Name(truetype.NameIDFontFullName),
		has:  func(r rune) bool { return f.Index(r) != 0 },
	}, nil
}
