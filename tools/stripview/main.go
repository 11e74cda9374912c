// Package stripview draws text with a glyph strip, either as ASCII art or into
// a PNG image.
package stripview

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/clktmr/fontstrip/strip"
	xdraw "golang.org/x/image/draw"
)

// ErrUsage is returned for invalid command lines.
var ErrUsage = errors.New("invalid arguments")

const usageString = `Glyph strip viewer.

Draws text with a strip created by ttf2bmp. Without -o the result is printed
as ASCII art. Text arguments are joined by spaces, "-" reads the text from
standard input.

Usage: %s [flags] <strip.bmp> <text>...

`

// Main runs the viewer with command line args and exits on failure.
func Main(args []string) {
	if err := Run(args, os.Stdin, os.Stdout); err != nil {
		log.Fatalln("ERROR:", err)
	}
}

// Run runs the viewer with command line args, args[0] being the program name.
func Run(args []string, stdin io.Reader, stdout io.Writer) error {
	name := "stripview"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stdout)
	outfile := flags.String("o", "", "write a PNG image instead of ASCII art")
	scale := flags.Int("scale", 1, "PNG pixels per strip pixel")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, name)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.NArg() < 2 {
		flags.Usage()
		return ErrUsage
	}
	if *scale < 1 {
		return fmt.Errorf("%w: invalid scale %d", ErrUsage, *scale)
	}

	text := strings.Join(flags.Args()[1:], " ")
	if text == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		text = strings.TrimSuffix(string(b), "\n")
	}

	r, err := os.Open(flags.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()
	s, err := strip.Decode(r)
	if err != nil {
		return fmt.Errorf("decode %s: %w", flags.Arg(0), err)
	}

	img := Draw(s, text)
	if *outfile == "" {
		return WriteASCII(stdout, img)
	}

	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx() * *scale, b.Dy() * *scale), strip.Palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return WritePNG(*outfile, dst)
}

// WritePNG writes m to name as PNG. A partially written file is removed.
func WritePNG(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(f, m)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Draw returns an image just large enough for text drawn with s.
func Draw(s *strip.Strip, text string) *image.Paletted {
	lines := strings.Split(text, "\n")
	cols := 0
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(strings.ReplaceAll(line, "\r", "")))
	}
	img := image.NewPaletted(image.Rect(0, 0, cols*s.GlyphWidth(), len(lines)*s.Height()), strip.Palette)
	s.DrawString(img, image.Point{}, text, color.White)
	return img
}

// WriteASCII prints img with one character per pixel, '#' for ink and '.'
// for background.
func WriteASCII(w io.Writer, img *image.Paletted) error {
	b := img.Bounds()
	buf := make([]byte, 0, b.Dy()*(b.Dx()+1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := byte('.')
			if img.ColorIndexAt(x, y) != strip.Background {
				c = '#'
			}
			buf = append(buf, c)
		}
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
