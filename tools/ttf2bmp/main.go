// Package ttf2bmp converts a monospaced TrueType font into a glyph strip.
package ttf2bmp

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/clktmr/fontstrip/fonts"
	"github.com/clktmr/fontstrip/strip"
)

// ErrUsage is returned for invalid command lines.
var ErrUsage = errors.New("invalid arguments")

const usageString = `TrueType Font to glyph strip converter.

Renders the printable ASCII characters of a monospaced font into a single row
and saves it as <ttffile without extension>_<size>.BMP.

Usage: %s [flags] <ttffile> <size>

Flags must precede the arguments.

`

type config struct {
	engine       string
	dpi          float64
	hinting      string
	threshold    uint
	allowMissing bool
}

func newFlagSet(name string, output io.Writer, cfg *config) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.engine, "engine", fonts.DefaultEngine, "rasterizer: "+strings.Join(fonts.Engines(), " | "))
	flags.Float64Var(&cfg.dpi, "dpi", 72, "screen resolution in Dots Per Inch")
	flags.StringVar(&cfg.hinting, "hinting", "full", "none | vertical | full")
	flags.UintVar(&cfg.threshold, "threshold", strip.DefaultThreshold, "glyph coverage (1-255) at which a pixel is set")
	flags.BoolVar(&cfg.allowMissing, "allow-missing", false, "draw fallback glyphs for characters missing in the font")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, name)
		flags.PrintDefaults()
	}
	return flags
}

// Main runs the converter with command line args and exits on failure.
func Main(args []string) {
	if err := Run(args, os.Stdout); err != nil {
		log.Fatalln("ERROR:", err)
	}
}

// Run runs the converter with command line args, args[0] being the program
// name. Progress and usage are written to stdout.
func Run(args []string, stdout io.Writer) error {
	fonts.Init()

	name := "ttf2bmp"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}
	var cfg config
	flags := newFlagSet(name, stdout, &cfg)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return ErrUsage
	}
	fontfile := flags.Arg(0)
	size, err := strconv.Atoi(flags.Arg(1))
	if err != nil || size <= 0 {
		flags.Usage()
		return fmt.Errorf("%w: invalid size %q", ErrUsage, flags.Arg(1))
	}

	hinting, err := fonts.ParseHinting(cfg.hinting)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if cfg.threshold < 1 || cfg.threshold > 255 {
		return fmt.Errorf("%w: threshold %d out of range", ErrUsage, cfg.threshold)
	}

	fmt.Fprintf(stdout, "Loading font %s in height %d...\n", fontfile, size)
	face, err := fonts.Load(fontfile, size, &fonts.Options{
		Engine:  cfg.engine,
		DPI:     cfg.dpi,
		Hinting: hinting,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	fmt.Fprintf(stdout, "Rendering %d characters '%s'\n", strip.NumGlyphs, strip.Chars())
	img, err := strip.Render(face, &strip.Options{
		Threshold:    uint8(cfg.threshold),
		AllowMissing: cfg.allowMissing,
	})
	if err != nil {
		return err
	}

	outfile := strip.OutputName(fontfile, size)
	fmt.Fprintf(stdout, "Writing rendered characters to '%s'...\n", outfile)
	n, sum, err := strip.WriteFile(outfile, img)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d bytes (crc8 %#02x)\n", n, sum)
	return nil
}
