// Command ttf2bmp renders the printable ASCII characters of a monospaced
// TrueType font into a single row bitmap.
//
// Usage:
//
//	ttf2bmp [flags] <ttffile> <size>
//
// The result is saved next to the font as <ttffile without extension>_<size>.BMP.
package main

import (
	"log"
	"os"

	"github.com/clktmr/fontstrip/tools/ttf2bmp"
)

func main() {
	log.Default().SetFlags(0)
	ttf2bmp.Main(os.Args)
}
