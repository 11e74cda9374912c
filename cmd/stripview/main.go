// Command stripview draws text with a glyph strip.
package main

import (
	"log"
	"os"

	"github.com/clktmr/fontstrip/tools/stripview"
)

func main() {
	log.Default().SetFlags(0)
	stripview.Main(os.Args)
}
