package strip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/sigurn/crc8"
	"golang.org/x/image/bmp"
)

// Offset of the number of palette colors in the BITMAPINFOHEADER.
const offsetColorsUsed = 46

// Encode writes m as an uncompressed 8 bit BMP with a 256 color palette.
func Encode(w io.Writer, m *image.Paletted) error {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, m); err != nil {
		return err
	}

	// A zero color count means 256 colors, but simple loaders read the palette
	// length from this field.
	b := buf.Bytes()
	if len(b) < offsetColorsUsed+4 {
		return errors.New("strip: short bmp header")
	}
	binary.LittleEndian.PutUint32(b[offsetColorsUsed:], 256)

	_, err := w.Write(b)
	return err
}

var crcTable = crc8.MakeTable(crc8.CRC8)

// Checksum returns the CRC-8 of data.
func Checksum(data []byte) uint8 {
	sum := crc8.Init(crcTable)
	sum = crc8.Update(sum, data, crcTable)
	return crc8.Complete(sum, crcTable)
}

// WriteFile encodes m and writes it to name, replacing an existing file. It
// returns the file size and its CRC-8. A partially written file is removed.
func WriteFile(name string, m *image.Paletted) (n int, sum uint8, err error) {
	var buf bytes.Buffer
	if err = Encode(&buf, m); err != nil {
		return 0, 0, fmt.Errorf("encode %s: %w", name, err)
	}

	f, err := os.Create(name)
	if err != nil {
		return 0, 0, fmt.Errorf("write strip: %w", err)
	}
	n, err = f.Write(buf.Bytes())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return 0, 0, fmt.Errorf("write strip: %w", err)
	}
	return n, Checksum(buf.Bytes()), nil
}
