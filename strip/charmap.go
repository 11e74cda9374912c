package strip

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	rcd = '�'               // decoding replacement character
	rce = byte('?' - First) // encoding replacement glyph
)

type charmap struct{}

// ASCII encodes text as glyph indices of a strip, byte i standing for rune
// First+i. Runes without a glyph are encoded as '?'. Carriage returns are
// dropped.
var ASCII encoding.Encoding = &charmap{}

func (m *charmap) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{}}
}

func (m *charmap) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{}}
}

// Index returns the glyph index of r.
func Index(r rune) int {
	if r < First || r > Last {
		return int(rce)
	}
	return int(r - First)
}

type decoder struct{ transform.NopResetter }

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		var r rune = rcd
		if int(c) < NumGlyphs {
			r = First + rune(c)
		}
		if utf8.RuneLen(r) > len(dst)-nDst {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return
}

type encoder struct{ transform.NopResetter }

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == '\r' {
			nSrc += size
			continue
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		dst[nDst] = byte(Index(r))
		nDst++
		nSrc += size
	}
	return
}
