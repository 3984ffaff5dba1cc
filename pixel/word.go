package pixel

import (
	"encoding/binary"
	"image/color"
)

// WordSize is the number of bytes in a [Word].
const WordSize = 4

// Opaque is the alpha value of every word written by a draw operation.
const Opaque = 0xff

// Word is one pixel packed as the bytes [R, G, B, A] in little-endian order,
// so R occupies the lowest 8 bits.
type Word uint32

// MakeWord packs the channels into a Word.
func MakeWord(r, g, b, a uint8) Word {
	return Word(r) | Word(g)<<8 | Word(b)<<16 | Word(a)<<24
}

// WordOf converts any color to an opaque Word.
func WordOf(c color.Color) Word {
	v := color.RGBAModel.Convert(c).(color.RGBA)
	return MakeWord(v.R, v.G, v.B, Opaque)
}

// Channels unpacks the word.
func (w Word) Channels() (r, g, b, a uint8) {
	return uint8(w), uint8(w >> 8), uint8(w >> 16), uint8(w >> 24)
}

// NRGBA returns the non-premultiplied channels as a [color.NRGBA].
func (w Word) NRGBA() color.NRGBA {
	r, g, b, a := w.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Words converts a byte buffer into row-major words. Trailing bytes that do not
// form a whole word are ignored.
func Words(b []byte) []Word {
	words := make([]Word, len(b)/WordSize)
	for i := range words {
		words[i] = Word(binary.LittleEndian.Uint32(b[i*WordSize:]))
	}
	return words
}

// WordAt reads the word at word index i.
func WordAt(b []byte, i int) Word {
	return Word(binary.LittleEndian.Uint32(b[i*WordSize : i*WordSize+WordSize]))
}

// PutWord writes w at word index i.
func PutWord(b []byte, i int, w Word) {
	binary.LittleEndian.PutUint32(b[i*WordSize:i*WordSize+WordSize], uint32(w))
}

// CopyOpaque copies whole words from src into dst with the alpha byte of
// every copied word set to Opaque. It returns the number of words copied.
func CopyOpaque(dst, src []byte) int {
	n := min(len(dst), len(src)) / WordSize
	copy(dst[:n*WordSize], src)
	for i := 3; i < n*WordSize; i += WordSize {
		dst[i] = Opaque
	}
	return n
}
