package pixel

import (
	"image/color"
	"testing"
)

func TestWordBytes(t *testing.T) {
	b := make([]byte, 8)
	PutWord(b, 1, MakeWord(0x11, 0x22, 0x33, 0x44))
	want := []byte{0, 0, 0, 0, 0x11, 0x22, 0x33, 0x44}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d is %#02x, expected %#02x", i, b[i], want[i])
		}
	}
	if v := WordAt(b, 1); v != 0x44332211 {
		t.Errorf("expected word %#08x, got %#08x", 0x44332211, uint32(v))
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		Test string
		Size int
		Want int
	}{
		{"empty", 0, 0},
		{"one", 4, 1},
		{"trailing", 9, 2},
	}
	for _, test := range tests {
		t.Run(test.Test, func(it *testing.T) {
			b := make([]byte, test.Size)
			for i := range b {
				b[i] = byte(i)
			}
			words := Words(b)
			if len(words) != test.Want {
				it.Fatalf("expected %d words, got %d", test.Want, len(words))
			}
			for i, w := range words {
				if v := WordAt(b, i); w != v {
					it.Errorf("word %d is %#08x, expected %#08x", i, uint32(w), uint32(v))
				}
			}
		})
	}
}

func TestWordOf(t *testing.T) {
	w := WordOf(color.NRGBA{R: 1, G: 2, B: 3, A: 0})
	if r, g, b, a := w.Channels(); r != 0 || g != 0 || b != 0 || a != Opaque {
		t.Errorf("expected transparent input to become opaque black, got %d,%d,%d,%d", r, g, b, a)
	}
	w = WordOf(color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	if r, g, b, a := w.Channels(); r != 1 || g != 2 || b != 3 || a != Opaque {
		t.Errorf("expected 1,2,3,255, got %d,%d,%d,%d", r, g, b, a)
	}
}

func TestCopyOpaque(t *testing.T) {
	src := []byte{
		0x10, 0x20, 0x30, 0x00,
		0x40, 0x50, 0x60, 0x80,
		0x70, 0x80, 0x90,
	}
	dst := make([]byte, 12)
	if n := CopyOpaque(dst, src); n != 2 {
		t.Fatalf("expected 2 words copied, got %d", n)
	}
	want := []byte{
		0x10, 0x20, 0x30, 0xff,
		0x40, 0x50, 0x60, 0xff,
		0x00, 0x00, 0x00, 0x00,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("expected % x, got % x", want, dst)
		}
	}
}
