package pixels

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BeatGlow/pixels/pixel"
)

// testFrame returns a w*h word frame where word i is i*0x01010101.
func testFrame(w, h int) []byte {
	src := make([]byte, w*h*pixel.WordSize)
	for i := 0; i < w*h; i++ {
		pixel.PutWord(src, i, pixel.Word(i*0x01010101))
	}
	return src
}

func testBlitter(t *testing.T, w, h int, addressing Addressing) (*Surface, *Blitter) {
	t.Helper()
	s, err := NewSurface(w, h, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s, NewBlitter(s, addressing)
}

func TestWriteBufferSize(t *testing.T) {
	for _, size := range []int{0, 4, 60, 63, 65, 68, 128} {
		t.Run(fmt.Sprintf("%d", size), func(it *testing.T) {
			s, b := testBlitter(it, 4, 4, FixedStride)
			s.Fill(pixel.MakeWord(1, 2, 3, 4).NRGBA())
			before := append([]byte(nil), s.Pix()...)

			err := b.WriteBuffer(make([]byte, size))
			if !errors.Is(err, ErrFrameSize) {
				it.Fatalf("expected %v, got %v", ErrFrameSize, err)
			}
			var fse *FrameSizeError
			if !errors.As(err, &fse) {
				it.Fatalf("expected *FrameSizeError, got %T", err)
			}
			if fse.Want != 64 || fse.Got != size {
				it.Errorf("expected want=64 got=%d, got want=%d got=%d", size, fse.Want, fse.Got)
			}
			for i := range before {
				if s.Pix()[i] != before[i] {
					it.Fatalf("byte %d modified by a rejected write", i)
				}
			}
		})
	}
}

func TestWriteBufferPortrait(t *testing.T) {
	s, b := testBlitter(t, 4, 4, FixedStride)
	if err := b.WriteBuffer(testFrame(4, 4)); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := pixel.Word((x + y*4) * 0x01010101)
			if v := s.WordAt(x + y*4); v != want {
				t.Errorf("word (%d,%d) is %#08x, expected %#08x", x, y, uint32(v), uint32(want))
			}
		}
	}
	// The last row and column are not copied.
	for _, i := range []int{3, 7, 11, 12, 13, 14, 15} {
		if v := s.WordAt(i); v != 0 {
			t.Errorf("word %d is %#08x, expected it to be skipped", i, uint32(v))
		}
	}
}

func TestWriteBufferLandscape(t *testing.T) {
	s, b := testBlitter(t, 4, 4, FixedStride)
	s.SetOrientation(Landscape)
	if err := b.WriteBuffer(testFrame(4, 4)); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := pixel.Word((x + y*4) * 0x01010101)
			if v := s.WordAt((3 - y) + x*4); v != want {
				t.Errorf("word (%d,%d) is %#08x, expected %#08x", x, y, uint32(v), uint32(want))
			}
		}
	}
}

func TestWriteBufferFixedStrideNarrow(t *testing.T) {
	// A fixed stride of four words addresses past the end of tall, narrow
	// frames; those words are dropped.
	s, b := testBlitter(t, 2, 100, FixedStride)
	if err := b.WriteBuffer(testFrame(2, 100)); err != nil {
		t.Fatal(err)
	}
	if v := s.WordAt(4); v != pixel.Word(2*0x01010101) {
		t.Errorf("expected word 4 to hold source word 2, got %#08x", uint32(v))
	}

	s.SetOrientation(Landscape)
	if err := b.WriteBuffer(testFrame(100, 2)); err != nil {
		t.Fatal(err)
	}
}

func TestWriteBufferRowStride(t *testing.T) {
	t.Run("portrait", func(it *testing.T) {
		s, b := testBlitter(it, 3, 2, RowStride)
		src := testFrame(3, 2)
		if err := b.WriteBuffer(src); err != nil {
			it.Fatal(err)
		}
		for i := range src {
			if s.Pix()[i] != src[i] {
				it.Fatalf("byte %d is %#02x, expected %#02x", i, s.Pix()[i], src[i])
			}
		}
	})

	t.Run("landscape", func(it *testing.T) {
		s, b := testBlitter(it, 3, 2, RowStride)
		s.SetOrientation(Landscape)
		w, h := s.Size()
		if err := b.WriteBuffer(testFrame(w, h)); err != nil {
			it.Fatal(err)
		}
		// Source column x becomes physical row x, read bottom-up.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want := pixel.Word((x + y*w) * 0x01010101)
				if v := s.WordAt((h - 1 - y) + x*h); v != want {
					it.Errorf("word (%d,%d) is %#08x, expected %#08x", x, y, uint32(v), uint32(want))
				}
			}
		}
	})
}

func TestWriteBufferDoesNotPresent(t *testing.T) {
	sink := new(MemorySink)
	s, _ := NewSurface(4, 4, sink)
	b := NewBlitter(s, FixedStride)
	if err := b.WriteBuffer(testFrame(4, 4)); err != nil {
		t.Fatal(err)
	}
	b.DrawPixels(Pixel{X: 1, Y: 1, R: 0xff})
	b.SetPixel(0, 0xffffffff)
	if n := sink.Count(); n != 0 {
		t.Errorf("expected no implicit present, got %d frames", n)
	}
}

func TestDrawPoints(t *testing.T) {
	const w, h = 5, 3

	t.Run("out-bounds", func(it *testing.T) {
		s, b := testBlitter(it, w, h, FixedStride)
		b.DrawPixels(
			Pixel{X: w, Y: 0, R: 1, G: 2, B: 3},
			Pixel{X: 0, Y: h, R: 1, G: 2, B: 3},
			Pixel{X: -1, Y: 0, R: 1, G: 2, B: 3},
			Pixel{X: 0, Y: -1, R: 1, G: 2, B: 3},
			Pixel{X: w * 10, Y: h * 10, R: 1, G: 2, B: 3},
		)
		for i, v := range s.Pix() {
			if v != 0 {
				it.Fatalf("byte %d is %#02x, expected untouched buffer", i, v)
			}
		}
	})

	t.Run("max-in-bounds", func(it *testing.T) {
		s, b := testBlitter(it, w, h, FixedStride)
		b.DrawPixels(Pixel{X: w - 1, Y: h - 1, R: 0x11, G: 0x22, B: 0x33})
		off := (w-1)*4 + (h-1)*w*4
		want := []byte{0x11, 0x22, 0x33, 0xff}
		for i, v := range s.Pix() {
			expect := byte(0)
			if i >= off && i < off+4 {
				expect = want[i-off]
			}
			if v != expect {
				it.Errorf("byte %d is %#02x, expected %#02x", i, v, expect)
			}
		}
	})

	t.Run("last-write-wins", func(it *testing.T) {
		s, b := testBlitter(it, w, h, FixedStride)
		b.DrawPixels(
			Pixel{X: 2, Y: 1, R: 0xff},
			Pixel{X: 2, Y: 1, G: 0xff},
		)
		if v := s.WordAt(2 + 1*w); v != pixel.MakeWord(0, 0xff, 0, 0xff) {
			it.Errorf("expected second point's color, got %#08x", uint32(v))
		}
	})

	t.Run("landscape", func(it *testing.T) {
		s, b := testBlitter(it, w, h, FixedStride)
		s.SetOrientation(Landscape)
		// Landscape is h wide; x == h is out of bounds now.
		b.DrawPixels(Pixel{X: h, Y: 0, R: 0xff}, Pixel{X: 0, Y: w - 1, B: 0xff})
		if v := s.WordAt((w - 1) * h); v != pixel.MakeWord(0, 0, 0xff, 0xff) {
			it.Errorf("expected blue at the last row, got %#08x", uint32(v))
		}
		if v := s.WordAt(h); v != 0 {
			it.Errorf("expected clipped point to be dropped, got %#08x", uint32(v))
		}
	})

	t.Run("stop", func(it *testing.T) {
		_, b := testBlitter(it, w, h, FixedStride)
		var n int
		b.DrawPoints(func(yield func(Pixel) bool) {
			for n = 0; n < 3; n++ {
				if !yield(Pixel{X: n}) {
					return
				}
			}
		})
		if n != 3 {
			it.Errorf("expected the whole stream to be consumed, stopped at %d", n)
		}
	})
}

func TestSetPixel(t *testing.T) {
	s, b := testBlitter(t, 4, 4, FixedStride)
	b.SetPixel(6, 0x01020304)
	for i := 0; i < 16; i++ {
		want := pixel.Word(0)
		if i == 6 {
			want = 0x01020304
		}
		if v := s.WordAt(i); v != want {
			t.Errorf("word %d is %#08x, expected %#08x", i, uint32(v), uint32(want))
		}
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	_, b := testBlitter(t, 2, 2, FixedStride)
	defer func() {
		if recover() == nil {
			t.Errorf("expected an out of range index to panic")
		}
	}()
	b.SetPixel(4, 0)
}
