package pixels

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/pixels/pixel"
)

func TestNewSurface(t *testing.T) {
	tests := []struct {
		Test          string
		Width, Height int
		Err           error
	}{
		{"zero width", 0, 4, ErrSize},
		{"zero height", 4, 0, ErrSize},
		{"negative", -1, 4, ErrSize},
		{"one", 1, 1, nil},
		{"panel", 240, 320, nil},
	}
	for _, test := range tests {
		t.Run(test.Test, func(it *testing.T) {
			s, err := NewSurface(test.Width, test.Height, nil)
			if !errors.Is(err, test.Err) {
				it.Fatalf("expected error %v, got %v", test.Err, err)
			}
			if err != nil {
				return
			}
			if l := len(s.Pix()); l != test.Width*test.Height*4 {
				it.Errorf("expected buffer of %d bytes, got %d", test.Width*test.Height*4, l)
			}
			if o := s.Orientation(); o != Portrait {
				it.Errorf("expected initial orientation %s, got %s", Portrait, o)
			}
			if s.Present() != nil {
				it.Errorf("expected present without sink to succeed")
			}
		})
	}
}

func TestSetOrientation(t *testing.T) {
	for _, size := range []image.Point{image.Pt(1, 1), image.Pt(4, 4), image.Pt(240, 320), image.Pt(7, 3)} {
		t.Run(size.String(), func(it *testing.T) {
			s, err := NewSurface(size.X, size.Y, nil)
			if err != nil {
				it.Fatal(err)
			}
			l := len(s.Pix())

			s.SetOrientation(Portrait)
			if w, h := s.Size(); w != size.X || h != size.Y {
				it.Errorf("identity transition changed size to %dx%d", w, h)
			}

			s.SetOrientation(Landscape)
			if w, h := s.Size(); w != size.Y || h != size.X {
				it.Errorf("expected %dx%d after rotation, got %dx%d", size.Y, size.X, w, h)
			}
			if o := s.Orientation(); o != Landscape {
				it.Errorf("expected %s, got %s", Landscape, o)
			}
			if len(s.Pix()) != l {
				it.Errorf("rotation reallocated the buffer")
			}

			s.SetOrientation(Landscape)
			if w, h := s.Size(); w != size.Y || h != size.X {
				it.Errorf("identity transition changed size to %dx%d", w, h)
			}

			s.SetOrientation(Portrait)
			if w, h := s.Size(); w != size.X || h != size.Y {
				it.Errorf("expected %dx%d after rotating back, got %dx%d", size.X, size.Y, w, h)
			}
		})
	}
}

func TestSetOrientationKeepsContents(t *testing.T) {
	s, _ := NewSurface(3, 2, nil)
	for i := 0; i < 6; i++ {
		s.WriteWordAt(i, pixel.Word(i+1))
	}
	s.SetOrientation(Landscape)
	for i := 0; i < 6; i++ {
		if v := s.WordAt(i); v != pixel.Word(i+1) {
			t.Errorf("word %d is %#08x after rotation, expected %#08x", i, uint32(v), i+1)
		}
	}
}

func TestSetOrientationInvalid(t *testing.T) {
	s, _ := NewSurface(2, 3, nil)
	for _, o := range []Orientation{2, 3, 0xff} {
		s.SetOrientation(o)
		if v := s.Orientation(); v != Portrait {
			t.Errorf("%s: expected portrait, got %s", o, v)
		}
		if w, h := s.Size(); w != 2 || h != 3 {
			t.Errorf("%s: expected 2x3, got %dx%d", o, w, h)
		}
	}
	if v := Orientation(3).String(); v != "orientation(3)" {
		t.Errorf("expected orientation(3), got %q", v)
	}
}

func TestOrientationFromDegrees(t *testing.T) {
	tests := []struct {
		Degrees int
		Want    Orientation
	}{
		{0, Portrait},
		{90, Landscape},
		{180, Portrait},
		{270, Landscape},
		{-90, Landscape},
		{450, Landscape},
		{45, Portrait},
	}
	for _, test := range tests {
		if v := OrientationFromDegrees(test.Degrees); v != test.Want {
			t.Errorf("%d°: expected %s, got %s", test.Degrees, test.Want, v)
		}
	}
}

func TestSurfaceClearFill(t *testing.T) {
	s, _ := NewSurface(3, 3, nil)
	s.Fill(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40})
	want := pixel.WordOf(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40})
	for i := 0; i < 9; i++ {
		if v := s.WordAt(i); v != want {
			t.Fatalf("word %d is %#08x, expected %#08x", i, uint32(v), uint32(want))
		}
	}
	if _, _, _, a := want.Channels(); a != pixel.Opaque {
		t.Errorf("expected filled pixels to be opaque, got alpha %d", a)
	}

	s.Clear()
	for i, b := range s.Pix() {
		if b != 0 {
			t.Fatalf("byte %d is %#02x after clear", i, b)
		}
	}
}

func TestSurfacePresent(t *testing.T) {
	sink := new(MemorySink)
	s, _ := NewSurface(2, 3, sink)
	s.WriteWordAt(5, 0xdeadbeef)
	s.SetOrientation(Landscape)
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}

	f := sink.Last()
	if f.Width != 3 || f.Height != 2 || f.Orientation != Landscape {
		t.Errorf("expected 3x2 landscape frame, got %dx%d %s", f.Width, f.Height, f.Orientation)
	}
	if v := pixel.WordAt(f.Pix, 5); v != 0xdeadbeef {
		t.Errorf("expected presented word %#08x, got %#08x", 0xdeadbeef, uint32(v))
	}

	// The sink holds a copy.
	s.WriteWordAt(5, 0)
	if v := pixel.WordAt(sink.Last().Pix, 5); v != 0xdeadbeef {
		t.Errorf("sink frame changed after a later write")
	}
	if n := sink.Count(); n != 1 {
		t.Errorf("expected 1 presented frame, got %d", n)
	}
}

func TestSurfacePresentError(t *testing.T) {
	failed := errors.New("sink failed")
	s, _ := NewSurface(1, 1, SinkFunc(func(Frame) error { return failed }))
	if err := s.Present(); !errors.Is(err, failed) {
		t.Errorf("expected sink error, got %v", err)
	}
}
