package pixel

import (
	"image/color"
	"testing"
)

func TestCRGB16(t *testing.T) {
	tests := []struct {
		Test    string
		Color   color.Color
		Want    uint16
		R, G, B uint32
	}{
		{"black", color.Black, 0x0000, 0, 0, 0},
		{"white", color.White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"red", color.RGBA{R: 0xff, A: 0xff}, 0xf800, 0xffff, 0, 0},
		{"green", color.RGBA{G: 0xff, A: 0xff}, 0x07e0, 0, 0xffff, 0},
		{"blue", color.RGBA{B: 0xff, A: 0xff}, 0x001f, 0, 0, 0xffff},
	}
	for _, test := range tests {
		t.Run(test.Test, func(it *testing.T) {
			c := CRGB16Model.Convert(test.Color).(CRGB16)
			if c.V != test.Want {
				it.Errorf("expected %#04x, got %#04x", test.Want, c.V)
			}
			r, g, b, a := c.RGBA()
			if r != test.R || g != test.G || b != test.B {
				it.Errorf("expected (%#04x,%#04x,%#04x), got (%#04x,%#04x,%#04x)", test.R, test.G, test.B, r, g, b)
			}
			if a != 0xffff {
				it.Errorf("expected opaque alpha, got %#04x", a)
			}
		})
	}
}

func TestCBGR16(t *testing.T) {
	c := CBGR16Model.Convert(color.RGBA{R: 0xff, A: 0xff}).(CBGR16)
	if c.V != 0x001f {
		t.Errorf("expected red in the low bits, got %#04x", c.V)
	}
	if r, g, b, _ := c.RGBA(); r != 0xffff || g != 0 || b != 0 {
		t.Errorf("expected red, got (%#04x,%#04x,%#04x)", r, g, b)
	}
}

func TestCRGB15(t *testing.T) {
	for y := 0; y < 32; y++ {
		t.Run("", func(it *testing.T) {
			c := CRGB15{V: uint16(y)<<10 | uint16(y)<<5 | uint16(y)}
			r, g, b, _ := c.RGBA()
			v := uint32(y<<3 | y>>2)
			want := v | v<<8
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestCBGR15(t *testing.T) {
	c := CBGR15Model.Convert(color.RGBA{B: 0xff, A: 0xff}).(CBGR15)
	if c.V != 0x7c00 {
		t.Errorf("expected blue in the high bits, got %#04x", c.V)
	}
}
