package pixel

import "image/color"

// Models for the packed color types.
var (
	CRGB15Model color.Model = color.ModelFunc(crgb15Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
	CBGR15Model color.Model = color.ModelFunc(cbgr15Model)
	CBGR16Model color.Model = color.ModelFunc(cbgr16Model)
	BGRAModel   color.Model = color.ModelFunc(bgraModel)
)

// CRGB15 represents a 15-bit 5-5-5 RGB color.
type CRGB15 struct {
	// CIgnore, 1, CRed, 5, CGreen, 5, CBlue, 5
	V uint16
}

func (c CRGB15) RGBA() (r, g, b, a uint32) {
	return expand555(c.V>>10, c.V>>5, c.V)
}

func crgb15Model(c color.Color) color.Color {
	if _, ok := c.(CRGB15); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = (r & 0xF800) >> 1
	g = (g & 0xF800) >> 6
	b = (b & 0xF800) >> 11
	return CRGB15{uint16(r | g | b)}
}

// CBGR15 represents a 15-bit 5-5-5 BGR color.
type CBGR15 struct {
	// CIgnore, 1, CBlue, 5, CGreen, 5, CRed, 5
	V uint16
}

func (c CBGR15) RGBA() (r, g, b, a uint32) {
	return expand555(c.V, c.V>>5, c.V>>10)
}

func cbgr15Model(c color.Color) color.Color {
	if _, ok := c.(CBGR15); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	b = (b & 0xF800) >> 1
	g = (g & 0xF800) >> 6
	r = (r & 0xF800) >> 11
	return CBGR15{uint16(r | g | b)}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V>>11, c.V>>5, c.V)
}

func crgb16Model(c color.Color) color.Color {
	if _, ok := c.(CRGB16); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = (r & 0xF800)
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return CRGB16{uint16(r | g | b)}
}

// CBGR16 represents a 16-bit 5-6-5 BGR color.
type CBGR16 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c CBGR16) RGBA() (r, g, b, a uint32) {
	return expand565(c.V, c.V>>5, c.V>>11)
}

func cbgr16Model(c color.Color) color.Color {
	if _, ok := c.(CBGR16); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	b = (b & 0xF800)
	g = (g & 0xFC00) >> 5
	r = (r & 0xF800) >> 11
	return CBGR16{uint16(r | g | b)}
}

// BGRA represents a 32-bit color stored as [B, G, R, A], as used by most
// desktop framebuffer devices.
type BGRA struct {
	B, G, R, A uint8
}

func (c BGRA) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func bgraModel(c color.Color) color.Color {
	if _, ok := c.(BGRA); ok {
		return c
	}
	v := color.RGBAModel.Convert(c).(color.RGBA)
	return BGRA{B: v.B, G: v.G, R: v.R, A: v.A}
}

// expand555 scales the low 5 bits of each component to 16 bits.
func expand555(r5, g5, b5 uint16) (r, g, b, a uint32) {
	return expand(r5&0x1f, 5), expand(g5&0x1f, 5), expand(b5&0x1f, 5), 0xffff
}

// expand565 scales 5-6-5 bit components to 16 bits.
func expand565(r5, g6, b5 uint16) (r, g, b, a uint32) {
	return expand(r5&0x1f, 5), expand(g6&0x3f, 6), expand(b5&0x1f, 5), 0xffff
}

func expand(v uint16, bits uint) uint32 {
	// Build a value at the top of the low byte, then duplicate the high bits
	// in the low bits and the whole value in the high byte.
	x := uint32(v) << (8 - bits)
	x |= x >> bits
	x &= 0xff
	return x | x<<8
}
