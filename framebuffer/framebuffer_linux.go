package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/pixels"
	"github.com/BeatGlow/pixels/internal/ioctl"
	"github.com/BeatGlow/pixels/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// Device is a memory mapped Linux framebuffer device (fbdev).
type Device struct {
	name       string
	fd         int
	mem        []byte
	image      draw.Image
	info       linuxFixScreenInfo
	screenInfo linuxVarScreenInfo
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("framebuffer: open %s: %w", name, err)
	}

	fb := &Device{
		name: name,
		fd:   fd,
	}
	if err = ioctl.Call(uintptr(fd), fbioGetFScreenInfo, uintptr(unsafe.Pointer(&fb.info))); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	// Request variable screen info.
	if err = ioctl.Call(uintptr(fd), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&fb.screenInfo))); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	model, order, err := linuxParseColorModel(&fb.screenInfo)
	if err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	// Map pixel buffer.
	if fb.mem, err = unix.Mmap(fd, 0, int(fb.info.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("framebuffer: mmap %s: %w", name, err)
	}

	fb.image = pixel.BufferImage(model, pixel.Buffer{
		Rect:   image.Rect(0, 0, int(fb.screenInfo.Xres), int(fb.screenInfo.Yres)),
		Pix:    fb.visible(),
		Stride: int(fb.info.LineLength),
	}, order)

	pixels.Logger().Info("framebuffer opened",
		"device", name,
		"id", fb.ID(),
		"width", fb.screenInfo.Xres,
		"height", fb.screenInfo.Yres,
		"bpp", fb.screenInfo.BitsPerPixel)
	return fb, nil
}

// visible returns the mapped memory starting at the visible area.
func (fb *Device) visible() []byte {
	offset := int(fb.screenInfo.Yoffset)*int(fb.info.LineLength) +
		int(fb.screenInfo.Xoffset)*int(fb.screenInfo.BitsPerPixel)/8
	if offset >= len(fb.mem) {
		return fb.mem
	}
	return fb.mem[offset:]
}

// ID is the driver identification string.
func (fb *Device) ID() string {
	id := fb.info.ID[:]
	for i, c := range id {
		if c == 0 {
			return string(id[:i])
		}
	}
	return string(id)
}

// Bounds is the visible device area.
func (fb *Device) Bounds() image.Rectangle {
	return fb.image.Bounds()
}

// Present converts the frame into the device color model.
func (fb *Device) Present(frame pixels.Frame) error {
	if fb.mem == nil {
		return fmt.Errorf("framebuffer: %s is closed", fb.name)
	}
	pixel.CopyWords(fb.image, frame.Pix, frame.Width)
	return nil
}

// Close the framebuffer device.
func (fb *Device) Close() error {
	if fb.mem == nil {
		return nil
	}
	if err := unix.Munmap(fb.mem); err != nil {
		return err
	}
	fb.mem = nil
	return unix.Close(fb.fd)
}

type linuxFixScreenInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // FB_CAP_
	Reserved     [2]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

func (f linuxBitField) is(offset, length uint32) bool {
	return f.Offset == offset && f.Length == length
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// linuxParseColorModel maps the bitfield layout onto a pixel color model.
// Device memory uses the host byte order, which is little endian on all
// supported targets.
func linuxParseColorModel(info *linuxVarScreenInfo) (color.Model, binary.ByteOrder, error) {
	if info == nil {
		return nil, nil, fmt.Errorf("framebuffer: invalid screen info")
	}

	var (
		r, g, b, a = info.Red, info.Green, info.Blue, info.Alpha
		order      = binary.LittleEndian
	)
	switch info.BitsPerPixel {
	case 15, 16:
		switch {
		case r.is(10, 5) && g.is(5, 5) && b.is(0, 5):
			return pixel.CRGB15Model, order, nil
		case b.is(10, 5) && g.is(5, 5) && r.is(0, 5):
			return pixel.CBGR15Model, order, nil
		case r.is(11, 5) && g.is(5, 6) && b.is(0, 5):
			return pixel.CRGB16Model, order, nil
		case b.is(11, 5) && g.is(5, 6) && r.is(0, 5):
			return pixel.CBGR16Model, order, nil
		}

	case 32:
		switch {
		case r.is(0, 8) && g.is(8, 8) && b.is(16, 8) && (a.Length == 0 || a.is(24, 8)):
			return color.RGBAModel, order, nil
		case b.is(0, 8) && g.is(8, 8) && r.is(16, 8) && (a.Length == 0 || a.is(24, 8)):
			return pixel.BGRAModel, order, nil
		}
	}

	return nil, nil, fmt.Errorf("%w: %d bpp, red %d/%d, green %d/%d, blue %d/%d",
		ErrColorModel, info.BitsPerPixel,
		r.Offset, r.Length, g.Offset, g.Length, b.Offset, b.Length)
}
