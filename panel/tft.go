package panel

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/pixels"
	"github.com/BeatGlow/pixels/pixel"
)

// MIPI DCS commands shared by the ST77xx controllers.
const (
	dcsNOP     = 0x00
	dcsSWRESET = 0x01
	dcsSLPIN   = 0x10
	dcsSLPOUT  = 0x11 // Sleep Out
	dcsNORON   = 0x13 // Normal Display Mode On
	dcsINVOFF  = 0x20
	dcsINVON   = 0x21 // Display Inversion On
	dcsDISPOFF = 0x28 // Display Off
	dcsDISPON  = 0x29 // Display On
	dcsCASET   = 0x2A // Column Address Set
	dcsRASET   = 0x2B // Row Address Set
	dcsRAMWR   = 0x2C // Memory Write
	dcsMADCTL  = 0x36 // Memory Data Access Control
	dcsCOLMOD  = 0x3A // Interface Pixel Format
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                     byte = 1 << iota // D0: reserved
	_                                      // D1: reserved
	madctlDataLatchOrder                   // D2: MH
	madctlBGR                              // D3: RGB
	madctlLineAddressOrder                 // D4: ML
	madctlPageColumnOrder                  // D5: MV
	madctlColumnAddressOrder               // D6: MX
	madctlPageAddressOrder                 // D7: MY
)

// Config holds the panel specific settings.
type Config struct {
	// RowOffset and ColOffset move the RAM window for panels that are smaller
	// than the controller, such as 240x240 modules.
	RowOffset, ColOffset int

	// Backlight is an optional PWM capable backlight pin.
	Backlight gpio.PinOut

	// BGR selects BGR subpixel order.
	BGR bool

	// SkipReset skips the hardware reset sequence.
	SkipReset bool
}

// tft is the RGB 5-6-5 frame path shared by the controllers.
type tft struct {
	c           Conn
	config      Config
	name        string
	maxWidth    int
	maxHeight   int
	orientation pixels.Orientation
	madctlSet   bool
	buf         *pixel.CRGB16Image
	sleep       func(time.Duration)
}

func newTFT(c Conn, config *Config, name string, maxWidth, maxHeight int) tft {
	if config == nil {
		config = new(Config)
	}
	return tft{
		c:         c,
		config:    *config,
		name:      name,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		sleep:     time.Sleep,
	}
}

func (d *tft) String() string {
	return fmt.Sprintf("%s on %s", d.name, d.c)
}

func (d *tft) commands(commands [][]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// reset toggles the reset pin, unless disabled.
func (d *tft) reset() (err error) {
	if d.config.SkipReset {
		return
	}
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	d.sleep(100 * time.Millisecond)
	if err = d.c.Reset(gpio.Low); err != nil {
		return
	}
	d.sleep(100 * time.Millisecond)
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	d.sleep(10 * time.Millisecond)
	return
}

// backlight turns the backlight fully on, if there is one.
func (d *tft) backlight() error {
	if d.config.Backlight == nil {
		pixels.Logger().Debug("no backlight control", "panel", d.name)
		return nil
	}
	return d.SetBrightness(0xff)
}

// Show toggles the display on or off.
func (d *tft) Show(show bool) error {
	var command = byte(dcsDISPOFF)
	if show {
		command = byte(dcsDISPON)
	}
	return d.c.Command(command)
}

// SetBrightness sets the backlight duty cycle.
func (d *tft) SetBrightness(level uint8) error {
	if d.config.Backlight == nil {
		return nil
	}
	const (
		step = gpio.DutyMax / 0xFF
		rate = 2 * physic.KiloHertz
	)
	pixels.Logger().Debug("backlight duty cycle", "panel", d.name, "duty", step*gpio.Duty(level), "rate", rate)
	return d.config.Backlight.PWM(step*gpio.Duty(level), rate)
}

// madctl returns the scan direction for an orientation. Landscape exchanges
// rows and columns and mirrors the column order.
func madctl(o pixels.Orientation, bgr bool) (v byte) {
	if o == pixels.Landscape {
		v = madctlColumnAddressOrder | madctlPageColumnOrder
	}
	if bgr {
		v |= madctlBGR
	}
	return
}

func (d *tft) setOrientation(o pixels.Orientation) error {
	if d.madctlSet && d.orientation == o {
		return nil
	}
	if err := d.c.Command(dcsMADCTL, madctl(o, d.config.BGR)); err != nil {
		return err
	}
	d.orientation, d.madctlSet = o, true
	return nil
}

// SetWindow selects the RAM area written by the next memory write.
func (d *tft) SetWindow(x0, y0, x1, y1 int) error {
	if d.orientation == pixels.Landscape {
		x0 += d.config.RowOffset
		y0 += d.config.ColOffset
		x1 += d.config.RowOffset
		y1 += d.config.ColOffset
	} else {
		x0 += d.config.ColOffset
		y0 += d.config.RowOffset
		x1 += d.config.ColOffset
		y1 += d.config.RowOffset
	}
	return d.commands([][]byte{
		{dcsCASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		{dcsRASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Row address
		{dcsRAMWR}, // Write to RAM
	})
}

func (d *tft) checkSize(frame pixels.Frame) error {
	maxWidth, maxHeight := d.maxWidth, d.maxHeight
	if frame.Orientation == pixels.Landscape {
		maxWidth, maxHeight = maxHeight, maxWidth
	}
	if frame.Width > maxWidth || frame.Height > maxHeight {
		return fmt.Errorf("%s: invalid size %dx%d, maximum size is %dx%d in %s orientation",
			d.name, frame.Width, frame.Height, maxWidth, maxHeight, frame.Orientation)
	}
	return nil
}

// convert packs the frame into big-endian RGB 5-6-5.
func (d *tft) convert(frame pixels.Frame) []byte {
	if d.buf == nil || d.buf.Rect.Dx() != frame.Width || d.buf.Rect.Dy() != frame.Height {
		d.buf = pixel.NewCRGB16Image(frame.Width, frame.Height)
	}
	pixel.CopyWords(d.buf, frame.Pix, frame.Width)
	return d.buf.Pix
}

// Present writes the full frame into display RAM.
func (d *tft) Present(frame pixels.Frame) error {
	if err := d.checkSize(frame); err != nil {
		return err
	}
	if err := d.setOrientation(frame.Orientation); err != nil {
		return err
	}
	if err := d.SetWindow(0, 0, frame.Width-1, frame.Height-1); err != nil {
		return err
	}
	return d.c.Data(d.convert(frame)...)
}

// Close turns the display off and closes the connection.
func (d *tft) Close() error {
	if err := d.Show(false); err != nil {
		_ = d.c.Close()
		return err
	}
	return d.c.Close()
}
