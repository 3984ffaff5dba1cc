package panel

import (
	"time"

	"github.com/BeatGlow/pixels"
)

// Registers (from st7735.pdf).
const (
	st7735FRMCTR1 = 0xB1 // Frame Rate Control (normal mode)
	st7735FRMCTR2 = 0xB2 // Frame Rate Control (idle mode)
	st7735FRMCTR3 = 0xB3 // Frame Rate Control (partial mode)
	st7735INVCTR  = 0xB4 // Display Inversion Control
	st7735PWCTR1  = 0xC0 // Power Control 1
	st7735PWCTR2  = 0xC1 // Power Control 2
	st7735PWCTR3  = 0xC2 // Power Control 3
	st7735PWCTR4  = 0xC3 // Power Control 4
	st7735PWCTR5  = 0xC4 // Power Control 5
	st7735VMCTR1  = 0xC5 // VCOM Control 1
	st7735GMCTRP1 = 0xE0 // Gamma (+) Correction
	st7735GMCTRN1 = 0xE1 // Gamma (-) Correction
)

// ST7735 is a sink for Sitronix ST7735 TFT controllers, up to 128x160.
type ST7735 struct {
	tft
}

var _ pixels.Sink = (*ST7735)(nil)

// NewST7735 resets and initializes the controller.
func NewST7735(c Conn, config *Config) (*ST7735, error) {
	d := &ST7735{newTFT(c, config, "st7735", 128, 160)}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ST7735) init() (err error) {
	if err = d.reset(); err != nil {
		return
	}

	if err = d.c.Command(dcsSWRESET); err != nil { // Software Reset
		return
	}
	d.sleep(150 * time.Millisecond)
	if err = d.c.Command(dcsSLPOUT); err != nil { // Sleep Out
		return
	}
	d.sleep(150 * time.Millisecond)

	if err = d.commands([][]byte{
		{st7735FRMCTR1, 0x01, 0x2C, 0x2D},
		{st7735FRMCTR2, 0x01, 0x2C, 0x2D},
		{st7735FRMCTR3, 0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D},
		{st7735INVCTR, 0x07},
		{st7735PWCTR1, 0xA2, 0x02, 0x84},
		{st7735PWCTR2, 0xC5},
		{st7735PWCTR3, 0x0A, 0x00},
		{st7735PWCTR4, 0x8A, 0x2A},
		{st7735PWCTR5, 0x8A, 0xEE},
		{st7735VMCTR1, 0x0E},
		{dcsCOLMOD, 0x05}, // 16-bits per pixel
		{st7735GMCTRP1, 0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D, 0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10},
		{st7735GMCTRN1, 0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D, 0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10},
		{dcsNORON},
		{dcsDISPON},
	}); err != nil {
		return
	}
	d.sleep(100 * time.Millisecond)

	if err = d.backlight(); err != nil {
		return
	}
	pixels.Logger().Info("panel initialized", "panel", d.String())
	return nil
}
