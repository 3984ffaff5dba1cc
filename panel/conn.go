package panel

import (
	"errors"
	"fmt"
	"slices"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/pixels"
	"github.com/BeatGlow/pixels/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("panel: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("panel: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	SpeedHz   uint32
	DataLow   bool
	BatchSize uint
	Reset     gpio.PinOut
	DC        gpio.PinOut
	CE        gpio.PinOut
}

// DefaultSPIConfig are the default configuration values. The pins resolve
// after the host drivers are initialized, so callers on real hardware should
// look them up again after host.Init.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	SpeedHz:   40_000_000,
	BatchSize: 4096,
	Reset:     gpioreg.ByName("GPIO25"),
	DC:        gpioreg.ByName("GPIO24"),
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	16_000_000,
	20_000_000,
	24_000_000,
	28_000_000,
	32_000_000,
	36_000_000,
	40_000_000,
	48_000_000,
	50_000_000,
	52_000_000,
}

// limits returns the bus speed and batch size, using the defaults for unset
// values. The config itself is not modified.
func (config *SPIConfig) limits() (speed uint32, batchSize int) {
	if speed = config.SpeedHz; speed == 0 {
		speed = DefaultSPIConfig.SpeedHz
	}
	if batchSize = int(config.BatchSize); batchSize == 0 {
		batchSize = int(DefaultSPIConfig.BatchSize)
	}
	return
}

func validPin(pin gpio.PinOut) bool {
	return pin != nil && pin != gpio.INVALID
}

// spiConn drives the data/command and chip enable pins around raw bus writes.
type spiConn struct {
	name      string
	write     func([]byte) error
	close     func() error
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcValid   bool
	cs        gpio.PinOut
	dataLow   bool
	batchSize int
}

// OpenSPI opens a spidev bus in SPI mode 3.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	if !validPin(config.Reset) {
		return nil, ErrResetPin
	}
	if !validPin(config.DC) {
		return nil, ErrDCPin
	}

	speed, batchSize := config.limits()
	if !slices.Contains(ValidSPISpeeds, speed) {
		return nil, fmt.Errorf("panel: invalid SPI speed %dHz", speed)
	}

	c, err := conn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}
	if err = c.SetMode(conn.SPIMode3); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetMaxSpeed(int(speed)); err != nil {
		_ = c.Close()
		return nil, err
	}

	return &spiConn{
		name: fmt.Sprintf("SPI bus %s", c),
		write: func(b []byte) error {
			_, err := c.Write(b)
			return err
		},
		close:     c.Close,
		batchSize: batchSize,
		dataLow:   config.DataLow,
		reset:     config.Reset,
		dc:        config.DC,
		cs:        config.CE,
	}, nil
}

// ConnectSPI connects to a periph SPI port in mode 3, such as one returned by
// spireg.Open after host.Init.
func ConnectSPI(port spi.PortCloser, config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if !validPin(config.Reset) {
		return nil, ErrResetPin
	}
	if !validPin(config.DC) {
		return nil, ErrDCPin
	}

	speed, batchSize := config.limits()

	c, err := port.Connect(physic.Frequency(speed)*physic.Hertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("panel: connect %s: %w", port, err)
	}
	if limits, ok := c.(interface{ MaxTxSize() int }); ok {
		if n := limits.MaxTxSize(); n > 0 && n < batchSize {
			batchSize = n
		}
	}

	return &spiConn{
		name: fmt.Sprintf("SPI port %s", port),
		write: func(b []byte) error {
			return c.Tx(b, nil)
		},
		close:     port.Close,
		batchSize: batchSize,
		dataLow:   config.DataLow,
		reset:     config.Reset,
		dc:        config.DC,
		cs:        config.CE,
	}, nil
}

func (c *spiConn) String() string {
	return c.name
}

func (c *spiConn) Close() error {
	return c.close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcValid || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel, c.dcValid = level, true
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Command(cmnd byte, data ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.updateDC(gpio.Level(c.dataLow)); err != nil {
		return
	}
	if err = c.write([]byte{cmnd}); err != nil {
		return
	}
	if len(data) > 0 {
		if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
			return
		}
		if err = c.writeChunked(data); err != nil {
			return
		}
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.writeChunked(data); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) writeChunked(data []byte) error {
	if len(data) <= c.batchSize {
		return c.write(data)
	}

	pixels.Logger().Debug("chunked write", "bytes", len(data), "chunks", (len(data)+c.batchSize-1)/c.batchSize)
	for chunk := range slices.Chunk(data, c.batchSize) {
		if err := c.write(chunk); err != nil {
			return err
		}
	}
	return nil
}
