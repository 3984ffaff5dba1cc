package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/pixels"
	"github.com/BeatGlow/pixels/conn"
	"github.com/BeatGlow/pixels/draw"
	"github.com/BeatGlow/pixels/framebuffer"
	"github.com/BeatGlow/pixels/panel"
	"github.com/BeatGlow/pixels/pixel"
	"github.com/BeatGlow/pixels/window"
)

func main() {
	widthFlag := flag.Int("width", pixels.DefaultConfig.Width, "Display width")
	heightFlag := flag.Int("height", pixels.DefaultConfig.Height, "Display height")
	rotateFlag := flag.Int("rotate", 0, "Display rotation in degrees")
	addressingFlag := flag.String("addressing", "row", "Whole-frame addressing (fixed or row)")
	scaleFlag := flag.Int("scale", 2, "Window scale")
	fbFlag := flag.String("fb", "/dev/fb0", "Framebuffer device")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	spiPortFlag := flag.String("spi-port", "", "periph.io SPI port name (default: use spidev)")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "", "Chip enable GPIO pin")
	blPinFlag := flag.String("bl", "GPIO19", "Backlight GPIO pin")
	qrFlag := flag.String("qr", "https://github.com/BeatGlow/pixels", "QR code content")
	framesFlag := flag.Int("frames", 0, "Number of frames to render (0: until interrupted)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <window|fb|st7735|st7789|memory>\n", os.Args[0])
		os.Exit(1)
	}

	var addressing pixels.Addressing
	switch *addressingFlag {
	case "fixed", "fixed-stride":
		addressing = pixels.FixedStride
	case "row", "row-stride":
		addressing = pixels.RowStride
	default:
		fatal(fmt.Errorf("invalid addressing %q specified", *addressingFlag))
	}

	var (
		config = &pixels.Config{
			Width:       *widthFlag,
			Height:      *heightFlag,
			Orientation: pixels.OrientationFromDegrees(*rotateFlag),
			Addressing:  addressing,
		}
		sink pixels.Sink
		win  *window.Window
		err  error
	)
	switch kind := strings.ToLower(flag.Arg(0)); kind {
	case "window":
		win = window.New("pixels", *widthFlag, *heightFlag, *scaleFlag)
		sink = win
	case "fb":
		sink, err = framebuffer.Open(*fbFlag)
	case "st7735", "st7789":
		sink, err = openPanel(kind,
			*spiPortFlag, *spiBusFlag, *spiDeviceFlag,
			*resetPinFlag, *dcPinFlag, *cePinFlag, *blPinFlag)
	case "memory":
		sink = new(pixels.MemorySink)
	default:
		err = fmt.Errorf("unsupported sink %q", kind)
	}
	if err != nil {
		fatal(err)
	}

	d, err := pixels.Open(config, sink)
	if err != nil {
		fatal(err)
	}
	defer d.Close()
	fmt.Printf("using display: %s\n", d)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if win != nil {
		// ebiten owns the main goroutine.
		go func() {
			if err := run(ctx, d, *qrFlag, *framesFlag); err != nil {
				fmt.Fprintln(os.Stderr, "error: "+err.Error())
			}
			_ = win.Close()
		}()
		if err = win.Run(); err != nil {
			fatal(err)
		}
		return
	}

	fmt.Println("hit control-c to stop...")
	if err = run(ctx, d, *qrFlag, *framesFlag); err != nil {
		fatal(err)
	}
	if m, ok := sink.(*pixels.MemorySink); ok {
		fmt.Printf("presented %d frames\n", m.Count())
	}
}

func openPanel(driver, port string, bus, device int, reset, dc, ce, bl string) (pixels.Sink, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	spiConfig := &panel.SPIConfig{
		Bus:    bus,
		Device: device,
		Reset:  gpioreg.ByName(reset),
		DC:     gpioreg.ByName(dc),
	}
	if ce != "" {
		spiConfig.CE = gpioreg.ByName(ce)
	}

	var (
		c   panel.Conn
		err error
	)
	if port != "" {
		p, err := spireg.Open(port)
		if err != nil {
			return nil, err
		}
		if c, err = panel.ConnectSPI(p, spiConfig); err != nil {
			_ = p.Close()
			return nil, err
		}
	} else {
		fmt.Printf("using spidev: %s\n", conn.SPIPath(bus, device))
		if c, err = panel.OpenSPI(spiConfig); err != nil {
			return nil, err
		}
	}
	fmt.Printf("using connection: %s\n", c)

	config := &panel.Config{}
	if bl != "" {
		config.Backlight = gpioreg.ByName(bl)
	}
	var d pixels.Sink
	if driver == "st7735" {
		d, err = panel.NewST7735(c, config)
	} else {
		d, err = panel.NewST7789(c, config)
	}
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	fmt.Printf("using driver: %s\n", d)
	return d, nil
}

func run(ctx context.Context, d *pixels.Display, content string, frames int) error {
	var (
		width, height = d.Size()
		src           = make([]byte, width*height*pixel.WordSize)
		ticker        = time.NewTicker(50 * time.Millisecond)
		border        = image.Rect(0, 0, width, height)
		white         = color.White
	)
	defer ticker.Stop()

	qr, qrArea, err := draw.QRCode(content, image.Pt(8, 24), 2, color.Black)
	if err != nil {
		return err
	}

	for offset := 0; frames == 0 || offset < frames; offset++ {
		// Gradient as a whole frame.
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixel.PutWord(src, x+y*width, pixel.MakeWord(
					uint8(x+y+offset),
					uint8(x-y+offset),
					uint8(x+y-offset),
					pixel.Opaque))
			}
		}
		if err = d.WriteBuffer(src); err != nil {
			return err
		}

		// Overlays as point streams.
		d.DrawPoints(draw.Concat(
			draw.RoundedRectangle(border, 8, white),
			draw.Text(nil, image.Pt(8, 16), fmt.Sprintf("frame %d", offset), white),
			draw.Box(qrArea, white),
			qr,
		))

		if err = d.Present(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
