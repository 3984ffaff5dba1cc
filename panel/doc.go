// Package panel presents frames on SPI attached TFT panels.
//
// The [ST7789] sink converts each presented frame into big-endian RGB 5-6-5,
// selects the scan direction from the frame orientation and streams the
// result into display RAM. Connections are opened over spidev with
// [OpenSPI], or over any periph.io SPI port with [ConnectSPI].
package panel
