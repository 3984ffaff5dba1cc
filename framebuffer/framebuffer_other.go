//go:build !linux

package framebuffer

import "github.com/BeatGlow/pixels"

// Device is unavailable on this platform.
type Device struct{}

// Open always fails with ErrNotSupported.
func Open(name string) (*Device, error) {
	return nil, ErrNotSupported
}

func (*Device) Present(pixels.Frame) error { return ErrNotSupported }

func (*Device) Close() error { return nil }
