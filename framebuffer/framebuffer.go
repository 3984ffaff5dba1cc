// Package framebuffer presents frames on the operating system's native
// framebuffer device.
//
// This requires framebuffer device support in the operating system. The device
// is opened with [Open] and can then be used as the sink of a display. Frames
// are converted into the device color model on present and clipped to the
// device resolution.
package framebuffer

import "errors"

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported on this platform")
	ErrColorModel   = errors.New("framebuffer: unsupported color model")
)
