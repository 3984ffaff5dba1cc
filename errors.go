package pixels

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrSize      = errors.New("pixels: surface dimensions must be positive")
	ErrFrameSize = errors.New("pixels: source frame size mismatch")
)

// FrameSizeError reports a whole-frame write whose source does not hold
// exactly one frame.
type FrameSizeError struct {
	Op   string // Operation that was attempted
	Want int    // Expected source length in bytes
	Got  int    // Actual source length in bytes
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("pixels: %s: source is %d bytes, a full frame is %d bytes", e.Op, e.Got, e.Want)
}

func (e *FrameSizeError) Unwrap() error {
	return ErrFrameSize
}
