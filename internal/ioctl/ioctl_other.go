//go:build !linux

package ioctl

import (
	"errors"
	"unsafe"
)

// Do is not supported on this platform.
func Do(fd uintptr, command Command, ptr unsafe.Pointer) error {
	return errors.ErrUnsupported
}

// Call is not supported on this platform.
func Call(fd, command, arg uintptr) error {
	return errors.ErrUnsupported
}
