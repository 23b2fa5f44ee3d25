// Package ioctl encodes and performs Linux ioctl requests.
package ioctl

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Mode is the IOCTL mode.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

func (c Command) String() string {
	var (
		mode = c.Mode()
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, c.Size(), uintptr(cmd))
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(cmd&0xffff)
}

// For encodes a command transferring a value of type T.
func For[T any](mode Mode, cmd uintptr) Command {
	var v T
	return Encode(mode, uint16(unsafe.Sizeof(v)), cmd)
}

// Get reads a value of type T.
func Get[T any](fd uintptr, cmd uintptr, v *T) error {
	return Do(fd, For[T](Read, cmd), unsafe.Pointer(v))
}

// Set writes a value of type T.
func Set[T any](fd uintptr, cmd uintptr, v *T) error {
	return Do(fd, For[T](Write, cmd), unsafe.Pointer(v))
}

// Do executes the ioctl call.
func Do(fd uintptr, command Command, ptr unsafe.Pointer) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), uintptr(ptr))
	if errno != 0 {
		return fmt.Errorf("%s failed: %v", command, errno)
	}
	return nil
}
