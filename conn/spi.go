// Package conn implements a spidev SPI bus without the periph host drivers.
//
// Transfers are submitted with SPI_IOC_MESSAGE, so every Tx is one chip
// select cycle of the controller.
package conn

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/BeatGlow/max72xx/internal/ioctl"
)

const spiDevPath = "/dev/spidev"

// Clock polarity and phase bits of <linux/spi/spidev.h>.
const (
	CPHA = 0x01
	CPOL = 0x02
)

// Mode is a SPI clock mode.
type Mode uint8

const (
	Mode0 Mode = 0
	Mode1 Mode = CPHA
	Mode2 Mode = CPOL
	Mode3 Mode = CPOL | CPHA
)

func (m Mode) String() string {
	return fmt.Sprintf("Mode%d", uint8(m&(CPOL|CPHA)))
}

// spidev ioctl numbers, type 'k'.
const (
	spiIOCMessage     = 0x6b00
	spiIOCMode        = 0x6b01
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// ErrLength is returned by Tx when the read buffer is not as long as the
// write buffer.
var ErrLength = errors.New("conn: SPI read and write buffers differ in length")

// transfer is struct spi_ioc_transfer.
type transfer struct {
	txBuf       uint64
	rxBuf       uint64
	length      uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	txNbits     uint8
	rxNbits     uint8
	wordDelay   uint8
	_           uint8
}

// SPI is an open spidev device node.
type SPI struct {
	f     *os.File
	fd    uintptr
	mode  Mode
	bits  uint8
	speed uint32
}

// DevicePath returns the spidev node of a bus and device.
func DevicePath(bus, device int) string {
	return fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
}

// OpenSPI opens device (usually the chip enable line) of a numbered bus and
// reads its current settings.
func OpenSPI(bus, device int) (*SPI, error) {
	f, err := os.OpenFile(DevicePath(bus, device), os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{f: f, fd: f.Fd()}
	for _, get := range []func() error{
		func() error { return ioctl.Get(c.fd, spiIOCMode, &c.mode) },
		func() error { return ioctl.Get(c.fd, spiIOCBitsPerWord, &c.bits) },
		func() error { return ioctl.Get(c.fd, spiIOCMaxSpeedHz, &c.speed) },
	} {
		if err = get(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("conn: %s: %w", f.Name(), err)
		}
	}
	return c, nil
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("%s (%s, %d bits, %dHz)", c.f.Name(), c.mode, c.bits, c.speed)
}

func (c *SPI) Mode() Mode {
	return c.mode
}

// SetMode sets the clock mode and reads it back.
func (c *SPI) SetMode(mode Mode) error {
	mode &= CPOL | CPHA
	if err := ioctl.Set(c.fd, spiIOCMode, &mode); err != nil {
		return err
	}

	var active Mode
	if err := ioctl.Get(c.fd, spiIOCMode, &active); err != nil {
		return err
	}
	if active&(CPOL|CPHA) != mode {
		return fmt.Errorf("conn: SPI mode %s requested, %s in use", mode, active)
	}
	c.mode = active
	return nil
}

func (c *SPI) BitsPerWord() uint8 {
	return c.bits
}

func (c *SPI) SetBitsPerWord(bits uint8) error {
	if bits < 8 || bits > 32 {
		return fmt.Errorf("conn: SPI bits per word must be 8-32, got %d", bits)
	}
	if c.bits == bits {
		return nil
	}
	if err := ioctl.Set(c.fd, spiIOCBitsPerWord, &bits); err != nil {
		return err
	}
	c.bits = bits
	return nil
}

// MaxSpeed returns the clock in Hz.
func (c *SPI) MaxSpeed() uint32 {
	return c.speed
}

func (c *SPI) SetMaxSpeed(hz uint32) error {
	if hz == 0 || c.speed == hz {
		return nil
	}
	if err := ioctl.Set(c.fd, spiIOCMaxSpeedHz, &hz); err != nil {
		return err
	}
	c.speed = hz
	return nil
}

// Tx performs one full duplex transfer. r is either empty or as long as w.
func (c *SPI) Tx(w, r []byte) error {
	if len(w) == 0 {
		return nil
	}
	if len(r) != 0 && len(r) != len(w) {
		return fmt.Errorf("%w: %d != %d", ErrLength, len(r), len(w))
	}

	t := transfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&w[0]))),
		length:      uint32(len(w)),
		speedHz:     c.speed,
		bitsPerWord: c.bits,
	}
	if len(r) != 0 {
		t.rxBuf = uint64(uintptr(unsafe.Pointer(&r[0])))
	}
	err := ioctl.Do(c.fd, message(1), unsafe.Pointer(&t))
	runtime.KeepAlive(w)
	runtime.KeepAlive(r)
	return err
}

// Write sends b as one transfer.
func (c *SPI) Write(b []byte) (int, error) {
	if err := c.Tx(b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}

// message is SPI_IOC_MESSAGE(n).
func message(n int) ioctl.Command {
	return ioctl.Encode(ioctl.Write, uint16(n*int(unsafe.Sizeof(transfer{}))), spiIOCMessage)
}
