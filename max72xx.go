// Package max72xx drives cascaded MAX7219/MAX7221 8x8 LED matrix controllers.
//
// All devices of a chain form one canvas of 8 pixel rows and 8 pixel columns
// per device. Column 0 is on device 0, the device that receives the last
// pair of bytes of every bus transaction. Pixels are addressed as (row,
// column) and row and column values are bytes with bit 0 at the lowest
// index, whatever the wiring of the matrix modules; the hardware Profile
// maps them to digit registers.
//
// The driver keeps an image of every digit register and only sends the
// digits that changed. By default every mutating call sends its changes
// before returning; with auto update off changes accumulate until Update.
//
// A Dev is not safe for concurrent use.
package max72xx

import (
	"errors"
	"fmt"
	"os"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/max72xx/font"
)

var debug bool

func init() {
	debug = os.Getenv("MAX72XX_DEBUG") != ""
}

// Device geometry.
const (
	RowSize = 8 // Pixel rows per device
	ColSize = 8 // Pixel columns per device
)

// Register opcodes.
const (
	opNoop      = 0x00
	opDigit0    = 0x01
	opDecode    = 0x09
	opIntensity = 0x0a
	opScanLimit = 0x0b
	opShutdown  = 0x0c
	opTest      = 0x0f
)

// Limits of the control registers.
const (
	MaxIntensity = 0x0f
	MaxScanLimit = 0x07
)

// MaxSpeed is the highest serial clock supported by the controllers.
const MaxSpeed = 10 * physic.MegaHertz

// Errors
var (
	ErrBounds    = errors.New("max72xx: coordinates out of display bounds")
	ErrDevice    = errors.New("max72xx: device out of range")
	ErrTransform = errors.New("max72xx: unsupported transform")
	ErrControl   = errors.New("max72xx: unsupported control request")
	ErrHalted    = errors.New("max72xx: device is closed")
)

// Bus transmits one chained transaction to all devices.
//
// spi.Conn implements Bus.
type Bus interface {
	Tx(w, r []byte) error
}

// Opts defines the options for the device.
type Opts struct {
	// Devices is the number of cascaded devices.
	Devices int

	// Hardware is the wiring of the matrix modules.
	Hardware Profile

	// FontIndex precomputes the glyph offsets of the bound font.
	FontIndex bool

	// Intensity is the initial brightness, 0-15.
	Intensity uint8

	// ScanLimit is the number of digits scanned, 1-8. Zero scans all digits.
	ScanLimit uint8

	// Speed of the serial clock used by NewSPI. Zero selects MaxSpeed.
	Speed physic.Frequency
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Devices:   1,
	Hardware:  ParolaHW,
	FontIndex: true,
	Intensity: MaxIntensity / 2,
	ScanLimit: RowSize,
	Speed:     MaxSpeed,
}

// Dev is a chain of MAX72xx devices.
type Dev struct {
	c       Bus
	hw      Profile
	buf     []deviceBuffer
	tx      []byte
	update  bool
	wrap    bool
	shifter Shifter
	font    *font.Font
	indexed bool
	closed  bool
}

// NewSPI returns a Dev driving the devices on a SPI port.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	speed := opts.Speed
	if speed == 0 || speed > MaxSpeed {
		speed = MaxSpeed
	}
	// The controllers shift data in on the rising clock edge, MSB first.
	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max72xx: %w", err)
	}
	return New(c, opts)
}

// New returns a Dev sending its transactions to c and puts all devices in
// matrix mode: test off, scan limit and intensity from opts, decode off,
// cleared and shown.
func New(c Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Devices <= 0 {
		return nil, fmt.Errorf("max72xx: invalid number of cascaded devices %d", opts.Devices)
	}

	d := &Dev{
		c:       c,
		hw:      opts.Hardware,
		buf:     make([]deviceBuffer, opts.Devices),
		tx:      make([]byte, 2*opts.Devices),
		update:  true,
		indexed: opts.FontIndex,
	}
	d.font = font.New(font.Default, d.indexed)

	scanLimit := int(opts.ScanLimit) - 1
	if opts.ScanLimit == 0 {
		scanLimit = MaxScanLimit
	}
	for _, command := range []struct {
		req   ControlRequest
		value int
	}{
		{TestControl, Off},
		{ScanLimitControl, scanLimit},
		{IntensityControl, int(opts.Intensity)},
		{DecodeControl, Off},
	} {
		if err := d.ControlAll(command.req, command.value); err != nil {
			return nil, err
		}
	}
	if err := d.Clear(); err != nil {
		return nil, err
	}
	if err := d.ControlAll(ShutdownControl, Off); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("MAX72xx x%d (%s)", len(d.buf), d.hw)
}

// Devices returns the number of cascaded devices.
func (d *Dev) Devices() int {
	return len(d.buf)
}

// Columns returns the number of pixel columns of the chain.
func (d *Dev) Columns() int {
	return len(d.buf) * ColSize
}

// Hardware returns the wiring profile.
func (d *Dev) Hardware() Profile {
	return d.hw
}

// Halt shuts all devices down. The buffer is kept, Show(true) resumes.
func (d *Dev) Halt() error {
	return d.ControlAll(ShutdownControl, On)
}

// Close clears and shuts down all devices. All calls afterwards return
// ErrHalted. The bus is owned by the caller and is left open.
func (d *Dev) Close() error {
	if d.closed {
		return nil
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.Halt(); err != nil {
		return err
	}
	d.closed = true
	return nil
}

func (d *Dev) ready() error {
	if d.closed {
		return ErrHalted
	}
	return nil
}

func (d *Dev) checkDevice(dev int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if dev < 0 || dev >= len(d.buf) {
		return fmt.Errorf("%w: device %d of %d", ErrDevice, dev, len(d.buf))
	}
	return nil
}

func (d *Dev) checkRange(start, end int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if start < 0 || end >= len(d.buf) || end < start {
		return fmt.Errorf("%w: devices %d-%d of %d", ErrDevice, start, end, len(d.buf))
	}
	return nil
}

func (d *Dev) checkPoint(row, col int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if row < 0 || row >= RowSize || col < 0 || col >= d.Columns() {
		return fmt.Errorf("%w: row %d column %d", ErrBounds, row, col)
	}
	return nil
}
