package max72xx

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/max72xx/conn"
)

// Conn errors.
var (
	ErrLoadPin = errors.New("max72xx: load (CS) GPIO pin is invalid")
	ErrSpeed   = errors.New("max72xx: SPI speed exceeds 10MHz")
)

// Conn is a Bus that owns its connection.
type Conn interface {
	Bus

	String() string

	// Close the connection.
	Close() error
}

// SPIConfig describes a spidev bus connection, used when the periph host
// drivers are not available.
type SPIConfig struct {
	Bus     int
	Device  int
	SpeedHz uint32

	// Load is an optional GPIO driven as the LOAD (CS) line instead of the
	// chip enable line of the SPI controller. The devices latch on its
	// rising edge.
	Load gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:     0,
	Device:  0,
	SpeedHz: uint32(MaxSpeed / physic.Hertz),
}

type spiConn struct {
	bus  *conn.SPI
	load gpio.PinOut
}

// OpenSPI opens a spidev bus for a chain of devices.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.Load == gpio.INVALID {
		return nil, ErrLoadPin
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if physic.Frequency(config.SpeedHz)*physic.Hertz > MaxSpeed {
		return nil, fmt.Errorf("%w: %dHz", ErrSpeed, config.SpeedHz)
	}

	c, err := conn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}
	if err = c.SetMode(conn.Mode0); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetBitsPerWord(8); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetMaxSpeed(config.SpeedHz); err != nil {
		_ = c.Close()
		return nil, err
	}

	s := &spiConn{bus: c, load: config.Load}
	if err = s.latch(gpio.High); err != nil {
		_ = c.Close()
		return nil, err
	}
	return s, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) latch(level gpio.Level) error {
	if c.load == nil {
		return nil
	}
	return c.load.Out(level)
}

// Tx shifts w out while LOAD is low and latches it on the rising edge.
func (c *spiConn) Tx(w, r []byte) (err error) {
	if err = c.latch(gpio.Low); err != nil {
		return
	}
	if err = c.bus.Tx(w, r); err != nil {
		_ = c.latch(gpio.High)
		return
	}
	return c.latch(gpio.High)
}
