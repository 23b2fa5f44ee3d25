// Package config holds the YAML configuration of the max72xx-demo tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/max72xx"
)

// SPI drivers.
const (
	BusPeriph = "periph"
	BusSpidev = "spidev"
)

// Demo modes.
const (
	ModeScroll    = "scroll"
	ModeClock     = "clock"
	ModeTransform = "transform"
	ModeTest      = "test"
)

// Config is the demo configuration.
type Config struct {
	// Devices is the number of cascaded matrices.
	Devices int `yaml:"devices"`

	// Profile names the module wiring, see max72xx.ProfileByName.
	Profile string `yaml:"profile"`

	// Bus selects the SPI driver: "periph" opens SPIPort through the periph
	// registry, "spidev" opens SPIBus and SPIDevice directly with LoadPin as
	// the latch.
	Bus string `yaml:"bus"`

	// SPIPort is the periph SPI port name, empty for the first port.
	SPIPort string `yaml:"spi_port"`

	SPIBus    int    `yaml:"spi_bus"`
	SPIDevice int    `yaml:"spi_device"`
	LoadPin   string `yaml:"load_pin"`

	// SpeedHz is the SPI clock.
	SpeedHz int64 `yaml:"speed_hz"`

	// Intensity is the brightness, 0-15.
	Intensity uint8 `yaml:"intensity"`

	// Wrap enables wrap around shifting.
	Wrap bool `yaml:"wrap"`

	// Font is an optional font file (.txt definition or .bin table).
	Font string `yaml:"font,omitempty"`

	// Mode is one of scroll, clock, transform or test.
	Mode string `yaml:"mode"`

	// Text is the scroll message.
	Text string `yaml:"text"`

	// Interval is the animation step.
	Interval time.Duration `yaml:"interval"`

	// Clock is the cron schedule of clock redraws.
	Clock string `yaml:"clock"`

	// LogLevel is DEBUG, INFO or ERROR.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Devices:   4,
		Profile:   max72xx.ParolaHW.String(),
		Bus:       BusPeriph,
		LoadPin:   "GPIO8",
		SpeedHz:   int64(max72xx.MaxSpeed / physic.Hertz),
		Intensity: 4,
		Mode:      ModeScroll,
		Text:      "Hello MAX72xx! ",
		Interval:  50 * time.Millisecond,
		Clock:     "* * * * *",
		LogLevel:  "INFO",
	}
}

// Normalize fills in zero values from the defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Devices <= 0 {
		c.Devices = d.Devices
	}
	if c.Profile == "" {
		c.Profile = d.Profile
	}
	if c.Bus == "" {
		c.Bus = d.Bus
	}
	if c.LoadPin == "" {
		c.LoadPin = d.LoadPin
	}
	if c.SpeedHz <= 0 {
		c.SpeedHz = d.SpeedHz
	}
	if c.Intensity > max72xx.MaxIntensity {
		c.Intensity = max72xx.MaxIntensity
	}
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.Clock == "" {
		c.Clock = d.Clock
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate checks the fields Normalize cannot repair.
func (c *Config) Validate() error {
	if _, err := max72xx.ProfileByName(c.Profile); err != nil {
		return err
	}
	switch c.Bus {
	case BusPeriph, BusSpidev:
	default:
		return fmt.Errorf("config: unknown bus %q", c.Bus)
	}
	if c.SpeedHz > int64(max72xx.MaxSpeed/physic.Hertz) {
		return max72xx.ErrSpeed
	}
	switch c.Mode {
	case ModeScroll, ModeClock, ModeTransform, ModeTest:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if _, err := cron.ParseStandard(c.Clock); err != nil {
		return fmt.Errorf("config: clock schedule: %w", err)
	}
	return nil
}

// Load reads the configuration at path. A missing file is created with the
// defaults and 0600 permissions.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			return cfg, Save(path, cfg)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically through a temporary file.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".max72xx-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *Config) Save(path string) error {
	return Save(path, c)
}
