package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/max72xx"
	"github.com/BeatGlow/max72xx/font/raster"
	"github.com/BeatGlow/max72xx/internal/config"
	appLog "github.com/BeatGlow/max72xx/internal/log"
)

func main() {
	var (
		configFlag    = flag.String("config", "max72xx.yaml", "Configuration file, created on first run")
		devicesFlag   = flag.Int("devices", 0, "Number of cascaded devices")
		profileFlag   = flag.String("profile", "", "Hardware profile (parola, generic, icstation, fc16)")
		busFlag       = flag.String("bus", "", "SPI driver (periph, spidev)")
		portFlag      = flag.String("port", "", "periph SPI port name")
		modeFlag      = flag.String("mode", "", "Demo mode (scroll, clock, transform, test)")
		textFlag      = flag.String("text", "", "Scroll text")
		fontFlag      = flag.String("font", "", "Font file (.txt, .go, .bin, .ttf, .otf, .bdf)")
		fontSizeFlag  = flag.Float64("font-size", 8, "TrueType font size in points")
		intensityFlag = flag.Int("intensity", -1, "Brightness (0-15)")
		wrapFlag      = flag.Bool("wrap", false, "Wrap around shifted columns")
		debugFlag     = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", *configFlag)
		os.Exit(1)
	}
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "devices":
			cfg.Devices = *devicesFlag
		case "profile":
			cfg.Profile = *profileFlag
		case "bus":
			cfg.Bus = *busFlag
		case "port":
			cfg.SPIPort = *portFlag
		case "mode":
			cfg.Mode = *modeFlag
		case "text":
			cfg.Text = *textFlag
		case "font":
			cfg.Font = *fontFlag
		case "intensity":
			cfg.Intensity, flagErr = intensity(*intensityFlag)
		case "wrap":
			cfg.Wrap = *wrapFlag
		case "debug":
			if *debugFlag {
				cfg.LogLevel = string(appLog.LevelDebug)
			}
		}
	})
	if flagErr != nil {
		fatal("invalid flag", flagErr)
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		fatal("invalid config", err)
	}

	level, err := appLog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fatal("invalid log level", err)
	}
	appLog.SetLevel(level)
	appLog.Info("effective config",
		"devices", cfg.Devices,
		"profile", cfg.Profile,
		"bus", cfg.Bus,
		"mode", cfg.Mode,
		"intensity", cfg.Intensity,
		"wrap", cfg.Wrap,
		"font", cfg.Font,
	)

	d, bus, err := open(cfg)
	if err != nil {
		fatal("failed to open display", err)
	}
	defer bus.Close()
	appLog.Info("connected", "display", d.String())

	if cfg.Font != "" {
		def, err := raster.ReadFile(cfg.Font, *fontSizeFlag, nil)
		if err != nil {
			fatal("failed to load font", err)
		}
		d.SetFont(def.Table())
		appLog.Debug("font loaded", "name", def.Name, "max_width", d.MaxFontWidth())
	}
	d.SetWrapAround(cfg.Wrap)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	a := &app{d: d, cfg: cfg}
	switch cfg.Mode {
	case config.ModeScroll:
		err = a.scroll(ctx)
	case config.ModeClock:
		err = a.clock(ctx)
	case config.ModeTransform:
		err = a.transform(ctx)
	case config.ModeTest:
		err = a.test(ctx)
	}
	if err != nil {
		appLog.Error("demo failed", err, "mode", cfg.Mode)
	}

	if err := d.Close(); err != nil {
		appLog.Error("close failed", err)
	}
	appLog.Info("max72xx-demo exiting")
}

// open connects the display. The returned closer releases the bus.
func open(cfg *config.Config) (*max72xx.Dev, io.Closer, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}

	hw, err := max72xx.ProfileByName(cfg.Profile)
	if err != nil {
		return nil, nil, err
	}
	opts := max72xx.DefaultOpts
	opts.Devices = cfg.Devices
	opts.Hardware = hw
	opts.Intensity = cfg.Intensity
	opts.Speed = physic.Frequency(cfg.SpeedHz) * physic.Hertz

	switch cfg.Bus {
	case config.BusSpidev:
		c, err := max72xx.OpenSPI(&max72xx.SPIConfig{
			Bus:     cfg.SPIBus,
			Device:  cfg.SPIDevice,
			SpeedHz: uint32(cfg.SpeedHz),
			Load:    gpioreg.ByName(cfg.LoadPin),
		})
		if err != nil {
			return nil, nil, err
		}
		appLog.Debug("spidev opened", "conn", c.String())
		d, err := max72xx.New(c, &opts)
		if err != nil {
			_ = c.Close()
			return nil, nil, err
		}
		return d, c, nil

	default:
		p, err := spireg.Open(cfg.SPIPort)
		if err != nil {
			return nil, nil, err
		}
		d, err := max72xx.NewSPI(p, &opts)
		if err != nil {
			_ = p.Close()
			return nil, nil, err
		}
		return d, p, nil
	}
}

// intensity converts the -intensity flag value.
func intensity(v int) (uint8, error) {
	if v < 0 || v > max72xx.MaxIntensity {
		return 0, fmt.Errorf("intensity %d out of range 0-%d", v, max72xx.MaxIntensity)
	}
	return uint8(v), nil
}

func fatal(msg string, err error) {
	appLog.Error(msg, err)
	os.Exit(1)
}

// app serializes display access between the animation loop and the cron
// scheduler.
type app struct {
	mu  sync.Mutex
	d   *max72xx.Dev
	cfg *config.Config
}

func (a *app) every(ctx context.Context, interval time.Duration, step func() error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.mu.Lock()
			err := step()
			a.mu.Unlock()
			if err != nil {
				return err
			}
		}
	}
}

// columns renders text into a column stream with one blank column between
// glyphs.
func (a *app) columns(text string) []byte {
	var (
		out   []byte
		glyph = make([]byte, a.d.MaxFontWidth())
	)
	for i := 0; i < len(text); i++ {
		n := a.d.Char(text[i], glyph)
		out = append(out, glyph[:n]...)
		out = append(out, 0)
	}
	return out
}

// scroll feeds the text in at column 0. Glyphs run towards higher columns,
// the same order SetChar lays them out in.
func (a *app) scroll(ctx context.Context) error {
	stream := a.columns(a.cfg.Text)
	if len(stream) == 0 {
		return fmt.Errorf("nothing to scroll in %q", a.cfg.Text)
	}

	var pos int
	a.d.SetShifter(max72xx.ShiftFuncs{
		In: func(dev int, t max72xx.Transform) byte {
			col := stream[pos%len(stream)]
			pos++
			return col
		},
		Out: func(dev int, t max72xx.Transform, data byte) {
			if data != 0 {
				appLog.Debug("shifted out", "dev", dev, "transform", t, "data", fmt.Sprintf("%#02x", data))
			}
		},
	})
	defer a.d.SetShifter(nil)

	return a.every(ctx, a.cfg.Interval, func() error {
		return a.d.TransformAll(max72xx.ShiftRight)
	})
}

// text draws text from the leftmost column on in a single update.
func (a *app) text(text string) error {
	if err := a.d.SetAutoUpdate(false); err != nil {
		return err
	}
	if err := a.d.Clear(); err != nil {
		return err
	}
	col := a.d.Columns() - 1
	for i := 0; i < len(text) && col >= 0; i++ {
		n, err := a.d.SetChar(col, text[i])
		if err != nil {
			return err
		}
		col -= n + 1
	}
	return a.d.SetAutoUpdate(true)
}

func (a *app) clock(ctx context.Context) error {
	redraw := func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		now := time.Now().Format("15:04")
		if err := a.text(now); err != nil {
			appLog.Error("clock redraw failed", err, "time", now)
			return
		}
		appLog.Debug("clock redraw", "time", now)
	}

	c := cron.New()
	if _, err := c.AddFunc(a.cfg.Clock, redraw); err != nil {
		return err
	}
	redraw()
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

var transforms = []max72xx.Transform{
	max72xx.ShiftLeft,
	max72xx.ShiftRight,
	max72xx.ShiftUp,
	max72xx.ShiftDown,
	max72xx.FlipLeftRight,
	max72xx.FlipUpDown,
	max72xx.RotateClockwise,
	max72xx.Invert,
}

func (a *app) transform(ctx context.Context) error {
	if err := a.text(a.cfg.Text); err != nil {
		return err
	}

	var step int
	return a.every(ctx, 10*a.cfg.Interval, func() error {
		t := transforms[step%len(transforms)]
		step++
		appLog.Debug("transform", "transform", t)
		return a.d.TransformAll(t)
	})
}

func (a *app) test(ctx context.Context) error {
	if err := a.d.ControlAll(max72xx.TestControl, max72xx.On); err != nil {
		return err
	}
	<-ctx.Done()
	return a.d.ControlAll(max72xx.TestControl, max72xx.Off)
}
