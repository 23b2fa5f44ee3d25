package max72xx

import "fmt"

// ControlRequest selects a device register or a driver setting.
type ControlRequest uint8

// Control requests. The requests before UpdateControl write a register on the
// addressed devices, the others change driver settings.
const (
	ShutdownControl   ControlRequest = iota // On shuts the devices down
	ScanLimitControl                        // Highest digit scanned, 0-7
	IntensityControl                        // Brightness, 0-15
	TestControl                             // On lights all LEDs
	DecodeControl                           // On enables BCD decoding of all digits
	UpdateControl                           // Auto update on or off
	WrapAroundControl                       // Shift wrap around on or off
)

// Control values.
const (
	Off = 0
	On  = 1
)

func (r ControlRequest) String() string {
	switch r {
	case ShutdownControl:
		return "shutdown"
	case ScanLimitControl:
		return "scan limit"
	case IntensityControl:
		return "intensity"
	case TestControl:
		return "test"
	case DecodeControl:
		return "decode"
	case UpdateControl:
		return "update"
	case WrapAroundControl:
		return "wrap around"
	default:
		return fmt.Sprintf("ControlRequest(%d)", uint8(r))
	}
}

// register returns the opcode and parameter for a device control request.
func (r ControlRequest) register(value int) (opcode, param byte, err error) {
	switch r {
	case ShutdownControl:
		if value == Off {
			return opShutdown, 1, nil
		}
		return opShutdown, 0, nil
	case ScanLimitControl:
		return opScanLimit, clamp(value, MaxScanLimit), nil
	case IntensityControl:
		return opIntensity, clamp(value, MaxIntensity), nil
	case TestControl:
		if value == Off {
			return opTest, 0, nil
		}
		return opTest, 1, nil
	case DecodeControl:
		if value == Off {
			return opDecode, 0, nil
		}
		return opDecode, 0xff, nil
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrControl, r)
	}
}

func clamp(value, limit int) byte {
	switch {
	case value < 0:
		return 0
	case value > limit:
		return byte(limit)
	default:
		return byte(value)
	}
}

// Control sends a control request to one device. Driver settings apply to
// the whole chain.
func (d *Dev) Control(dev int, req ControlRequest, value int) error {
	if err := d.checkDevice(dev); err != nil {
		return err
	}
	return d.control(dev, dev, req, value)
}

// ControlRange sends a control request to the devices start through end.
func (d *Dev) ControlRange(start, end int, req ControlRequest, value int) error {
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	return d.control(start, end, req, value)
}

// ControlAll sends a control request to all devices.
func (d *Dev) ControlAll(req ControlRequest, value int) error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.control(0, len(d.buf)-1, req, value)
}

func (d *Dev) control(start, end int, req ControlRequest, value int) error {
	switch req {
	case UpdateControl:
		return d.SetAutoUpdate(value != Off)
	case WrapAroundControl:
		d.SetWrapAround(value != Off)
		return nil
	}

	opcode, param, err := req.register(value)
	if err != nil {
		return err
	}
	d.resetTx()
	for dev := start; dev <= end; dev++ {
		d.put(dev, opcode, param)
	}
	return d.send()
}

// SetIntensity sets the brightness of all devices, 0-15.
func (d *Dev) SetIntensity(level uint8) error {
	return d.ControlAll(IntensityControl, int(level))
}

// Show turns all devices on or off. The display contents are kept.
func (d *Dev) Show(show bool) error {
	if show {
		return d.ControlAll(ShutdownControl, Off)
	}
	return d.ControlAll(ShutdownControl, On)
}
