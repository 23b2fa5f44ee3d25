package max72xx

import (
	"fmt"
	"strings"
)

// Profile describes how the LED matrix of a module is wired to its
// controller. Every combination of the three axes is a valid profile.
type Profile struct {
	// RowsAreDigits is set when a pixel row is stored in one digit register.
	// Otherwise a pixel column is stored in one digit.
	RowsAreDigits bool

	// ReverseRows maps pixel row r to hardware row 7-r.
	ReverseRows bool

	// ReverseColumns maps pixel column c to hardware column 7-c.
	ReverseColumns bool
}

// Known module wirings.
var (
	ParolaHW    = Profile{RowsAreDigits: true, ReverseColumns: true}
	GenericHW   = Profile{ReverseColumns: true}
	ICStationHW = Profile{RowsAreDigits: true, ReverseRows: true, ReverseColumns: true}
	FC16HW      = Profile{RowsAreDigits: true}
)

var profileNames = map[string]Profile{
	"parola":    ParolaHW,
	"generic":   GenericHW,
	"icstation": ICStationHW,
	"fc16":      FC16HW,
}

// ProfileByName returns a known module wiring by its (case insensitive) name.
func ProfileByName(name string) (Profile, error) {
	p, ok := profileNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("max72xx: unknown hardware profile %q", name)
	}
	return p, nil
}

func (p Profile) String() string {
	switch p {
	case ParolaHW:
		return "Parola"
	case GenericHW:
		return "Generic"
	case ICStationHW:
		return "ICStation"
	case FC16HW:
		return "FC16"
	default:
		return fmt.Sprintf("Profile(digits=%s, reverse rows=%t, reverse columns=%t)",
			p.digitAxis(), p.ReverseRows, p.ReverseColumns)
	}
}

func (p Profile) digitAxis() string {
	if p.RowsAreDigits {
		return "rows"
	}
	return "columns"
}

// Address is a hardware location on one device.
type Address struct {
	// Digit register, 0-7.
	Digit uint8

	// Segment bit within the digit register, 0-7.
	Segment uint8
}

// Mask is the segment bit of the address within its digit byte.
func (a Address) Mask() byte {
	return 1 << a.Segment
}

func (a Address) String() string {
	return fmt.Sprintf("digit %d segment %d", a.Digit, a.Segment)
}

// HardwareRow maps a pixel row to the hardware row index. The hardware row is
// the digit when rows are digits, or the segment otherwise. The mapping is
// its own inverse.
func (p Profile) HardwareRow(row int) int {
	if p.ReverseRows {
		return RowSize - 1 - row
	}
	return row
}

// HardwareColumn maps a device local pixel column to the hardware column
// index. The mapping is its own inverse.
func (p Profile) HardwareColumn(col int) int {
	if p.ReverseColumns {
		return ColSize - 1 - col
	}
	return col
}

// ToHardware maps a pixel on one device to its hardware address. Both
// coordinates must be in [0,8).
func (p Profile) ToHardware(row, col int) Address {
	var (
		r = uint8(p.HardwareRow(row))
		c = uint8(p.HardwareColumn(col))
	)
	if p.RowsAreDigits {
		return Address{Digit: r, Segment: c}
	}
	return Address{Digit: c, Segment: r}
}

// ToPixel maps a hardware address back to the pixel row and device local
// column it stores.
func (p Profile) ToPixel(a Address) (row, col int) {
	r, c := int(a.Digit), int(a.Segment)
	if !p.RowsAreDigits {
		r, c = c, r
	}
	return p.HardwareRow(r), p.HardwareColumn(c)
}
