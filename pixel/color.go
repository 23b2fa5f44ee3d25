package pixel

import (
	"fmt"
	"image/color"
)

// MonoModel converts any color to a lit or unlit LED, lighting colors with
// at least half luminance.
var MonoModel color.Model = Threshold(0x8000)

var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono is the color of a single LED.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func (c Mono) String() string {
	if c.On {
		return "on"
	}
	return "off"
}

// Threshold is a color.Model lighting an LED when the 16-bit luma of a color
// reaches the threshold. Transparent colors are always off.
type Threshold uint16

// Convert returns the Mono color of c.
func (t Threshold) Convert(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// JFIF luma coefficients, 19595 + 38470 + 7471 = 65536.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Mono{On: y >= uint32(t)}
}

func (t Threshold) String() string {
	return fmt.Sprintf("Threshold(%#04x)", uint16(t))
}

// IsOn reports if c is rendered as a lit LED by MonoModel.
func IsOn(c color.Color) bool {
	return MonoModel.Convert(c).(Mono).On
}
