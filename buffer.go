package max72xx

// allChanged marks all digits of a device dirty.
const allChanged = 0xff

// deviceBuffer is the hardware image of one device: one byte per digit
// register and one dirty bit per digit.
type deviceBuffer struct {
	dig     [RowSize]byte
	changed uint8
}

// get returns the stored byte of a digit.
func (b *deviceBuffer) get(digit int) byte {
	return b.dig[digit]
}

// set stores a digit byte and marks the digit dirty if the byte changed.
func (b *deviceBuffer) set(digit int, value byte) {
	if b.dig[digit] == value {
		return
	}
	b.dig[digit] = value
	b.changed |= 1 << digit
}

// setMask turns the bits in mask on or off.
func (b *deviceBuffer) setMask(digit int, mask byte, on bool) {
	if on {
		b.set(digit, b.dig[digit]|mask)
	} else {
		b.set(digit, b.dig[digit]&^mask)
	}
}

func (b *deviceBuffer) dirty(digit int) bool {
	return b.changed&(1<<digit) != 0
}

// clear zeroes all digits and marks them dirty regardless of their contents.
func (b *deviceBuffer) clear() {
	b.dig = [RowSize]byte{}
	b.changed = allChanged
}
