package max72xx

import (
	"fmt"
	"log"
)

// Transform is a geometric transformation of the display contents.
type Transform uint8

// Transforms.
const (
	ShiftLeft       Transform = iota // Move all columns one column down
	ShiftRight                       // Move all columns one column up
	ShiftUp                          // Move all rows one row up
	ShiftDown                        // Move all rows one row down
	FlipLeftRight                    // Mirror the columns of the whole range
	FlipUpDown                       // Mirror the rows of every device
	RotateClockwise                  // Rotate every device by 90°
	Invert                           // Complement every pixel
)

func (t Transform) String() string {
	switch t {
	case ShiftLeft:
		return "shift left"
	case ShiftRight:
		return "shift right"
	case ShiftUp:
		return "shift up"
	case ShiftDown:
		return "shift down"
	case FlipLeftRight:
		return "flip left-right"
	case FlipUpDown:
		return "flip up-down"
	case RotateClockwise:
		return "rotate clockwise"
	case Invert:
		return "invert"
	default:
		return fmt.Sprintf("Transform(%d)", uint8(t))
	}
}

// Shifter supplies the data shifted into the display and receives the data
// shifted out of it, when wrap around is off. Both are called once per shift
// with the device at the edge of the shifted range; for ShiftUp and ShiftDown
// they are called for every device.
type Shifter interface {
	// ShiftIn returns the column or row to shift into the device.
	ShiftIn(dev int, t Transform) byte

	// ShiftOut receives the column or row shifted out of the device.
	ShiftOut(dev int, t Transform, data byte)
}

// ShiftFuncs is a Shifter calling functions. A nil In shifts in blank data,
// a nil Out discards the data.
type ShiftFuncs struct {
	In  func(dev int, t Transform) byte
	Out func(dev int, t Transform, data byte)
}

// ShiftIn calls In.
func (f ShiftFuncs) ShiftIn(dev int, t Transform) byte {
	if f.In == nil {
		return 0
	}
	return f.In(dev, t)
}

// ShiftOut calls Out.
func (f ShiftFuncs) ShiftOut(dev int, t Transform, data byte) {
	if f.Out != nil {
		f.Out(dev, t, data)
	}
}

// SetShifter registers the Shifter used by shifts; nil removes it.
func (d *Dev) SetShifter(s Shifter) {
	d.shifter = s
}

// Transform applies t to the devices start through end as one canvas and
// sends all changes at once.
func (d *Dev) Transform(start, end int, t Transform) error {
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	if t > Invert {
		return fmt.Errorf("%w: %s", ErrTransform, t)
	}
	d.transform(start, end, t)
	return d.sync()
}

// TransformAll applies t to all devices.
func (d *Dev) TransformAll(t Transform) error {
	return d.Transform(0, len(d.buf)-1, t)
}

// TransformDevice applies t to one device only. FlipLeftRight is only
// supported on a range of devices.
func (d *Dev) TransformDevice(dev int, t Transform) error {
	if err := d.checkDevice(dev); err != nil {
		return err
	}
	if t == FlipLeftRight || t > Invert {
		return fmt.Errorf("%w: %s on a single device", ErrTransform, t)
	}
	d.transform(dev, dev, t)
	return d.syncDevice(dev)
}

func (d *Dev) transform(start, end int, t Transform) {
	if debug {
		log.Printf("max72xx: %s devices %d-%d", t, start, end)
	}
	var (
		first = start * ColSize
		last  = (end+1)*ColSize - 1
	)
	switch t {
	case ShiftLeft:
		out := d.column(first)
		d.shiftOut(start, t, out)
		for col := first; col < last; col++ {
			d.setColumn(col, d.column(col+1))
		}
		d.setColumn(last, d.shiftIn(end, t, out))

	case ShiftRight:
		out := d.column(last)
		d.shiftOut(end, t, out)
		for col := last; col > first; col-- {
			d.setColumn(col, d.column(col-1))
		}
		d.setColumn(first, d.shiftIn(start, t, out))

	case ShiftUp:
		for dev := start; dev <= end; dev++ {
			out := d.row(dev, 0)
			d.shiftOut(dev, t, out)
			for row := 0; row < RowSize-1; row++ {
				d.setRow(dev, row, d.row(dev, row+1))
			}
			d.setRow(dev, RowSize-1, d.shiftIn(dev, t, out))
		}

	case ShiftDown:
		for dev := start; dev <= end; dev++ {
			out := d.row(dev, RowSize-1)
			d.shiftOut(dev, t, out)
			for row := RowSize - 1; row > 0; row-- {
				d.setRow(dev, row, d.row(dev, row-1))
			}
			d.setRow(dev, 0, d.shiftIn(dev, t, out))
		}

	case FlipLeftRight:
		for l, r := first, last; l < r; l, r = l+1, r-1 {
			left, right := d.column(l), d.column(r)
			d.setColumn(l, right)
			d.setColumn(r, left)
		}

	case FlipUpDown:
		for dev := start; dev <= end; dev++ {
			for top, bottom := 0, RowSize-1; top < bottom; top, bottom = top+1, bottom-1 {
				upper, lower := d.row(dev, top), d.row(dev, bottom)
				d.setRow(dev, top, lower)
				d.setRow(dev, bottom, upper)
			}
		}

	case RotateClockwise:
		for dev := start; dev <= end; dev++ {
			var rows [RowSize]byte
			for i := range rows {
				rows[i] = d.column(dev*ColSize + ColSize - 1 - i)
			}
			for i, v := range rows {
				d.setRow(dev, i, v)
			}
		}

	case Invert:
		for dev := start; dev <= end; dev++ {
			for row := 0; row < RowSize; row++ {
				d.setRow(dev, row, ^d.row(dev, row))
			}
		}
	}
}

// shiftOut reports data leaving dev to the Shifter before the shift moves
// anything. Wrapped data is not reported.
func (d *Dev) shiftOut(dev int, t Transform, data byte) {
	if d.wrap || d.shifter == nil {
		return
	}
	d.shifter.ShiftOut(dev, t, data)
}

// shiftIn returns the data entering dev after a shift pushed out data. With
// wrap around the pushed out data comes back in, otherwise the Shifter
// provides it.
func (d *Dev) shiftIn(dev int, t Transform, data byte) byte {
	if d.wrap {
		return data
	}
	if d.shifter == nil {
		return 0
	}
	return d.shifter.ShiftIn(dev, t)
}
