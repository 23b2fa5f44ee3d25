package max72xx

import "fmt"

// Internal accessors work on validated coordinates and never flush.

func (d *Dev) point(row, col int) bool {
	a := d.hw.ToHardware(row, col%ColSize)
	return d.buf[col/ColSize].get(int(a.Digit))&a.Mask() != 0
}

func (d *Dev) setPoint(row, col int, on bool) {
	a := d.hw.ToHardware(row, col%ColSize)
	d.buf[col/ColSize].setMask(int(a.Digit), a.Mask(), on)
}

// row returns a device row, bit i is column i of the device.
func (d *Dev) row(dev, row int) (v byte) {
	for i := 0; i < ColSize; i++ {
		if d.point(row, dev*ColSize+i) {
			v |= 1 << i
		}
	}
	return
}

func (d *Dev) setRow(dev, row int, v byte) {
	for i := 0; i < ColSize; i++ {
		d.setPoint(row, dev*ColSize+i, v&(1<<i) != 0)
	}
}

// column returns a column of the chain, bit i is row i.
func (d *Dev) column(col int) (v byte) {
	for i := 0; i < RowSize; i++ {
		if d.point(i, col) {
			v |= 1 << i
		}
	}
	return
}

func (d *Dev) setColumn(col int, v byte) {
	for i := 0; i < RowSize; i++ {
		d.setPoint(i, col, v&(1<<i) != 0)
	}
}

func (d *Dev) checkRow(row int) error {
	if row < 0 || row >= RowSize {
		return fmt.Errorf("%w: row %d", ErrBounds, row)
	}
	return nil
}

func (d *Dev) checkColumn(col int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if col < 0 || col >= d.Columns() {
		return fmt.Errorf("%w: column %d", ErrBounds, col)
	}
	return nil
}

func (d *Dev) checkDeviceColumn(dev, col int) error {
	if err := d.checkDevice(dev); err != nil {
		return err
	}
	if col < 0 || col >= ColSize {
		return fmt.Errorf("%w: device column %d", ErrBounds, col)
	}
	return nil
}

// Point reports if the pixel at row, col is lit.
func (d *Dev) Point(row, col int) (bool, error) {
	if err := d.checkPoint(row, col); err != nil {
		return false, err
	}
	return d.point(row, col), nil
}

// SetPoint turns the pixel at row, col on or off.
func (d *Dev) SetPoint(row, col int, on bool) error {
	if err := d.checkPoint(row, col); err != nil {
		return err
	}
	d.setPoint(row, col, on)
	return d.syncDevice(col / ColSize)
}

// Row returns a row of one device. Bit i is column i of the device.
func (d *Dev) Row(dev, row int) (byte, error) {
	if err := d.checkDevice(dev); err != nil {
		return 0, err
	}
	if err := d.checkRow(row); err != nil {
		return 0, err
	}
	return d.row(dev, row), nil
}

// SetRow sets a row of one device. Bit i is column i of the device.
func (d *Dev) SetRow(dev, row int, v byte) error {
	if err := d.checkDevice(dev); err != nil {
		return err
	}
	if err := d.checkRow(row); err != nil {
		return err
	}
	d.setRow(dev, row, v)
	return d.syncDevice(dev)
}

// SetRows sets the same row of all devices.
func (d *Dev) SetRows(row int, v byte) error {
	return d.SetRowRange(0, len(d.buf)-1, row, v)
}

// SetRowRange sets the same row of the devices start through end.
func (d *Dev) SetRowRange(start, end, row int, v byte) error {
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	if err := d.checkRow(row); err != nil {
		return err
	}
	for dev := start; dev <= end; dev++ {
		d.setRow(dev, row, v)
	}
	return d.sync()
}

// Column returns a column of the chain. Bit i is row i.
func (d *Dev) Column(col int) (byte, error) {
	if err := d.checkColumn(col); err != nil {
		return 0, err
	}
	return d.column(col), nil
}

// SetColumn sets a column of the chain. Bit i is row i.
func (d *Dev) SetColumn(col int, v byte) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	d.setColumn(col, v)
	return d.syncDevice(col / ColSize)
}

// DeviceColumn returns column col (0-7) of one device.
func (d *Dev) DeviceColumn(dev, col int) (byte, error) {
	if err := d.checkDeviceColumn(dev, col); err != nil {
		return 0, err
	}
	return d.column(dev*ColSize + col), nil
}

// SetDeviceColumn sets column col (0-7) of one device.
func (d *Dev) SetDeviceColumn(dev, col int, v byte) error {
	if err := d.checkDeviceColumn(dev, col); err != nil {
		return err
	}
	d.setColumn(dev*ColSize+col, v)
	return d.syncDevice(dev)
}

// Buffer copies columns col, col-1, ... into dst and returns the number of
// columns copied. Copying stops at column 0.
func (d *Dev) Buffer(col int, dst []byte) (int, error) {
	if err := d.checkColumn(col); err != nil {
		return 0, err
	}
	var n int
	for ; n < len(dst) && col-n >= 0; n++ {
		dst[n] = d.column(col - n)
	}
	return n, nil
}

// SetBuffer writes data to columns col, col-1, ... and returns the number of
// columns written. Columns below 0 are clipped. All changes are sent at once.
func (d *Dev) SetBuffer(col int, data []byte) (int, error) {
	if err := d.checkColumn(col); err != nil {
		return 0, err
	}
	var n int
	for ; n < len(data) && col-n >= 0; n++ {
		d.setColumn(col-n, data[n])
	}
	return n, d.sync()
}

// Clear turns all pixels off.
func (d *Dev) Clear() error {
	return d.ClearRange(0, len(d.buf)-1)
}

// ClearDevice turns all pixels of one device off.
func (d *Dev) ClearDevice(dev int) error {
	if err := d.checkDevice(dev); err != nil {
		return err
	}
	d.buf[dev].clear()
	return d.syncDevice(dev)
}

// ClearRange turns all pixels of the devices start through end off.
func (d *Dev) ClearRange(start, end int) error {
	if err := d.checkRange(start, end); err != nil {
		return err
	}
	for dev := start; dev <= end; dev++ {
		d.buf[dev].clear()
	}
	return d.sync()
}
