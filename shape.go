package max72xx

// DrawLine draws a line from (r1, c1) to (r2, c2), both ends included, and
// sends all changes at once.
func (d *Dev) DrawLine(r1, c1, r2, c2 int, on bool) error {
	if err := d.checkPoint(r1, c1); err != nil {
		return err
	}
	if err := d.checkPoint(r2, c2); err != nil {
		return err
	}

	if c1 > c2 {
		r1, c1, r2, c2 = r2, c2, r1, c1
	}
	var (
		dc  = c2 - c1
		dr  = abs(r2 - r1)
		sr  = 1
		err int
	)
	if r1 > r2 {
		sr = -1
	}
	if dc > dr {
		err = dc / 2
	} else {
		err = -dr / 2
	}
	for {
		d.setPoint(r1, c1, on)
		if r1 == r2 && c1 == c2 {
			break
		}
		e2 := err
		if e2 > -dc {
			err -= dr
			c1++
		}
		if e2 < dr {
			err += dc
			r1 += sr
		}
	}
	return d.sync()
}

// DrawHLine draws a horizontal line on row from column c1 to c2.
func (d *Dev) DrawHLine(row, c1, c2 int, on bool) error {
	if err := d.checkPoint(row, c1); err != nil {
		return err
	}
	if err := d.checkPoint(row, c2); err != nil {
		return err
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		d.setPoint(row, c, on)
	}
	return d.sync()
}

// DrawVLine draws a vertical line on col from row r1 to r2.
func (d *Dev) DrawVLine(col, r1, r2 int, on bool) error {
	if err := d.checkPoint(r1, col); err != nil {
		return err
	}
	if err := d.checkPoint(r2, col); err != nil {
		return err
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		d.setPoint(r, col, on)
	}
	return d.syncDevice(col / ColSize)
}

// DrawRectangle draws the outline of the rectangle with corners (r1, c1) and
// (r2, c2).
func (d *Dev) DrawRectangle(r1, c1, r2, c2 int, on bool) error {
	if err := d.checkPoint(r1, c1); err != nil {
		return err
	}
	if err := d.checkPoint(r2, c2); err != nil {
		return err
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		d.setPoint(r1, c, on)
		d.setPoint(r2, c, on)
	}
	for r := r1; r <= r2; r++ {
		d.setPoint(r, c1, on)
		d.setPoint(r, c2, on)
	}
	return d.sync()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
