package max72xx

import (
	"fmt"
	"log"
)

// offset of the opcode/data pair of a device in a transaction. The pair of
// the last device is shifted out first.
func (d *Dev) offset(dev int) int {
	return 2 * (len(d.buf) - 1 - dev)
}

// resetTx fills the transaction with NOOP pairs.
func (d *Dev) resetTx() {
	for i := range d.tx {
		d.tx[i] = opNoop
	}
}

func (d *Dev) put(dev int, opcode, data byte) {
	i := d.offset(dev)
	d.tx[i] = opcode
	d.tx[i+1] = data
}

func (d *Dev) send() error {
	if err := d.c.Tx(d.tx, nil); err != nil {
		return fmt.Errorf("max72xx: %w", err)
	}
	return nil
}

// flushDevice sends the dirty digits of one device, one transaction per
// digit. Digits are only marked clean once they are sent.
func (d *Dev) flushDevice(dev int) error {
	b := &d.buf[dev]
	if debug && b.changed != 0 {
		log.Printf("max72xx: flush device %d digits %08b", dev, b.changed)
	}
	for digit := 0; digit < RowSize; digit++ {
		if !b.dirty(digit) {
			continue
		}
		d.resetTx()
		d.put(dev, opDigit0+byte(digit), b.get(digit))
		if err := d.send(); err != nil {
			return err
		}
		b.changed &^= 1 << digit
	}
	return nil
}

// flushAll sends the dirty digits of all devices. Each transaction writes
// one digit register on all devices where it is dirty.
func (d *Dev) flushAll() error {
	for digit := 0; digit < RowSize; digit++ {
		var (
			mask    = uint8(1) << digit
			pending bool
		)
		d.resetTx()
		for dev := range d.buf {
			if b := &d.buf[dev]; b.dirty(digit) {
				d.put(dev, opDigit0+byte(digit), b.get(digit))
				pending = true
			}
		}
		if !pending {
			continue
		}
		if debug {
			log.Printf("max72xx: flush digit %d: % x", digit, d.tx)
		}
		if err := d.send(); err != nil {
			return err
		}
		for dev := range d.buf {
			d.buf[dev].changed &^= mask
		}
	}
	return nil
}

// syncDevice flushes one device if auto update is on.
func (d *Dev) syncDevice(dev int) error {
	if !d.update {
		return nil
	}
	return d.flushDevice(dev)
}

// sync flushes all devices if auto update is on.
func (d *Dev) sync() error {
	if !d.update {
		return nil
	}
	return d.flushAll()
}

// Update sends all pending changes.
func (d *Dev) Update() error {
	if err := d.ready(); err != nil {
		return err
	}
	return d.flushAll()
}

// UpdateDevice sends the pending changes of one device.
func (d *Dev) UpdateDevice(dev int) error {
	if err := d.checkDevice(dev); err != nil {
		return err
	}
	return d.flushDevice(dev)
}

// SetAutoUpdate toggles sending changes as they are made. Turning auto update
// on sends all pending changes.
func (d *Dev) SetAutoUpdate(on bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	d.update = on
	if on {
		return d.flushAll()
	}
	return nil
}

// AutoUpdate reports if changes are sent as they are made.
func (d *Dev) AutoUpdate() bool {
	return d.update
}

// SetWrapAround toggles wrap around for shift transforms.
func (d *Dev) SetWrapAround(on bool) {
	d.wrap = on
}

// WrapAround reports if shift transforms wrap around.
func (d *Dev) WrapAround() bool {
	return d.wrap
}
