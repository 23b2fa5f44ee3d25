package max72xx

import (
	"fmt"
	"log"

	"github.com/BeatGlow/max72xx/font"
)

// SetFont binds a font table. A nil or empty table binds font.Default. The
// table is not copied and must not be modified while bound.
func (d *Dev) SetFont(t font.Table) {
	if len(t) == 0 {
		t = font.Default
	}
	if debug {
		log.Printf("max72xx: bind font of %d bytes, indexed=%t", len(t), d.indexed)
	}
	d.font = font.New(t, d.indexed)
}

// Font returns the bound font table.
func (d *Dev) Font() font.Table {
	return d.font.Table()
}

// MaxFontWidth returns the width of the widest glyph of the bound font.
func (d *Dev) MaxFontWidth() int {
	return d.font.MaxWidth()
}

// Char copies the columns of the glyph for code into dst and returns the
// number of columns copied. Undefined glyphs have no columns.
func (d *Dev) Char(code byte, dst []byte) int {
	return d.font.Glyph(code, dst)
}

// SetChar draws the glyph for code with its first column at col and the
// following columns at col-1, col-2 and so on, clipped at column 0. It
// returns the glyph width; 0 means nothing was drawn.
func (d *Dev) SetChar(col int, code byte) (int, error) {
	if err := d.checkColumn(col); err != nil {
		return 0, err
	}
	columns := d.font.Columns(code)
	for i, v := range columns {
		if col-i < 0 {
			break
		}
		d.setColumn(col-i, v)
	}
	if err := d.sync(); err != nil {
		return 0, fmt.Errorf("max72xx: draw %q: %w", rune(code), err)
	}
	return len(columns), nil
}
