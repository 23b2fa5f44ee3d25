// Package fontfile reads and writes fonts in the text definition format.
//
// A definition is a line oriented text file. Lines starting with a dot are
// directives:
//
//	.NAME <name>         font name
//	.HEIGHT 1|2          single or double height glyphs
//	.WIDTH <n>           fixed glyph width, 0 for variable width
//	.FONT_HEIGHT <n>     pixel height, recorded only
//	.CHAR <code>         starts the glyph for code
//	.NOTE <text>         comment for the current glyph
//	.END                 end of the definition
//
// All other lines are glyph rows, top row first. Any character other than
// a space is a lit pixel. Missing rows at the bottom are blank. Unless a
// fixed width is set, a glyph is as wide as its longest row.
//
// Double height glyphs have 16 rows. The top 8 rows are stored at code+128
// and the bottom 8 rows at code, so only codes 0-127 can be defined.
package fontfile

import (
	"github.com/BeatGlow/max72xx/font"
)

// Glyph rows.
const (
	SingleHeight = 8
	DoubleHeight = 2 * SingleHeight
)

// Glyph is one character of a Definition.
type Glyph struct {
	// Note is the comment of the glyph.
	Note string

	// Columns of the glyph, leftmost first. Bit 0 is the top row.
	Columns []byte
}

// Definition is a parsed font definition.
type Definition struct {
	// Name of the font.
	Name string

	// DoubleHeight is set for 16 row fonts.
	DoubleHeight bool

	// Width is the fixed width of the glyphs, 0 for variable width.
	Width int

	// FontHeight is the declared pixel height.
	FontHeight int

	// Glyphs by character code.
	Glyphs [font.Size]Glyph
}

// Table compiles the definition into a font table with an entry for every
// character code. Glyphs without columns get an empty entry.
func (def *Definition) Table() font.Table {
	size := font.Size
	for _, g := range def.Glyphs {
		size += len(g.Columns)
	}
	t := make(font.Table, 0, size)
	for _, g := range def.Glyphs {
		t = append(t, byte(len(g.Columns)))
		t = append(t, g.Columns...)
	}
	return t
}

// Decode builds a single height, variable width definition from a font
// table.
func Decode(t font.Table, name string) (*Definition, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var (
		def = &Definition{Name: name, FontHeight: SingleHeight}
		f   = font.New(t, true)
	)
	for code := range def.Glyphs {
		if columns := f.Columns(byte(code)); len(columns) > 0 {
			def.Glyphs[code].Columns = append([]byte(nil), columns...)
		}
	}
	return def, nil
}
