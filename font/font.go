// Package font implements the variable width glyph tables used by MAX72xx
// LED matrix displays.
//
// A Table is a sequence of entries, one per character code starting at 0.
// Each entry is a size byte n followed by n column bytes, leftmost column of
// the glyph first. Bit 0 of a column byte is the top pixel row of the glyph
// and bit 7 the bottom one. An entry with size 0 is an undefined glyph and
// draws nothing.
//
// Entries are located by scanning the table from the start. A Font can keep
// an Index of precomputed offsets to make every lookup a single access.
package font

import (
	"errors"
	"fmt"
)

// Size is the number of character codes addressed by a Table.
const Size = 256

// ErrTruncated is returned by Validate when a table ends inside an entry or
// before all character codes are defined.
var ErrTruncated = errors.New("font: truncated table")

// Table is font data in the size-prefixed column format.
type Table []byte

// Offset returns the byte offset of the entry for code, found by a linear
// scan from the start of the table. Entries past the end of a short table
// resolve to len(t).
func (t Table) Offset(code byte) int {
	var offset int
	for i := 0; i < int(code); i++ {
		if offset >= len(t) {
			return len(t)
		}
		offset += int(t[offset]) + 1
	}
	if offset > len(t) {
		return len(t)
	}
	return offset
}

// BuildIndex computes the offset of every character code in one pass.
func (t Table) BuildIndex() *Index {
	var (
		index  = new(Index)
		offset int
	)
	for code := range index {
		if offset > len(t) {
			offset = len(t)
		}
		index[code] = offset
		if offset < len(t) {
			offset += int(t[offset]) + 1
		}
	}
	return index
}

// Validate checks that the table holds a complete entry for every code.
func (t Table) Validate() error {
	var offset int
	for code := 0; code < Size; code++ {
		if offset >= len(t) {
			return fmt.Errorf("%w: entry %d missing", ErrTruncated, code)
		}
		size := int(t[offset])
		if offset+1+size > len(t) {
			return fmt.Errorf("%w: entry %d needs %d bytes, %d left", ErrTruncated, code, size, len(t)-offset-1)
		}
		offset += size + 1
	}
	return nil
}

// Index holds the byte offset of every entry of a Table.
type Index [Size]int

// Font is a Table bound for glyph lookups, optionally indexed.
type Font struct {
	table Table
	index *Index
}

// New binds t for lookups. An empty table binds Default. When indexed is
// set the offsets of all entries are computed once up front.
func New(t Table, indexed bool) *Font {
	if len(t) == 0 {
		t = Default
	}
	f := &Font{table: t}
	if indexed {
		f.index = t.BuildIndex()
	}
	return f
}

// Table returns the bound font data.
func (f *Font) Table() Table {
	return f.table
}

// Indexed reports if lookups use a precomputed index.
func (f *Font) Indexed() bool {
	return f.index != nil
}

// Offset returns the byte offset of the entry for code.
func (f *Font) Offset(code byte) int {
	if f.index != nil {
		return f.index[code]
	}
	return f.table.Offset(code)
}

// Columns returns the column bytes of the glyph for code. The returned slice
// aliases the table and must not be modified.
func (f *Font) Columns(code byte) []byte {
	offset := f.Offset(code)
	if offset >= len(f.table) {
		return nil
	}
	var (
		start = offset + 1
		end   = start + int(f.table[offset])
	)
	if end > len(f.table) {
		end = len(f.table)
	}
	return f.table[start:end]
}

// Width returns the number of columns of the glyph for code, 0 if undefined.
func (f *Font) Width(code byte) int {
	return len(f.Columns(code))
}

// Glyph copies at most len(dst) columns of the glyph for code into dst and
// returns the number of columns copied.
func (f *Font) Glyph(code byte, dst []byte) int {
	return copy(dst, f.Columns(code))
}

// MaxWidth returns the width of the widest glyph.
func (f *Font) MaxWidth() int {
	var (
		max    int
		offset int
	)
	for code := 0; code < Size && offset < len(f.table); code++ {
		if w := int(f.table[offset]); w > max {
			max = w
		}
		offset += int(f.table[offset]) + 1
	}
	return max
}
