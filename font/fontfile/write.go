package fontfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/BeatGlow/max72xx/font"
)

// WriteText writes the definition in the text format. Every character code
// is written, undefined glyphs as a single blank row. Glyphs that would not
// read back at their width, because of blank trailing columns or a width
// other than the fixed width, get their own WIDTH directive.
func (def *Definition) WriteText(w io.Writer) error {
	b := bufio.NewWriter(w)
	height := 1
	if def.DoubleHeight {
		height = 2
	}
	fmt.Fprintf(b, "%c%s %s\n", marker, cmdName, def.Name)
	fmt.Fprintf(b, "%c%s %d\n", marker, cmdHeight, height)
	fmt.Fprintf(b, "%c%s %d\n", marker, cmdWidth, def.Width)
	if def.FontHeight != 0 && def.FontHeight != SingleHeight*height {
		fmt.Fprintf(b, "%c%s %d\n", marker, cmdFontHeight, def.FontHeight)
	}

	codes := font.Size
	if def.DoubleHeight {
		codes /= 2
	}
	width := def.Width
	for code := 0; code < codes; code++ {
		g := def.Glyphs[code]
		fmt.Fprintf(b, "%c%s %d\n", marker, cmdChar, code)
		if g.Note != "" {
			fmt.Fprintf(b, "%c%s %s\n", marker, cmdNote, g.Note)
		}

		var (
			rows       = textRows(g.Columns)
			glyphWidth = len(g.Columns)
		)
		if def.DoubleHeight {
			upper := def.Glyphs[code+font.Size/2]
			rows = append(textRows(upper.Columns), rows...)
			glyphWidth = max(glyphWidth, len(upper.Columns))
		}

		// Pick the width directive that makes the rows read back at the
		// glyph width.
		natural := def.Width
		if natural == 0 {
			for _, row := range rows {
				natural = max(natural, len(row))
			}
		}
		want := def.Width
		if natural != glyphWidth {
			want = glyphWidth
		}
		if want != width {
			fmt.Fprintf(b, "%c%s %d\n", marker, cmdWidth, want)
			width = want
		}

		if glyphWidth == 0 {
			rows = []string{""}
		}
		for _, row := range rows {
			b.WriteString(row)
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(b, "%c%s\n", marker, cmdEnd)
	return b.Flush()
}

// textRows renders 8 rows of a glyph, trailing blanks trimmed.
func textRows(columns []byte) []string {
	rows := make([]string, SingleHeight)
	for j := range rows {
		var row strings.Builder
		for _, c := range columns {
			if c&(1<<j) != 0 {
				row.WriteByte('*')
			} else {
				row.WriteByte(' ')
			}
		}
		rows[j] = strings.TrimRight(row.String(), " ")
	}
	return rows
}
