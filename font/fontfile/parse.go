package fontfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BeatGlow/max72xx/font"
)

// Directive marker and names.
const (
	marker = '.'

	cmdName       = "NAME"
	cmdFontHeight = "FONT_HEIGHT"
	cmdHeight     = "HEIGHT"
	cmdWidth      = "WIDTH"
	cmdChar       = "CHAR"
	cmdNote       = "NOTE"
	cmdEnd        = "END"
)

// SyntaxError is a malformed line of a definition.
type SyntaxError struct {
	Line int
	Msg  string
}

func (err SyntaxError) Error() string {
	return fmt.Sprintf("fontfile: line %d: %s", err.Line, err.Msg)
}

type textParser struct {
	def  *Definition
	line int
	code int
	rows []string
	// width is the fixed width in effect, changed by every WIDTH directive.
	width int
	// glyphs is set once the first CHAR directive is seen.
	glyphs bool
}

// Parse reads a text definition. Parsing stops at the END directive or at
// the end of the input, whichever comes first. Unknown directives are
// ignored. Rows before the first CHAR directive belong to code 0.
func Parse(r io.Reader) (*Definition, error) {
	p := &textParser{
		def: new(Definition),
	}
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		done, err := p.parseLine(strings.TrimRight(s.Text(), " \t\r\n"))
		if err != nil {
			return nil, err
		}
		if done {
			return p.result(), nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("fontfile: %w", err)
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.result(), nil
}

func (p *textParser) result() *Definition {
	if p.def.FontHeight == 0 {
		p.def.FontHeight = p.rowLimit()
	}
	return p.def
}

func (p *textParser) errorf(format string, args ...any) error {
	return SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *textParser) rowLimit() int {
	if p.def.DoubleHeight {
		return DoubleHeight
	}
	return SingleHeight
}

func (p *textParser) parseLine(line string) (done bool, err error) {
	if len(line) == 0 || line[0] != marker {
		if len(p.rows) < DoubleHeight {
			p.rows = append(p.rows, line)
		}
		return false, nil
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case cmdName:
		p.def.Name = arg

	case cmdFontHeight:
		n, err := p.number(cmd, arg)
		if err != nil {
			return false, err
		}
		p.def.FontHeight = n

	case cmdHeight:
		switch arg {
		case "1":
			p.def.DoubleHeight = false
		case "2":
			p.def.DoubleHeight = true
		default:
			return false, p.errorf("%s must be 1 or 2, got %q", cmd, arg)
		}

	case cmdWidth:
		n, err := p.number(cmd, arg)
		if err != nil {
			return false, err
		}
		if n > 0xff {
			return false, p.errorf("%s %d exceeds 255 columns", cmd, n)
		}
		p.width = n
		if !p.glyphs {
			p.def.Width = n
		}

	case cmdChar:
		if err = p.finish(); err != nil {
			return false, err
		}
		code, err := p.number(cmd, arg)
		if err != nil {
			return false, err
		}
		limit := font.Size
		if p.def.DoubleHeight {
			limit /= 2
		}
		if code >= limit {
			return false, p.errorf("character code %d out of range 0-%d", code, limit-1)
		}
		p.code = code
		p.glyphs = true
		p.def.Glyphs[code] = Glyph{}

	case cmdNote:
		p.def.Glyphs[p.code].Note = arg

	case cmdEnd:
		return true, p.finish()
	}
	return false, nil
}

func (p *textParser) number(cmd, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, p.errorf("%s needs a number, got %q", cmd, arg)
	}
	if n < 0 {
		n = -n
	}
	return n, nil
}

// finish converts the collected rows into the glyph of the current code.
func (p *textParser) finish() error {
	if len(p.rows) == 0 {
		return nil
	}
	rows := p.rows
	p.rows = nil
	if limit := p.rowLimit(); len(rows) > limit {
		rows = rows[:limit]
	}

	width := p.width
	if width == 0 {
		for _, row := range rows {
			width = max(width, utf8.RuneCountInString(row))
		}
	}
	if width > 0xff {
		return p.errorf("glyph %d is %d columns wide, exceeds 255", p.code, width)
	}

	if !p.def.DoubleHeight {
		p.def.Glyphs[p.code].Columns = columns(rows, 0, width)
		return nil
	}
	upper := &p.def.Glyphs[p.code+font.Size/2]
	upper.Note = p.def.Glyphs[p.code].Note
	upper.Columns = columns(rows, 0, width)
	p.def.Glyphs[p.code].Columns = columns(rows, SingleHeight, width)
	return nil
}

// columns packs rows first through first+7 into column bytes. Every rune of
// a row is one column, any rune but a space lights it.
func columns(rows []string, first, width int) []byte {
	out := make([]byte, width)
	for j := 0; j < SingleHeight && first+j < len(rows); j++ {
		i := 0
		for _, r := range rows[first+j] {
			if i == width {
				break
			}
			if r != ' ' {
				out[i] |= 1 << j
			}
			i++
		}
	}
	return out
}
