package fontfile

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/BeatGlow/max72xx/font"
)

const testDefinition = `.NAME test
.HEIGHT 1
.WIDTH 0
.CHAR 65
.NOTE Letter A
  *
 * *
*   *
*****
*   *
*   *
.CHAR 46
.WIDTH 3

 *
.CHAR 33
.WIDTH 0
*
*

*
.END
.CHAR 34
**
`

func TestParse(t *testing.T) {
	def, err := Parse(strings.NewReader(testDefinition))
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "test" || def.DoubleHeight || def.Width != 0 {
		t.Errorf("unexpected header %q double=%t width=%d", def.Name, def.DoubleHeight, def.Width)
	}

	tests := []struct {
		name string
		code byte
		note string
		want []byte
	}{
		{"variable width", 'A', "Letter A", []byte{0x3c, 0x0a, 0x09, 0x0a, 0x3c}},
		{"fixed width", '.', "", []byte{0x00, 0x02, 0x00}},
		{"blank row", '!', "", []byte{0x0b}},
		{"after end", '"', "", nil},
		{"undefined", 'B', "", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			g := def.Glyphs[test.code]
			if g.Note != test.note {
				it.Errorf("expected note %q, got %q", test.note, g.Note)
			}
			if !bytes.Equal(g.Columns, test.want) {
				it.Errorf("expected columns % x, got % x", test.want, g.Columns)
			}
		})
	}

	table := def.Table()
	if err = table.Validate(); err != nil {
		t.Fatal(err)
	}
	f := font.New(table, true)
	if !bytes.Equal(f.Columns('A'), def.Glyphs['A'].Columns) {
		t.Errorf("compiled glyph differs: % x", f.Columns('A'))
	}
	// The 3 glyphs add 9 columns to the 256 size bytes.
	if len(table) != font.Size+9 {
		t.Errorf("expected %d bytes, got %d", font.Size+9, len(table))
	}
}

func TestParseFixedWidthClips(t *testing.T) {
	def, err := Parse(strings.NewReader(".WIDTH 2\n.CHAR 1\n****\n.CHAR 2\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if def.Width != 2 {
		t.Errorf("expected header width 2, got %d", def.Width)
	}
	if g := def.Glyphs[1].Columns; !bytes.Equal(g, []byte{1, 1}) {
		t.Errorf("expected clipped glyph, got % x", g)
	}
	// The last glyph is kept at the end of the input.
	if g := def.Glyphs[2].Columns; !bytes.Equal(g, []byte{0, 0}) {
		t.Errorf("expected blank fixed width glyph, got % x", g)
	}
}

func TestParseMultibyteMarkers(t *testing.T) {
	def, err := Parse(strings.NewReader(".CHAR 65\n█ █\n ██\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g := def.Glyphs['A'].Columns; !bytes.Equal(g, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("expected one column per rune 01 02 03, got % x", g)
	}
}

func TestParseDoubleHeight(t *testing.T) {
	src := ".HEIGHT 2\n.CHAR 49\n.NOTE one\n*\n" + strings.Repeat("\n", 14) + "**\n.END\n"
	def, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !def.DoubleHeight {
		t.Fatal("expected double height")
	}
	upper, lower := def.Glyphs[49+128], def.Glyphs[49]
	if !bytes.Equal(upper.Columns, []byte{0x01, 0x00}) {
		t.Errorf("expected upper half 01 00, got % x", upper.Columns)
	}
	if !bytes.Equal(lower.Columns, []byte{0x80, 0x80}) {
		t.Errorf("expected lower half 80 80, got % x", lower.Columns)
	}
	if upper.Note != "one" || lower.Note != "one" {
		t.Errorf("expected note on both halves, got %q %q", upper.Note, lower.Note)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"height", ".NAME x\n.HEIGHT 3\n", 2},
		{"width", ".WIDTH wide\n", 1},
		{"wide", ".WIDTH 300\n", 1},
		{"code", ".CHAR 256\n", 1},
		{"double height code", ".HEIGHT 2\n.CHAR 1\n*\n.CHAR 128\n", 4},
		{"char number", ".CHAR A\n", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			_, err := Parse(strings.NewReader(test.src))
			var syntaxErr SyntaxError
			if !errors.As(err, &syntaxErr) {
				it.Fatalf("expected SyntaxError, got %v", err)
			}
			if syntaxErr.Line != test.line {
				it.Errorf("expected line %d, got %d (%v)", test.line, syntaxErr.Line, err)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	def, err := Decode(font.Default, "sys")
	if err != nil {
		t.Fatal(err)
	}
	def.Glyphs['A'].Note = "A"

	var buf bytes.Buffer
	if err = def.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Name != "sys" || parsed.Width != 0 {
		t.Errorf("unexpected header %q width %d", parsed.Name, parsed.Width)
	}
	if parsed.Glyphs['A'].Note != "A" {
		t.Errorf("expected note to survive, got %q", parsed.Glyphs['A'].Note)
	}
	if table := parsed.Table(); !bytes.Equal(table, font.Default) {
		for code := 0; code < font.Size; code++ {
			want, got := font.New(font.Default, false).Columns(byte(code)), font.New(table, false).Columns(byte(code))
			if !bytes.Equal(want, got) {
				t.Errorf("code %d: expected % x, got % x", code, want, got)
			}
		}
	}
}

func TestTextRoundTripFixedDoubleHeight(t *testing.T) {
	def := &Definition{Name: "big", DoubleHeight: true, Width: 3, FontHeight: 16}
	def.Glyphs[1].Columns = []byte{0xff, 0x00, 0x81}
	def.Glyphs[1+128].Columns = []byte{0x01, 0x02, 0x00}
	def.Glyphs[2].Columns = []byte{0x00, 0x00, 0x00}
	def.Glyphs[2+128].Columns = []byte{0x00, 0x00, 0x00}
	def.Glyphs[1].Note = "corner"

	var buf bytes.Buffer
	if err := def.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.DoubleHeight || parsed.Width != 3 || parsed.FontHeight != 16 {
		t.Errorf("unexpected header double=%t width=%d height=%d", parsed.DoubleHeight, parsed.Width, parsed.FontHeight)
	}
	if !bytes.Equal(parsed.Table(), def.Table()) {
		t.Errorf("tables differ:\n% x\n% x", def.Table(), parsed.Table())
	}
}

func TestGoRoundTrip(t *testing.T) {
	def, err := Parse(strings.NewReader(testDefinition))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = def.WriteGo(&buf, "fonts", "Test"); err != nil {
		t.Fatal(err)
	}
	src := buf.String()
	if !strings.HasPrefix(src, "// Code generated by txt2font; DO NOT EDIT.") {
		t.Errorf("expected generated code header, got %q", src[:40])
	}
	if !strings.Contains(src, "var Test = font.Table{") {
		t.Error("expected table declaration")
	}

	read, err := ReadGo(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read.Table(), def.Table()) {
		t.Error("expected identical tables")
	}
	if read.Name != "Test" {
		t.Errorf("expected variable name, got %q", read.Name)
	}
	if read.Glyphs['A'].Note != "Letter A" {
		t.Errorf("expected note, got %q", read.Glyphs['A'].Note)
	}
}

func TestReadGoDefault(t *testing.T) {
	f, err := os.Open("../default.go")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	def, err := ReadGo(f)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(def.Table(), font.Default) {
		t.Error("expected the default table")
	}
	if def.Glyphs['A'].Note != "A" || def.Glyphs[1].Note != "Sad Smiley" {
		t.Errorf("unexpected notes %q %q", def.Glyphs['A'].Note, def.Glyphs[1].Note)
	}
}

func TestReadGoErrors(t *testing.T) {
	if _, err := ReadGo(strings.NewReader("package x\n\nvar y = []int{1}\n")); !errors.Is(err, ErrNoTable) {
		t.Errorf("expected ErrNoTable, got %v", err)
	}
	if _, err := ReadGo(strings.NewReader("package x\n\nvar y = Table{1, 2}\n")); !errors.Is(err, font.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	if _, err := ReadGo(strings.NewReader("package x\n\nvar y = Table{300}\n")); err == nil {
		t.Error("expected error for value out of byte range")
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode(font.Table{5, 1}, "x"); !errors.Is(err, font.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}
