package fontfile

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/BeatGlow/max72xx/font"
)

// ErrNoTable is returned by ReadGo when the source has no font table.
var ErrNoTable = errors.New("fontfile: no font.Table literal found")

// WriteGo writes Go source declaring the compiled table as variable name of
// package pkg. Each glyph is on its own line, commented with its code and
// note.
func (def *Definition) WriteGo(w io.Writer, pkg, name string) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by txt2font; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n\n", "github.com/BeatGlow/max72xx/font")
	fmt.Fprintf(&b, "// %s is the %s\n", name, def.describe())
	fmt.Fprintf(&b, "var %s = font.Table{\n", name)
	for code, g := range def.Glyphs {
		fmt.Fprintf(&b, "%d,", len(g.Columns))
		for _, c := range g.Columns {
			fmt.Fprintf(&b, " 0x%02x,", c)
		}
		fmt.Fprintf(&b, " // %d", code)
		if g.Note != "" {
			fmt.Fprintf(&b, " - %s", g.Note)
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("fontfile: format source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func (def *Definition) describe() string {
	var s strings.Builder
	if def.Name != "" {
		fmt.Fprintf(&s, "%q font, ", def.Name)
	} else {
		s.WriteString("font, ")
	}
	if def.DoubleHeight {
		s.WriteString("double height, ")
	} else {
		s.WriteString("single height, ")
	}
	if def.Width == 0 {
		s.WriteString("variable width.")
	} else {
		fmt.Fprintf(&s, "fixed width (%d).", def.Width)
	}
	return s.String()
}

// ReadGo reads the first font.Table composite literal of a Go source file,
// as written by WriteGo. Notes are taken from the comments following each
// entry, in the form "// <code> - <note>" or "// <code> <note>". The name is
// the declared variable name.
func ReadGo(r io.Reader) (*Definition, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fontfile: %w", err)
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("fontfile: %w", err)
	}

	var (
		name string
		lit  *ast.CompositeLit
	)
	ast.Inspect(f, func(n ast.Node) bool {
		if lit != nil {
			return false
		}
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range spec.Values {
			if cl, ok := value.(*ast.CompositeLit); ok && isTableType(cl.Type) {
				lit, name = cl, spec.Names[i].Name
				return false
			}
		}
		return true
	})
	if lit == nil {
		return nil, ErrNoTable
	}

	t := make(font.Table, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		bl, ok := elt.(*ast.BasicLit)
		if !ok || bl.Kind != token.INT {
			return nil, fmt.Errorf("fontfile: %s: expected integer literal", fset.Position(elt.Pos()))
		}
		v, err := strconv.ParseUint(bl.Value, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("fontfile: %s: %w", fset.Position(elt.Pos()), err)
		}
		t = append(t, byte(v))
	}
	def, err := Decode(t, name)
	if err != nil {
		return nil, err
	}

	// Notes of the entries by the line of their size byte.
	notes := make(map[int]string)
	for _, group := range f.Comments {
		for _, c := range group.List {
			text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
			number, note, _ := strings.Cut(text, " ")
			if _, err := strconv.Atoi(number); err != nil {
				continue
			}
			note = strings.TrimPrefix(strings.TrimSpace(note), "- ")
			notes[fset.Position(c.Pos()).Line] = strings.TrimSpace(note)
		}
	}
	var offset int
	for code := range def.Glyphs {
		line := fset.Position(lit.Elts[offset].Pos()).Line
		def.Glyphs[code].Note = notes[line]
		offset += int(t[offset]) + 1
	}
	return def, nil
}

func isTableType(expr ast.Expr) bool {
	switch x := expr.(type) {
	case *ast.SelectorExpr:
		return x.Sel.Name == "Table"
	case *ast.Ident:
		return x.Name == "Table"
	default:
		return false
	}
}
