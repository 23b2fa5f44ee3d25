// Command txt2font compiles a font definition into a Go font.Table source
// file or a raw binary table.
//
// Usage:
//
//	txt2font [-bin] [-pkg name] [-var name] [-o output] <font>
//
// The input is a text definition, or a TrueType or BDF font that is
// rasterized first. The output defaults to the input root with a .go or
// .bin extension.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BeatGlow/max72xx/font/raster"
)

func main() {
	binFlag := flag.Bool("bin", false, "Write a raw binary table instead of Go source")
	pkgFlag := flag.String("pkg", "fonts", "Package name of the Go source")
	varFlag := flag.String("var", "", "Variable name of the table (default: font root name)")
	outFlag := flag.String("o", "", "Output file")
	sizeFlag := flag.Float64("size", 8, "TrueType font size in points")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <font>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	def, err := raster.ReadFile(input, *sizeFlag, nil)
	if err != nil {
		fatal(err)
	}

	var (
		root = input[:len(input)-len(filepath.Ext(input))]
		out  bytes.Buffer
		name = *outFlag
	)
	if *binFlag {
		if name == "" {
			name = root + ".bin"
		}
		out.Write(def.Table())
	} else {
		if name == "" {
			name = root + ".go"
		}
		variable := *varFlag
		if variable == "" {
			variable = identifier(def.Name)
		}
		if err = def.WriteGo(&out, *pkgFlag, variable); err != nil {
			fatal(err)
		}
	}

	if name == input {
		fatal(fmt.Errorf("refusing to overwrite input %s", input))
	}
	if err = os.WriteFile(name, out.Bytes(), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %d bytes written\n", name, out.Len())
}

// identifier turns a font name into an exported Go identifier.
func identifier(name string) string {
	var b []byte
	upper := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			if upper {
				c -= 'a' - 'A'
			}
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if len(b) == 0 {
				b = append(b, 'F')
			}
		default:
			upper = true
			continue
		}
		b = append(b, c)
		upper = false
	}
	if len(b) == 0 {
		return "Font"
	}
	return string(b)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
