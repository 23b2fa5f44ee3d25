// Command font2txt writes a font as an editable text definition.
//
// Usage:
//
//	font2txt [-name name] [-o output] <font>
//
// The input is a Go source file holding a font.Table literal, a raw .bin
// table, or a TrueType or BDF font. The output defaults to the input root
// with a .txt extension.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BeatGlow/max72xx/font/fontfile"
	"github.com/BeatGlow/max72xx/font/raster"
)

func main() {
	nameFlag := flag.String("name", "", "Font name (default: input root name)")
	outFlag := flag.String("o", "", "Output file, - for standard output")
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
	switch {
	case *nameFlag != "":
		def.Name = *nameFlag
	case def.Name == "":
		def.Name = fontfile.Root(input)
	}

	var out bytes.Buffer
	if err = def.WriteText(&out); err != nil {
		fatal(err)
	}

	name := *outFlag
	if name == "-" {
		_, err = os.Stdout.Write(out.Bytes())
		if err != nil {
			fatal(err)
		}
		return
	}
	if name == "" {
		name = input[:len(input)-len(filepath.Ext(input))] + ".txt"
	}
	if name == input {
		fatal(fmt.Errorf("refusing to overwrite input %s", input))
	}
	if err = os.WriteFile(name, out.Bytes(), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %d bytes written\n", name, out.Len())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
