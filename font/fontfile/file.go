package fontfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BeatGlow/max72xx/font"
)

// ReadFile loads a definition by file extension: .txt text definitions, .go
// sources holding a font.Table literal and .bin raw tables.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def *Definition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		def, err = Parse(bytes.NewReader(data))
	case ".go":
		def, err = ReadGo(bytes.NewReader(data))
	case ".bin":
		def, err = Decode(font.Table(data), Root(path))
	default:
		return nil, fmt.Errorf("fontfile: %s: unsupported file type %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("fontfile: %s: %w", path, err)
	}
	return def, nil
}

// Root returns the file name of path without directory and extension.
func Root(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
