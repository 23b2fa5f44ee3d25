package fontfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BeatGlow/max72xx/font"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"test.txt":  []byte(testDefinition),
		"sys.bin":   font.Default,
		"notes.doc": []byte("nope"),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	def, err := ReadFile(filepath.Join(dir, "test.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "test" || len(def.Glyphs['A'].Columns) != 5 {
		t.Errorf("unexpected text definition %q: %v", def.Name, def.Glyphs['A'].Columns)
	}

	def, err = ReadFile(filepath.Join(dir, "sys.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "sys" || !bytes.Equal(def.Table(), font.Default) {
		t.Errorf("expected binary table named sys to match the default font, got %q", def.Name)
	}

	if _, err = ReadFile(filepath.Join(dir, "notes.doc")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err = ReadFile(filepath.Join(dir, "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestRoot(t *testing.T) {
	for path, want := range map[string]string{
		"fonts/sys.txt":  "sys",
		"/a/b/c.tar.bin": "c.tar",
		"plain":          "plain",
	} {
		if got := Root(path); got != want {
			t.Errorf("Root(%q): expected %q, got %q", path, want, got)
		}
	}
}
