// Package raster renders scalable and bitmap typefaces into LED matrix fonts.
//
// Any golang.org/x/image/font.Face can be rasterized. LoadTrueType and
// LoadBDF open the common font file formats as faces.
package raster

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/golang/freetype/truetype"
	"github.com/zachomedia/go-bdf"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/BeatGlow/max72xx/font"
	"github.com/BeatGlow/max72xx/font/fontfile"
	"github.com/BeatGlow/max72xx/pixel"
)

// ErrCode is returned when a double height font asks for a code above 127.
var ErrCode = errors.New("raster: code out of range")

// Options control the rasterization.
type Options struct {
	// Name of the resulting font.
	Name string

	// First and Last bound the codes to render, ' ' to '~' when both are 0.
	First, Last byte

	// Charmap decodes codes to runes. Codes are Latin-1 when nil.
	Charmap *charmap.Charmap

	// Ascent is the number of pixel rows above the baseline. The face ascent
	// is used when 0, limited to the glyph height.
	Ascent int

	// DoubleHeight renders 16 row glyphs.
	DoubleHeight bool

	// Trim removes blank columns left and right of each glyph. Blank glyphs
	// keep their advance width.
	Trim bool

	// Spacing is the number of blank columns appended to each glyph.
	Spacing int
}

// DefaultOptions renders the printable ASCII range.
var DefaultOptions = Options{
	Name:  "raster",
	First: ' ',
	Last:  '~',
	Trim:  true,
}

func (opts *Options) height() int {
	if opts.DoubleHeight {
		return fontfile.DoubleHeight
	}
	return fontfile.SingleHeight
}

func (opts *Options) bounds() (first, last int) {
	if opts.First == 0 && opts.Last == 0 {
		return ' ', '~'
	}
	return int(opts.First), int(opts.Last)
}

func (opts *Options) decode(code byte) rune {
	if opts.Charmap != nil {
		return opts.Charmap.DecodeByte(code)
	}
	return rune(code)
}

// Rasterize renders the glyphs of face into a font definition.
func Rasterize(face xfont.Face, opts *Options) (*fontfile.Definition, error) {
	if opts == nil {
		opts = &DefaultOptions
	}

	var (
		height      = opts.height()
		first, last = opts.bounds()
		ascent      = opts.Ascent
	)
	if ascent <= 0 {
		ascent = face.Metrics().Ascent.Ceil()
	}
	if ascent > height {
		ascent = height
	}
	if opts.DoubleHeight && last >= font.Size/2 {
		return nil, fmt.Errorf("%w: %d in a double height font", ErrCode, last)
	}

	def := &fontfile.Definition{
		Name:         opts.Name,
		DoubleHeight: opts.DoubleHeight,
		FontHeight:   height,
	}
	for code := first; code <= last; code++ {
		r := opts.decode(byte(code))
		img, ok := render(face, r, ascent, height)
		if !ok {
			continue
		}

		bands := make([][]byte, height/fontfile.SingleHeight)
		for band := range bands {
			bands[band] = make([]byte, img.Bounds().Dx())
			for x := range bands[band] {
				bands[band][x] = img.Column(x, band)
			}
		}
		if opts.Trim {
			bands = trim(bands)
		}
		for band := range bands {
			bands[band] = append(bands[band], make([]byte, opts.Spacing)...)
		}

		note := ""
		if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			note = string(r)
		}
		if opts.DoubleHeight {
			def.Glyphs[code+font.Size/2] = fontfile.Glyph{Note: note, Columns: bands[0]}
			def.Glyphs[code] = fontfile.Glyph{Note: note, Columns: bands[1]}
		} else {
			def.Glyphs[code] = fontfile.Glyph{Note: note, Columns: bands[0]}
		}
	}
	return def, nil
}

// render draws r with its baseline at row ascent into an image as wide as
// the glyph advance, widened to hold any overhang.
func render(face xfont.Face, r rune, ascent, height int) (*pixel.MonoVerticalLSBImage, bool) {
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return nil, false
	}
	var (
		minX = bounds.Min.X.Floor()
		maxX = bounds.Max.X.Ceil()
	)
	if minX > 0 {
		minX = 0
	}
	if a := advance.Ceil(); a > maxX {
		maxX = a
	}
	if maxX <= minX {
		return nil, false
	}

	img := pixel.NewMonoVerticalLSBImage(maxX-minX, height)
	d := xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pixel.On),
		Face: face,
		Dot:  fixed.P(-minX, ascent),
	}
	d.DrawString(string(r))
	return img, true
}

// trim drops the columns that are blank in every band.
func trim(bands [][]byte) [][]byte {
	blank := func(x int) bool {
		for _, band := range bands {
			if band[x] != 0 {
				return false
			}
		}
		return true
	}

	var (
		width = len(bands[0])
		left  = 0
		right = width
	)
	for left < right && blank(left) {
		left++
	}
	for right > left && blank(right-1) {
		right--
	}
	if left == right {
		return bands
	}
	for i := range bands {
		bands[i] = bands[i][left:right]
	}
	return bands
}

// LoadTrueType opens a TrueType font as a face of size points at 72 DPI, so
// that one point is one LED.
func LoadTrueType(data []byte, size float64) (xfont.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	}), nil
}

// LoadBDF opens a font in the Glyph Bitmap Distribution Format.
func LoadBDF(data []byte) (xfont.Face, error) {
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	return f.NewFace(), nil
}

// ReadFile loads the font at path. TrueType (.ttf, .otf) and BDF fonts are
// rasterized with opts, TrueType at size points. Other files are read with
// fontfile.ReadFile.
func ReadFile(path string, size float64, opts *Options) (*fontfile.Definition, error) {
	var load func([]byte) (xfont.Face, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		load = func(data []byte) (xfont.Face, error) { return LoadTrueType(data, size) }
	case ".bdf":
		load = LoadBDF
	default:
		return fontfile.ReadFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	face, err := load(data)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	if opts == nil {
		o := DefaultOptions
		o.Name = fontfile.Root(path)
		opts = &o
	}
	return Rasterize(face, opts)
}
