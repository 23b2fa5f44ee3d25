package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a draw.Image backed by a packed pixel Buffer.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the packed pixel values of the images in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels,
	// or between adjacent bands of 8 rows for vertical images.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) fill(c color.Color) {
	var value byte
	if IsOn(c) {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// at returns the pixel at index i under mask.
func (p *Buffer) at(i int, mask byte, ok bool) color.Color {
	if !ok {
		return color.Transparent
	}
	return Mono{On: p.Pix[i]&mask != 0}
}

// set stores c at index i under mask.
func (p *Buffer) set(i int, mask byte, ok bool, c color.Color) {
	switch {
	case !ok:
	case IsOn(c):
		p.Pix[i] |= mask
	default:
		p.Pix[i] &^= mask
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// MonoImage is a 1-bit per pixel monochrome image stored row by row. Each
// byte holds 8 horizontally adjacent pixels, the leftmost in bit 0.
//
// For an LED matrix each byte is one device row as returned by Dev.Row.
type MonoImage struct {
	Buffer
}

func NewMonoImage(w, h int) *MonoImage {
	stride := (w + 7) / 8
	return &MonoImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

func (p *MonoImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding pixel (x, y).
func (p *MonoImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/8
}

func (p *MonoImage) locate(x, y int) (int, byte, bool) {
	if !image.Pt(x, y).In(p.Rect) {
		return 0, 0, false
	}
	return p.PixOffset(x, y), 1 << uint((x-p.Rect.Min.X)&7), true
}

func (p *MonoImage) At(x, y int) color.Color {
	return p.at(p.locate(x, y))
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	i, mask, ok := p.locate(x, y)
	p.set(i, mask, ok, c)
}

func (p *MonoImage) Fill(c color.Color) {
	p.fill(c)
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image stored in bands of
// 8 rows. Each byte holds 8 vertically adjacent pixels, the topmost in bit 0.
//
// For an 8 pixel high image each byte is one glyph column of a font table.
type MonoVerticalLSBImage struct {
	Buffer
}

func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	bands := (h + 7) / 8
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, bands*w),
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding pixel (x, y).
func (p *MonoVerticalLSBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)/8*p.Stride + x - p.Rect.Min.X
}

func (p *MonoVerticalLSBImage) locate(x, y int) (int, byte, bool) {
	if !image.Pt(x, y).In(p.Rect) {
		return 0, 0, false
	}
	return p.PixOffset(x, y), 1 << uint((y-p.Rect.Min.Y)&7), true
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	return p.at(p.locate(x, y))
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	i, mask, ok := p.locate(x, y)
	p.set(i, mask, ok, c)
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	p.fill(c)
}

// Column returns the band of 8 pixels starting at row band*8 in column x.
func (p *MonoVerticalLSBImage) Column(x, band int) byte {
	return p.Pix[band*p.Stride+x-p.Rect.Min.X]
}
