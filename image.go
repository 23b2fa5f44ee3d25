package max72xx

import (
	"image"
	"image/color"

	"github.com/BeatGlow/max72xx/pixel"
)

// Bounds is the pixel area of the chain; x is the column and y the row.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Columns(), RowSize)
}

// ColorModel is pixel.MonoModel.
func (d *Dev) ColorModel() color.Model {
	return pixel.MonoModel
}

// At returns pixel.On for lit pixels.
func (d *Dev) At(x, y int) color.Color {
	if !image.Pt(x, y).In(d.Bounds()) || !d.point(y, x) {
		return pixel.Off
	}
	return pixel.On
}

// Set lights the pixel if c converts to pixel.On. Points outside the display
// are ignored. With auto update on the device is updated immediately; a bus
// error leaves the change pending for the next Update.
func (d *Dev) Set(x, y int, c color.Color) {
	if d.closed || !image.Pt(x, y).In(d.Bounds()) {
		return
	}
	d.setPoint(y, x, pixel.IsOn(c))
	_ = d.syncDevice(x / ColSize)
}

// Draw copies img to the display, aligning img.Bounds().Min with the top
// left pixel, and sends all changes at once. Pixels outside img are cleared.
func (d *Dev) Draw(img image.Image) error {
	if err := d.ready(); err != nil {
		return err
	}
	var (
		b    = d.Bounds()
		from = img.Bounds()
	)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := from.Min.Add(image.Pt(x, y))
			d.setPoint(y, x, p.In(from) && pixel.IsOn(img.At(p.X, p.Y)))
		}
	}
	return d.sync()
}

// Image returns a snapshot of the display contents.
func (d *Dev) Image() *pixel.MonoImage {
	img := pixel.NewMonoImage(d.Columns(), RowSize)
	for y := 0; y < RowSize; y++ {
		for dev := range d.buf {
			// One byte of a MonoImage row is one device row.
			img.Pix[img.PixOffset(dev*ColSize, y)] = d.row(dev, y)
		}
	}
	return img
}
