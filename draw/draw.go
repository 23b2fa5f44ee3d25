// Package draw draws shapes on LED matrices and other draw.Image values.
package draw

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BeatGlow/max72xx/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Fill sets all pixels of r inside dst to c.
func Fill(dst Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Canon().Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// Invert toggles all pixels of r inside dst between lit and unlit.
func Invert(dst Image, r image.Rectangle) {
	r = r.Canon().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pixel.IsOn(dst.At(x, y)) {
				dst.Set(x, y, pixel.Off)
			} else {
				dst.Set(x, y, pixel.On)
			}
		}
	}
}

// Copy replaces the pixels of dst starting at dp with src.
func Copy(dst Image, dp image.Point, src image.Image) {
	b := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: dp, Max: dp.Add(b.Size())}, src, b.Min, draw.Src)
}
