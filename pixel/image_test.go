package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMonoImage(size.X, size.Y)
	})
}

func TestMonoVerticalLSBImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMonoVerticalLSBImage(size.X, size.Y)
	})
}

func TestMonoImageLayout(t *testing.T) {
	i := NewMonoImage(16, 8)
	i.Set(0, 0, On)
	i.Set(9, 0, On)
	i.Set(7, 3, On)
	if i.Pix[0] != 0x01 {
		t.Errorf("expected pixel (0,0) in bit 0 of byte 0, got %#02x", i.Pix[0])
	}
	if i.Pix[1] != 0x02 {
		t.Errorf("expected pixel (9,0) in bit 1 of byte 1, got %#02x", i.Pix[1])
	}
	if v := i.Pix[i.PixOffset(7, 3)]; v != 0x80 {
		t.Errorf("expected pixel (7,3) in bit 7, got %#02x", v)
	}
}

func TestMonoVerticalLSBImageLayout(t *testing.T) {
	i := NewMonoVerticalLSBImage(5, 16)
	i.Set(2, 0, On)
	i.Set(2, 7, On)
	i.Set(4, 9, On)
	if v := i.Column(2, 0); v != 0x81 {
		t.Errorf("expected column 2 band 0 to be 0x81, got %#02x", v)
	}
	if v := i.Column(4, 1); v != 0x02 {
		t.Errorf("expected column 4 band 1 to be 0x02, got %#02x", v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(8, 8),
		image.Pt(64, 8),
		image.Pt(13, 17),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected mono color model, got %T", v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.At(x, y); v != On {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected on", x, y, v)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if v := i.At(x, y); v != Off {
							itt.Fatalf("pixel (%d,%d) is not off", x, y)
						}
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
