package draw

import (
	"image"
	"image/color"
	"testing"
)

func lit(img *image.Gray) (points []image.Point) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				points = append(points, image.Pt(x, y))
			}
		}
	}
	return
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want int
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), 1},
		{"horizontal", image.Pt(0, 2), image.Pt(7, 2), 8},
		{"vertical", image.Pt(4, 7), image.Pt(4, 0), 8},
		{"diagonal", image.Pt(0, 0), image.Pt(7, 7), 8},
		{"shallow", image.Pt(0, 0), image.Pt(15, 3), 16},
		{"steep", image.Pt(1, 7), image.Pt(3, 0), 8},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			img := image.NewGray(image.Rect(0, 0, 16, 8))
			Line(img, test.a, test.b, color.White)
			points := lit(img)
			if len(points) != test.want {
				it.Errorf("expected %d points, got %d: %v", test.want, len(points), points)
			}
			if img.GrayAt(test.a.X, test.a.Y).Y == 0 || img.GrayAt(test.b.X, test.b.Y).Y == 0 {
				it.Error("expected both end points to be drawn")
			}
		})
	}
}

func TestRectangle(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	Rectangle(img, image.Rect(1, 1, 5, 4), color.White)
	if n := len(lit(img)); n != 10 {
		t.Errorf("expected 10 outline pixels, got %d", n)
	}
	if img.GrayAt(2, 2).Y != 0 {
		t.Error("expected rectangle inside to stay clear")
	}
	if img.GrayAt(5, 1).Y != 0 || img.GrayAt(1, 4).Y != 0 {
		t.Error("expected Max edge to be exclusive")
	}
}

func TestBox(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	Box(img, image.Rect(6, 6, 2, 3), color.White)
	if n := len(lit(img)); n != 12 {
		t.Errorf("expected 12 filled pixels, got %d", n)
	}
}

func TestCircle(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	Circle(img, image.Pt(3, 3), 3, color.White)
	for _, p := range []image.Point{{6, 3}, {0, 3}, {3, 0}, {3, 6}} {
		if img.GrayAt(p.X, p.Y).Y == 0 {
			t.Errorf("expected %s on the circle", p)
		}
	}
	if img.GrayAt(3, 3).Y != 0 {
		t.Error("expected circle center to stay clear")
	}

	Disc(img, image.Pt(3, 3), 1, color.White)
	if img.GrayAt(3, 3).Y == 0 || img.GrayAt(4, 3).Y == 0 {
		t.Error("expected disc to be filled")
	}
}

func TestFillInvertCopy(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	Fill(img, image.Rect(6, 6, 10, 10), color.White)
	if n := len(lit(img)); n != 4 {
		t.Errorf("expected fill clipped to 4 pixels, got %d", n)
	}

	Invert(img, image.Rect(0, 0, 8, 1))
	if n := len(lit(img)); n != 12 {
		t.Errorf("expected 12 pixels after inverting the top row, got %d", n)
	}

	src := image.NewGray(image.Rect(10, 10, 12, 12))
	Copy(img, image.Pt(0, 0), src)
	for _, p := range []image.Point{{0, 0}, {1, 1}} {
		if img.GrayAt(p.X, p.Y).Y != 0 {
			t.Errorf("expected %v cleared by copy", p)
		}
	}
	if img.GrayAt(2, 0).Y == 0 {
		t.Error("expected pixel outside the copy to stay lit")
	}
}
