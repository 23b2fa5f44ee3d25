package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both included.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect. The Max edge is exclusive, like for
// any other image.Rectangle.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	Fill(dst, rect, c)
}

// Circle draws the outline of a circle centered on p.
func Circle(dst Image, p image.Point, radius int, c color.Color) {
	if radius < 0 {
		return
	}
	var (
		x   = radius
		y   = 0
		err = 1 - radius
	)
	for x >= y {
		dst.Set(p.X+x, p.Y+y, c)
		dst.Set(p.X+y, p.Y+x, c)
		dst.Set(p.X-y, p.Y+x, c)
		dst.Set(p.X-x, p.Y+y, c)
		dst.Set(p.X-x, p.Y-y, c)
		dst.Set(p.X-y, p.Y-x, c)
		dst.Set(p.X+y, p.Y-x, c)
		dst.Set(p.X+x, p.Y-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// Disc draws a filled circle centered on p.
func Disc(dst Image, p image.Point, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				dst.Set(p.X+dx, p.Y+dy, c)
			}
		}
	}
}

func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	var (
		dx  = abs(x2 - x1)
		dy  = abs(y2 - y1)
		sx  = sign(x2 - x1)
		sy  = sign(y2 - y1)
		err = dx - dy
	)
	for {
		dst.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
