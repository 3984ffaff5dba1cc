package draw

import (
	"image"
	"image/color"
	"iter"

	"github.com/BeatGlow/pixels"
)

// Point draws a single point.
func Point(p image.Point, c color.Color) iter.Seq[pixels.Pixel] {
	return stream(c, func(plot plotFunc) {
		plot(p.X, p.Y)
	})
}

// Line draws a line between two points.
func Line(a, b image.Point, c color.Color) iter.Seq[pixels.Pixel] {
	return stream(c, func(plot plotFunc) {
		bresenham(plot, a.X, a.Y, b.X, b.Y)
	})
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(x, y, w int, c color.Color) iter.Seq[pixels.Pixel] {
	return stream(c, func(plot plotFunc) {
		hline(plot, x, y, w)
	})
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(x, y, h int, c color.Color) iter.Seq[pixels.Pixel] {
	return stream(c, func(plot plotFunc) {
		vline(plot, x, y, h)
	})
}

// Rectangle draws the outline of rect.
func Rectangle(rect image.Rectangle, c color.Color) iter.Seq[pixels.Pixel] {
	rect = rect.Canon()
	return stream(c, func(plot plotFunc) {
		if rect.Empty() {
			return
		}
		var (
			x = rect.Min.X
			y = rect.Min.Y
			w = rect.Dx()
			h = rect.Dy()
		)
		hline(plot, x, y, w)
		hline(plot, x, y+h-1, w)
		vline(plot, x, y+1, h-2)
		vline(plot, x+w-1, y+1, h-2)
	})
}

// RoundedRectangle draws the outline of rect with radius pixels rounded corners.
func RoundedRectangle(rect image.Rectangle, radius int, c color.Color) iter.Seq[pixels.Pixel] {
	rect = rect.Canon()
	return stream(c, func(plot plotFunc) {
		var (
			r = clampRadius(rect, radius)
			x = rect.Min.X
			y = rect.Min.Y
			w = rect.Dx()
			h = rect.Dy()
		)
		if rect.Empty() {
			return
		}
		hline(plot, x+r, y, w-2*r)
		hline(plot, x+r, y+h-1, w-2*r)
		vline(plot, x, y+r, h-2*r)
		vline(plot, x+w-1, y+r, h-2*r)
		roundedCorner(plot, x+0+r+0, y+0+r+0, r, 1)
		roundedCorner(plot, x+w-r-1, y+0+r+0, r, 2)
		roundedCorner(plot, x+w-r-1, y+h-r-1, r, 4)
		roundedCorner(plot, x+0+r+0, y+h-r-1, r, 8)
	})
}

// Box draws a filled rectangle.
func Box(rect image.Rectangle, c color.Color) iter.Seq[pixels.Pixel] {
	rect = rect.Canon()
	return stream(c, func(plot plotFunc) {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			hline(plot, rect.Min.X, y, rect.Dx())
		}
	})
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(rect image.Rectangle, radius int, c color.Color) iter.Seq[pixels.Pixel] {
	rect = rect.Canon()
	return stream(c, func(plot plotFunc) {
		var (
			r = clampRadius(rect, radius)
			x = rect.Min.X
			y = rect.Min.Y
			w = rect.Dx()
			h = rect.Dy()
		)
		if rect.Empty() {
			return
		}
		for yy := y; yy < y+h; yy++ {
			hline(plot, x+r, yy, w-2*r)
		}
		filledRoundedCorner(plot, x+w-r-1, y+r, r, 1, h-2*r-1)
		filledRoundedCorner(plot, x+r, y+r, r, 2, h-2*r-1)
	})
}

// Circle draws the outline of a circle.
func Circle(center image.Point, radius int, c color.Color) iter.Seq[pixels.Pixel] {
	return stream(c, func(plot plotFunc) {
		if radius < 0 {
			return
		}
		x0, y0 := center.X, center.Y
		plot(x0, y0-radius)
		plot(x0+radius, y0)
		if radius == 0 {
			return
		}
		plot(x0, y0+radius)
		plot(x0-radius, y0)
		roundedCorner(plot, x0, y0, radius, 15)
	})
}

func clampRadius(rect image.Rectangle, radius int) int {
	if radius < 0 {
		return 0
	}
	if m := min(rect.Dx(), rect.Dy()) / 2; radius > m {
		return m
	}
	return radius
}

func hline(plot plotFunc, x, y, w int) {
	for i := 0; i < w; i++ {
		plot(x+i, y)
	}
}

func vline(plot plotFunc, x, y, h int) {
	for i := 0; i < h; i++ {
		plot(x, y+i)
	}
}

func roundedCorner(plot plotFunc, x0, y0, radius, quadrant int) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			plot(x0+x, y0+y)
			plot(x0+y, y0+x)
		}
		if quadrant&2 != 0 {
			plot(x0+x, y0-y)
			plot(x0+y, y0-x)
		}
		if quadrant&8 != 0 {
			plot(x0-y, y0+x)
			plot(x0-x, y0+y)
		}
		if quadrant&1 != 0 {
			plot(x0-y, y0-x)
			plot(x0-x, y0-y)
		}
	}
}

func filledRoundedCorner(plot plotFunc, x0, y0, radius, quadrant, delta int) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			vline(plot, x0+x, y0-y, 2*y+1+delta)
			vline(plot, x0+y, y0-x, 2*x+1+delta)
		}

		if quadrant&2 != 0 {
			vline(plot, x0-x, y0-y, 2*y+1+delta)
			vline(plot, x0-y, y0-x, 2*x+1+delta)
		}
	}
}

// Generalized with integer
func bresenham(plot plotFunc, x1, y1, x2, y2 int) {
	var dx, dy, e, slope int

	// Drawing p1 -> p2 is equivalent to drawing p2 -> p1, so sort the points
	// in x-axis order to handle only half of the possible cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	// Points are x-axis ordered, dx cannot be negative
	if dy < 0 {
		dy = -dy
	}

	switch {

	// Is line a point ?
	case x1 == x2 && y1 == y2:
		plot(x1, y1)

	// Is line an horizontal ?
	case y1 == y2:
		for ; dx != 0; dx-- {
			plot(x1, y1)
			x1++
		}
		plot(x1, y1)

	// Is line a vertical ?
	case x1 == x2:
		if y1 > y2 {
			y1 = y2
		}
		for ; dy != 0; dy-- {
			plot(x1, y1)
			y1++
		}
		plot(x1, y1)

	// Is line a diagonal ?
	case dx == dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		for ; dx != 0; dx-- {
			plot(x1, y1)
			x1++
			y1 += step
		}
		plot(x1, y1)

	// wider than high ?
	case dx > dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dy, e, slope = 2*dy, dx, 2*dx
		for ; dx != 0; dx-- {
			plot(x1, y1)
			x1++
			e -= dy
			if e < 0 {
				y1 += step
				e += slope
			}
		}
		plot(x2, y2)

	// higher than wide.
	default:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dx, e, slope = 2*dx, dy, 2*dy
		for ; dy != 0; dy-- {
			plot(x1, y1)
			y1 += step
			e -= dx
			if e < 0 {
				x1++
				e += slope
			}
		}
		plot(x2, y2)
	}
}
