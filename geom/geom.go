// Package geom provides the small integer and float rectangle types shared
// by graphs, paint contexts and layout consumers.
package geom

import "math"

// Pos is a point in integer coordinates.
type Pos struct {
	X, Y int
}

// Size is an integer extent.
type Size struct {
	Width, Height int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an integer rectangle given by its origin and size.
type Rect struct {
	X, Y, Width, Height int
}

// XYWH is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func XYWH(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the exclusive right edge, saturated to the int range.
func (r Rect) Right() int { return addSat(r.X, r.Width) }

// Bottom returns the exclusive bottom edge, saturated to the int range.
func (r Rect) Bottom() int { return addSat(r.Y, r.Height) }

func addSat(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}
	return s
}

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// In reports whether r lies entirely inside o. An empty r is never inside.
func (r Rect) In(o Rect) bool {
	if r.Empty() {
		return false
	}
	if r.X < o.X || r.Y < o.Y {
		return false
	}
	return r.Width <= o.Right()-r.X && r.Height <= o.Bottom()-r.Y
}

// Intersect returns the overlap of r and o, or the zero Rect if they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	if r.Empty() || o.Empty() {
		return Rect{}
	}
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Add translates r by p.
func (r Rect) Add(p Pos) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, Width: r.Width, Height: r.Height}
}

// Rect2 converts r to edge form.
func (r Rect) Rect2() Rect2 {
	return Rect2{Left: r.X, Top: r.Y, Right: r.Right(), Bottom: r.Bottom()}
}

// Float converts r to float coordinates.
func (r Rect) Float() RectF {
	return RectF{X: float32(r.X), Y: float32(r.Y), Width: float32(r.Width), Height: float32(r.Height)}
}

// Rect2 is an integer rectangle given by its edges.
type Rect2 struct {
	Left, Top, Right, Bottom int
}

// Rect converts r to origin-and-size form.
func (r Rect2) Rect() Rect {
	return Rect{X: r.Left, Y: r.Top, Width: r.Right - r.Left, Height: r.Bottom - r.Top}
}

// RectF is a float rectangle given by its origin and size.
type RectF struct {
	X, Y, Width, Height float32
}

// Round returns the smallest integer rectangle covering r.
func (r RectF) Round() Rect {
	x0 := int(math.Floor(float64(r.X)))
	y0 := int(math.Floor(float64(r.Y)))
	x1 := int(math.Ceil(float64(r.X + r.Width)))
	y1 := int(math.Ceil(float64(r.Y + r.Height)))
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Rect2F converts r to edge form.
func (r RectF) Rect2F() Rect2F {
	return Rect2F{Left: r.X, Top: r.Y, Right: r.X + r.Width, Bottom: r.Y + r.Height}
}

// Rect2F is a float rectangle given by its edges.
type Rect2F struct {
	Left, Top, Right, Bottom float32
}

// RectF converts r to origin-and-size form.
func (r Rect2F) RectF() RectF {
	return RectF{X: r.Left, Y: r.Top, Width: r.Right - r.Left, Height: r.Bottom - r.Top}
}
