package style

import (
	"math"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

// BoxShadowStyle is a box shadow as specified.
type BoxShadowStyle struct {
	X, Y   float32
	Blur   float32
	Spread float32
	Color  color.Color
}

// IsNone reports whether the shadow cannot paint anything.
func (s BoxShadowStyle) IsNone() bool {
	return s.Color.A() == 0 || (s.X == 0 && s.Y == 0 && s.Blur == 0 && s.Spread == 0)
}

// Compute scales s to device pixels.
func (s BoxShadowStyle) Compute(scale float32) BoxShadow {
	px := func(f float32) int { return int(math.Round(float64(f * scale))) }
	return BoxShadow{
		X:      px(s.X),
		Y:      px(s.Y),
		Blur:   max(px(s.Blur), 0),
		Spread: px(s.Spread),
		Color:  s.Color,
	}
}

// BoxShadow is a computed box shadow in device pixels.
type BoxShadow struct {
	X, Y   int
	Blur   int
	Spread int
	Color  color.Color
}

// Outset returns how far the shadow reaches beyond each edge of the box it
// is cast by. Edges the shadow does not reach are zero.
func (s BoxShadow) Outset() geom.Rect2 {
	reach := s.Blur + s.Spread
	return geom.Rect2{
		Left:   max(reach-s.X, 0),
		Top:    max(reach-s.Y, 0),
		Right:  max(reach+s.X, 0),
		Bottom: max(reach+s.Y, 0),
	}
}

// Bounds returns the area covered by box plus its shadow.
func (s BoxShadow) Bounds(box geom.Rect) geom.Rect {
	o := s.Outset()
	return geom.XYWH(box.X-o.Left, box.Y-o.Top,
		box.Width+o.Left+o.Right, box.Height+o.Top+o.Bottom)
}
