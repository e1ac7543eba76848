package graph

import (
	"fmt"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

// PaintContext is the drawing target handed to a paint stage: the area to
// repaint, in the target's coordinates, and a writable canvas quoting that
// area.
type PaintContext struct {
	Rect      geom.Rect
	Canvas    *Graph
	WithAlpha bool
}

// NewPaintContext clips rect to target and quotes the result writably.
// It fails with ErrRegionOutOfBounds when nothing of rect lies inside
// target, and with ErrNotWritable for read-only targets.
func NewPaintContext(target *Graph, rect geom.Rect) (*PaintContext, error) {
	clipped := rect.Intersect(target.Rect())
	if clipped.Empty() {
		return nil, fmt.Errorf("%w: %+v does not overlap %dx%d",
			ErrRegionOutOfBounds, rect, target.width, target.height)
	}
	canvas, err := target.Quote(clipped, true)
	if err != nil {
		return nil, err
	}
	return &PaintContext{
		Rect:      clipped,
		Canvas:    canvas,
		WithAlpha: target.colorType.HasAlpha(),
	}, nil
}

// Sub returns a context for the part of rect, in the parent's target
// coordinates, that lies inside pc.
func (pc *PaintContext) Sub(rect geom.Rect) (*PaintContext, error) {
	local := rect.Intersect(pc.Rect).Add(geom.Pos{X: -pc.Rect.X, Y: -pc.Rect.Y})
	sub, err := NewPaintContext(pc.Canvas, local)
	if err != nil {
		return nil, err
	}
	sub.Rect = sub.Rect.Add(geom.Pos{X: pc.Rect.X, Y: pc.Rect.Y})
	sub.WithAlpha = pc.WithAlpha
	return sub, nil
}

// Release drops the canvas quote. The target is untouched.
func (pc *PaintContext) Release() {
	if pc.Canvas != nil {
		pc.Canvas.Release()
		pc.Canvas = nil
	}
}

// Replace copies src into g with its top-left corner at (x, y), converting
// between color types. Pixels falling outside g are skipped.
func (g *Graph) Replace(src *Graph, x, y int) error {
	return g.compose(src, x, y, func(_, s color.Color, _ float32) color.Color { return s })
}

// Mix draws src over g at (x, y) with source-over alpha blending, scaled by
// the opacity of src. Pixels falling outside g are skipped.
func (g *Graph) Mix(src *Graph, x, y int) error {
	return g.compose(src, x, y, blendOver)
}

func (g *Graph) compose(src *Graph, x, y int, op func(dst, src color.Color, opacity float32) color.Color) error {
	if !g.writable() {
		return ErrNotWritable
	}
	area := geom.XYWH(x, y, src.width, src.height).Intersect(g.Rect())
	if area.Empty() {
		return nil
	}
	for py := area.Y; py < area.Bottom(); py++ {
		for px := area.X; px < area.Right(); px++ {
			s, err := src.GetPixel(px-x, py-y)
			if err != nil {
				return err
			}
			d, err := g.GetPixel(px, py)
			if err != nil {
				return err
			}
			if err := g.SetPixel(px, py, op(d, s, src.opacity)); err != nil {
				return err
			}
		}
	}
	return nil
}

// blendOver composites s over d in non-premultiplied space.
func blendOver(d, s color.Color, opacity float32) color.Color {
	sa := uint32(float32(s.A())*opacity + 0.5)
	if sa == 0 {
		return d
	}
	if sa >= 255 {
		return s.WithAlpha(255)
	}
	da := uint32(d.A())
	outA := sa + da*(255-sa)/255
	mix := func(sc, dc uint8) uint8 {
		return uint8((uint32(sc)*sa + uint32(dc)*da*(255-sa)/255 + outA/2) / outA)
	}
	return color.ARGB(uint8(outA), mix(s.R(), d.R()), mix(s.G(), d.G()), mix(s.B(), d.B()))
}
