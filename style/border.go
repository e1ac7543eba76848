package style

import (
	"math"

	"github.com/gogpu/uistyle/color"
)

// Side names one edge of a box.
type Side uint8

// Box edges.
const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Sides lists the edges in CSS order.
var Sides = [4]Side{SideTop, SideRight, SideBottom, SideLeft}

// String returns the lowercase edge name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// BorderStyleLine is the specified style of one border edge.
type BorderStyleLine struct {
	Style Keyword
	Width float32
	Color color.Color
}

// BorderStyle is a border as specified, before scaling to device pixels.
type BorderStyle struct {
	Top, Right, Bottom, Left BorderStyleLine

	TopLeftRadius     float32
	TopRightRadius    float32
	BottomLeftRadius  float32
	BottomRightRadius float32
}

// Line returns the edge at side.
func (b *BorderStyle) Line(side Side) BorderStyleLine {
	switch side {
	case SideRight:
		return b.Right
	case SideBottom:
		return b.Bottom
	case SideLeft:
		return b.Left
	default:
		return b.Top
	}
}

// Compute scales b by scale and rounds every width and radius to whole
// device pixels. Negative results clamp to zero.
func (b *BorderStyle) Compute(scale float32) Border {
	px := func(f float32) uint32 {
		v := math.Round(float64(f * scale))
		if !(v > 0) {
			return 0
		}
		return uint32(v)
	}
	line := func(l BorderStyleLine) BorderLine {
		return BorderLine{Style: l.Style, Width: px(l.Width), Color: l.Color}
	}
	return Border{
		Top:               line(b.Top),
		Right:             line(b.Right),
		Bottom:            line(b.Bottom),
		Left:              line(b.Left),
		TopLeftRadius:     px(b.TopLeftRadius),
		TopRightRadius:    px(b.TopRightRadius),
		BottomLeftRadius:  px(b.BottomLeftRadius),
		BottomRightRadius: px(b.BottomRightRadius),
	}
}

// BorderLine is one computed border edge.
type BorderLine struct {
	Style Keyword
	Width uint32
	Color color.Color
}

// Visible reports whether the edge paints anything.
func (l BorderLine) Visible() bool {
	return l.Width > 0 && l.Style != KeywordNone && l.Color.A() > 0
}

// Border is a computed border in device pixels.
type Border struct {
	Top, Right, Bottom, Left BorderLine

	TopLeftRadius     uint32
	TopRightRadius    uint32
	BottomLeftRadius  uint32
	BottomRightRadius uint32
}

// Line returns the edge at side.
func (b *Border) Line(side Side) BorderLine {
	switch side {
	case SideRight:
		return b.Right
	case SideBottom:
		return b.Bottom
	case SideLeft:
		return b.Left
	default:
		return b.Top
	}
}

// SetLine replaces the edge at side.
func (b *Border) SetLine(side Side, l BorderLine) {
	switch side {
	case SideRight:
		b.Right = l
	case SideBottom:
		b.Bottom = l
	case SideLeft:
		b.Left = l
	default:
		b.Top = l
	}
}

// HasRadius reports whether any corner is rounded.
func (b *Border) HasRadius() bool {
	return b.TopLeftRadius > 0 || b.TopRightRadius > 0 ||
		b.BottomLeftRadius > 0 || b.BottomRightRadius > 0
}

// Visible reports whether any edge paints anything.
func (b *Border) Visible() bool {
	for _, s := range Sides {
		if b.Line(s).Visible() {
			return true
		}
	}
	return false
}
