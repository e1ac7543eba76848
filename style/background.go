package style

import (
	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
	"github.com/gogpu/uistyle/graph"
)

// BackgroundPosition places a background image either by keyword
// ("center", "top-left", ...) or by an explicit x/y pair.
type BackgroundPosition struct {
	UsingValue bool
	X, Y       Value
	Value      Keyword
}

// PositionKeyword returns a keyword position.
func PositionKeyword(k Keyword) BackgroundPosition {
	return BackgroundPosition{Value: k}
}

// PositionValues returns an explicit position.
func PositionValues(x, y Value) BackgroundPosition {
	return BackgroundPosition{UsingValue: true, X: x, Y: y}
}

// Keyword returns the keyword and true when p is keyword based.
func (p BackgroundPosition) Keyword() (Keyword, bool) {
	return p.Value, !p.UsingValue
}

// Values returns the explicit pair and true when p is value based.
func (p BackgroundPosition) Values() (x, y Value, ok bool) {
	return p.X, p.Y, p.UsingValue
}

// BackgroundSize sizes a background image either by keyword ("contain",
// "cover", "auto") or by an explicit width/height pair.
type BackgroundSize struct {
	UsingValue    bool
	Width, Height Value
	Value         Keyword
}

// SizeKeyword returns a keyword size.
func SizeKeyword(k Keyword) BackgroundSize {
	return BackgroundSize{Value: k}
}

// SizeValues returns an explicit size.
func SizeValues(w, h Value) BackgroundSize {
	return BackgroundSize{UsingValue: true, Width: w, Height: h}
}

// Keyword returns the keyword and true when s is keyword based.
func (s BackgroundSize) Keyword() (Keyword, bool) {
	return s.Value, !s.UsingValue
}

// Values returns the explicit pair and true when s is value based.
func (s BackgroundSize) Values() (w, h Value, ok bool) {
	return s.Width, s.Height, s.UsingValue
}

// BackgroundStyle is a background as specified. Image is a reference; the
// style does not own the graph.
type BackgroundStyle struct {
	Image    *graph.Graph
	Color    color.Color
	RepeatX  bool
	RepeatY  bool
	Position BackgroundPosition
	Size     BackgroundSize
}

// HasImage reports whether an image with pixels is attached.
func (b *BackgroundStyle) HasImage() bool {
	return b.Image != nil && b.Image.IsValid()
}

// Background is a computed background in device pixels.
type Background struct {
	Image    *graph.Graph
	Color    color.Color
	RepeatX  bool
	RepeatY  bool
	Position geom.Pos
	Size     geom.Size
}

// Visible reports whether the background paints anything.
func (b *Background) Visible() bool {
	return b.Color.A() > 0 || (b.Image != nil && b.Image.IsValid() && !b.Size.Empty())
}
