package style

import (
	"testing"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

func TestBorderStyle_Compute(t *testing.T) {
	s := BorderStyle{
		Top:           BorderStyleLine{Style: KeywordSolid, Width: 1.4, Color: color.Black},
		Left:          BorderStyleLine{Style: KeywordDashed, Width: -2, Color: color.Red},
		TopLeftRadius: 2.5,
	}
	b := s.Compute(2)

	if b.Top.Width != 3 || b.Top.Style != KeywordSolid || b.Top.Color != color.Black {
		t.Errorf("Top = %+v, want solid black width 3", b.Top)
	}
	if b.Left.Width != 0 {
		t.Errorf("Left.Width = %d, want negative widths clamped to 0", b.Left.Width)
	}
	if b.TopLeftRadius != 5 || !b.HasRadius() {
		t.Errorf("TopLeftRadius = %d, HasRadius() = %v", b.TopLeftRadius, b.HasRadius())
	}
	if s.Line(SideLeft).Style != KeywordDashed {
		t.Errorf("BorderStyle.Line(left) = %+v", s.Line(SideLeft))
	}
}

func TestBorder_Lines(t *testing.T) {
	var b Border
	if b.Visible() || b.HasRadius() {
		t.Error("zero Border should be invisible and square")
	}
	for i, side := range Sides {
		b.SetLine(side, BorderLine{Style: KeywordSolid, Width: uint32(i + 1), Color: color.Blue})
	}
	for i, side := range Sides {
		if got := b.Line(side).Width; got != uint32(i+1) {
			t.Errorf("Line(%v).Width = %d, want %d", side, got, i+1)
		}
	}
	if !b.Visible() {
		t.Error("Visible() = false with solid edges")
	}

	hidden := BorderLine{Style: KeywordNone, Width: 4, Color: color.Blue}
	if hidden.Visible() {
		t.Error("edge with style none is visible")
	}
	if (BorderLine{Style: KeywordSolid, Width: 1, Color: color.Transparent}).Visible() {
		t.Error("transparent edge is visible")
	}
}

func TestBoxShadow(t *testing.T) {
	s := BoxShadowStyle{X: 2, Y: -1, Blur: 4, Spread: 1, Color: color.RGBA(0, 0, 0, 128)}
	if s.IsNone() {
		t.Fatal("IsNone() = true for a visible shadow")
	}
	if !(BoxShadowStyle{Blur: 4, Color: color.Transparent}).IsNone() {
		t.Error("transparent shadow is not none")
	}
	if !(BoxShadowStyle{Color: color.Black}).IsNone() {
		t.Error("zero-geometry shadow is not none")
	}

	c := s.Compute(1.5)
	want := BoxShadow{X: 3, Y: -2, Blur: 6, Spread: 2, Color: s.Color}
	if c != want {
		t.Fatalf("Compute(1.5) = %+v, want %+v", c, want)
	}

	o := c.Outset()
	if o != (geom.Rect2{Left: 5, Top: 10, Right: 11, Bottom: 6}) {
		t.Errorf("Outset() = %+v", o)
	}
	if got := c.Bounds(geom.XYWH(10, 10, 20, 20)); got != geom.XYWH(5, 0, 36, 36) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestBoundBox(t *testing.T) {
	var b BoundBox
	b.SetAll(Px(4))
	b.SetSide(SideLeft, Auto())

	if !b.Side(SideTop).Equal(Px(4)) || !b.Side(SideLeft).Equal(Auto()) {
		t.Errorf("BoundBox = %+v", b)
	}
	b.Reset()
	for _, s := range Sides {
		if b.Side(s).IsValid() {
			t.Errorf("Side(%v) set after Reset()", s)
		}
	}
}

func TestBackgroundPositionAndSize(t *testing.T) {
	p := PositionKeyword(KeywordTopRight)
	if k, ok := p.Keyword(); !ok || k != KeywordTopRight {
		t.Errorf("Keyword() = %v, %v", k, ok)
	}
	if _, _, ok := p.Values(); ok {
		t.Error("keyword position reports values")
	}

	p = PositionValues(Px(3), Scale(0.5))
	x, y, ok := p.Values()
	if !ok || !x.Equal(Px(3)) || !y.Equal(Scale(0.5)) {
		t.Errorf("Values() = %v, %v, %v", x, y, ok)
	}
	if _, ok := p.Keyword(); ok {
		t.Error("value position reports a keyword")
	}

	s := SizeKeyword(KeywordCover)
	if k, ok := s.Keyword(); !ok || k != KeywordCover {
		t.Errorf("size Keyword() = %v, %v", k, ok)
	}
	w, h, ok := SizeValues(Px(10), Auto()).Values()
	if !ok || !w.Equal(Px(10)) || !h.Equal(Auto()) {
		t.Errorf("size Values() = %v, %v, %v", w, h, ok)
	}
}

func TestBackground(t *testing.T) {
	img := testImage(t)
	bs := BackgroundStyle{Image: img, Position: PositionKeyword(KeywordCenter)}
	if !bs.HasImage() {
		t.Error("HasImage() = false with a valid image")
	}

	bg := Background{Image: img, Size: geom.Size{Width: 3, Height: 2}}
	if !bg.Visible() {
		t.Error("Visible() = false with an image")
	}
	img.Release()
	if bs.HasImage() || bg.Visible() {
		t.Error("released image still counts as painted")
	}
	bg.Color = color.White
	if !bg.Visible() {
		t.Error("Visible() = false with an opaque color")
	}
}

func TestDefaultFlexLayout(t *testing.T) {
	f := DefaultFlexLayout()
	if f.Wrap != KeywordNowrap || f.JustifyContent != KeywordFlexStart || f.Basis != KeywordAuto {
		t.Errorf("DefaultFlexLayout() = %+v", f)
	}
}
