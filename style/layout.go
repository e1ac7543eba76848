package style

// FlexLayoutStyle groups the flex container and item keywords.
type FlexLayoutStyle struct {
	Wrap           Keyword
	Flow           Keyword
	Grow           Keyword
	Shrink         Keyword
	Basis          Keyword
	Direction      Keyword
	AlignSelf      Keyword
	AlignItems     Keyword
	AlignContent   Keyword
	JustifyContent Keyword
}

// DefaultFlexLayout returns the initial flex keywords: no wrapping, items
// packed at the start and automatic sizing.
func DefaultFlexLayout() FlexLayoutStyle {
	return FlexLayoutStyle{
		Wrap:           KeywordNowrap,
		Flow:           KeywordNone,
		Grow:           KeywordNone,
		Shrink:         KeywordNone,
		Basis:          KeywordAuto,
		Direction:      KeywordNone,
		AlignSelf:      KeywordAuto,
		AlignItems:     KeywordFlexStart,
		AlignContent:   KeywordFlexStart,
		JustifyContent: KeywordFlexStart,
	}
}

// BoundBox holds one value per edge, as used for margin, padding and
// position offsets.
type BoundBox struct {
	Top, Right, Bottom, Left Value
}

// Side returns the value at side.
func (b *BoundBox) Side(side Side) Value {
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

// SetSide replaces the value at side.
func (b *BoundBox) SetSide(side Side, v Value) {
	switch side {
	case SideRight:
		b.Right = v
	case SideBottom:
		b.Bottom = v
	case SideLeft:
		b.Left = v
	default:
		b.Top = v
	}
}

// SetAll sets every edge to v.
func (b *BoundBox) SetAll(v Value) {
	for _, s := range Sides {
		b.SetSide(s, v)
	}
}

// Reset unsets every edge.
func (b *BoundBox) Reset() {
	b.Top.Reset()
	b.Right.Reset()
	b.Bottom.Reset()
	b.Left.Reset()
}
