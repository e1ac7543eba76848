package color

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/uistyle/internal/lru"
)

// MaxPaletteSize is the number of entries an Index8 pixel can address.
const MaxPaletteSize = 256

// nearestCacheSize bounds the memoised nearest-entry lookups per palette.
const nearestCacheSize = 1024

// Palette maps Index8 pixel values to colors.
//
// A Palette is immutable after creation and safe for concurrent use.
type Palette struct {
	colors  []Color
	lab     []colorful.Color
	nearest *lru.Cache[Color, uint8]
}

// NewPalette creates a palette from up to MaxPaletteSize colors.
// Extra colors are ignored.
func NewPalette(colors ...Color) *Palette {
	if len(colors) > MaxPaletteSize {
		colors = colors[:MaxPaletteSize]
	}
	p := &Palette{
		colors:  slices.Clone(colors),
		lab:     make([]colorful.Color, len(colors)),
		nearest: lru.New[Color, uint8](nearestCacheSize),
	}
	for i, c := range p.colors {
		p.lab[i] = toColorful(c)
	}
	return p
}

// GrayPalette returns the 256-entry linear gray ramp.
func GrayPalette() *Palette {
	colors := make([]Color, MaxPaletteSize)
	for i := range colors {
		v := uint8(i)
		colors[i] = RGB(v, v, v)
	}
	return NewPalette(colors...)
}

// Len returns the number of entries. A nil palette is empty.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}

// Colors returns a copy of the entries.
func (p *Palette) Colors() []Color {
	if p == nil {
		return nil
	}
	return slices.Clone(p.colors)
}

// Lookup returns the color at index i.
func (p *Palette) Lookup(i int) (Color, error) {
	if i < 0 || i >= p.Len() {
		return 0, fmt.Errorf("%w: index %d, palette size %d", ErrPaletteIndexOutOfRange, i, p.Len())
	}
	return p.colors[i], nil
}

// Nearest returns the index of the entry closest to c.
//
// An exact match wins; otherwise the entry with the smallest CIE L*a*b*
// distance is chosen, ties going to the lowest index. Alpha only takes part
// in exact matching.
func (p *Palette) Nearest(c Color) (uint8, error) {
	if p.Len() == 0 {
		return 0, fmt.Errorf("%w: empty palette", ErrPaletteIndexOutOfRange)
	}
	if idx, ok := p.nearest.Get(c); ok {
		return idx, nil
	}

	idx := -1
	if i := slices.Index(p.colors, c); i >= 0 {
		idx = i
	} else {
		target := toColorful(c)
		best := 0.0
		for i, lab := range p.lab {
			d := target.DistanceLab(lab)
			if idx < 0 || d < best {
				idx, best = i, d
			}
		}
	}

	p.nearest.Put(c, uint8(idx))
	return uint8(idx), nil
}

// Equal reports whether p and o hold the same entries.
func (p *Palette) Equal(o *Palette) bool {
	if p == o {
		return true
	}
	return slices.Equal(p.Colors(), o.Colors())
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}
