package graph

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/uistyle"
	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

// Copy returns an owning deep copy of the visible pixels of g with the same
// type, palette and opacity. Copying a quote flattens it.
func (g *Graph) Copy() (*Graph, error) {
	return g.Cut(g.Rect())
}

// Cut returns an owning deep copy of region.
func (g *Graph) Cut(region geom.Rect) (*Graph, error) {
	if !region.In(g.Rect()) {
		return nil, fmt.Errorf("%w: %+v in %dx%d", ErrRegionOutOfBounds, region, g.width, g.height)
	}
	s, err := g.resolve()
	if err != nil {
		return nil, err
	}
	dst, err := New(region.Width, region.Height, g.colorType,
		WithRowAlignment(g.rowAlignment),
		WithPalette(g.Palette()),
		WithOpacity(g.opacity))
	if err != nil {
		return nil, err
	}

	bpp := g.bytesPerPixel
	for y := range region.Height {
		src := s.row(region.Y+y, g.width)[region.X*bpp : region.Right()*bpp]
		copy(dst.data[y*dst.bytesPerRow:], src)
	}
	return dst, nil
}

// Convert returns an owning copy of g encoded as t.
//
// The source palette carries over unless opts supply one. Converting to an
// indexed type maps every pixel to its nearest palette entry.
func (g *Graph) Convert(t color.Type, opts ...Option) (*Graph, error) {
	s, err := g.resolve()
	if err != nil {
		return nil, err
	}
	base := []Option{WithRowAlignment(g.rowAlignment), WithPalette(g.Palette()), WithOpacity(g.opacity)}
	dst, err := New(g.width, g.height, t, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	if t == g.colorType && dst.Palette().Equal(g.Palette()) {
		for y := range g.height {
			copy(dst.data[y*dst.bytesPerRow:], s.row(y, g.width))
		}
		return dst, nil
	}

	srcPal, dstPal := g.Palette(), dst.Palette()
	sbpp, dbpp := g.bytesPerPixel, dst.bytesPerPixel
	for y := range g.height {
		src := s.row(y, g.width)
		out := dst.data[y*dst.bytesPerRow:]
		for x := range g.width {
			c, err := color.Unpack(g.colorType.Decode(src[x*sbpp:]), g.colorType, srcPal)
			if err != nil {
				return nil, fmt.Errorf("graph: convert pixel (%d, %d): %w", x, y, err)
			}
			raw, err := color.Pack(c, t, dstPal)
			if err != nil {
				return nil, fmt.Errorf("graph: convert pixel (%d, %d): %w", x, y, err)
			}
			t.Encode(out[x*dbpp:], raw)
		}
	}

	uistyle.Logger().Debug("graph: converted", "from", g.colorType, "to", t,
		"width", g.width, "height", g.height)
	return dst, nil
}

// Resize changes the dimensions of an owning graph in place, keeping the
// overlapping top-left pixels and zeroing new ones.
//
// Quotes cannot be resized (ErrNotWritable). Every quote of g turns stale,
// even when the size is unchanged.
func (g *Graph) Resize(width, height int) error {
	if g.quote.valid {
		return fmt.Errorf("%w: cannot resize a quote", ErrNotWritable)
	}
	o := defaultOptions()
	if g.rowAlignment > 0 {
		o.rowAlignment = g.rowAlignment
	}
	size, rowBytes, err := storageSize(width, height, g.colorType, o)
	if err != nil {
		return err
	}

	data := make([]byte, size)
	keepW, keepH := min(width, g.width), min(height, g.height)
	for y := range keepH {
		copy(data[y*rowBytes:], g.data[y*g.bytesPerRow:y*g.bytesPerRow+keepW*g.bytesPerPixel])
	}

	uistyle.Logger().Debug("graph: resized",
		"from", fmt.Sprintf("%dx%d", g.width, g.height),
		"to", fmt.Sprintf("%dx%d", width, height))

	g.data = data
	g.width, g.height = width, height
	g.bytesPerPixel = g.colorType.BytesPerPixel()
	g.bytesPerRow = rowBytes
	g.rowAlignment = o.rowAlignment
	g.generation++
	return nil
}

// Zoom returns an owning copy of g scaled to width x height. Smooth scaling
// uses bilinear filtering, otherwise nearest neighbor.
func (g *Graph) Zoom(width, height int, smooth bool) (*Graph, error) {
	if !g.IsValid() {
		if _, err := g.resolve(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty source", ErrRegionOutOfBounds)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrAllocationFailure, width, height)
	}

	var scaler draw.Scaler = draw.NearestNeighbor
	if smooth {
		scaler = draw.ApproxBiLinear
	}
	src, err := g.ToNRGBA()
	if err != nil {
		return nil, err
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	return FromImage(scaled, g.colorType,
		WithRowAlignment(g.rowAlignment),
		WithPalette(g.Palette()),
		WithOpacity(g.opacity))
}
