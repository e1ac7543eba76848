// Package graph implements Graph, a bitmap that either owns its pixel
// storage or quotes a rectangle of another Graph.
//
// A quoting graph (a view) never copies pixels: reads and writes resolve
// through the chain of sources, accumulating offsets, down to the graph
// that owns the bytes. Quotes may be read-only or writable; a writable quote
// can only be taken from a writable source.
//
// Thread safety: Graph has no internal locking. A graph and all the quotes
// that alias its storage must be used by one goroutine at a time.
package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/uistyle"
	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

// Common errors for graph operations.
var (
	// ErrAllocationFailure is returned when pixel storage cannot be obtained.
	ErrAllocationFailure = errors.New("graph: allocation failure")

	// ErrRegionOutOfBounds is returned when a quote region is empty or does
	// not lie inside its source.
	ErrRegionOutOfBounds = errors.New("graph: region out of bounds")

	// ErrOutOfBounds is returned when pixel coordinates are outside the graph.
	ErrOutOfBounds = errors.New("graph: coordinates out of bounds")

	// ErrNotWritable is returned when mutating through a read-only quote, a
	// quote descending from one, or when resizing a quote.
	ErrNotWritable = errors.New("graph: not writable")

	// ErrStaleQuote is returned when a link of a quote chain refers to a
	// source that was released, resized or recycled after the quote was made.
	ErrStaleQuote = errors.New("graph: stale quote")
)

// Quote describes the source a viewing Graph aliases.
type Quote struct {
	top, left  int
	valid      bool
	writable   bool
	source     *Graph
	generation uint64
}

// Top returns the row of the view's origin in the source.
func (q Quote) Top() int { return q.top }

// Left returns the column of the view's origin in the source.
func (q Quote) Left() int { return q.left }

// IsValid reports whether the graph is a view.
func (q Quote) IsValid() bool { return q.valid }

// IsWritable reports whether the view permits mutation.
func (q Quote) IsWritable() bool { return q.writable }

// Source returns the quoted graph, or nil for an owning graph.
func (q Quote) Source() *Graph { return q.source }

// Graph is a rectangular pixel store.
//
// The zero Graph is an empty, owning graph; New allocates storage and
// Quote creates views.
type Graph struct {
	width         int
	height        int
	colorType     color.Type
	bytesPerPixel int
	bytesPerRow   int
	rowAlignment  int
	quote         Quote
	data          []byte
	opacity       float32
	palette       *color.Palette

	// generation changes whenever storage geometry becomes invalid for
	// existing quotes (release, resize, recycling).
	generation uint64
}

// New allocates an owning graph of the given size and color type with
// zeroed storage.
//
// Each row is padded to the row alignment (DefaultRowAlignment unless
// WithRowAlignment is given). New fails with ErrAllocationFailure when the
// dimensions are not positive, the type is unknown, or the storage would
// exceed the byte limit; no graph is returned in that case.
func New(width, height int, t color.Type, opts ...Option) (*Graph, error) {
	g := &Graph{}
	if err := g.allocate(width, height, t, buildOptions(opts)); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) allocate(width, height int, t color.Type, o options) error {
	size, rowBytes, err := storageSize(width, height, t, o)
	if err != nil {
		uistyle.Logger().Warn("graph: allocation rejected",
			"width", width, "height", height, "type", t, "err", err)
		return err
	}

	*g = Graph{
		width:         width,
		height:        height,
		colorType:     t,
		bytesPerPixel: t.BytesPerPixel(),
		bytesPerRow:   rowBytes,
		rowAlignment:  o.rowAlignment,
		data:          make([]byte, size),
		opacity:       o.opacity,
		generation:    g.generation + 1,
	}
	if t.IsIndexed() {
		g.palette = o.palette
	}

	uistyle.Logger().Debug("graph: allocated",
		"width", width, "height", height, "type", t, "bytes", size)
	return nil
}

// storageSize validates an allocation request and returns the total byte
// size and the padded row stride.
func storageSize(width, height int, t color.Type, o options) (size, rowBytes int, err error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid dimensions %dx%d", ErrAllocationFailure, width, height)
	}
	if !t.IsValid() {
		return 0, 0, fmt.Errorf("%w: %w", ErrAllocationFailure, color.ErrUnknownType)
	}

	bpp := t.BytesPerPixel()
	align := o.rowAlignment
	if width > (math.MaxInt-align)/bpp {
		return 0, 0, fmt.Errorf("%w: row of %d pixels overflows", ErrAllocationFailure, width)
	}
	rowBytes = (width*bpp + align - 1) / align * align

	if rowBytes > o.maxBytes/height {
		return 0, 0, fmt.Errorf("%w: %dx%d %v exceeds %d bytes",
			ErrAllocationFailure, width, height, t, o.maxBytes)
	}
	return rowBytes * height, rowBytes, nil
}

// Width returns the visible width in pixels.
func (g *Graph) Width() int { return g.width }

// Height returns the visible height in pixels.
func (g *Graph) Height() int { return g.height }

// Size returns the visible extent.
func (g *Graph) Size() geom.Size {
	return geom.Size{Width: g.width, Height: g.height}
}

// Rect returns the graph's own coordinate space, anchored at (0, 0).
func (g *Graph) Rect() geom.Rect {
	return geom.XYWH(0, 0, g.width, g.height)
}

// ColorType returns the pixel encoding.
func (g *Graph) ColorType() color.Type { return g.colorType }

// BytesPerPixel returns the size of one pixel in bytes.
func (g *Graph) BytesPerPixel() int { return g.bytesPerPixel }

// BytesPerRow returns the row stride of the underlying storage, including
// padding. Quotes report the stride of the storage they alias.
func (g *Graph) BytesPerRow() int { return g.bytesPerRow }

// MemSize returns the number of bytes this graph owns. It is zero for
// quotes and released graphs.
func (g *Graph) MemSize() int { return len(g.data) }

// Opacity returns the global opacity applied when compositing.
func (g *Graph) Opacity() float32 { return g.opacity }

// SetOpacity sets the global opacity, clamped to [0, 1]. Stored pixels are
// not modified.
func (g *Graph) SetOpacity(f float32) { g.opacity = clampOpacity(f) }

// Palette returns the palette used to decode indexed pixels. Quotes report
// the palette of the graph owning their storage.
func (g *Graph) Palette() *color.Palette {
	cur := g
	for cur.quote.valid && cur.quote.source != nil {
		cur = cur.quote.source
	}
	return cur.palette
}

// SetPalette replaces the palette of an owning indexed graph.
// It reports false for quotes and direct-color graphs.
func (g *Graph) SetPalette(p *color.Palette) bool {
	if g.quote.valid || !g.colorType.IsIndexed() {
		return false
	}
	g.palette = p
	return true
}

// QuoteInfo returns the view descriptor. It is the zero Quote for owning
// graphs.
func (g *Graph) QuoteInfo() Quote { return g.quote }

// IsQuote reports whether g is a view of another graph.
func (g *Graph) IsQuote() bool { return g.quote.valid }

// Source returns the graph g quotes, or nil.
func (g *Graph) Source() *Graph { return g.quote.source }

// IsWritable reports whether pixels may be written through g.
func (g *Graph) IsWritable() bool {
	return !g.quote.valid || g.quote.writable
}

// IsValid reports whether g has pixels that can currently be accessed:
// a non-empty owning graph, or a non-empty quote whose chain is not stale.
func (g *Graph) IsValid() bool {
	if g == nil || g.width <= 0 || g.height <= 0 {
		return false
	}
	_, _, _, err := g.locate()
	return err == nil
}

// Quote returns a view of region, given in g's coordinates.
//
// The view aliases g's storage: no pixels are copied. It fails with
// ErrRegionOutOfBounds if region is empty or not inside g, with
// ErrNotWritable if writable is requested from a read-only graph, and with
// ErrStaleQuote if g is itself a stale view.
//
// The region is only validated here. Releasing or resizing g (or any
// graph further down the chain) invalidates the view; later accesses fail
// with ErrStaleQuote instead of reading outdated geometry.
func (g *Graph) Quote(region geom.Rect, writable bool) (*Graph, error) {
	if g.quote.valid {
		if _, _, _, err := g.locate(); err != nil {
			return nil, err
		}
	}
	if !region.In(g.Rect()) {
		return nil, fmt.Errorf("%w: %+v in %dx%d", ErrRegionOutOfBounds, region, g.width, g.height)
	}
	if writable && !g.IsWritable() {
		return nil, fmt.Errorf("%w: source is a read-only quote", ErrNotWritable)
	}

	v := &Graph{
		width:         region.Width,
		height:        region.Height,
		colorType:     g.colorType,
		bytesPerPixel: g.bytesPerPixel,
		bytesPerRow:   g.bytesPerRow,
		rowAlignment:  g.rowAlignment,
		opacity:       1,
		quote: Quote{
			top:        region.Y,
			left:       region.X,
			valid:      true,
			writable:   writable,
			source:     g,
			generation: g.generation,
		},
	}

	uistyle.Logger().Debug("graph: quoted",
		"region", region, "writable", writable, "source_is_quote", g.quote.valid)
	return v, nil
}

// locate walks the quote chain to the graph owning the storage and returns
// it with the offset of g's origin inside it.
func (g *Graph) locate() (root *Graph, left, top int, err error) {
	cur := g
	for cur.quote.valid {
		q := &cur.quote
		if q.source == nil || q.generation != q.source.generation {
			uistyle.Logger().Warn("graph: stale quote detected",
				"top", q.top, "left", q.left)
			return nil, 0, 0, ErrStaleQuote
		}
		left += q.left
		top += q.top
		cur = q.source
	}
	if cur.data == nil {
		return nil, 0, 0, ErrStaleQuote
	}
	return cur, left, top, nil
}

// Release drops g's pixels.
//
// An owning graph frees its storage; a quote merely forgets its source.
// Either way g becomes empty and every quote taken from g turns stale.
// Releasing an empty graph is a no-op.
func (g *Graph) Release() {
	if g.width == 0 && g.height == 0 && g.data == nil && !g.quote.valid {
		return
	}
	wasQuote := g.quote.valid
	g.quote = Quote{}
	g.data = nil
	g.width, g.height = 0, 0
	g.generation++

	uistyle.Logger().Debug("graph: released", "quote", wasQuote)
}
