package graph

import (
	"fmt"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

// span is a resolved view into the owning storage.
type span struct {
	root *Graph
	left int
	top  int
}

// offset returns the byte offset of local pixel (x, y).
func (s span) offset(x, y int) int {
	return (s.top+y)*s.root.bytesPerRow + (s.left+x)*s.root.bytesPerPixel
}

// row returns the bytes of local row y covering width pixels.
func (s span) row(y, width int) []byte {
	off := s.offset(0, y)
	return s.root.data[off : off+width*s.root.bytesPerPixel]
}

func (g *Graph) resolve() (span, error) {
	root, left, top, err := g.locate()
	if err != nil {
		return span{}, err
	}
	return span{root: root, left: left, top: top}, nil
}

// writable reports whether every link of the chain permits writes.
func (g *Graph) writable() bool {
	for cur := g; cur != nil && cur.quote.valid; cur = cur.quote.source {
		if !cur.quote.writable {
			return false
		}
	}
	return true
}

func (g *Graph) checkBounds(x, y int) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return nil
}

// PixelRaw returns the encoded bits of pixel (x, y).
func (g *Graph) PixelRaw(x, y int) (uint32, error) {
	if err := g.checkBounds(x, y); err != nil {
		return 0, err
	}
	s, err := g.resolve()
	if err != nil {
		return 0, err
	}
	off := s.offset(x, y)
	return g.colorType.Decode(s.root.data[off:]), nil
}

// GetPixel returns the color of pixel (x, y), resolving through the quote
// chain. Indexed pixels are decoded through the palette.
func (g *Graph) GetPixel(x, y int) (color.Color, error) {
	raw, err := g.PixelRaw(x, y)
	if err != nil {
		return 0, err
	}
	return color.Unpack(raw, g.colorType, g.Palette())
}

// SetPixelRaw stores already encoded bits at (x, y).
func (g *Graph) SetPixelRaw(x, y int, raw uint32) error {
	if !g.writable() {
		return ErrNotWritable
	}
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	return g.storeRaw(x, y, raw)
}

// storeRaw writes raw at (x, y); the caller has checked writability and
// bounds.
func (g *Graph) storeRaw(x, y int, raw uint32) error {
	s, err := g.resolve()
	if err != nil {
		return err
	}
	g.colorType.Encode(s.root.data[s.offset(x, y):], raw)
	return nil
}

// SetPixel encodes c in the graph's type and stores it at (x, y).
//
// Writability is checked first: a read-only view fails with ErrNotWritable
// even for coordinates outside it.
func (g *Graph) SetPixel(x, y int, c color.Color) error {
	if !g.writable() {
		return ErrNotWritable
	}
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	raw, err := color.Pack(c, g.colorType, g.Palette())
	if err != nil {
		return err
	}
	return g.storeRaw(x, y, raw)
}

// ReadRow copies the encoded pixels of row y into dst and returns the number
// of bytes copied.
func (g *Graph) ReadRow(y int, dst []byte) (int, error) {
	if y < 0 || y >= g.height {
		return 0, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, g.height)
	}
	s, err := g.resolve()
	if err != nil {
		return 0, err
	}
	return copy(dst, s.row(y, g.width)), nil
}

// WriteRow overwrites row y with encoded pixels from src. Extra bytes are
// ignored; a short src leaves the tail of the row unchanged.
func (g *Graph) WriteRow(y int, src []byte) (int, error) {
	if !g.writable() {
		return 0, ErrNotWritable
	}
	if y < 0 || y >= g.height {
		return 0, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, g.height)
	}
	s, err := g.resolve()
	if err != nil {
		return 0, err
	}
	return copy(s.row(y, g.width), src), nil
}

// Fill sets every pixel to c.
func (g *Graph) Fill(c color.Color) error {
	return g.FillRect(g.Rect(), c)
}

// FillRect sets the pixels of r, clipped to the graph, to c.
func (g *Graph) FillRect(r geom.Rect, c color.Color) error {
	if !g.writable() {
		return ErrNotWritable
	}
	r = r.Intersect(g.Rect())
	if r.Empty() {
		return nil
	}
	raw, err := color.Pack(c, g.colorType, g.Palette())
	if err != nil {
		return err
	}
	s, err := g.resolve()
	if err != nil {
		return err
	}

	bpp := g.bytesPerPixel
	pixel := make([]byte, bpp)
	g.colorType.Encode(pixel, raw)
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.row(y, g.width)[r.X*bpp : r.Right()*bpp]
		// Seed one pixel then double the filled prefix.
		n := copy(row, pixel)
		for n < len(row) {
			n += copy(row[n:], row[:n])
		}
	}
	return nil
}

// Clear zeroes every visible pixel.
func (g *Graph) Clear() error {
	if !g.writable() {
		return ErrNotWritable
	}
	s, err := g.resolve()
	if err != nil {
		return err
	}
	for y := range g.height {
		clear(s.row(y, g.width))
	}
	return nil
}
