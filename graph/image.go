package graph

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/uistyle/color"
)

// Graph implements draw.Image so that x/image/draw and the standard image
// encoders can operate on it directly.
var _ draw.Image = (*Graph)(nil)

// ColorModel implements image.Image.
func (g *Graph) ColorModel() stdcolor.Model { return color.Model }

// Bounds implements image.Image. A graph's bounds always start at (0, 0).
func (g *Graph) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// At implements image.Image. Unreadable pixels are transparent.
func (g *Graph) At(x, y int) stdcolor.Color {
	c, err := g.GetPixel(x, y)
	if err != nil {
		return color.Transparent
	}
	return c
}

// Set implements draw.Image. Writes that fail are dropped; use SetPixel to
// observe errors.
func (g *Graph) Set(x, y int, c stdcolor.Color) {
	_ = g.SetPixel(x, y, color.FromStd(c))
}

// FromImage creates an owning graph of type t holding img's pixels.
func FromImage(img image.Image, t color.Type, opts ...Option) (*Graph, error) {
	b := img.Bounds()
	g, err := New(b.Dx(), b.Dy(), t, opts...)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	pal := g.Palette()
	bpp := g.bytesPerPixel
	for y := range g.height {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := g.data[y*g.bytesPerRow:]
		for x := range g.width {
			p := src[x*4 : x*4+4]
			raw, err := color.Pack(color.RGBA(p[0], p[1], p[2], p[3]), t, pal)
			if err != nil {
				return nil, err
			}
			t.Encode(dst[x*bpp:], raw)
		}
	}
	return g, nil
}

// ToNRGBA returns a copy of the visible pixels as a non-premultiplied image.
func (g *Graph) ToNRGBA() (*image.NRGBA, error) {
	s, err := g.resolve()
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(g.Bounds())
	pal := g.Palette()
	bpp := g.bytesPerPixel
	for y := range g.height {
		src := s.row(y, g.width)
		dst := img.Pix[y*img.Stride:]
		for x := range g.width {
			c, err := color.Unpack(g.colorType.Decode(src[x*bpp:]), g.colorType, pal)
			if err != nil {
				return nil, err
			}
			dst[x*4+0] = c.R()
			dst[x*4+1] = c.G()
			dst[x*4+2] = c.B()
			dst[x*4+3] = c.A()
		}
	}
	return img, nil
}
