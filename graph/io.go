package graph

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/uistyle"
	"github.com/gogpu/uistyle/color"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("graph: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("graph: empty data")
)

// Decode decodes an image from r, auto-detecting PNG, JPEG, GIF, BMP, TIFF
// and WebP.
//
// Paletted images become Index8 graphs carrying the image palette, gray
// images become Gray8, everything else ARGB8888.
func Decode(r io.Reader, opts ...Option) (*Graph, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("graph: decode: %w", err)
	}

	g, err := fromDecoded(img, opts)
	if err != nil {
		return nil, err
	}
	uistyle.Logger().Debug("graph: decoded", "format", format,
		"width", g.width, "height", g.height, "type", g.colorType)
	return g, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte, opts ...Option) (*Graph, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// DecodeFile decodes the image file at path.
func DecodeFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("graph: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opts...)
}

func fromDecoded(img image.Image, opts []Option) (*Graph, error) {
	switch m := img.(type) {
	case *image.Paletted:
		colors := make([]color.Color, len(m.Palette))
		for i, c := range m.Palette {
			colors[i] = color.FromStd(c)
		}
		opts = append([]Option{WithPalette(color.NewPalette(colors...))}, opts...)
		g, err := New(m.Rect.Dx(), m.Rect.Dy(), color.TypeIndex8, opts...)
		if err != nil {
			return nil, err
		}
		for y := range g.height {
			off := m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y)
			copy(g.data[y*g.bytesPerRow:], m.Pix[off:off+g.width])
		}
		return g, nil
	case *image.Gray:
		g, err := New(m.Rect.Dx(), m.Rect.Dy(), color.TypeGray8, opts...)
		if err != nil {
			return nil, err
		}
		for y := range g.height {
			off := m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y)
			copy(g.data[y*g.bytesPerRow:], m.Pix[off:off+g.width])
		}
		return g, nil
	default:
		return FromImage(img, color.TypeARGB8888, opts...)
	}
}

// EncodePNG writes the visible pixels of g as PNG.
func (g *Graph) EncodePNG(w io.Writer) error {
	img, err := g.ToNRGBA()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("graph: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes the visible pixels of g as BMP.
func (g *Graph) EncodeBMP(w io.Writer) error {
	img, err := g.ToNRGBA()
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("graph: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF writes the visible pixels of g as deflate-compressed TIFF.
func (g *Graph) EncodeTIFF(w io.Writer) error {
	img, err := g.ToNRGBA()
	if err != nil {
		return err
	}
	if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return fmt.Errorf("graph: encode TIFF: %w", err)
	}
	return nil
}

// EncodeJPEG writes the visible pixels of g as JPEG with the given quality
// (1-100). Alpha is discarded.
func (g *Graph) EncodeJPEG(w io.Writer, quality int) error {
	img, err := g.ToNRGBA()
	if err != nil {
		return err
	}
	quality = min(max(quality, 1), 100)
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("graph: encode JPEG: %w", err)
	}
	return nil
}

// SavePNG saves g as a PNG file.
func (g *Graph) SavePNG(path string) error {
	return g.saveWith(path, g.EncodePNG)
}

// Save writes g to path, choosing the encoder from the extension
// (.png, .bmp, .tif/.tiff, .jpg/.jpeg).
func (g *Graph) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return g.saveWith(path, g.EncodePNG)
	case ".bmp":
		return g.saveWith(path, g.EncodeBMP)
	case ".tif", ".tiff":
		return g.saveWith(path, g.EncodeTIFF)
	case ".jpg", ".jpeg":
		return g.saveWith(path, func(w io.Writer) error { return g.EncodeJPEG(w, 90) })
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (g *Graph) saveWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("graph: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
