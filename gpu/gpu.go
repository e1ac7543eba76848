// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu describes how a graph is uploaded to a GPU texture.
//
// Nothing here opens a device. The package produces the texture descriptor,
// the staging bytes and the data layout a renderer passes to its queue write
// or buffer-to-texture copy.
//
// Usage:
//
//	desc := gpu.Describe(g, "icon")
//	up, err := gpu.Upload(g)
//	queue.WriteTexture(dst, up.Data, up.Layout, up.Size)
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uistyle"
	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/graph"
)

// CopyPitchAlignment is the row pitch required for buffer-to-texture copies.
const CopyPitchAlignment = 256

// ErrEmptyGraph is returned when uploading a graph without pixels.
var ErrEmptyGraph = errors.New("gpu: empty graph")

// TextureFormat returns the texture format a graph of type t uploads as.
//
// Gray8 keeps its single channel. Every other type, indexed ones included,
// is expanded to 8-bit BGRA, which matches the byte order of ARGB8888.
func TextureFormat(t color.Type) gputypes.TextureFormat {
	switch t {
	case color.TypeGray8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatBGRA8Unorm
	}
}

// Describe returns the descriptor of a 2D sampled texture sized to g.
func Describe(g *graph.Graph, label string) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          gputypes.NewExtent2D(uint32(g.Width()), uint32(g.Height())),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        TextureFormat(g.ColorType()),
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
}

// Staging holds the bytes and layout of one texture upload.
type Staging struct {
	Data   []byte
	Layout gputypes.TextureDataLayout
	Size   gputypes.Extent3D
	Format gputypes.TextureFormat
}

// Upload packs the visible pixels of g into a staging buffer whose rows are
// padded to CopyPitchAlignment. Quotes upload only their region.
func Upload(g *graph.Graph) (*Staging, error) {
	if !g.IsValid() {
		return nil, ErrEmptyGraph
	}
	format := TextureFormat(g.ColorType())
	bpp := 4
	if format == gputypes.TextureFormatR8Unorm {
		bpp = 1
	}

	w, h := g.Width(), g.Height()
	pitch := (w*bpp + CopyPitchAlignment - 1) &^ (CopyPitchAlignment - 1)
	data := make([]byte, pitch*h)

	if err := fill(g, data, pitch, bpp); err != nil {
		return nil, err
	}

	uistyle.Logger().Debug("gpu: staged upload", "width", w, "height", h,
		"format", format, "pitch", pitch)
	return &Staging{
		Data: data,
		Layout: gputypes.TextureDataLayout{
			BytesPerRow:  uint32(pitch),
			RowsPerImage: uint32(h),
		},
		Size:   gputypes.NewExtent2D(uint32(w), uint32(h)),
		Format: format,
	}, nil
}

func fill(g *graph.Graph, data []byte, pitch, bpp int) error {
	t := g.ColorType()
	if t == color.TypeGray8 || t == color.TypeARGB8888 {
		for y := range g.Height() {
			if _, err := g.ReadRow(y, data[y*pitch:y*pitch+g.Width()*bpp]); err != nil {
				return err
			}
		}
		return nil
	}

	for y := range g.Height() {
		row := data[y*pitch:]
		for x := range g.Width() {
			c, err := g.GetPixel(x, y)
			if err != nil {
				return fmt.Errorf("gpu: pixel (%d, %d): %w", x, y, err)
			}
			b := c.Bytes()
			copy(row[x*4:x*4+4], b[:])
		}
	}
	return nil
}

// ClearColor converts c to a normalized render pass clear color.
func ClearColor(c color.Color) gputypes.Color {
	return gputypes.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// BlendConstant returns the blend constant that applies g's global opacity
// when drawing it with a constant-alpha blend state.
func BlendConstant(g *graph.Graph) gputypes.Color {
	o := float64(g.Opacity())
	return gputypes.Color{R: o, G: o, B: o, A: o}
}
