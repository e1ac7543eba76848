package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

func mustNew(t *testing.T, w, h int, ct color.Type, opts ...Option) *Graph {
	t.Helper()
	g, err := New(w, h, ct, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d, %v) error = %v", w, h, ct, err)
	}
	return g
}

func mustQuote(t *testing.T, g *Graph, r geom.Rect, writable bool) *Graph {
	t.Helper()
	q, err := g.Quote(r, writable)
	if err != nil {
		t.Fatalf("Quote(%+v, %v) error = %v", r, writable, err)
	}
	return q
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		ct          color.Type
		opts        []Option
		wantRow     int
		wantMemSize int
		wantErr     error
	}{
		{"ARGB8888", 4, 4, color.TypeARGB8888, nil, 16, 64, nil},
		{"RGB888 padded", 3, 2, color.TypeRGB888, nil, 12, 24, nil},
		{"RGB565 padded", 3, 2, color.TypeRGB565, nil, 8, 16, nil},
		{"Gray8 padded", 5, 1, color.TypeGray8, nil, 8, 8, nil},
		{"no alignment", 5, 1, color.TypeGray8, []Option{WithRowAlignment(1)}, 5, 5, nil},
		{"alignment 16", 5, 2, color.TypeRGB888, []Option{WithRowAlignment(16)}, 16, 32, nil},
		{"zero width", 0, 4, color.TypeARGB8888, nil, 0, 0, ErrAllocationFailure},
		{"negative height", 4, -1, color.TypeARGB8888, nil, 0, 0, ErrAllocationFailure},
		{"unknown type", 4, 4, color.Type(42), nil, 0, 0, ErrAllocationFailure},
		{"over limit", 100, 100, color.TypeARGB8888, []Option{WithMaxBytes(1000)}, 0, 0, ErrAllocationFailure},
		{"overflow", 1 << 62, 1 << 62, color.TypeARGB8888, nil, 0, 0, ErrAllocationFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.width, tt.height, tt.ct, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if g != nil {
					t.Error("New() returned a graph alongside an error")
				}
				return
			}
			if g.BytesPerRow() != tt.wantRow {
				t.Errorf("BytesPerRow() = %d, want %d", g.BytesPerRow(), tt.wantRow)
			}
			if g.MemSize() != tt.wantMemSize {
				t.Errorf("MemSize() = %d, want %d", g.MemSize(), tt.wantMemSize)
			}
			if g.IsQuote() {
				t.Error("IsQuote() = true for an owning graph")
			}
			if !g.IsWritable() {
				t.Error("IsWritable() = false for an owning graph")
			}
			if g.Opacity() != 1 {
				t.Errorf("Opacity() = %v, want 1", g.Opacity())
			}
			for i, b := range g.data {
				if b != 0 {
					t.Fatalf("data[%d] = %d, want zeroed storage", i, b)
				}
			}
		})
	}
}

func TestNew_Palette(t *testing.T) {
	pal := color.NewPalette(color.Black, color.White)

	g := mustNew(t, 2, 2, color.TypeIndex8, WithPalette(pal))
	if g.Palette() != pal {
		t.Error("Palette() did not return the configured palette")
	}

	direct := mustNew(t, 2, 2, color.TypeRGB888, WithPalette(pal))
	if direct.Palette() != nil {
		t.Error("direct-color graph kept a palette")
	}
	if direct.SetPalette(pal) {
		t.Error("SetPalette() = true on a direct-color graph")
	}
}

func TestQuote_Region(t *testing.T) {
	src := mustNew(t, 100, 100, color.TypeARGB8888)

	tests := []struct {
		name    string
		region  geom.Rect
		wantErr error
	}{
		{"inside", geom.XYWH(10, 10, 20, 20), nil},
		{"full", geom.XYWH(0, 0, 100, 100), nil},
		{"touching corner", geom.XYWH(99, 99, 1, 1), nil},
		{"too wide", geom.XYWH(10, 10, 95, 20), ErrRegionOutOfBounds},
		{"negative origin", geom.XYWH(-1, 0, 10, 10), ErrRegionOutOfBounds},
		{"empty", geom.XYWH(10, 10, 0, 5), ErrRegionOutOfBounds},
		{"negative size", geom.XYWH(10, 10, -5, 5), ErrRegionOutOfBounds},
		{"width overflows", geom.XYWH(10, 0, math.MaxInt, 1), ErrRegionOutOfBounds},
		{"width overflows at x=1", geom.XYWH(1, 0, math.MaxInt, 1), ErrRegionOutOfBounds},
		{"height overflows", geom.XYWH(0, 10, 1, math.MaxInt), ErrRegionOutOfBounds},
		{"origin at max", geom.XYWH(0, math.MaxInt, 1, 1), ErrRegionOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := src.Quote(tt.region, true)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Quote() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if q.Width() != tt.region.Width || q.Height() != tt.region.Height {
				t.Errorf("quote size = %dx%d, want %dx%d",
					q.Width(), q.Height(), tt.region.Width, tt.region.Height)
			}
			info := q.QuoteInfo()
			if !info.IsValid() || info.Source() != src {
				t.Errorf("QuoteInfo() = %+v, want valid quote of src", info)
			}
			if info.Left() != tt.region.X || info.Top() != tt.region.Y {
				t.Errorf("quote origin = (%d, %d), want (%d, %d)",
					info.Left(), info.Top(), tt.region.X, tt.region.Y)
			}
			if q.MemSize() != 0 {
				t.Errorf("MemSize() = %d, want 0 for a quote", q.MemSize())
			}
			if q.BytesPerRow() != src.BytesPerRow() {
				t.Errorf("BytesPerRow() = %d, want source stride %d", q.BytesPerRow(), src.BytesPerRow())
			}
		})
	}
}

func TestQuote_ReadOnlyPropagation(t *testing.T) {
	src := mustNew(t, 10, 10, color.TypeARGB8888)
	ro := mustQuote(t, src, geom.XYWH(0, 0, 8, 8), false)

	if _, err := ro.Quote(geom.XYWH(1, 1, 2, 2), true); !errors.Is(err, ErrNotWritable) {
		t.Errorf("writable Quote() of read-only quote error = %v, want %v", err, ErrNotWritable)
	}

	nested := mustQuote(t, ro, geom.XYWH(1, 1, 2, 2), false)
	if nested.IsWritable() {
		t.Error("nested read-only quote reports writable")
	}
	if err := nested.SetPixel(0, 0, color.White); !errors.Is(err, ErrNotWritable) {
		t.Errorf("SetPixel() through read-only chain error = %v, want %v", err, ErrNotWritable)
	}
}

func TestQuote_Nested(t *testing.T) {
	src := mustNew(t, 20, 20, color.TypeRGB888)
	outer := mustQuote(t, src, geom.XYWH(5, 5, 10, 10), true)
	inner := mustQuote(t, outer, geom.XYWH(2, 3, 4, 4), true)

	want := color.RGB(10, 20, 30)
	if err := inner.SetPixel(1, 1, want); err != nil {
		t.Fatalf("SetPixel() error = %v", err)
	}
	got, err := src.GetPixel(5+2+1, 5+3+1)
	if err != nil {
		t.Fatalf("GetPixel() error = %v", err)
	}
	if got != want {
		t.Errorf("source pixel = %v, want %v", got, want)
	}
}

func TestRelease(t *testing.T) {
	t.Run("owning", func(t *testing.T) {
		g := mustNew(t, 4, 4, color.TypeARGB8888)
		g.Release()
		if g.Width() != 0 || g.Height() != 0 || g.MemSize() != 0 {
			t.Errorf("after Release() size = %dx%d mem %d, want empty", g.Width(), g.Height(), g.MemSize())
		}
		if g.IsValid() {
			t.Error("IsValid() = true after Release()")
		}
		g.Release() // no-op
	})

	t.Run("quote leaves source intact", func(t *testing.T) {
		src := mustNew(t, 4, 4, color.TypeARGB8888)
		if err := src.SetPixel(1, 1, color.Red); err != nil {
			t.Fatal(err)
		}
		q := mustQuote(t, src, geom.XYWH(0, 0, 2, 2), true)
		q.Release()
		if q.IsQuote() {
			t.Error("IsQuote() = true after Release()")
		}
		got, err := src.GetPixel(1, 1)
		if err != nil || got != color.Red {
			t.Errorf("source GetPixel() = %v, %v; want %v", got, err, color.Red)
		}
		if !src.IsValid() {
			t.Error("source invalid after releasing its quote")
		}
	})
}

func TestStaleQuote(t *testing.T) {
	tests := []struct {
		name       string
		invalidate func(*Graph)
	}{
		{"release", func(g *Graph) { g.Release() }},
		{"resize", func(g *Graph) { _ = g.Resize(2, 2) }},
		{"resize same size", func(g *Graph) { _ = g.Resize(8, 8) }},
		{"pooled", func(g *Graph) { NewPool(1).Put(g) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := mustNew(t, 8, 8, color.TypeARGB8888)
			q := mustQuote(t, src, geom.XYWH(1, 1, 4, 4), true)
			nested := mustQuote(t, q, geom.XYWH(0, 0, 2, 2), false)

			tt.invalidate(src)

			if _, err := q.GetPixel(0, 0); !errors.Is(err, ErrStaleQuote) {
				t.Errorf("GetPixel() error = %v, want %v", err, ErrStaleQuote)
			}
			if err := q.SetPixel(0, 0, color.White); !errors.Is(err, ErrStaleQuote) {
				t.Errorf("SetPixel() error = %v, want %v", err, ErrStaleQuote)
			}
			if _, err := nested.GetPixel(0, 0); !errors.Is(err, ErrStaleQuote) {
				t.Errorf("nested GetPixel() error = %v, want %v", err, ErrStaleQuote)
			}
			if _, err := q.Quote(geom.XYWH(0, 0, 1, 1), false); !errors.Is(err, ErrStaleQuote) {
				t.Errorf("Quote() of stale quote error = %v, want %v", err, ErrStaleQuote)
			}
			if q.IsValid() {
				t.Error("IsValid() = true for a stale quote")
			}
		})
	}
}

func TestOpacity(t *testing.T) {
	g := mustNew(t, 1, 1, color.TypeARGB8888, WithOpacity(0.5))
	if g.Opacity() != 0.5 {
		t.Errorf("Opacity() = %v, want 0.5", g.Opacity())
	}
	for _, tt := range []struct{ in, want float32 }{{2, 1}, {-1, 0}, {0.25, 0.25}} {
		g.SetOpacity(tt.in)
		if g.Opacity() != tt.want {
			t.Errorf("SetOpacity(%v): Opacity() = %v, want %v", tt.in, g.Opacity(), tt.want)
		}
	}
}

// The 4x4 round trip: write through the owner, read through a read-only
// view, and fail to write through that view.
func TestReadOnlyViewScenario(t *testing.T) {
	g := mustNew(t, 4, 4, color.TypeARGB8888)
	c := color.RGBA(200, 100, 50, 255)
	if err := g.SetPixel(0, 0, c); err != nil {
		t.Fatalf("SetPixel() error = %v", err)
	}

	view := mustQuote(t, g, g.Rect(), false)
	got, err := view.GetPixel(0, 0)
	if err != nil {
		t.Fatalf("GetPixel() error = %v", err)
	}
	if got.R() != 200 || got.G() != 100 || got.B() != 50 || got.A() != 255 {
		t.Errorf("GetPixel() = %v, want %v", got, c)
	}

	for y := range 4 {
		for x := range 4 {
			if err := view.SetPixel(x, y, color.White); !errors.Is(err, ErrNotWritable) {
				t.Fatalf("SetPixel(%d, %d) error = %v, want %v", x, y, err, ErrNotWritable)
			}
		}
	}
	if err := view.SetPixel(10, 10, color.White); !errors.Is(err, ErrNotWritable) {
		t.Errorf("out-of-range SetPixel() error = %v, want %v", err, ErrNotWritable)
	}
}

func TestQuote_HugeRegionNeverAliasesRows(t *testing.T) {
	src := mustNew(t, 100, 100, color.TypeARGB8888)
	_ = src.FillRect(geom.XYWH(0, 1, 100, 1), color.Red)

	if _, err := src.Quote(geom.XYWH(10, 0, math.MaxInt, 1), false); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Fatalf("Quote() error = %v, want %v", err, ErrRegionOutOfBounds)
	}
	if _, err := src.Cut(geom.XYWH(10, 0, math.MaxInt, 1)); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("Cut() error = %v, want %v", err, ErrRegionOutOfBounds)
	}

	v := mustQuote(t, src, geom.XYWH(10, 0, 90, 1), false)
	if _, err := v.GetPixel(500, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetPixel(500, 0) error = %v, want %v", err, ErrOutOfBounds)
	}
}
