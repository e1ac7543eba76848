package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/geom"
)

// parseRect parses "x,y,w,h".
func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, fmt.Errorf("invalid rect %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geom.Rect{}, fmt.Errorf("invalid rect %q: %w", s, err)
		}
		v[i] = n
	}
	return geom.XYWH(v[0], v[1], v[2], v[3]), nil
}

// parseSize parses "WxH".
func parseSize(s string) (geom.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return geom.Size{}, fmt.Errorf("invalid size %q: want WxH", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return geom.Size{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return geom.Size{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	sz := geom.Size{Width: width, Height: height}
	if sz.Empty() {
		return geom.Size{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return sz, nil
}

// parseColorType parses a color type name such as "rgb565" or "argb".
func parseColorType(s string) (color.Type, error) {
	t, ok := color.ParseType(s)
	if !ok {
		names := make([]string, 0, len(color.Types()))
		for _, t := range color.Types() {
			names = append(names, strings.ToLower(t.String()))
		}
		return 0, fmt.Errorf("unknown color type %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return t, nil
}

// parsePalette builds the palette for indexed output: "gray" for the gray
// ramp, or a comma separated list of hex colors.
func parsePalette(s string) (*color.Palette, error) {
	if strings.EqualFold(strings.TrimSpace(s), "gray") {
		return color.GrayPalette(), nil
	}
	var colors []color.Color
	for _, h := range strings.Split(s, ",") {
		c, err := color.ParseHex(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) > color.MaxPaletteSize {
		return nil, fmt.Errorf("palette has %d colors, at most %d allowed", len(colors), color.MaxPaletteSize)
	}
	return color.NewPalette(colors...), nil
}
