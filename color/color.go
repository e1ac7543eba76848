// Package color provides the pixel color model of uistyle.
//
// A Color is a single 32-bit value whose bytes, from the lowest address to
// the highest, are blue, green, red and alpha. Channels can be read and
// written under the short names (B, G, R, A) or the long names (Blue, Green,
// Red, Alpha); both address the same byte.
//
// Type enumerates the pixel encodings a graph can store, and Pack/Unpack
// convert between a Color and the raw bits of one pixel of a given Type.
package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned by the color package.
var (
	// ErrUnknownType is returned for a Type outside the catalogue.
	ErrUnknownType = errors.New("color: unknown color type")

	// ErrPaletteIndexOutOfRange is returned when an indexed pixel refers to
	// a palette entry that does not exist, or the palette is empty.
	ErrPaletteIndexOutOfRange = errors.New("color: palette index out of range")

	// ErrInvalidHex is returned by ParseHex for malformed input.
	ErrInvalidHex = errors.New("color: invalid hex color")
)

// Channel bit offsets inside a Color value.
const (
	shiftB = 0
	shiftG = 8
	shiftR = 16
	shiftA = 24
)

// Color is a 32-bit ARGB color stored as B | G<<8 | R<<16 | A<<24.
//
// Stored little-endian, its bytes are laid out as b, g, r, a.
type Color uint32

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

// RGBA returns a color from red, green, blue and alpha channels.
func RGBA(r, g, b, a uint8) Color {
	return ARGB(a, r, g, b)
}

// ARGB returns a color from alpha, red, green and blue channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(b)<<shiftB | uint32(g)<<shiftG | uint32(r)<<shiftR | uint32(a)<<shiftA)
}

// FromBytes builds a color from its in-memory byte order {b, g, r, a}.
func FromBytes(p [4]byte) Color {
	return ARGB(p[3], p[2], p[1], p[0])
}

// Bytes returns the in-memory byte order of c: {b, g, r, a}.
func (c Color) Bytes() [4]byte {
	return [4]byte{c.B(), c.G(), c.R(), c.A()}
}

// Value returns the raw 32-bit value.
func (c Color) Value() uint32 { return uint32(c) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> shiftB) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> shiftG) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> shiftR) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> shiftA) }

// Blue is an alias for B.
func (c Color) Blue() uint8 { return c.B() }

// Green is an alias for G.
func (c Color) Green() uint8 { return c.G() }

// Red is an alias for R.
func (c Color) Red() uint8 { return c.R() }

// Alpha is an alias for A.
func (c Color) Alpha() uint8 { return c.A() }

func (c *Color) setChannel(shift uint, v uint8) {
	*c = Color(uint32(*c)&^(0xFF<<shift) | uint32(v)<<shift)
}

// SetB replaces the blue channel.
func (c *Color) SetB(v uint8) { c.setChannel(shiftB, v) }

// SetG replaces the green channel.
func (c *Color) SetG(v uint8) { c.setChannel(shiftG, v) }

// SetR replaces the red channel.
func (c *Color) SetR(v uint8) { c.setChannel(shiftR, v) }

// SetA replaces the alpha channel.
func (c *Color) SetA(v uint8) { c.setChannel(shiftA, v) }

// SetBlue is an alias for SetB.
func (c *Color) SetBlue(v uint8) { c.SetB(v) }

// SetGreen is an alias for SetG.
func (c *Color) SetGreen(v uint8) { c.SetG(v) }

// SetRed is an alias for SetR.
func (c *Color) SetRed(v uint8) { c.SetR(v) }

// SetAlpha is an alias for SetA.
func (c *Color) SetAlpha(v uint8) { c.SetA(v) }

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.SetA(a)
	return c
}

// RGBA implements the image/color.Color interface.
// The returned values are alpha-premultiplied and 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// NRGBA converts c to the standard library non-premultiplied color.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromStd converts any image/color.Color to a Color.
func FromStd(sc stdcolor.Color) Color {
	if c, ok := sc.(Color); ok {
		return c
	}
	n := stdcolor.NRGBAModel.Convert(sc).(stdcolor.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Model converts arbitrary colors to Color.
var Model stdcolor.Model = stdcolor.ModelFunc(func(sc stdcolor.Color) stdcolor.Color {
	return FromStd(sc)
})

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Lerp blends c toward to by t in [0, 1]. Color channels are interpolated
// in RGB space, alpha linearly.
func (c Color) Lerp(to Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	from := colorful.Color{R: float64(c.R()) / 255, G: float64(c.G()) / 255, B: float64(c.B()) / 255}
	dst := colorful.Color{R: float64(to.R()) / 255, G: float64(to.G()) / 255, B: float64(to.B()) / 255}
	r, g, b := from.BlendRgb(dst, t).Clamped().RGB255()
	a := float64(c.A()) + (float64(to.A())-float64(c.A()))*t
	return RGBA(r, g, b, uint8(a+0.5))
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa. The leading '#' is required.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		c, err := ParseHex(s[:7])
		if err != nil {
			return 0, err
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		return c.WithAlpha(uint8(a)), nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = ARGB(0, 0, 0, 0)
)
