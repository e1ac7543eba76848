package color

import "fmt"

// Bit layouts, low bit first:
//
//	RGB323    b:3 g:2 r:3
//	ARGB2222  b:2 g:2 r:2 a:2
//	RGB555    b:5 g:5 r:5 (bit 15 unused)
//	RGB565    b:5 g:6 r:5
//	RGB888    b:8 g:8 r:8
//	ARGB8888  b:8 g:8 r:8 a:8
//
// Gray8 holds one luminance byte and Index8 one palette index.

// Pack encodes c as the raw bits of one pixel of type t.
//
// Direct-color types keep the high bits of each 8-bit channel; the dropped
// low bits are truncated, never rounded. Gray8 stores the luminance
// (299R + 587G + 114B) / 1000. Index8 stores the palette entry nearest to c,
// so p must be non-empty for indexed types; it is ignored otherwise.
func Pack(c Color, t Type, p *Palette) (uint32, error) {
	switch t {
	case TypeIndex8:
		idx, err := p.Nearest(c)
		if err != nil {
			return 0, err
		}
		return uint32(idx), nil
	case TypeGray8:
		return uint32(luminance(c)), nil
	case TypeRGB323, TypeARGB2222, TypeRGB555, TypeRGB565, TypeRGB888:
		return packDirect(c, t.Info()), nil
	case TypeARGB8888:
		return uint32(c), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
}

// Unpack decodes the raw bits of one pixel of type t.
//
// Narrow channels are expanded to 8 bits so that a full-scale channel
// becomes 255 and zero stays zero. Types without alpha decode opaque.
// Index8 resolves raw through p and fails with ErrPaletteIndexOutOfRange
// when the index has no entry.
func Unpack(raw uint32, t Type, p *Palette) (Color, error) {
	switch t {
	case TypeIndex8:
		return p.Lookup(int(raw & 0xFF))
	case TypeGray8:
		v := uint8(raw)
		return RGB(v, v, v), nil
	case TypeRGB323, TypeARGB2222, TypeRGB555, TypeRGB565, TypeRGB888:
		return unpackDirect(raw, t.Info()), nil
	case TypeARGB8888:
		return Color(raw), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
}

// packDirect lays channels out blue first, then green, red and alpha.
func packDirect(c Color, info TypeInfo) uint32 {
	var raw uint32
	shift := uint8(0)
	put := func(v, bits uint8) {
		if bits == 0 {
			return
		}
		raw |= uint32(v>>(8-bits)) << shift
		shift += bits
	}
	put(c.B(), info.BlueBits)
	put(c.G(), info.GreenBits)
	put(c.R(), info.RedBits)
	put(c.A(), info.AlphaBits)
	return raw
}

func unpackDirect(raw uint32, info TypeInfo) Color {
	shift := uint8(0)
	take := func(bits uint8) uint8 {
		v := (raw >> shift) & (1<<bits - 1)
		shift += bits
		return expand(v, bits)
	}
	b := take(info.BlueBits)
	g := take(info.GreenBits)
	r := take(info.RedBits)
	a := uint8(255)
	if info.AlphaBits > 0 {
		a = take(info.AlphaBits)
	}
	return ARGB(a, r, g, b)
}

// expand scales an n-bit channel value to 8 bits with rounding.
func expand(v uint32, bits uint8) uint8 {
	if bits >= 8 {
		return uint8(v)
	}
	maxv := uint32(1)<<bits - 1
	return uint8((v*255 + maxv/2) / maxv)
}

// Truncate returns c as it reads back after a round trip through t.
// It is the identity for ARGB8888. Indexed types need p.
func Truncate(c Color, t Type, p *Palette) (Color, error) {
	raw, err := Pack(c, t, p)
	if err != nil {
		return 0, err
	}
	return Unpack(raw, t, p)
}

func luminance(c Color) uint8 {
	return uint8((uint32(c.R())*299 + uint32(c.G())*587 + uint32(c.B())*114) / 1000)
}

// Encode stores the low BytesPerPixel bytes of raw into dst, little-endian.
// dst must hold at least t.BytesPerPixel() bytes.
func (t Type) Encode(dst []byte, raw uint32) {
	switch t.BytesPerPixel() {
	case 1:
		dst[0] = byte(raw)
	case 2:
		_ = dst[1]
		dst[0] = byte(raw)
		dst[1] = byte(raw >> 8)
	case 3:
		_ = dst[2]
		dst[0] = byte(raw)
		dst[1] = byte(raw >> 8)
		dst[2] = byte(raw >> 16)
	case 4:
		_ = dst[3]
		dst[0] = byte(raw)
		dst[1] = byte(raw >> 8)
		dst[2] = byte(raw >> 16)
		dst[3] = byte(raw >> 24)
	}
}

// Decode reads one pixel of type t from src, little-endian.
func (t Type) Decode(src []byte) uint32 {
	switch t.BytesPerPixel() {
	case 1:
		return uint32(src[0])
	case 2:
		_ = src[1]
		return uint32(src[0]) | uint32(src[1])<<8
	case 3:
		_ = src[2]
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
	case 4:
		_ = src[3]
		return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	default:
		return 0
	}
}
