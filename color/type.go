package color

import "strings"

// Type is a pixel encoding. The catalogue is closed.
type Type uint8

const (
	// TypeIndex8 is an 8-bit index into a palette.
	TypeIndex8 Type = iota

	// TypeGray8 is 8-bit luminance.
	TypeGray8

	// TypeRGB323 packs red, green and blue into 3, 2 and 3 bits.
	TypeRGB323

	// TypeARGB2222 packs alpha, red, green and blue into 2 bits each.
	TypeARGB2222

	// TypeRGB555 packs each channel into 5 bits of a 16-bit word.
	TypeRGB555

	// TypeRGB565 packs red, green and blue into 5, 6 and 5 bits.
	TypeRGB565

	// TypeRGB888 stores blue, green and red bytes.
	TypeRGB888

	// TypeARGB8888 stores blue, green, red and alpha bytes.
	// Its raw value is identical to a Color.
	TypeARGB8888

	// typeCount is the number of types (for internal use).
	typeCount
)

// Aliases used by image decoders and the toolkit's defaults.
const (
	TypeRGB  = TypeRGB888
	TypeARGB = TypeARGB8888
)

// TypeInfo contains metadata about a pixel encoding.
type TypeInfo struct {
	// BytesPerPixel is the number of bytes one pixel occupies.
	BytesPerPixel int

	// HasAlpha indicates the encoding stores an alpha channel.
	HasAlpha bool

	// IsIndexed indicates pixels are palette indexes.
	IsIndexed bool

	// RedBits, GreenBits, BlueBits and AlphaBits are the channel widths of
	// direct-color encodings. They are zero for gray and indexed types.
	RedBits, GreenBits, BlueBits, AlphaBits uint8
}

var typeInfoTable = [typeCount]TypeInfo{
	TypeIndex8: {
		BytesPerPixel: 1,
		IsIndexed:     true,
	},
	TypeGray8: {
		BytesPerPixel: 1,
	},
	TypeRGB323: {
		BytesPerPixel: 1,
		RedBits:       3,
		GreenBits:     2,
		BlueBits:      3,
	},
	TypeARGB2222: {
		BytesPerPixel: 1,
		HasAlpha:      true,
		RedBits:       2,
		GreenBits:     2,
		BlueBits:      2,
		AlphaBits:     2,
	},
	TypeRGB555: {
		BytesPerPixel: 2,
		RedBits:       5,
		GreenBits:     5,
		BlueBits:      5,
	},
	TypeRGB565: {
		BytesPerPixel: 2,
		RedBits:       5,
		GreenBits:     6,
		BlueBits:      5,
	},
	TypeRGB888: {
		BytesPerPixel: 3,
		RedBits:       8,
		GreenBits:     8,
		BlueBits:      8,
	},
	TypeARGB8888: {
		BytesPerPixel: 4,
		HasAlpha:      true,
		RedBits:       8,
		GreenBits:     8,
		BlueBits:      8,
		AlphaBits:     8,
	},
}

var typeNames = [typeCount]string{
	TypeIndex8:   "Index8",
	TypeGray8:    "Gray8",
	TypeRGB323:   "RGB323",
	TypeARGB2222: "ARGB2222",
	TypeRGB555:   "RGB555",
	TypeRGB565:   "RGB565",
	TypeRGB888:   "RGB888",
	TypeARGB8888: "ARGB8888",
}

// Types returns every Type in catalogue order.
func Types() []Type {
	types := make([]Type, 0, typeCount)
	for t := range typeCount {
		types = append(types, t)
	}
	return types
}

// Info returns the TypeInfo for t, or the zero TypeInfo if t is unknown.
func (t Type) Info() TypeInfo {
	if t >= typeCount {
		return TypeInfo{}
	}
	return typeInfoTable[t]
}

// BytesPerPixel returns the number of bytes per pixel.
func (t Type) BytesPerPixel() int {
	return t.Info().BytesPerPixel
}

// HasAlpha reports whether t stores alpha.
func (t Type) HasAlpha() bool {
	return t.Info().HasAlpha
}

// IsIndexed reports whether t needs a palette.
func (t Type) IsIndexed() bool {
	return t.Info().IsIndexed
}

// IsValid reports whether t is a known type.
func (t Type) IsValid() bool {
	return t < typeCount
}

// RowBytes returns the unpadded number of bytes in a row of width pixels.
func (t Type) RowBytes(width int) int {
	return width * t.BytesPerPixel()
}

// String returns the name of the type.
func (t Type) String() string {
	if t >= typeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// ParseType looks a type up by name, ignoring case.
// "rgb" and "argb" name RGB888 and ARGB8888.
func ParseType(name string) (Type, bool) {
	switch strings.ToLower(name) {
	case "rgb":
		return TypeRGB, true
	case "argb":
		return TypeARGB, true
	}
	for t := range typeCount {
		if strings.EqualFold(typeNames[t], name) {
			return t, true
		}
	}
	return 0, false
}
