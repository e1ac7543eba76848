package style

import (
	"fmt"
	"slices"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// WString is wide text held as code points.
type WString []rune

// WCharSize is the width in bytes of one wide character unit in an
// external buffer.
type WCharSize int

const (
	// WChar16 stores UTF-16 code units, as wchar_t on Windows.
	WChar16 WCharSize = 2

	// WChar32 stores UTF-32 code points, as wchar_t on most Unix systems.
	WChar32 WCharSize = 4
)

// ByteOrder selects the byte order of wide character units.
type ByteOrder int

// Byte orders for Encode and DecodeWString.
const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// NewWString converts s to a WString.
func NewWString(s string) WString { return WString(s) }

// String converts w to UTF-8.
func (w WString) String() string { return string(w) }

// Len returns the number of code points.
func (w WString) Len() int { return len(w) }

// Equal reports whether w and o hold the same code points.
func (w WString) Equal(o WString) bool { return slices.Equal(w, o) }

func wideEncoding(size WCharSize, order ByteOrder) (encoding.Encoding, error) {
	switch size {
	case WChar16:
		e := unicode.LittleEndian
		if order == BigEndian {
			e = unicode.BigEndian
		}
		return unicode.UTF16(e, unicode.IgnoreBOM), nil
	case WChar32:
		e := utf32.LittleEndian
		if order == BigEndian {
			e = utf32.BigEndian
		}
		return utf32.UTF32(e, utf32.IgnoreBOM), nil
	default:
		return nil, fmt.Errorf("style: unsupported wide char size %d", size)
	}
}

// Encode serializes w as a buffer of size-byte units without a BOM or
// terminator.
func (w WString) Encode(size WCharSize, order ByteOrder) ([]byte, error) {
	enc, err := wideEncoding(size, order)
	if err != nil {
		return nil, err
	}
	b, err := enc.NewEncoder().Bytes([]byte(string(w)))
	if err != nil {
		return nil, fmt.Errorf("style: encode wide string: %w", err)
	}
	return b, nil
}

// DecodeWString parses a buffer of size-byte units. Decoding stops at the
// first zero unit, as a C wide string would.
func DecodeWString(b []byte, size WCharSize, order ByteOrder) (WString, error) {
	enc, err := wideEncoding(size, order)
	if err != nil {
		return nil, err
	}
	n := int(size)
	for i := 0; i+n <= len(b); i += n {
		if isZero(b[i : i+n]) {
			b = b[:i]
			break
		}
	}
	if len(b)%n != 0 {
		return nil, fmt.Errorf("style: wide string of %d bytes is not a multiple of %d", len(b), n)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("style: decode wide string: %w", err)
	}
	return WString(string(out)), nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
