// Package style holds the values computed for CSS-like properties and the
// aggregates a layout or paint stage reads them through.
//
// A Value pairs a Type tag with a payload. Constructors set both at once, so
// a payload can never exist without its matching tag; getters refuse to
// reinterpret a payload under another tag.
//
//	v := style.Px(12)
//	px, err := v.AsPx()  // 12, nil
//	_, err = v.AsPt()    // ErrTypeMismatch
//
// Units are never converted here: px and pt are distinct tags and a
// consumer that wants to mix them must do so explicitly.
package style

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/gogpu/uistyle/color"
	"github.com/gogpu/uistyle/graph"
)

// Value errors.
var (
	// ErrValueUnset is returned when reading a value that is not set.
	ErrValueUnset = errors.New("style: value unset")

	// ErrTypeMismatch is returned when reading or constructing a value with
	// a tag that does not match its payload.
	ErrTypeMismatch = errors.New("style: type mismatch")
)

// Value is a tagged style value. The zero Value is unset.
//
// Value is comparable in spirit but not with ==; use Equal.
type Value struct {
	valid bool
	typ   Type

	// num holds float32 bits for lengths, and the int, bool, color and
	// keyword payloads.
	num   uint32
	str   string
	wstr  WString
	image *graph.Graph
}

func number(t Type, n uint32) Value {
	return Value{valid: true, typ: t, num: n}
}

func length(t Type, f float32) Value {
	return number(t, math.Float32bits(f))
}

// None returns a set value tagged none.
func None() Value { return number(TypeNone, 0) }

// Auto returns a set value tagged auto.
func Auto() Value { return number(TypeAuto, 0) }

// Px returns a length in pixels.
func Px(f float32) Value { return length(TypePx, f) }

// Pt returns a length in points.
func Pt(f float32) Value { return length(TypePt, f) }

// Dip returns a length in density-independent pixels.
func Dip(f float32) Value { return length(TypeDip, f) }

// Sp returns a length in scale-independent pixels.
func Sp(f float32) Value { return length(TypeSp, f) }

// Scale returns a ratio of the containing size, 0.5 meaning 50%.
func Scale(f float32) Value { return length(TypeScale, f) }

// Int returns an integer value.
func Int(n int32) Value { return number(TypeInt, uint32(n)) }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return number(TypeBool, 1)
	}
	return number(TypeBool, 0)
}

// ColorValue returns a color value.
func ColorValue(c color.Color) Value { return number(TypeColor, uint32(c)) }

// Style returns a keyword value.
func Style(k Keyword) Value { return number(TypeStyle, uint32(k)) }

// Image returns a value referencing g. The value does not own g; releasing
// g is up to whoever allocated it.
func Image(g *graph.Graph) Value {
	return Value{valid: true, typ: TypeImage, image: g}
}

// String returns a text value.
func String(s string) Value {
	return Value{valid: true, typ: TypeString, str: s}
}

// WideString returns a wide text value holding a copy of s.
func WideString(s WString) Value {
	return Value{valid: true, typ: TypeWString, wstr: slices.Clone(s)}
}

// Invalid returns an unset value.
func Invalid() Value { return Value{} }

// Make builds a value of type t from payload.
//
// The payload kind must match t: nil for none and auto, float32 or float64
// for lengths, int32 or int for int, bool, color.Color, *graph.Graph,
// Keyword, string, and WString or []rune for wide strings. Anything else
// fails with ErrTypeMismatch.
func Make(t Type, payload any) (Value, error) {
	switch t {
	case TypeNone, TypeAuto:
		if payload == nil {
			return number(t, 0), nil
		}
	case TypeScale, TypePx, TypePt, TypeDip, TypeSp:
		switch p := payload.(type) {
		case float32:
			return length(t, p), nil
		case float64:
			return length(t, float32(p)), nil
		}
	case TypeInt:
		switch p := payload.(type) {
		case int32:
			return Int(p), nil
		case int:
			if p >= math.MinInt32 && p <= math.MaxInt32 {
				return Int(int32(p)), nil
			}
		}
	case TypeBool:
		if p, ok := payload.(bool); ok {
			return Bool(p), nil
		}
	case TypeColor:
		if p, ok := payload.(color.Color); ok {
			return ColorValue(p), nil
		}
	case TypeImage:
		if p, ok := payload.(*graph.Graph); ok {
			return Image(p), nil
		}
	case TypeStyle:
		if p, ok := payload.(Keyword); ok {
			return Style(p), nil
		}
	case TypeString:
		if p, ok := payload.(string); ok {
			return String(p), nil
		}
	case TypeWString:
		switch p := payload.(type) {
		case WString:
			return WideString(p), nil
		case []rune:
			return WideString(p), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: unknown type %d", ErrTypeMismatch, t)
	}
	return Value{}, fmt.Errorf("%w: %T payload for %v", ErrTypeMismatch, payload, t)
}

// IsValid reports whether v is set.
func (v Value) IsValid() bool { return v.valid }

// Type returns the tag of v. It is meaningless when v is unset.
func (v Value) Type() Type { return v.typ }

// Is reports whether v is set and tagged t.
func (v Value) Is(t Type) bool { return v.valid && v.typ == t }

func (v Value) check(t Type) error {
	if !v.valid {
		return ErrValueUnset
	}
	if v.typ != t {
		return fmt.Errorf("%w: have %v, want %v", ErrTypeMismatch, v.typ, t)
	}
	return nil
}

func (v Value) lengthAs(t Type) (float32, error) {
	if err := v.check(t); err != nil {
		return 0, err
	}
	return math.Float32frombits(v.num), nil
}

// AsPx returns the payload of a px value.
func (v Value) AsPx() (float32, error) { return v.lengthAs(TypePx) }

// AsPt returns the payload of a pt value.
func (v Value) AsPt() (float32, error) { return v.lengthAs(TypePt) }

// AsDip returns the payload of a dip value.
func (v Value) AsDip() (float32, error) { return v.lengthAs(TypeDip) }

// AsSp returns the payload of an sp value.
func (v Value) AsSp() (float32, error) { return v.lengthAs(TypeSp) }

// AsScale returns the payload of a scale value.
func (v Value) AsScale() (float32, error) { return v.lengthAs(TypeScale) }

// AsInt returns the payload of an int value.
func (v Value) AsInt() (int32, error) {
	if err := v.check(TypeInt); err != nil {
		return 0, err
	}
	return int32(v.num), nil
}

// AsBool returns the payload of a bool value.
func (v Value) AsBool() (bool, error) {
	if err := v.check(TypeBool); err != nil {
		return false, err
	}
	return v.num != 0, nil
}

// AsColor returns the payload of a color value.
func (v Value) AsColor() (color.Color, error) {
	if err := v.check(TypeColor); err != nil {
		return 0, err
	}
	return color.Color(v.num), nil
}

// AsImage returns the graph referenced by an image value.
func (v Value) AsImage() (*graph.Graph, error) {
	if err := v.check(TypeImage); err != nil {
		return nil, err
	}
	return v.image, nil
}

// AsStyle returns the payload of a keyword value.
func (v Value) AsStyle() (Keyword, error) {
	if err := v.check(TypeStyle); err != nil {
		return 0, err
	}
	return Keyword(v.num), nil
}

// AsString returns the payload of a string value.
func (v Value) AsString() (string, error) {
	if err := v.check(TypeString); err != nil {
		return "", err
	}
	return v.str, nil
}

// AsWideString returns a copy of the payload of a wide string value.
func (v Value) AsWideString() (WString, error) {
	if err := v.check(TypeWString); err != nil {
		return nil, err
	}
	return slices.Clone(v.wstr), nil
}

// Get returns the payload interpreted as t, boxed in the Go type the
// matching As method returns. None and auto yield nil.
func (v Value) Get(t Type) (any, error) {
	if err := v.check(t); err != nil {
		return nil, err
	}
	switch t {
	case TypeNone, TypeAuto:
		return nil, nil
	case TypeScale, TypePx, TypePt, TypeDip, TypeSp:
		return math.Float32frombits(v.num), nil
	case TypeInt:
		return int32(v.num), nil
	case TypeBool:
		return v.num != 0, nil
	case TypeColor:
		return color.Color(v.num), nil
	case TypeImage:
		return v.image, nil
	case TypeStyle:
		return Keyword(v.num), nil
	case TypeString:
		return v.str, nil
	case TypeWString:
		return slices.Clone(v.wstr), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %d", ErrTypeMismatch, t)
	}
}

// Reset unsets v and drops any text payload.
func (v *Value) Reset() { *v = Value{} }

// Equal reports whether v and o are both unset, or both set with the same
// tag and payload. Lengths compare bit for bit, text by content and images
// by identity.
func (v Value) Equal(o Value) bool {
	if !v.valid || !o.valid {
		return v.valid == o.valid
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeString:
		return v.str == o.str
	case TypeWString:
		return slices.Equal(v.wstr, o.wstr)
	case TypeImage:
		return v.image == o.image
	default:
		return v.num == o.num
	}
}

// String renders v for debugging: "12px", "50%", "auto", "#c86432ff".
func (v Value) String() string {
	if !v.valid {
		return "unset"
	}
	f := func() string {
		return strconv.FormatFloat(float64(math.Float32frombits(v.num)), 'g', -1, 32)
	}
	switch v.typ {
	case TypeNone, TypeAuto:
		return v.typ.String()
	case TypeScale:
		return strconv.FormatFloat(float64(math.Float32frombits(v.num))*100, 'g', 6, 64) + "%"
	case TypePx, TypePt, TypeDip, TypeSp:
		return f() + v.typ.String()
	case TypeInt:
		return strconv.Itoa(int(int32(v.num)))
	case TypeBool:
		return strconv.FormatBool(v.num != 0)
	case TypeColor:
		return color.Color(v.num).Hex()
	case TypeImage:
		if v.image == nil {
			return "image(nil)"
		}
		return fmt.Sprintf("image(%dx%d)", v.image.Width(), v.image.Height())
	case TypeStyle:
		return Keyword(v.num).String()
	case TypeString:
		return strconv.Quote(v.str)
	case TypeWString:
		return strconv.Quote(v.wstr.String())
	default:
		return "unknown"
	}
}
