package style

import "strings"

// Type tags the payload of a Value.
type Type uint8

// Value types. Px, Pt, Dip and Sp are lengths in pixels, points,
// density-independent pixels and scale-independent pixels.
const (
	TypeNone    Type = iota // explicitly no value
	TypeAuto                // computed by layout
	TypeScale               // fraction of the containing size
	TypePx                  // pixels
	TypePt                  // points
	TypeDip                 // density-independent pixels
	TypeSp                  // scale-independent pixels
	TypeColor               // color.Color
	TypeImage               // *graph.Graph
	TypeStyle               // Keyword
	TypeInt                 // int32
	TypeBool                // bool
	TypeString              // UTF-8 string
	TypeWString             // WString

	typeCount
)

var typeNames = [typeCount]string{
	TypeNone:    "none",
	TypeAuto:    "auto",
	TypeScale:   "scale",
	TypePx:      "px",
	TypePt:      "pt",
	TypeDip:     "dip",
	TypeSp:      "sp",
	TypeColor:   "color",
	TypeImage:   "image",
	TypeStyle:   "style",
	TypeInt:     "int",
	TypeBool:    "bool",
	TypeString:  "string",
	TypeWString: "wstring",
}

// typeAliases are the extra spellings accepted by ParseType.
var typeAliases = map[string]Type{
	"dp": TypeDip,
	"0":  TypeNone,
}

// String returns the lower-case name of t.
func (t Type) String() string {
	if t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}

// IsValid reports whether t is a known tag.
func (t Type) IsValid() bool { return t < typeCount }

// IsLength reports whether t carries a float length or ratio
// (scale, px, pt, dip, sp).
func (t Type) IsLength() bool {
	switch t {
	case TypeScale, TypePx, TypePt, TypeDip, TypeSp:
		return true
	}
	return false
}

// IsNumeric reports whether t carries a number: a length or an int.
func (t Type) IsNumeric() bool {
	return t.IsLength() || t == TypeInt
}

// ParseType looks a tag up by name. Besides the canonical names it accepts
// "dp" for dip and "0" for none. Matching ignores case.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if t, ok := typeAliases[name]; ok {
		return t, true
	}
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}
	return 0, false
}
