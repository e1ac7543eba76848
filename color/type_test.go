package color

import "testing"

func TestType_Info(t *testing.T) {
	tests := []struct {
		typ     Type
		bpp     int
		alpha   bool
		indexed bool
		name    string
	}{
		{TypeIndex8, 1, false, true, "Index8"},
		{TypeGray8, 1, false, false, "Gray8"},
		{TypeRGB323, 1, false, false, "RGB323"},
		{TypeARGB2222, 1, true, false, "ARGB2222"},
		{TypeRGB555, 2, false, false, "RGB555"},
		{TypeRGB565, 2, false, false, "RGB565"},
		{TypeRGB888, 3, false, false, "RGB888"},
		{TypeARGB8888, 4, true, false, "ARGB8888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.typ.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
			if got := tt.typ.IsIndexed(); got != tt.indexed {
				t.Errorf("IsIndexed() = %v, want %v", got, tt.indexed)
			}
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if !tt.typ.IsValid() {
				t.Error("IsValid() = false, want true")
			}
			if got := tt.typ.RowBytes(10); got != 10*tt.bpp {
				t.Errorf("RowBytes(10) = %d, want %d", got, 10*tt.bpp)
			}
		})
	}
}

func TestType_Unknown(t *testing.T) {
	u := Type(200)
	if u.IsValid() {
		t.Error("Type(200).IsValid() = true")
	}
	if u.BytesPerPixel() != 0 {
		t.Errorf("Type(200).BytesPerPixel() = %d, want 0", u.BytesPerPixel())
	}
	if u.String() != "Unknown" {
		t.Errorf("Type(200).String() = %q", u.String())
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	if len(types) != 8 {
		t.Fatalf("len(Types()) = %d, want 8", len(types))
	}
	if types[0] != TypeIndex8 || types[7] != TypeARGB8888 {
		t.Errorf("Types() order = %v", types)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		ok   bool
	}{
		{"rgb565", TypeRGB565, true},
		{"ARGB8888", TypeARGB8888, true},
		{"argb", TypeARGB8888, true},
		{"RGB", TypeRGB888, true},
		{"index8", TypeIndex8, true},
		{"rgba", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseType(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseType(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
