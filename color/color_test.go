package color

import (
	"encoding/binary"
	"errors"
	stdcolor "image/color"
	"testing"
	"unsafe"
)

func TestColor_ChannelAliases(t *testing.T) {
	c := RGBA(200, 100, 50, 255)

	if c.R() != 200 || c.Red() != 200 {
		t.Errorf("R() = %d, Red() = %d, want 200", c.R(), c.Red())
	}
	if c.G() != 100 || c.Green() != 100 {
		t.Errorf("G() = %d, Green() = %d, want 100", c.G(), c.Green())
	}
	if c.B() != 50 || c.Blue() != 50 {
		t.Errorf("B() = %d, Blue() = %d, want 50", c.B(), c.Blue())
	}
	if c.A() != 255 || c.Alpha() != 255 {
		t.Errorf("A() = %d, Alpha() = %d, want 255", c.A(), c.Alpha())
	}
}

func TestColor_SettersShareStorage(t *testing.T) {
	var c Color
	c.SetRed(10)
	c.SetG(20)
	c.SetBlue(30)
	c.SetA(40)

	if c.R() != 10 || c.Green() != 20 || c.B() != 30 || c.Alpha() != 40 {
		t.Errorf("got %v, want r=10 g=20 b=30 a=40", c)
	}

	c.SetR(99)
	if c.Red() != 99 || c.G() != 20 {
		t.Errorf("SetR(99) changed other channels: %v", c)
	}
}

func TestColor_ByteOrder(t *testing.T) {
	c := ARGB(0x44, 0x33, 0x22, 0x11)

	want := [4]byte{0x11, 0x22, 0x33, 0x44}
	if got := c.Bytes(); got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
	if got := FromBytes(want); got != c {
		t.Errorf("FromBytes(%v) = %v, want %v", want, got, c)
	}

	var mem [4]byte
	binary.LittleEndian.PutUint32(mem[:], c.Value())
	if mem != want {
		t.Errorf("little-endian memory = %v, want %v", mem, want)
	}
	if unsafe.Sizeof(c) != 4 {
		t.Errorf("Sizeof(Color) = %d, want 4", unsafe.Sizeof(c))
	}
}

func TestColor_StdInterop(t *testing.T) {
	c := RGBA(200, 100, 50, 128)

	var sc stdcolor.Color = c
	got := FromStd(sc)
	if got != c {
		t.Errorf("FromStd(Color) = %v, want %v", got, c)
	}

	n := c.NRGBA()
	if n != (stdcolor.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("NRGBA() = %v", n)
	}
	if FromStd(n) != c {
		t.Errorf("FromStd(NRGBA) = %v, want %v", FromStd(n), c)
	}

	if got := Model.Convert(stdcolor.Gray{Y: 7}); got != RGB(7, 7, 7) {
		t.Errorf("Model.Convert(Gray{7}) = %v, want %v", got, RGB(7, 7, 7))
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#fff", White, false},
		{"#c86432", RGB(200, 100, 50), false},
		{"#c8643280", RGBA(200, 100, 50, 128), false},
		{"  #000000  ", Black, false},
		{"c86432", 0, true},
		{"#c8643", 0, true},
		{"#zzzzzz", 0, true},
		{"#c86432zz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_HexRoundTrip(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	if c.Hex() != "#01020304" {
		t.Errorf("Hex() = %q, want #01020304", c.Hex())
	}
	got, err := ParseHex(c.Hex())
	if err != nil || got != c {
		t.Errorf("ParseHex(Hex()) = (%v, %v), want %v", got, err, c)
	}
}

func TestColor_Lerp(t *testing.T) {
	from := RGBA(0, 0, 0, 0)
	to := RGBA(200, 100, 50, 255)

	if got := from.Lerp(to, 0); got != from {
		t.Errorf("Lerp(0) = %v, want %v", got, from)
	}
	if got := from.Lerp(to, 1); got != to {
		t.Errorf("Lerp(1) = %v, want %v", got, to)
	}
	want := RGBA(100, 50, 25, 128)
	if got := from.Lerp(to, 0.5); got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := RGB(1, 2, 3)
	got := c.WithAlpha(9)
	if got.A() != 9 || got.R() != 1 || c.A() != 255 {
		t.Errorf("WithAlpha(9) = %v (orig %v)", got, c)
	}
}
