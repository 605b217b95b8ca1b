package pngpalette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// distinctOpaque returns n distinct opaque colors, none of them gray.
func distinctOpaque(n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color{R: uint8(i), G: uint8(i >> 8), B: 200, A: 255}
	}
	return colors
}

func TestFromColors_Dedup(t *testing.T) {
	red := Color{255, 0, 0, 255}
	green := Color{0, 255, 0, 255}
	blue := Color{0, 0, 255, 255}

	tests := []struct {
		name   string
		colors []Color
		want   int
	}{
		{"no_duplicates", []Color{red, green, blue}, 3},
		{"all_same", []Color{red, red, red, red}, 1},
		{"mixed", []Color{red, green, red, blue, green, red}, 3},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromColors(tt.colors)
			if p.Len() != tt.want {
				t.Errorf("Len = %d, want %d", p.Len(), tt.want)
			}
		})
	}
}

func TestFromColors_OrderIndependent(t *testing.T) {
	red := Color{255, 0, 0, 255}
	green := Color{0, 255, 0, 255}
	blue := Color{0, 0, 255, 255}

	a := FromColors([]Color{red, green, blue})
	b := FromColors([]Color{blue, blue, red, green, red})
	if diff := cmp.Diff(a.Colors(), b.Colors()); diff != "" {
		t.Errorf("palettes from reordered input differ (-a +b):\n%s", diff)
	}
}

func TestColors_CanonicalOrder(t *testing.T) {
	p := FromColors([]Color{
		{200, 0, 0, 255},
		{0, 0, 0, 255},
		{200, 0, 0, 10},
		{0, 128, 0, 255},
	})
	colors := p.Colors()
	for i := 1; i < len(colors); i++ {
		if colors[i-1].Compare(colors[i]) >= 0 {
			t.Fatalf("Colors()[%d] = %v not before [%d] = %v", i-1, colors[i-1], i, colors[i])
		}
	}
}

func TestColors_ReturnsCopy(t *testing.T) {
	p := FromColors([]Color{{1, 2, 3, 255}, {4, 5, 6, 255}})
	colors := p.Colors()
	colors[0] = Color{99, 99, 99, 99}
	if got := p.Colors()[0]; got == (Color{99, 99, 99, 99}) {
		t.Error("mutating the returned slice changed the palette")
	}
}

func TestIsIndexable_Boundary(t *testing.T) {
	if p := FromColors(distinctOpaque(255)); !p.IsIndexable() {
		t.Error("255 distinct colors should be indexable")
	}
	if p := FromColors(distinctOpaque(256)); p.IsIndexable() {
		t.Error("256 distinct colors should not be indexable")
	}
	if p := FromColors(nil); !p.IsIndexable() {
		t.Error("empty palette should be indexable")
	}
}

func TestPalettePredicates(t *testing.T) {
	opaqueGray := FromColors([]Color{Gray(0), Gray(128), Gray(255)})
	if !opaqueGray.IsOpaque() || !opaqueGray.IsGrayscale() {
		t.Error("gray ramp should be opaque and grayscale")
	}

	translucent := FromColors([]Color{Gray(0), {10, 10, 10, 128}})
	if translucent.IsOpaque() {
		t.Error("palette with alpha 128 member should not be opaque")
	}
	if !translucent.IsGrayscale() {
		t.Error("translucent gray is still gray")
	}

	colored := FromColors([]Color{{255, 0, 0, 255}})
	if colored.IsGrayscale() {
		t.Error("red palette should not be grayscale")
	}
}

// --- decoding table ---

func TestColorAt_NoTable(t *testing.T) {
	p := FromColors([]Color{{1, 2, 3, 255}})
	if p.CanDecode() {
		t.Error("pixel-built palette should not be decodable")
	}
	_, err := p.ColorAt(0)
	if !errors.Is(err, ErrNotDecodable) {
		t.Errorf("ColorAt error = %v, want ErrNotDecodable", err)
	}
}

func TestColorAt_OutOfRange(t *testing.T) {
	p, err := FromChunks([]byte{1, 2, 3, 4, 5, 6}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 2, 100} {
		_, err := p.ColorAt(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ColorAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

// --- encoding table ---

func TestIndexOf_BeforePayload(t *testing.T) {
	c := Color{1, 2, 3, 255}
	p := FromColors([]Color{c})
	if p.CanEncode() {
		t.Error("CanEncode should be false before PLTEPayload")
	}
	_, err := p.IndexOf(c)
	if !errors.Is(err, ErrNotEncodable) {
		t.Errorf("IndexOf error = %v, want ErrNotEncodable", err)
	}
}

func TestIndexOf_InvertsEnumeration(t *testing.T) {
	p := FromColors([]Color{
		{30, 0, 0, 255},
		{10, 0, 0, 255},
		{20, 0, 0, 255},
	})
	p.PLTEPayload()
	if !p.CanEncode() {
		t.Fatal("CanEncode should be true after PLTEPayload")
	}
	for i, c := range p.Colors() {
		got, err := p.IndexOf(c)
		if err != nil {
			t.Fatalf("IndexOf(%v): %v", c, err)
		}
		if got != i {
			t.Errorf("IndexOf(%v) = %d, want %d", c, got, i)
		}
	}
}

func TestIndexOf_ColorNotFound(t *testing.T) {
	p := FromColors([]Color{{1, 2, 3, 255}})
	p.PLTEPayload()
	_, err := p.IndexOf(Color{9, 9, 9, 255})
	if !errors.Is(err, ErrColorNotFound) {
		t.Errorf("IndexOf error = %v, want ErrColorNotFound", err)
	}
}
