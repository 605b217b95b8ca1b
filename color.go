package pngpalette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidChannel is returned by the checked constructors when a channel
// value lies outside [0, 255] or a color string cannot be parsed.
var ErrInvalidChannel = errors.New("pngpalette: channel value out of range")

// Color is a single palette entry: an 8-bit RGBA color with
// non-premultiplied alpha, exactly like color.NRGBA. Colors are plain
// values; construct them with a composite literal and compare them with ==.
type Color struct {
	R, G, B, A uint8
}

// Gray returns the opaque gray with all three color channels set to v.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v, A: 0xff}
}

// FromValues constructs a Color from integer channel values, rejecting any
// channel outside [0, 255] with an error wrapping ErrInvalidChannel. It is
// the entry point for channel data that does not already live in bytes,
// such as parsed text or flag values.
func FromValues(r, g, b, a int) (Color, error) {
	if !validChannel(r) || !validChannel(g) || !validChannel(b) || !validChannel(a) {
		return Color{}, fmt.Errorf("%w: (%d,%d,%d,%d)", ErrInvalidChannel, r, g, b, a)
	}
	return Color{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

func validChannel(v int) bool {
	return v >= 0 && v <= 0xff
}

// ParseHex parses a hex color string: "#RGB", "#RRGGBB" or "#RRGGBBAA",
// case-insensitive, with the leading '#' optional. Three- and six-digit
// forms are fully opaque. Malformed input is reported with an error
// wrapping ErrInvalidChannel.
//
// ParseHex inverts String for every Color.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	switch len(digits) {
	case 3:
		var exp [6]byte
		for i := 0; i < 3; i++ {
			exp[2*i] = digits[i]
			exp[2*i+1] = digits[i]
		}
		digits = string(exp[:])
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidChannel, s)
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i*2 < len(digits); i++ {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidChannel, s)
		}
		ch[i] = uint8(v)
	}
	return Color{ch[0], ch[1], ch[2], ch[3]}, nil
}

// IsOpaque reports whether the color is fully opaque (alpha 255).
func (c Color) IsOpaque() bool {
	return c.A == 0xff
}

// IsGrayscale reports whether the three color channels are equal.
// Alpha plays no part: a translucent gray is still gray.
func (c Color) IsGrayscale() bool {
	return c.R == c.G && c.G == c.B
}

// pack returns the color as one RGBA word with R in the high byte.
// Ascending pack order is the canonical color order used everywhere:
// it sorts lexicographically by (R, G, B, A).
func (c Color) pack() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Compare orders colors lexicographically by (R, G, B, A), returning -1
// when c sorts before o, 0 when the colors are equal, and +1 otherwise.
// The order is total, so it is safe for sorting and deduplication.
func (c Color) Compare(o Color) int {
	a, b := c.pack(), o.pack()
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// TruecolorBytes returns the (R, G, B) triple the color occupies in a
// palette chunk payload. Alpha travels separately in the transparency
// payload.
func (c Color) TruecolorBytes() [3]byte {
	return [3]byte{c.R, c.G, c.B}
}

// RGBA implements color.Color. The stored channels are non-premultiplied,
// so the conversion matches color.NRGBA exactly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a Color through the
// non-premultiplied NRGBA model.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// String returns the color as "#RRGGBBAA".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
