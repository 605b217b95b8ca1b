package pngpalette

import "fmt"

// Mode is a PNG color type: the storage strategy chosen for an image's
// pixel data. The constant values are the wire values written into the
// IHDR color-type field.
type Mode uint8

const (
	ModeGrayscale      Mode = 0
	ModeTruecolor      Mode = 2
	ModeIndexed        Mode = 3
	ModeGrayscaleAlpha Mode = 4
	ModeTruecolorAlpha Mode = 6
)

// BestMode returns the most compact mode that can store every color of p
// losslessly. The decision is total and runs in fixed priority order:
// grayscale modes apply whenever all colors are gray, regardless of
// palette size; indexed applies next, under the 256-color ceiling; the
// truecolor modes are the fallback. Alpha variants are chosen only when
// some color is not opaque.
func BestMode(p *Palette) Mode {
	switch {
	case p.IsGrayscale():
		if !p.IsOpaque() {
			return ModeGrayscaleAlpha
		}
		return ModeGrayscale
	case p.IsIndexable():
		return ModeIndexed
	case !p.IsOpaque():
		return ModeTruecolorAlpha
	default:
		return ModeTruecolor
	}
}

func (m Mode) String() string {
	switch m {
	case ModeGrayscale:
		return "grayscale"
	case ModeTruecolor:
		return "truecolor"
	case ModeIndexed:
		return "indexed"
	case ModeGrayscaleAlpha:
		return "grayscale+alpha"
	case ModeTruecolorAlpha:
		return "truecolor+alpha"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Channels returns the number of samples stored per pixel in this mode.
// Indexed counts as one: the palette index itself.
func (m Mode) Channels() int {
	switch m {
	case ModeGrayscale, ModeIndexed:
		return 1
	case ModeGrayscaleAlpha:
		return 2
	case ModeTruecolor:
		return 3
	case ModeTruecolorAlpha:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the mode stores an alpha sample per pixel.
// Indexed images carry transparency in the tRNS payload instead, so
// HasAlpha is false for ModeIndexed.
func (m Mode) HasAlpha() bool {
	return m == ModeGrayscaleAlpha || m == ModeTruecolorAlpha
}
