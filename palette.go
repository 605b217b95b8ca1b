package pngpalette

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Errors returned by palette lookups.
var (
	ErrNotDecodable    = errors.New("pngpalette: palette has no decoding table")
	ErrNotEncodable    = errors.New("pngpalette: encoding table not materialized")
	ErrIndexOutOfRange = errors.New("pngpalette: decode index out of range")
	ErrColorNotFound   = errors.New("pngpalette: color not in palette")
)

// Palette is a set of distinct colors held in canonical ascending order
// (Color.Compare), with up to two positional views layered on top:
//
//   - A decoding table, present only on palettes built from chunk payloads
//     (FromChunks) or an already-ordered source (FromColorPalette), records
//     which color each source position held, duplicates included. Indexed
//     pixel data resolves against it through ColorAt.
//   - An encoding table, materialized by the first PLTEPayload call, maps
//     each color to the payload index it was assigned. IndexOf resolves
//     encode-time pixels against it.
//
// The two tables are independent: a palette may have either, both, or
// neither, observable through CanDecode and CanEncode.
//
// A Palette performs no locking. The only mutation after construction is
// the one-time encoding-table build inside PLTEPayload, so a palette
// shared across goroutines must either be confined during that call or
// have PLTEPayload invoked up front.
type Palette struct {
	colors   []Color       // distinct colors, ascending Color.Compare order
	decTable []Color       // positional record of the source, nil when absent
	encTable map[Color]int // color -> payload index, nil until PLTEPayload
}

// newPalette builds the deduplicated, sorted color set and attaches the
// decoding table verbatim. The table is the caller's record of source
// positions; construction never reorders or deduplicates it.
func newPalette(colors []Color, decTable []Color) *Palette {
	set := make(map[Color]struct{}, len(colors))
	for _, c := range colors {
		set[c] = struct{}{}
	}
	p := fromColorSet(set)
	p.decTable = decTable
	return p
}

// fromColorSet turns an already-deduplicated set into a palette in
// canonical ascending order.
func fromColorSet(set map[Color]struct{}) *Palette {
	distinct := maps.Keys(set)
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].pack() < distinct[j].pack()
	})
	return &Palette{colors: distinct}
}

// FromColors builds a palette from any sequence of colors, typically the
// pixels of an image being encoded. Duplicates collapse silently; the
// result has no decoding table.
func FromColors(colors []Color) *Palette {
	return newPalette(colors, nil)
}

// Len returns the number of distinct colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// IsIndexable reports whether every color is addressable by a one-byte
// palette index. Indexed storage spends a single byte per pixel, so a
// palette of 256 or more distinct colors cannot use it.
func (p *Palette) IsIndexable() bool {
	return len(p.colors) < 256
}

// IsOpaque reports whether every color in the palette is fully opaque.
func (p *Palette) IsOpaque() bool {
	for _, c := range p.colors {
		if !c.IsOpaque() {
			return false
		}
	}
	return true
}

// IsGrayscale reports whether every color in the palette is gray.
func (p *Palette) IsGrayscale() bool {
	for _, c := range p.colors {
		if !c.IsGrayscale() {
			return false
		}
	}
	return true
}

// CanDecode reports whether the palette carries a decoding table, i.e.
// whether it was built from a positionally meaningful source.
func (p *Palette) CanDecode() bool {
	return p.decTable != nil
}

// CanEncode reports whether the encoding table has been materialized.
// It becomes true after the first PLTEPayload call and stays true.
func (p *Palette) CanEncode() bool {
	return p.encTable != nil
}

// ColorAt returns the color recorded at position i of the decoding table:
// the color the source payload stored at that index, duplicates preserved.
//
// It fails with ErrNotDecodable on palettes that have no decoding table
// and with an error wrapping ErrIndexOutOfRange when i falls outside the
// table; check CanDecode before use.
func (p *Palette) ColorAt(i int) (Color, error) {
	if p.decTable == nil {
		return Color{}, ErrNotDecodable
	}
	if i < 0 || i >= len(p.decTable) {
		return Color{}, fmt.Errorf("%w: index %d, table length %d", ErrIndexOutOfRange, i, len(p.decTable))
	}
	return p.decTable[i], nil
}

// IndexOf returns the payload index assigned to c when the encoding table
// was materialized by PLTEPayload.
//
// It fails with ErrNotEncodable before that table exists (check CanEncode
// first) and with an error wrapping ErrColorNotFound when c was never a
// member. The latter cannot happen for colors drawn from the source that
// built the palette; it signals a defect in the caller, not bad input.
func (p *Palette) IndexOf(c Color) (int, error) {
	if p.encTable == nil {
		return 0, ErrNotEncodable
	}
	i, ok := p.encTable[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrColorNotFound, c)
	}
	return i, nil
}

// Colors returns a copy of the distinct colors in canonical ascending
// order, the exact enumeration PLTEPayload and TRNSPayload emit.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}
