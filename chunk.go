package pngpalette

import (
	"errors"
	"fmt"
)

// ErrMalformedPalette is returned by FromChunks for payloads that cannot
// describe a palette: a PLTE payload whose length is not a multiple of 3,
// or a tRNS payload with more entries than the palette.
var ErrMalformedPalette = errors.New("pngpalette: malformed palette payload")

// FromChunks reconstructs a palette from raw chunk payloads.
//
// plte is a PLTE chunk payload: consecutive (R, G, B) triples, one per
// palette entry, in on-disk order. trns is the matching tRNS payload, one
// alpha byte per entry at the same position; pass nil when the image has
// no tRNS chunk, which leaves every entry fully opaque. A tRNS payload
// shorter than the palette covers only the entries it reaches and the
// tail stays opaque; one longer than the palette is malformed.
//
// The returned palette records the payload's positional order, duplicate
// entries included, as its decoding table: ColorAt(i) yields exactly the
// color entry i held on disk, which is the correspondence indexed pixel
// data depends on. The deduplicated set is built from the same entries
// but never disturbs that table.
func FromChunks(plte, trns []byte) (*Palette, error) {
	if len(plte)%3 != 0 {
		return nil, fmt.Errorf("%w: PLTE length %d is not a multiple of 3", ErrMalformedPalette, len(plte))
	}
	n := len(plte) / 3
	if len(trns) > n {
		return nil, fmt.Errorf("%w: tRNS has %d entries for a %d-entry palette", ErrMalformedPalette, len(trns), n)
	}
	table := make([]Color, n)
	for i := range table {
		c := Color{R: plte[3*i], G: plte[3*i+1], B: plte[3*i+2], A: 0xff}
		if i < len(trns) {
			c.A = trns[i]
		}
		table[i] = c
	}
	return newPalette(table, table), nil
}

// PLTEPayload returns the palette's PLTE chunk payload: the (R, G, B)
// triple of every distinct color, concatenated in canonical ascending
// order.
//
// The first call materializes the encoding table, assigning each color
// its payload position; afterwards CanEncode reports true and IndexOf
// resolves colors to these positions. Repeated calls reuse the frozen
// table, and the fixed enumeration order means a rebuild would assign
// the same positions regardless.
func (p *Palette) PLTEPayload() []byte {
	if p.encTable == nil {
		enc := make(map[Color]int, len(p.colors))
		for i, c := range p.colors {
			enc[c] = i
		}
		p.encTable = enc
	}
	out := make([]byte, 0, 3*len(p.colors))
	for _, c := range p.colors {
		rgb := c.TruecolorBytes()
		out = append(out, rgb[:]...)
	}
	return out
}

// TRNSPayload returns the palette's tRNS chunk payload: one alpha byte
// per distinct color, in the same canonical order as PLTEPayload, so the
// two payloads stay positionally aligned. It emits all Len() bytes;
// whether a tRNS chunk is worth writing at all (an opaque palette does
// not need one) is the caller's call.
func (p *Palette) TRNSPayload() []byte {
	out := make([]byte, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.A
	}
	return out
}
