package pngpalette

import (
	"image"
	"image/color"
)

// FromImage builds a palette from the distinct colors of img's pixels.
// The result has no decoding table; it is the encode-path entry point
// for images decoded through the image package.
//
// *image.NRGBA and *image.Paletted sources are walked through their Pix
// slices directly; anything else goes through the generic At interface.
func FromImage(img image.Image) *Palette {
	switch src := img.(type) {
	case *image.NRGBA:
		return fromNRGBA(src)
	case *image.Paletted:
		return fromPaletted(src)
	}
	set := make(map[Color]struct{})
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			set[FromColor(img.At(x, y))] = struct{}{}
		}
	}
	return fromColorSet(set)
}

func fromNRGBA(img *image.NRGBA) *Palette {
	set := make(map[Color]struct{})
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			set[Color{row[i], row[i+1], row[i+2], row[i+3]}] = struct{}{}
		}
	}
	return fromColorSet(set)
}

// fromPaletted dedups through the index plane: only palette entries some
// pixel actually references become members.
func fromPaletted(img *image.Paletted) *Palette {
	used := make([]bool, len(img.Palette))
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for _, idx := range row {
			used[idx] = true
		}
	}
	set := make(map[Color]struct{}, len(img.Palette))
	for i, ok := range used {
		if ok {
			set[FromColor(img.Palette[i])] = struct{}{}
		}
	}
	return fromColorSet(set)
}

// FromColorPalette builds a palette from a stdlib color.Palette. The
// incoming order is positionally meaningful for paletted images, so it
// is recorded as the decoding table, duplicates included, exactly like a
// chunk payload's order in FromChunks.
func FromColorPalette(cp color.Palette) *Palette {
	table := make([]Color, len(cp))
	for i, c := range cp {
		table[i] = FromColor(c)
	}
	return newPalette(table, table)
}

// ColorPalette returns the distinct colors as a stdlib color.Palette in
// canonical ascending order, suitable for constructing an image.Paletted
// whose indices match IndexOf after PLTEPayload.
func (p *Palette) ColorPalette() color.Palette {
	out := make(color.Palette, len(p.colors))
	for i, c := range p.colors {
		out[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return out
}
