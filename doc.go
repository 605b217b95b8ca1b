// Package pngpalette builds color palettes for PNG codecs and selects the
// most compact color mode an image can be stored in.
//
// Given the pixels of an image, or the raw payloads of PLTE and tRNS
// chunks, the package maintains a deduplicated set of distinct colors in
// a canonical sorted order and keeps two positional views on top of it:
// a decoding table that records exactly which color each payload index
// held on disk, and an encoding table that assigns each color the index
// it will occupy in an emitted payload.
//
// The package supports:
//   - Palette construction from pixel slices, image.Image values,
//     color.Palette values, and raw PLTE/tRNS payload bytes
//   - Index lookups in both directions (ColorAt, IndexOf)
//   - PLTE and tRNS payload emission in a stable canonical order
//   - Color-mode selection across the five PNG color types (BestMode)
//
// Decoding a palette from chunk payloads:
//
//	p, err := pngpalette.FromChunks(plteData, trnsData)
//
// Building a palette from an image and emitting payloads:
//
//	p := pngpalette.FromImage(img)
//	plte, trns := p.PLTEPayload(), p.TRNSPayload()
//
// The package works on raw chunk payloads only. Chunk framing, CRC
// checks, compression and filtering belong to the surrounding codec.
package pngpalette
