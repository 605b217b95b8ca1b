// Command pngpal inspects images and builds PNG palette chunk payloads.
//
// Usage:
//
//	pngpal info [options] <image>...       Report palette statistics and the best storage mode
//	pngpal extract [options] <image>       Write the PLTE/tRNS payloads of an image's palette
//	pngpal show <plte-file> [trns-file]    List the entries stored in payload files
//	pngpal make [options] <color>...       Build payloads from color arguments
//
// Input images may be PNG, GIF, JPEG, BMP or TIFF. An input path of "-"
// reads from standard input.
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v3"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/deepteams/pngpalette"
)

var rootCmd = &cli.Command{
	Name:  "pngpal",
	Usage: "Inspect images and build PNG palette chunk payloads",
	Commands: []*cli.Command{
		infoCmd,
		extractCmd,
		showCmd,
		makeCmd,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		if c.Args().Present() {
			return fmt.Errorf("unknown command %q; run \"pngpal help\" for usage", c.Args().First())
		}
		return fmt.Errorf("missing command; run \"pngpal help\" for usage")
	},
}

func main() {
	if err := rootCmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "pngpal: %v\n", err)
		os.Exit(1)
	}
}

// --- info ---

var infoCmd = &cli.Command{
	Name:      "info",
	Usage:     "Report palette statistics and the best storage mode for images",
	ArgsUsage: "<image>...",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "max-dim",
			Usage: "downscale images whose longest side exceeds this before scanning (0 = no limit)",
		},
	},
	Action: runInfo,
}

func runInfo(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("info: missing input image")
	}
	maxDim := int(c.Int("max-dim"))
	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := printInfo(path, maxDim); err != nil {
			return fmt.Errorf("info: %w", err)
		}
	}
	return nil
}

func printInfo(path string, maxDim int) error {
	img, err := loadImage(path, maxDim)
	if err != nil {
		return err
	}
	p := pngpalette.FromImage(img)
	mode := pngpalette.BestMode(p)

	b := img.Bounds()
	fmt.Printf("File:       %s\n", inputName(path))
	fmt.Printf("Dimensions: %d x %d\n", b.Dx(), b.Dy())
	fmt.Printf("Distinct:   %d colors\n", p.Len())
	fmt.Printf("Opaque:     %v\n", p.IsOpaque())
	fmt.Printf("Grayscale:  %v\n", p.IsGrayscale())
	fmt.Printf("Indexable:  %v\n", p.IsIndexable())
	fmt.Printf("Best mode:  %s\n", mode)
	fmt.Printf("Channels:   %d\n", mode.Channels())
	if p.IsIndexable() {
		fmt.Printf("PLTE size:  %d bytes\n", len(p.PLTEPayload()))
		if p.IsOpaque() {
			fmt.Printf("tRNS size:  %d bytes (not needed, palette is opaque)\n", len(p.TRNSPayload()))
		} else {
			fmt.Printf("tRNS size:  %d bytes\n", len(p.TRNSPayload()))
		}
	}
	return nil
}

// --- extract ---

var extractCmd = &cli.Command{
	Name:      "extract",
	Usage:     "Write the PLTE and tRNS chunk payloads of an image's palette",
	ArgsUsage: "<image>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "max-dim",
			Usage: "downscale the image if its longest side exceeds this before scanning (0 = no limit)",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   `output path prefix (default: input name without extension, "-" for hex on stdout)`,
		},
		&cli.BoolFlag{
			Name:  "no-trns",
			Usage: "skip the tRNS payload even when the palette has translucent entries",
		},
	},
	Action: runExtract,
}

func runExtract(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("extract: need exactly one input image")
	}
	inputPath := args[0]

	img, err := loadImage(inputPath, int(c.Int("max-dim")))
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	p := pngpalette.FromImage(img)
	if !p.IsIndexable() {
		return fmt.Errorf("extract: %s has %d distinct colors, more than indexed storage can hold; try --max-dim to reduce them", inputName(inputPath), p.Len())
	}

	plte := p.PLTEPayload()
	trns := p.TRNSPayload()
	writeTRNS := !p.IsOpaque() && !c.Bool("no-trns")

	out := c.String("out")
	if out == "-" {
		fmt.Printf("PLTE %x\n", plte)
		if writeTRNS {
			fmt.Printf("tRNS %x\n", trns)
		}
		return nil
	}
	if out == "" {
		if inputPath == "-" {
			out = "palette"
		} else {
			base := filepath.Base(inputPath)
			out = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}

	if err := writePayload(out+".plte", plte); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if writeTRNS {
		if err := writePayload(out+".trns", trns); err != nil {
			return fmt.Errorf("extract: %w", err)
		}
	}
	return nil
}

// --- show ---

var showCmd = &cli.Command{
	Name:      "show",
	Usage:     "List the palette entries stored in raw PLTE/tRNS payload files",
	ArgsUsage: "<plte-file> [trns-file]",
	Action:    runShow,
}

func runShow(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("show: need a PLTE payload file and an optional tRNS payload file")
	}
	plte, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	var trns []byte
	if len(args) == 2 {
		trns, err = os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
	}

	p, err := pngpalette.FromChunks(plte, trns)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	n := len(plte) / 3
	for i := 0; i < n; i++ {
		entry, err := p.ColorAt(i)
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		fmt.Printf("%3d  %s  alpha %3d\n", i, entry, entry.A)
	}
	fmt.Printf("%d entries, %d distinct, best mode %s\n", n, p.Len(), pngpalette.BestMode(p))
	return nil
}

// --- make ---

var makeCmd = &cli.Command{
	Name:        "make",
	Usage:       "Build a palette from color arguments and emit its payloads",
	ArgsUsage:   "<color>...",
	Description: `Colors are given as hex ("#RRGGBB", "#RRGGBBAA", "#RGB") or as decimal channel lists ("R,G,B" or "R,G,B,A").`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output path prefix (default: hex on stdout)",
		},
	},
	Action: runMake,
}

func runMake(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("make: missing color arguments")
	}
	colors := make([]pngpalette.Color, 0, len(args))
	for _, arg := range args {
		col, err := parseColorArg(arg)
		if err != nil {
			return fmt.Errorf("make: %w", err)
		}
		colors = append(colors, col)
	}

	p := pngpalette.FromColors(colors)
	plte := p.PLTEPayload()
	trns := p.TRNSPayload()

	out := c.String("out")
	if out == "" || out == "-" {
		fmt.Printf("PLTE %x\n", plte)
		if !p.IsOpaque() {
			fmt.Printf("tRNS %x\n", trns)
		}
		return nil
	}
	if err := writePayload(out+".plte", plte); err != nil {
		return fmt.Errorf("make: %w", err)
	}
	if !p.IsOpaque() {
		if err := writePayload(out+".trns", trns); err != nil {
			return fmt.Errorf("make: %w", err)
		}
	}
	return nil
}

// parseColorArg accepts "#RRGGBB"-style hex or "R,G,B[,A]" decimal channels.
// A missing decimal alpha defaults to 255.
func parseColorArg(s string) (pngpalette.Color, error) {
	if !strings.Contains(s, ",") {
		return pngpalette.ParseHex(s)
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return pngpalette.Color{}, fmt.Errorf("color %q: need 3 or 4 channels", s)
	}
	vals := [4]int{0, 0, 0, 255}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return pngpalette.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		vals[i] = v
	}
	return pngpalette.FromValues(vals[0], vals[1], vals[2], vals[3])
}

// --- shared helpers ---

// loadImage decodes the image at path ("-" for stdin) in any registered
// format and, when maxDim > 0, downsizes it so that neither side exceeds
// maxDim.
func loadImage(path string, maxDim int) (image.Image, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", inputName(path), err)
	}
	if maxDim > 0 {
		b := img.Bounds()
		if b.Dx() > maxDim || b.Dy() > maxDim {
			img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		}
	}
	return img, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func inputName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

func writePayload(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
