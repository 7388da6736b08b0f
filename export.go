package onebit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pack serializes a grid into the device framebuffer layout: 1 bit per
// pixel, row-major, most significant bit first, each row padded to a
// whole byte. This is the raw payload the firmware-side exporter wraps in
// source code; onebit does not know about output text formats.
func Pack(g Grid) []byte {
	stride := (g.Width + 7) / 8
	out := make([]byte, stride*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] {
				out[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return out
}

// UnpackGrid is the inverse of Pack, for importing device bitmaps. data
// shorter than the grid leaves the remaining cells background; extra
// bytes are ignored. Dimensions are clamped like NewGrid.
func UnpackGrid(data []byte, width, height int) Grid {
	g := NewGrid(width, height)
	stride := (g.Width + 7) / 8
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*stride + x/8
			if i >= len(data) {
				return g
			}
			g.Cells[y][x] = data[i]&(0x80>>(x%8)) != 0
		}
	}
	return g
}

// GridNRGBA expands a grid into a standard library image for snapshot
// export and thumbnails.
func GridNRGBA(g Grid, ink, paper color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := paper
			if g.Cells[y][x] {
				c = ink
			}
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// CompositionNRGBA flattens a composition and expands it like GridNRGBA.
func CompositionNRGBA(c *Composition, src SpriteSource, ink, paper color.RGBA) *image.NRGBA {
	return GridNRGBA(c.Flatten(src), ink, paper)
}

// WritePNG saves a grid as a PNG file at 1:1 scale.
func WritePNG(path string, g Grid, ink, paper color.RGBA) error {
	return writePNG(path, GridNRGBA(g, ink, paper))
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
