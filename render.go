package onebit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default palette for the reference front-end: dark ink on a pale
// green-gray paper, the look of the target monochrome panel.
var (
	DefaultInk   = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	DefaultPaper = color.RGBA{R: 0xc7, G: 0xd3, B: 0xb1, A: 0xff}
)

// whitePixel is a 1x1 white image used to draw solid cells and overlays.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// DrawOptions configures grid and composition drawing. The zero value
// draws at 1:1 scale in the default palette, fully opaque.
type DrawOptions struct {
	Scale float64    // cell size in screen pixels, 0 means 1
	Ink   color.RGBA // foreground, zero value means DefaultInk
	Paper color.RGBA // background, zero value means DefaultPaper
	Alpha float32    // overall alpha, 0 means 1 (opaque)
}

func (o DrawOptions) normalized() DrawOptions {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Ink == (color.RGBA{}) {
		o.Ink = DefaultInk
	}
	if o.Paper == (color.RGBA{}) {
		o.Paper = DefaultPaper
	}
	if o.Alpha <= 0 {
		o.Alpha = 1
	}
	return o
}

// GridImage expands a grid into a new 1:1 ebiten image, ink cells in ink,
// the rest in paper. Callers that redraw every frame should reuse images
// where they can; at editor grid sizes a rebuild per change is cheap.
func GridImage(g Grid, ink, paper color.RGBA) *ebiten.Image {
	pix := make([]byte, 4*g.Width*g.Height)
	i := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := paper
			if g.Cells[y][x] {
				c = ink
			}
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
			i += 4
		}
	}
	img := ebiten.NewImage(g.Width, g.Height)
	img.WritePixels(pix)
	return img
}

// DrawGrid draws a grid at (x, y) on dst, scaled per opts. Nearest-
// neighbor filtering keeps the pixels crisp at any zoom.
func DrawGrid(dst *ebiten.Image, g Grid, x, y float64, opts DrawOptions) {
	opts = opts.normalized()
	img := GridImage(g, opts.Ink, opts.Paper)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(opts.Scale, opts.Scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(opts.Alpha)
	dst.DrawImage(img, op)
	img.Deallocate()
}

// DrawComposition draws every visible layer bottom-to-top at (x, y) on
// dst. Only ink cells are stamped, so lower layers show through upper
// layers' background, matching the editor canvas; use
// Composition.Flatten for the opaque device output. Dangling sprite
// references draw nothing.
func DrawComposition(dst *ebiten.Image, c *Composition, src SpriteSource, x, y float64, opts DrawOptions) {
	opts = opts.normalized()
	fillCell(dst, x, y, float64(c.Width)*opts.Scale, float64(c.Height)*opts.Scale, opts.Paper, opts.Alpha)
	for _, l := range c.LayersByZ() {
		if !l.Visible {
			continue
		}
		g, ok := src.SpriteGrid(l.SpriteID)
		if !ok {
			continue
		}
		for cy := 0; cy < g.Height; cy++ {
			for cx := 0; cx < g.Width; cx++ {
				if !g.Cells[cy][cx] {
					continue
				}
				px, py := l.X+cx, l.Y+cy
				if px < 0 || px >= c.Width || py < 0 || py >= c.Height {
					continue
				}
				fillCell(dst,
					x+float64(px)*opts.Scale, y+float64(py)*opts.Scale,
					opts.Scale, opts.Scale, opts.Ink, opts.Alpha)
			}
		}
	}
}

// DrawCells draws a set of grid cells as solid squares, used for preview
// overlays and cursors. Pair with a Pulse for the overlay alpha.
func DrawCells(dst *ebiten.Image, cells []Point, x, y, scale float64, col color.RGBA, alpha float32) {
	if scale <= 0 {
		scale = 1
	}
	for _, p := range cells {
		fillCell(dst, x+float64(p.X)*scale, y+float64(p.Y)*scale, scale, scale, col, alpha)
	}
}

// DiffCells returns the cells where two grids disagree, such as the cells
// a live gesture has touched so far. Grids of different sizes diff over
// their shared top-left region.
func DiffCells(a, b Grid) []Point {
	w := min(a.Width, b.Width)
	h := min(a.Height, b.Height)
	var out []Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.Cells[y][x] != b.Cells[y][x] {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// fillCell stretches the shared white pixel over a rectangle with the
// given tint.
func fillCell(dst *ebiten.Image, x, y, w, h float64, col color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(whitePixel, op)
}
