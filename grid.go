package onebit

// MaxGridSize is the largest supported grid dimension on either axis.
// Matches the largest monochrome panel the editor targets (256x256).
const MaxGridSize = 256

// Grid is the 1-bit pixel raster for one sprite or screen. Cells holds
// Height rows of Width booleans; true is ink (foreground), false is
// background. The zero-value Grid is unusable; create grids with NewGrid.
//
// Grid is a plain record that round-trips through encoding/json without
// loss, which is the import/export contract with the surrounding project
// code.
//
// Grid values are treated as snapshots: mutating operations either write
// in place on a grid you own (Set) or return a fresh grid (Resize, Clone).
// The drawing core never aliases a caller's grid.
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]bool `json:"cells"`
}

// clampDim brings a requested dimension into the supported range.
// Dimension validation proper happens at the UI boundary; the core only
// guarantees it will not crash or allocate absurdly.
func clampDim(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxGridSize {
		return MaxGridSize
	}
	return n
}

// NewGrid creates an all-background grid. Dimensions are clamped to
// [1, MaxGridSize] on each axis.
func NewGrid(width, height int) Grid {
	width, height = clampDim(width), clampDim(height)
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
	}
	return Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the cell at (x, y), or false if the coordinate is outside
// the grid. Pointer coordinates routinely stray off-canvas during fast
// drags, so out-of-range reads are ordinary, not errors.
func (g Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Cells[y][x]
}

// Set writes the cell at (x, y). Out-of-range writes are no-ops.
func (g Grid) Set(x, y int, v bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[y][x] = v
}

// Bounds returns the grid's extent as a Rect at the origin.
func (g Grid) Bounds() Rect {
	return Rect{W: g.Width, H: g.Height}
}

// Clone returns a deep copy. The copy shares no row storage with the
// original.
func (g Grid) Clone() Grid {
	out := Grid{Width: g.Width, Height: g.Height, Cells: make([][]bool, len(g.Cells))}
	for y, row := range g.Cells {
		out.Cells[y] = make([]bool, len(row))
		copy(out.Cells[y], row)
	}
	return out
}

// Resize returns a new grid of the requested size with the overlapping
// top-left region copied verbatim from g. Cells outside the copied region
// stay background. Dimensions are clamped like NewGrid.
func (g Grid) Resize(width, height int) Grid {
	out := NewGrid(width, height)
	w := min(g.Width, out.Width)
	h := min(g.Height, out.Height)
	for y := 0; y < h; y++ {
		copy(out.Cells[y][:w], g.Cells[y][:w])
	}
	return out
}

// Equal reports whether two grids have the same dimensions and identical
// cells.
func (g Grid) Equal(other Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Fill sets every cell to v.
func (g Grid) Fill(v bool) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = v
		}
	}
}

// apply writes v to every listed cell, clamped to the grid.
func (g Grid) apply(cells []Point, v bool) {
	for _, p := range cells {
		g.Set(p.X, p.Y, v)
	}
}

// invert flips every cell inside r that lies on the grid.
func (g Grid) invert(r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if g.InBounds(x, y) {
				g.Cells[y][x] = !g.Cells[y][x]
			}
		}
	}
}
