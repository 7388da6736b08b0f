package onebit

// BrushStyle selects the footprint of a freehand brush.
type BrushStyle uint8

const (
	BrushSquare BrushStyle = iota // full (2r+1)-sided square
	BrushRound                    // cells within Euclidean radius r
)

// String returns the style name.
func (s BrushStyle) String() string {
	switch s {
	case BrushSquare:
		return "square"
	case BrushRound:
		return "round"
	default:
		return "unknown"
	}
}

// Brush describes the footprint of the pencil and eraser tools. Size 1 is
// a single cell regardless of style; larger sizes stamp a square or
// rounded block centered on the pointer.
type Brush struct {
	Style BrushStyle
	Size  int
}

// Offsets returns the deduplicated cell offsets the brush touches around
// a center cell. Offsets are not bounds-filtered; clamping happens when
// they are applied to a grid.
//
// For the round style the footprint is the set of offsets with
// dx²+dy² ≤ r², r = ⌊size/2⌋. At size 3 this excludes the four corners
// (a plus shape), which is what distinguishes it from the square brush.
func (b Brush) Offsets() []Point {
	if b.Size <= 1 {
		return []Point{{}}
	}
	r := b.Size / 2
	out := make([]Point, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if b.Style == BrushRound && dx*dx+dy*dy > r*r {
				continue
			}
			out = append(out, Point{X: dx, Y: dy})
		}
	}
	return out
}

// stamp returns the cells the brush covers centered at p.
func (b Brush) stamp(p Point) []Point {
	offs := b.Offsets()
	for i := range offs {
		offs[i].X += p.X
		offs[i].Y += p.Y
	}
	return offs
}

// LinePoints returns the connected cell path from a to b, endpoints
// inclusive, using Bresenham's algorithm. Integer arithmetic only, so
// there is no error accumulation; the same two endpoints always produce
// the same path.
func LinePoints(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	out := make([]Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	for {
		out = append(out, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// RectPoints returns the cells of the axis-aligned rectangle spanned by
// two corner points (inclusive). With filled false only the border cells
// are returned; with filled true every cell of the box is.
func RectPoints(a, b Point, filled bool) []Point {
	r := RectFromCorners(a, b)
	out := make([]Point, 0, r.W*r.H)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if filled || x == r.X || x == r.X+r.W-1 || y == r.Y || y == r.Y+r.H-1 {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// CirclePoints returns the cells of a circle centered at c. The outline
// is a midpoint-circle rasterization; the filled variant writes the same
// outline plus every cell whose Euclidean distance from the center is at
// most radius, so the two modes always share their boundary. A radius
// below 1 degenerates to the single center cell.
func CirclePoints(c Point, radius int, filled bool) []Point {
	if radius < 1 {
		return []Point{c}
	}

	// Midpoint circle. Octant mirroring produces duplicates on the axes
	// and diagonals, so collect into a set keyed by offset.
	seen := make(map[Point]struct{}, 8*radius)
	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		for _, d := range [8]Point{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			seen[d] = struct{}{}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	if filled {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy <= radius*radius {
					seen[Point{X: dx, Y: dy}] = struct{}{}
				}
			}
		}
	}
	out := make([]Point, 0, len(seen))
	for d := range seen {
		out = append(out, Point{X: c.X + d.X, Y: c.Y + d.Y})
	}
	return out
}

// CircleRadius returns the radius used when dragging a circle from an
// anchor to the pointer: the Euclidean distance, rounded to the nearest
// integer. Outline and filled circles share this metric so both modes
// produce the same extent for the same drag.
func CircleRadius(center, edge Point) int {
	dx := edge.X - center.X
	dy := edge.Y - center.Y
	return isqrtRound(dx*dx + dy*dy)
}

// isqrtRound returns round(sqrt(n)) for n ≥ 0 without going through
// floating point.
func isqrtRound(n int) int {
	if n < 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	// r² ≤ n < (r+1)². Round up when n is closer to (r+1)².
	if 4*n >= (2*r+1)*(2*r+1) {
		return r + 1
	}
	return r
}

// FloodRegion returns the 4-connected region of cells sharing the seed
// cell's value, seed included. The walk is iterative with an explicit
// frontier and a visited set, so a 256x256 grid cannot overflow any
// stack; every cell is visited at most once. A seed outside the grid
// returns nil.
func FloodRegion(g Grid, seed Point) []Point {
	if !g.InBounds(seed.X, seed.Y) {
		return nil
	}
	target := g.Get(seed.X, seed.Y)
	visited := make([]bool, g.Width*g.Height)
	frontier := []Point{seed}
	visited[seed.Y*g.Width+seed.X] = true

	var out []Point
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		out = append(out, p)

		for _, n := range [4]Point{
			{p.X + 1, p.Y}, {p.X - 1, p.Y},
			{p.X, p.Y + 1}, {p.X, p.Y - 1},
		} {
			if !g.InBounds(n.X, n.Y) || g.Get(n.X, n.Y) != target {
				continue
			}
			idx := n.Y*g.Width + n.X
			if visited[idx] {
				continue
			}
			visited[idx] = true
			frontier = append(frontier, n)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
