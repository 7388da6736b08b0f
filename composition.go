package onebit

import (
	"sort"

	"github.com/google/uuid"
)

// LatticePitch is the coarse grid used for drag snapping and collision-
// aware auto-placement, distinct from the 1-pixel cell grid.
const LatticePitch = 8

// SpriteSource resolves a layer's sprite reference to pixel data. The
// project tree owns sprites; compositions only hold ids. Lookup returns
// ok=false for a dangling reference (sprite deleted while still layered),
// which the layout engine treats as a zero-size, invisible sprite.
type SpriteSource interface {
	SpriteGrid(id string) (Grid, bool)
}

// SpriteMap is the trivial map-backed SpriteSource.
type SpriteMap map[string]Grid

// SpriteGrid implements SpriteSource.
func (m SpriteMap) SpriteGrid(id string) (Grid, bool) {
	g, ok := m[id]
	return g, ok
}

// Layer is one placed sprite reference inside a composition. X and Y are
// the top-left offset on the composition canvas and may be negative or
// off-canvas; only interactive dragging clamps them. Z orders rendering,
// higher drawn later (on top).
type Layer struct {
	ID       string `json:"id"`
	SpriteID string `json:"spriteId"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Z        int    `json:"z"`
	Visible  bool   `json:"visible"`
}

// Composition is a canvas holding z-ordered sprite placements. Layers is
// insertion-ordered; rendering order comes from sorting on Z. The struct
// round-trips through encoding/json without loss.
type Composition struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Layers []*Layer `json:"layers"`
}

// NewComposition creates an empty composition canvas. Dimensions are
// clamped to [1, MaxGridSize] like grids.
func NewComposition(width, height int) *Composition {
	return &Composition{Width: clampDim(width), Height: clampDim(height)}
}

// Layer returns the layer with the given id, or nil.
func (c *Composition) Layer(id string) *Layer {
	for _, l := range c.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// LayersByZ returns the layers sorted bottom-to-top. Ties keep insertion
// order. The slice is fresh; the layer pointers are shared.
func (c *Composition) LayersByZ() []*Layer {
	out := make([]*Layer, len(c.Layers))
	copy(out, c.Layers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// layerBounds returns the layer's bounding box on the canvas, or an empty
// Rect for a dangling sprite reference.
func (c *Composition) layerBounds(src SpriteSource, l *Layer) Rect {
	g, ok := src.SpriteGrid(l.SpriteID)
	if !ok {
		return Rect{}
	}
	return Rect{X: l.X, Y: l.Y, W: g.Width, H: g.Height}
}

// AddLayer places a sprite at explicit coordinates. The position is used
// as given, with no snapping, clamping, or overlap checks. The new layer
// goes on top and is visible.
func (c *Composition) AddLayer(spriteID string, x, y int) *Layer {
	l := &Layer{
		ID:       uuid.NewString(),
		SpriteID: spriteID,
		X:        x,
		Y:        y,
		Z:        len(c.Layers),
		Visible:  true,
	}
	c.Layers = append(c.Layers, l)
	return l
}

// AddLayerAuto places a sprite at the first free lattice position, as
// used when adding a sprite without a drop location. See autoPlace for
// the search; when the canvas is fully occupied the layer lands at the
// origin, overlapping whatever is there.
func (c *Composition) AddLayerAuto(src SpriteSource, spriteID string) *Layer {
	var w, h int
	if g, ok := src.SpriteGrid(spriteID); ok {
		w, h = g.Width, g.Height
	}
	p := c.autoPlace(src, w, h)
	return c.AddLayer(spriteID, p.X, p.Y)
}

// autoPlace searches the LatticePitch grid over the canvas, row-major,
// for the first position where a w×h box touches no lattice cell covered
// by an existing visible layer's bounding box. Collision is resolved on
// the coarse lattice, not pixel-exact, so layers that merely share a
// lattice cell count as colliding. Falls back to the origin when no free
// spot exists; overlap there is accepted, not an error.
func (c *Composition) autoPlace(src SpriteSource, w, h int) Point {
	occupied := make(map[Point]struct{})
	for _, l := range c.Layers {
		if !l.Visible {
			continue
		}
		r := c.layerBounds(src, l)
		if r.Empty() {
			continue
		}
		for _, cell := range latticeCells(r) {
			occupied[cell] = struct{}{}
		}
	}

	for y := 0; y+h <= c.Height; y += LatticePitch {
		for x := 0; x+w <= c.Width; x += LatticePitch {
			free := true
			for _, cell := range latticeCells(Rect{X: x, Y: y, W: w, H: h}) {
				if _, taken := occupied[cell]; taken {
					free = false
					break
				}
			}
			if free {
				return Point{X: x, Y: y}
			}
		}
	}
	return Point{}
}

// latticeCells returns the LatticePitch-sized cells a rectangle covers.
// A zero-size rectangle covers none.
func latticeCells(r Rect) []Point {
	if r.Empty() {
		return nil
	}
	x0 := floorDiv(r.X, LatticePitch)
	y0 := floorDiv(r.Y, LatticePitch)
	x1 := floorDiv(r.X+r.W-1, LatticePitch)
	y1 := floorDiv(r.Y+r.H-1, LatticePitch)
	out := make([]Point, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// floorDiv divides rounding toward negative infinity, so off-canvas
// layer positions map to the correct lattice cell.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}

// Duplicate clones a layer's sprite reference and visibility under a
// fresh id, auto-placing the copy and stacking it on top. Returns nil if
// the id is unknown.
func (c *Composition) Duplicate(src SpriteSource, layerID string) *Layer {
	orig := c.Layer(layerID)
	if orig == nil {
		return nil
	}
	var w, h int
	if g, ok := src.SpriteGrid(orig.SpriteID); ok {
		w, h = g.Width, g.Height
	}
	p := c.autoPlace(src, w, h)
	l := &Layer{
		ID:       uuid.NewString(),
		SpriteID: orig.SpriteID,
		X:        p.X,
		Y:        p.Y,
		Z:        len(c.Layers),
		Visible:  orig.Visible,
	}
	c.Layers = append(c.Layers, l)
	return l
}

// Remove deletes a layer. Returns false if the id is unknown.
func (c *Composition) Remove(layerID string) bool {
	for i, l := range c.Layers {
		if l.ID == layerID {
			c.Layers = append(c.Layers[:i], c.Layers[i+1:]...)
			return true
		}
	}
	return false
}

// Move positions a layer from an interactive drag. With snap true each
// axis is rounded to the nearest multiple of LatticePitch first. The
// sprite's bounding box is then clamped inside the canvas; a sprite
// larger than the canvas clamps to a negative offset, which centers it
// as far as possible rather than pinning it at the origin. Dangling
// sprite references move unclamped (zero size).
func (c *Composition) Move(src SpriteSource, layerID string, x, y int, snap bool) {
	l := c.Layer(layerID)
	if l == nil {
		return
	}
	if snap {
		x = snapTo(x, LatticePitch)
		y = snapTo(y, LatticePitch)
	}
	var w, h int
	if g, ok := src.SpriteGrid(l.SpriteID); ok {
		w, h = g.Width, g.Height
	}
	l.X = clampOffset(x, c.Width, w)
	l.Y = clampOffset(y, c.Height, h)
}

// snapTo rounds n to the nearest multiple of pitch, halves away from
// zero.
func snapTo(n, pitch int) int {
	if n >= 0 {
		return ((n + pitch/2) / pitch) * pitch
	}
	return -(((-n + pitch/2) / pitch) * pitch)
}

// clampOffset keeps [n, n+size) inside [0, canvas) where possible. When
// size exceeds canvas the bounds invert: the position clamps into
// [canvas-size, 0], letting the oversized sprite sit partly above/left
// of the canvas but never drift free of it.
func clampOffset(n, canvas, size int) int {
	return max(min(n, max(0, canvas-size)), min(0, canvas-size))
}

// ReorderDirection selects which neighbor a layer swaps z with.
type ReorderDirection uint8

const (
	ReorderUp   ReorderDirection = iota // toward the viewer
	ReorderDown                         // toward the background
)

// Reorder swaps the layer's Z with its nearest neighbor in the given
// direction: the layer with the closest strictly greater Z for up, the
// closest strictly lesser for down. A layer already at the extreme is
// left alone. Only the two Z values change; nothing is renumbered.
func (c *Composition) Reorder(layerID string, dir ReorderDirection) {
	target := c.Layer(layerID)
	if target == nil {
		return
	}
	var neighbor *Layer
	for _, l := range c.Layers {
		if l == target {
			continue
		}
		switch dir {
		case ReorderUp:
			if l.Z > target.Z && (neighbor == nil || l.Z < neighbor.Z) {
				neighbor = l
			}
		case ReorderDown:
			if l.Z < target.Z && (neighbor == nil || l.Z > neighbor.Z) {
				neighbor = l
			}
		}
	}
	if neighbor != nil {
		target.Z, neighbor.Z = neighbor.Z, target.Z
	}
}

// HitTest returns the topmost visible layer whose bounding box contains
// the canvas point (x, y), or nil. Dangling sprite references are
// zero-size and never hit.
func (c *Composition) HitTest(src SpriteSource, x, y int) *Layer {
	byZ := c.LayersByZ()
	for i := len(byZ) - 1; i >= 0; i-- {
		l := byZ[i]
		if !l.Visible {
			continue
		}
		if c.layerBounds(src, l).Contains(x, y) {
			return l
		}
	}
	return nil
}

// Flatten renders the composition to a single grid: visible layers are
// stamped bottom-to-top, ink cells only, so upper layers never erase
// lower ones with their background. Off-canvas portions are clipped.
func (c *Composition) Flatten(src SpriteSource) Grid {
	out := NewGrid(c.Width, c.Height)
	for _, l := range c.LayersByZ() {
		if !l.Visible {
			continue
		}
		g, ok := src.SpriteGrid(l.SpriteID)
		if !ok {
			continue
		}
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.Cells[y][x] {
					out.Set(l.X+x, l.Y+y, true)
				}
			}
		}
	}
	return out
}
