package onebit

// Session turns one mouse-down-to-mouse-up gesture into one logical edit.
// It holds a scratch copy of the grid for live preview; the committed grid
// is untouched until End, and Cancel discards everything.
//
// A Session is exclusive per grid: callers must not Begin a new gesture
// while one is active. The surrounding UI already serializes pointer
// events, so this is a documented precondition rather than a runtime
// check.
type Session struct {
	tool  Tool
	brush Brush
	ink   bool

	base    Grid // committed grid at Begin, never mutated
	working Grid // preview grid, replaces base on commit
	anchor  Point
	last    Point
	active  bool
}

// NewSession creates an idle session for the given tool configuration.
// Ink is the pen color: true draws foreground, false background. The
// eraser ignores ink and always writes background.
func NewSession(tool Tool, brush Brush, ink bool) *Session {
	return &Session{tool: tool, brush: brush, ink: ink}
}

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Working returns the live preview grid. Between Begin and End it reflects
// the gesture so far; callers render it instead of the committed grid.
// Outside a gesture it returns the zero Grid.
func (s *Session) Working() Grid {
	return s.working
}

// Begin starts a gesture at p against the committed grid. The grid is
// snapshotted; the caller's copy is never written. Immediate tools apply
// their first stamp right away: pencil and eraser stamp the brush, fill
// floods from the seed.
func (s *Session) Begin(grid Grid, p Point) {
	s.base = grid
	s.working = grid.Clone()
	s.anchor = p
	s.last = p
	s.active = true

	switch s.tool {
	case ToolPencil:
		s.working.apply(s.brush.stamp(p), s.ink)
	case ToolEraser:
		s.working.apply(s.brush.stamp(p), false)
	case ToolFill:
		// One-shot: the region is fixed at the seed, later pointer
		// movement does not re-flood.
		if s.working.InBounds(p.X, p.Y) && s.working.Get(p.X, p.Y) != s.ink {
			s.working.apply(FloodRegion(s.working, p), s.ink)
		}
	case ToolInvert:
		s.working.invert(RectFromCorners(p, p))
	}
}

// Update advances the gesture to pointer position p.
//
// Freehand tools accumulate: every cell on the Bresenham path from the
// previous position is stamped, so a fast drag leaves no gaps. Shape
// tools recompute the whole preview from the gesture's base grid, anchor,
// and p, so dragging never smears earlier previews into the result.
func (s *Session) Update(p Point) {
	if !s.active || p == s.last {
		return
	}

	switch s.tool {
	case ToolPencil, ToolEraser:
		v := s.ink && s.tool == ToolPencil
		for _, step := range LinePoints(s.last, p) {
			s.working.apply(s.brush.stamp(step), v)
		}
	case ToolFill:
		// Applied at Begin.
	case ToolLine:
		s.working = s.base.Clone()
		s.working.apply(LinePoints(s.anchor, p), s.ink)
	case ToolRect:
		s.working = s.base.Clone()
		s.working.apply(RectPoints(s.anchor, p, false), s.ink)
	case ToolRectFill:
		s.working = s.base.Clone()
		s.working.apply(RectPoints(s.anchor, p, true), s.ink)
	case ToolCircle:
		s.working = s.base.Clone()
		s.working.apply(CirclePoints(s.anchor, CircleRadius(s.anchor, p), false), s.ink)
	case ToolCircleFill:
		s.working = s.base.Clone()
		s.working.apply(CirclePoints(s.anchor, CircleRadius(s.anchor, p), true), s.ink)
	case ToolInvert:
		s.working = s.base.Clone()
		s.working.invert(RectFromCorners(s.anchor, p))
	}
	s.last = p
}

// End finishes the gesture. It returns the grid to adopt and true when
// the gesture changed anything; a no-op stroke returns the original grid
// and false, and nothing should be pushed to history. The session returns
// to idle either way.
func (s *Session) End() (Grid, bool) {
	if !s.active {
		return Grid{}, false
	}
	s.active = false
	result := s.working
	s.working = Grid{}
	if result.Equal(s.base) {
		return s.base, false
	}
	return result, true
}

// Cancel aborts the gesture, discarding the working grid. The committed
// grid is left exactly as it was at Begin. Used when the pointer leaves
// the canvas without releasing.
func (s *Session) Cancel() {
	s.active = false
	s.working = Grid{}
}
