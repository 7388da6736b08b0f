package onebit

// Editor owns the "current grid" for one sprite and wires pointer
// gestures, pen state, and undo history together. It is the surface the
// surrounding UI talks to: forward grid-space pointer events, call Undo
// and Redo from shortcuts, and render Preview each frame.
//
// All methods are synchronous and must be called from a single goroutine,
// matching the event-driven UI they serve.
type Editor struct {
	grid    Grid
	history History
	session *Session

	tool  Tool
	brush Brush
	ink   bool
}

// NewEditor creates an editor for the given grid with the pencil tool, a
// single-cell brush, and ink (foreground) as the pen color.
func NewEditor(grid Grid) *Editor {
	return &Editor{
		grid:  grid,
		brush: Brush{Style: BrushSquare, Size: 1},
		ink:   true,
	}
}

// Grid returns the committed grid.
func (e *Editor) Grid() Grid {
	return e.grid
}

// SetGrid replaces the committed grid and resets history, which is what
// happens when a different sprite becomes active. An in-flight gesture is
// cancelled.
func (e *Editor) SetGrid(grid Grid) {
	if e.session != nil {
		e.session.Cancel()
		e.session = nil
	}
	e.grid = grid
	e.history.Reset()
}

// Preview returns the grid to draw this frame: the live working grid
// while a gesture is active, the committed grid otherwise.
func (e *Editor) Preview() Grid {
	if e.session != nil && e.session.Active() {
		return e.session.Working()
	}
	return e.grid
}

// Drawing reports whether a gesture is in progress.
func (e *Editor) Drawing() bool {
	return e.session != nil && e.session.Active()
}

// Tool returns the selected tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetTool selects the tool used by the next gesture. Changing tools
// mid-gesture is not a defined input; the UI disables the palette while
// the pointer is down.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
}

// Brush returns the freehand brush configuration.
func (e *Editor) Brush() Brush {
	return e.brush
}

// SetBrush configures the pencil/eraser footprint.
func (e *Editor) SetBrush(b Brush) {
	if b.Size < 1 {
		b.Size = 1
	}
	e.brush = b
}

// Ink returns the pen color: true draws foreground.
func (e *Editor) Ink() bool {
	return e.ink
}

// ToggleInk flips the pen color. Bound to a command, not to mouse state.
func (e *Editor) ToggleInk() {
	e.ink = !e.ink
}

// PointerDown begins a gesture at the grid cell p.
func (e *Editor) PointerDown(p Point) {
	e.session = NewSession(e.tool, e.brush, e.ink)
	e.session.Begin(e.grid, p)
}

// PointerMove advances the active gesture. Ignored while idle, so stray
// move events cost nothing.
func (e *Editor) PointerMove(p Point) {
	if e.session != nil {
		e.session.Update(p)
	}
}

// PointerUp commits the active gesture. When the stroke changed the grid,
// the pre-edit snapshot is pushed onto history and redo is invalidated; a
// no-op stroke leaves history untouched.
func (e *Editor) PointerUp() {
	if e.session == nil {
		return
	}
	result, changed := e.session.End()
	e.session = nil
	if !changed {
		return
	}
	e.history.Commit(e.grid)
	e.grid = result
}

// PointerCancel aborts the active gesture without committing, as when
// the pointer leaves the canvas area while down.
func (e *Editor) PointerCancel() {
	if e.session != nil {
		e.session.Cancel()
		e.session = nil
	}
}

// Undo reverts the most recent committed edit. Returns false when there
// is nothing to undo.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Undo(e.grid)
	if !ok {
		return false
	}
	e.grid = snap
	return true
}

// Redo re-applies the most recently undone edit. Returns false when there
// is nothing to redo.
func (e *Editor) Redo() bool {
	snap, ok := e.history.Redo(e.grid)
	if !ok {
		return false
	}
	e.grid = snap
	return true
}

// CanUndo reports whether Undo would change the grid.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change the grid.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}
