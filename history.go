package onebit

// HistoryCap is the maximum number of undo steps retained per grid.
// Committing past the cap silently drops the oldest snapshot.
const HistoryCap = 50

// History is the bounded undo/redo stack for one grid. Snapshots in past
// are ordered oldest-first; Undo pops from the end. Any fresh commit
// invalidates the redo side, which is standard linear-undo behavior.
//
// History is single-writer: the caller must finish one Commit, Undo, or
// Redo before issuing another, which the one-gesture-at-a-time UI already
// guarantees. It is ephemeral and is reset whenever a different sprite
// becomes active.
type History struct {
	past   []Grid
	future []Grid
}

// Commit records the pre-edit snapshot after a gesture changed the grid.
// The oldest snapshot is evicted once the stack holds HistoryCap entries,
// and any redoable snapshots are discarded.
func (h *History) Commit(prev Grid) {
	if len(h.past) >= HistoryCap {
		// Drop oldest. Shift in place so the backing array is reused.
		copy(h.past, h.past[1:])
		h.past = h.past[:len(h.past)-1]
	}
	h.past = append(h.past, prev)
	h.future = h.future[:0]
}

// Undo exchanges the current grid for the most recent snapshot. It
// returns the snapshot to adopt and true, or the zero Grid and false when
// there is nothing to undo (a no-op, not an error).
func (h *History) Undo(current Grid) (Grid, bool) {
	if len(h.past) == 0 {
		return Grid{}, false
	}
	snap := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return snap, true
}

// Redo is the inverse of Undo. It returns the snapshot to adopt and true,
// or the zero Grid and false when there is nothing to redo.
func (h *History) Redo(current Grid) (Grid, bool) {
	if len(h.future) == 0 {
		return Grid{}, false
	}
	snap := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	if len(h.past) >= HistoryCap {
		copy(h.past, h.past[1:])
		h.past = h.past[:len(h.past)-1]
	}
	h.past = append(h.past, current)
	return snap, true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Reset discards all snapshots. Called when the active sprite changes.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
}
