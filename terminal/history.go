package terminal

import "grid/grid"

// History manages undo/redo as a bounded slice of grid snapshots.
type History struct {
	states  []*grid.Grid
	current int // Current position in history
	max     int // Maximum number of states to keep
}

// NewHistory creates a history keeping at most max snapshots.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]*grid.Grid, 0, max),
		current: -1,
		max:     max,
	}
}

// Save records a copy of g as the newest state, discarding any redo states.
func (h *History) Save(g *grid.Grid) {
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, g.Clone())

	// If we exceed max, remove oldest
	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if we can undo
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if we can redo
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back one state and returns a copy of it.
func (h *History) Undo() (*grid.Grid, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.states[h.current].Clone(), true
}

// Redo steps forward one state and returns a copy of it.
func (h *History) Redo() (*grid.Grid, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.states[h.current].Clone(), true
}

// Len returns the number of stored states.
func (h *History) Len() int {
	return len(h.states)
}
