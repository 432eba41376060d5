package terminal

import (
	"testing"

	"grid/grid"
)

func TestHistory_UndoRedo(t *testing.T) {
	g, _ := grid.New(3, 1)
	h := NewHistory(10)
	h.Save(g)

	if h.CanUndo() {
		t.Error("CanUndo() = true with a single state")
	}

	g.Set(0, 0, 'a')
	h.Save(g)
	g.Set(1, 0, 'b')
	h.Save(g)

	prev, ok := h.Undo()
	if !ok || prev.String() != "a  \n" {
		t.Fatalf("Undo() = %q, %v", prev, ok)
	}
	prev, ok = h.Undo()
	if !ok || prev.String() != "   \n" {
		t.Fatalf("second Undo() = %q, %v", prev, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo() past the first state succeeded")
	}

	next, ok := h.Redo()
	if !ok || next.String() != "a  \n" {
		t.Fatalf("Redo() = %q, %v", next, ok)
	}
}

func TestHistory_SaveDiscardsRedo(t *testing.T) {
	g, _ := grid.New(2, 1)
	h := NewHistory(10)
	h.Save(g)
	g.Set(0, 0, 'x')
	h.Save(g)

	h.Undo()
	g.Set(1, 0, 'y')
	h.Save(g)

	if h.CanRedo() {
		t.Error("CanRedo() = true after saving over an undo")
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistory_SnapshotsAreCopies(t *testing.T) {
	g, _ := grid.New(1, 1)
	h := NewHistory(10)
	h.Save(g)
	g.Set(0, 0, 'x')
	h.Save(g)

	prev, _ := h.Undo()
	prev.Set(0, 0, 'z')

	again, _ := h.Redo()
	if r, _ := again.Get(0, 0); r != 'x' {
		t.Errorf("stored snapshot mutated: %c", r)
	}
}

func TestHistory_MaxStates(t *testing.T) {
	g, _ := grid.New(1, 1)
	h := NewHistory(3)
	for _, r := range "abcde" {
		g.Set(0, 0, r)
		h.Save(g)
	}

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}

	undos := 0
	for h.CanUndo() {
		h.Undo()
		undos++
	}
	if undos != 2 {
		t.Errorf("undo steps = %d, want 2", undos)
	}
}
