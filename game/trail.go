package game

import "slices"

// Trail is the ordered list of cells the player occupied during the current attempt.
type Trail struct {
	cells []CellPosition
}

// NewTrail starts a trail at the given cell.
func NewTrail(start CellPosition) *Trail {
	return &Trail{cells: []CellPosition{start}}
}

// Visit records a step onto pos. Stepping back onto a cell already in the
// trail drops everything after it, which is how dragging backwards undoes a path.
func (t *Trail) Visit(pos CellPosition) {
	if i := slices.Index(t.cells, pos); i != -1 {
		t.cells = t.cells[:i+1]
		return
	}
	t.cells = append(t.cells, pos)
}

// Cells returns a copy of the trail.
func (t *Trail) Cells() []CellPosition {
	return slices.Clone(t.cells)
}

// Len returns the number of cells in the trail.
func (t *Trail) Len() int {
	return len(t.cells)
}

// Last returns the most recent cell.
func (t *Trail) Last() CellPosition {
	return t.cells[len(t.cells)-1]
}
