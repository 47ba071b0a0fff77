package maze

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/game"
)

// RadialMaze is a circular maze of concentric rings whose open walls form a
// spanning tree: every cell is reachable and there is exactly one path between
// any two cells.
type RadialMaze struct {
	rings  int
	seed   int64
	cells  [][]*RingCell
	layout PolarLayout
	entry  game.CellPosition
	exit   game.CellPosition // ring-0 cell leading to the center
}

var _ game.Maze = (*RadialMaze)(nil)

// edge is a candidate opening between two cells.
type edge struct {
	from, to game.CellPosition
	radial   bool
}

// NewRadial generates a radial maze with the given number of rings using
// randomized Kruskal over circumferential and radial walls.
func NewRadial(rings int, seed int64) (*RadialMaze, error) {
	if rings <= 0 || rings > maxRings {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRings, rings)
	}

	cells := make([][]*RingCell, rings)
	for r := range cells {
		cells[r] = make([]*RingCell, CellCount(r))
		for c := range cells[r] {
			cells[r][c] = &RingCell{EastWall: true, InWall: true}
		}
	}

	m := &RadialMaze{
		rings:  rings,
		seed:   seed,
		cells:  cells,
		layout: NewPolarLayout(rings),
	}

	rng := NewLCG(seed)
	m.carve(rng)

	m.entry = game.RingCell(rings-1, rng.Intn(CellCount(rings-1)))
	m.exit = game.RingCell(0, rng.Intn(CellCount(0)))
	m.cellAt(m.entry).IsEntry = true
	m.cellAt(m.exit).IsExit = true
	return m, nil
}

// carve opens walls along a random spanning tree.
func (m *RadialMaze) carve(r Rand) {
	edges := m.candidateEdges(r)
	shuffle(r, len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	forest := NewDisjointSet[game.CellPosition]()
	for _, e := range edges {
		if !forest.Union(e.from, e.to) {
			continue // would close a cycle
		}
		if e.radial {
			m.cellAt(e.to).InWall = false
		} else {
			m.cellAt(e.from).EastWall = false
		}
	}
}

// candidateEdges lists every circumferential wall and one radial wall per
// cell that has a ring outside it. The outer end of a radial wall is the
// cell aligned under the inner one by the ring size ratio, with a random
// offset among the cells sharing that parent.
func (m *RadialMaze) candidateEdges(r Rand) []edge {
	var edges []edge
	for ring := 0; ring < m.rings; ring++ {
		n := CellCount(ring)
		for c := 0; c < n; c++ {
			from := game.RingCell(ring, c)
			edges = append(edges, edge{from: from, to: game.RingCell(ring, (c+1)%n)})
			if ring+1 < m.rings {
				first, last := children(ring, c)
				child := first + r.Intn(last-first+1)
				edges = append(edges, edge{from: from, to: game.RingCell(ring+1, child), radial: true})
			}
		}
	}
	return edges
}

// parent returns the cell one ring in that sits under cell c of ring r (r > 0).
func parent(ring, cell int) int {
	return cell * CellCount(ring-1) / CellCount(ring)
}

// children returns the inclusive range of cells in ring+1 whose parent is cell.
func children(ring, cell int) (int, int) {
	inner, outer := CellCount(ring), CellCount(ring+1)
	first := (cell*outer + inner - 1) / inner
	last := ((cell+1)*outer+inner-1)/inner - 1
	return first, last
}

func (m *RadialMaze) cellAt(pos game.CellPosition) *RingCell {
	return m.cells[pos.Ring()][pos.Cell()]
}

// CellAt returns a copy of the cell at pos.
func (m *RadialMaze) CellAt(pos game.CellPosition) (RingCell, bool) {
	if !inRadialBounds(m.rings, pos) {
		return RingCell{}, false
	}
	return *m.cellAt(pos), true
}

// Kind implements game.Maze.
func (m *RadialMaze) Kind() string { return KindRadial }

// Seed implements game.Maze.
func (m *RadialMaze) Seed() int64 { return m.seed }

// Rings returns the number of rings.
func (m *RadialMaze) Rings() int { return m.rings }

// Entry implements game.Maze.
func (m *RadialMaze) Entry() game.CellPosition { return m.entry }

// Exit returns the ring-0 cell that opens onto the center.
func (m *RadialMaze) Exit() game.CellPosition { return m.exit }

// Goal implements game.Maze.
func (m *RadialMaze) Goal() game.CellPosition { return game.Center }

// IsGoal implements game.Maze.
func (m *RadialMaze) IsGoal(pos game.CellPosition) bool { return pos.IsCenter() }

// IsValidMove reports whether from and to are adjacent and the wall between them is open.
func (m *RadialMaze) IsValidMove(from, to game.CellPosition) bool {
	if !inRadialBounds(m.rings, from) || from == to {
		return false
	}

	if to.IsCenter() {
		return from.Ring() == 0 && m.cellAt(from).IsExit
	}
	if !inRadialBounds(m.rings, to) {
		return false
	}

	switch to.Ring() - from.Ring() {
	case 0:
		n := CellCount(from.Ring())
		if to.Cell() == (from.Cell()+1)%n {
			return !m.cellAt(from).EastWall
		}
		if from.Cell() == (to.Cell()+1)%n {
			return !m.cellAt(to).EastWall
		}
		return false
	case 1: // outward
		return parent(to.Ring(), to.Cell()) == from.Cell() && !m.cellAt(to).InWall
	case -1: // inward
		return parent(from.Ring(), from.Cell()) == to.Cell() && !m.cellAt(from).InWall
	default:
		return false
	}
}

// Neighbors implements game.Maze.
func (m *RadialMaze) Neighbors(pos game.CellPosition) []game.CellPosition {
	if !inRadialBounds(m.rings, pos) {
		return nil
	}
	return ringNeighbors(m.rings, pos)
}

// ringNeighbors lists the cells sharing a wall with pos, plus the center for ring 0.
func ringNeighbors(rings int, pos game.CellPosition) []game.CellPosition {
	ring, cell := pos.Ring(), pos.Cell()
	n := CellCount(ring)
	result := []game.CellPosition{
		game.RingCell(ring, (cell+1)%n),
		game.RingCell(ring, (cell+n-1)%n),
	}
	if ring == 0 {
		result = append(result, game.Center)
	} else {
		result = append(result, game.RingCell(ring-1, parent(ring, cell)))
	}
	if ring+1 < rings {
		first, last := children(ring, cell)
		for c := first; c <= last; c++ {
			result = append(result, game.RingCell(ring+1, c))
		}
	}
	return result
}

// Cells implements game.Maze.
func (m *RadialMaze) Cells() []game.CellPosition {
	return radialCells(m.rings)
}

// Polar returns the angle and radius of a cell's middle in the normalized layout.
func (m *RadialMaze) Polar(pos game.CellPosition) Polar {
	return m.layout.CellCenter(pos)
}

// CellCenter implements game.Maze.
func (m *RadialMaze) CellCenter(pos game.CellPosition) game.Point {
	return m.layout.CellCenter(pos).ToPoint()
}

// PointToCell implements game.Maze.
func (m *RadialMaze) PointToCell(x, y float64) game.CellPosition {
	return m.layout.PointToGrid(x, y)
}

// Snapshot implements game.Maze.
func (m *RadialMaze) Snapshot() game.Snapshot {
	cells := make([]game.CellSnapshot, 0)
	for _, pos := range m.Cells() {
		c := m.cellAt(pos)
		cells = append(cells, game.CellSnapshot{
			Pos:     pos,
			Walls:   c.closedWalls(pos.Ring()),
			IsEntry: c.IsEntry,
			IsExit:  c.IsExit,
		})
	}

	return game.Snapshot{
		Kind:  KindRadial,
		Seed:  m.seed,
		Rings: m.rings,
		Cells: cells,
		Entry: m.entry,
		Goal:  game.Center,
	}
}

// String lists the rings from the outside in. Each cell prints as a glyph
// preceded by "_" when its inward wall stands and followed by "|" when its
// clockwise wall stands.
func (m *RadialMaze) String() string {
	var output strings.Builder
	for ring := m.rings - 1; ring >= 0; ring-- {
		fmt.Fprintf(&output, "ring %2d: ", ring)
		for _, c := range m.cells[ring] {
			switch {
			case c.InWall && ring > 0:
				output.WriteByte('_')
			default:
				output.WriteByte(' ')
			}
			switch {
			case c.IsEntry:
				output.WriteByte('S')
			case c.IsExit:
				output.WriteByte('E')
			default:
				output.WriteByte('o')
			}
			if c.EastWall {
				output.WriteByte('|')
			} else {
				output.WriteByte(' ')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
