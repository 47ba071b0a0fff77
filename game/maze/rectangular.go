package maze

import (
	"fmt"
	"math"
	"strings"

	"github.com/beka-birhanu/vinom-maze/game"
)

// direction is a unit step on the grid.
type direction struct {
	name     string
	row, col int
}

// directions in the order the backtracker considers them.
var directions = []direction{
	{name: North, row: -1, col: 0},
	{name: East, row: 0, col: 1},
	{name: South, row: 1, col: 0},
	{name: West, row: 0, col: -1},
}

// move is a step between two neighbouring cells.
type move struct {
	from, to  game.CellPosition
	direction string
}

// RectMaze represents a rectangular maze carved with a randomized depth-first backtracker.
type RectMaze struct {
	width  int       // Width of the maze (number of columns)
	height int       // Height of the maze (number of rows)
	seed   int64     // Seed the maze was generated from
	grid   [][]*Cell // 2D grid of cells forming the maze
	entry  game.CellPosition
	exit   game.CellPosition
}

var _ game.Maze = (*RectMaze)(nil)

// NewRectangular initializes a new maze of the given dimensions and generates its layout.
// The entry is the middle row of the first column, the exit the middle row of the last one,
// both opened onto the outside.
func NewRectangular(cols, rows int, seed int64) (*RectMaze, error) {
	if min(cols, rows) < minDimension || max(cols, rows) > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}

	grid := make([][]*Cell, rows)
	for i := range grid {
		grid[i] = make([]*Cell, cols)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	m := &RectMaze{
		width:  cols,
		height: rows,
		seed:   seed,
		grid:   grid,
		entry:  game.CellPosition{Row: rows / 2, Col: 0},
		exit:   game.CellPosition{Row: rows / 2, Col: cols - 1},
	}
	m.generateMaze(NewLCG(seed))

	m.grid[m.entry.Row][m.entry.Col].WestWall = false
	m.grid[m.exit.Row][m.exit.Col].EastWall = false
	return m, nil
}

// generateMaze carves a spanning tree starting from the entry cell.
func (m *RectMaze) generateMaze(r Rand) {
	visited := make(map[game.CellPosition]struct{}, m.width*m.height)
	visited[m.entry] = struct{}{}
	stack := []game.CellPosition{m.entry}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []move
		for _, nbr := range m.neighbors(current) {
			if _, seen := visited[nbr.to]; !seen {
				candidates = append(candidates, nbr)
			}
		}

		if len(candidates) == 0 {
			pop(&stack) // backtrack
			continue
		}

		next := candidates[r.Intn(len(candidates))]
		m.openWall(next)
		visited[next.to] = struct{}{}
		stack = append(stack, next.to)
	}
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]game.CellPosition) game.CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// inBound checks if the given row and column are within the maze bounds.
func (m *RectMaze) inBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// neighbors finds all in-bound steps from a given cell position.
func (m *RectMaze) neighbors(pos game.CellPosition) []move {
	var result []move
	for _, d := range directions {
		nbr := game.CellPosition{Row: pos.Row + d.row, Col: pos.Col + d.col}
		if m.inBound(nbr.Row, nbr.Col) {
			result = append(result, move{from: pos, to: nbr, direction: d.name})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *RectMaze) openWall(mv move) {
	from := m.grid[mv.from.Row][mv.from.Col]
	to := m.grid[mv.to.Row][mv.to.Col]
	switch mv.direction {
	case North:
		from.NorthWall = false
		to.SouthWall = false
	case South:
		from.SouthWall = false
		to.NorthWall = false
	case East:
		from.EastWall = false
		to.WestWall = false
	case West:
		from.WestWall = false
		to.EastWall = false
	}
}

// directionOf names the step from one cell to an adjacent one, or "" if they are not adjacent.
func directionOf(from, to game.CellPosition) string {
	for _, d := range directions {
		if from.Row+d.row == to.Row && from.Col+d.col == to.Col {
			return d.name
		}
	}
	return ""
}

// Kind implements game.Maze.
func (m *RectMaze) Kind() string { return KindRectangular }

// Seed implements game.Maze.
func (m *RectMaze) Seed() int64 { return m.seed }

// Width returns the number of columns.
func (m *RectMaze) Width() int { return m.width }

// Height returns the number of rows.
func (m *RectMaze) Height() int { return m.height }

// Entry implements game.Maze.
func (m *RectMaze) Entry() game.CellPosition { return m.entry }

// Goal implements game.Maze.
func (m *RectMaze) Goal() game.CellPosition { return m.exit }

// IsGoal implements game.Maze.
func (m *RectMaze) IsGoal(pos game.CellPosition) bool { return pos == m.exit }

// CellAt returns a copy of the cell at pos.
func (m *RectMaze) CellAt(pos game.CellPosition) (Cell, bool) {
	if !m.inBound(pos.Row, pos.Col) {
		return Cell{}, false
	}
	return *m.grid[pos.Row][pos.Col], true
}

// IsValidMove checks if a move is valid (i.e., the cells are adjacent and the connecting wall is down).
func (m *RectMaze) IsValidMove(from, to game.CellPosition) bool {
	// Ensure both the starting and destination positions are valid.
	if !m.inBound(from.Row, from.Col) || !m.inBound(to.Row, to.Col) {
		return false
	}

	f, t := m.grid[from.Row][from.Col], m.grid[to.Row][to.Col]
	switch directionOf(from, to) {
	case North:
		return !f.NorthWall && !t.SouthWall
	case South:
		return !f.SouthWall && !t.NorthWall
	case East:
		return !f.EastWall && !t.WestWall
	case West:
		return !f.WestWall && !t.EastWall
	default:
		return false
	}
}

// Neighbors implements game.Maze.
func (m *RectMaze) Neighbors(pos game.CellPosition) []game.CellPosition {
	moves := m.neighbors(pos)
	result := make([]game.CellPosition, 0, len(moves))
	for _, mv := range moves {
		result = append(result, mv.to)
	}
	return result
}

// Cells implements game.Maze.
func (m *RectMaze) Cells() []game.CellPosition {
	cells := make([]game.CellPosition, 0, m.width*m.height)
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			cells = append(cells, game.CellPosition{Row: row, Col: col})
		}
	}
	return cells
}

// CellCenter returns the middle of a cell in cell units.
func (m *RectMaze) CellCenter(pos game.CellPosition) game.Point {
	return game.Point{X: float64(pos.Col) + 0.5, Y: float64(pos.Row) + 0.5}
}

// PointToCell resolves a point given in cell units, x to the right and y down.
func (m *RectMaze) PointToCell(x, y float64) game.CellPosition {
	col, row := int(math.Floor(x)), int(math.Floor(y))
	if !m.inBound(row, col) {
		return game.OutOfBounds
	}
	return game.CellPosition{Row: row, Col: col}
}

// Snapshot implements game.Maze.
func (m *RectMaze) Snapshot() game.Snapshot {
	cells := make([]game.CellSnapshot, 0, m.width*m.height)
	for _, pos := range m.Cells() {
		cells = append(cells, game.CellSnapshot{
			Pos:     pos,
			Walls:   m.grid[pos.Row][pos.Col].closedWalls(),
			IsEntry: pos == m.entry,
			IsExit:  pos == m.exit,
		})
	}

	return game.Snapshot{
		Kind:  KindRectangular,
		Seed:  m.seed,
		Rows:  m.height,
		Cols:  m.width,
		Cells: cells,
		Entry: m.entry,
		Goal:  m.exit,
	}
}

// String provides a textual representation of the maze.
func (m *RectMaze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		cellRow := " "
		if m.grid[row][0].WestWall {
			cellRow = "|"
		}
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]
			pos := game.CellPosition{Row: row, Col: col}

			switch pos {
			case m.entry:
				cellRow += " S "
			case m.exit:
				cellRow += " E "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.width; col++ {
			if m.grid[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
