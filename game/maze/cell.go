package maze

// Cell represents a single cell in a rectangular maze grid.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// closedWalls lists the walls still standing, in North, East, South, West order.
func (c *Cell) closedWalls() []string {
	walls := make([]string, 0, 4)
	if c.NorthWall {
		walls = append(walls, North)
	}
	if c.EastWall {
		walls = append(walls, East)
	}
	if c.SouthWall {
		walls = append(walls, South)
	}
	if c.WestWall {
		walls = append(walls, West)
	}
	return walls
}

// RingCell represents a single cell of a radial maze.
//
// A ring holds fewer cells than the ring outside it, so an inner cell can sit
// under several outer cells. The radial wall is kept on the outer cell: InWall
// is the wall between a cell and its parent one ring further in, i.e. the
// parent's outward (south) wall toward this cell.
type RingCell struct {
	EastWall bool // EastWall is the wall toward the clockwise neighbour.
	InWall   bool // InWall is the wall toward the parent cell in the next ring in.
	IsEntry  bool
	IsExit   bool
}

func (c *RingCell) closedWalls(ring int) []string {
	walls := make([]string, 0, 2)
	if c.EastWall {
		walls = append(walls, East)
	}
	if c.InWall && ring > 0 {
		walls = append(walls, Inward)
	}
	return walls
}
