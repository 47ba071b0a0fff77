package game

// CellPosition identifies a cell. Rectangular mazes use Row and Col directly;
// radial mazes store the ring (0 is innermost) in Row and the cell index in Col.
type CellPosition struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

var (
	// Center is the goal of radial mazes, inside the innermost ring.
	Center = CellPosition{Row: -1, Col: -1}
	// OutOfBounds is returned for points that fall outside a maze.
	OutOfBounds = CellPosition{Row: -2, Col: -2}
)

// RingCell builds the position of a cell in a radial maze.
func RingCell(ring, cell int) CellPosition {
	return CellPosition{Row: ring, Col: cell}
}

// Ring returns the ring of a radial position.
func (p CellPosition) Ring() int { return p.Row }

// Cell returns the cell index of a radial position.
func (p CellPosition) Cell() int { return p.Col }

// IsCenter reports whether p is the radial center sentinel.
func (p CellPosition) IsCenter() bool { return p.Row == -1 }

// Point is a location in a maze's layout space. Rectangular mazes measure it in
// cell units from the top-left corner, radial mazes from the center with the
// outer wall at radius 1.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Maze defines the methods that a maze must implement.
type Maze interface {
	// Kind names the generator that built the maze.
	Kind() string
	// Seed returns the seed that reproduces the maze.
	Seed() int64
	// Entry is where the player starts.
	Entry() CellPosition
	// Goal is the cell (or sentinel) the player has to reach.
	Goal() CellPosition
	IsGoal(pos CellPosition) bool
	// IsValidMove decides whether a single step from one cell to another is legal.
	// It never fails: unknown cells are simply not reachable.
	IsValidMove(from, to CellPosition) bool
	// Neighbors lists the candidate steps from pos, legal or not.
	Neighbors(pos CellPosition) []CellPosition
	// Cells returns every cell of the maze, goal sentinels excluded.
	Cells() []CellPosition
	CellCenter(pos CellPosition) Point
	// PointToCell resolves a layout point to a cell, Center or OutOfBounds.
	PointToCell(x, y float64) CellPosition
	Snapshot() Snapshot
	String() string
}

// Snapshot is a plain description of a generated maze for renderers and transports.
type Snapshot struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Seed     int64          `json:"seed" yaml:"seed"`
	Rows     int            `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols     int            `json:"cols,omitempty" yaml:"cols,omitempty"`
	Rings    int            `json:"rings,omitempty" yaml:"rings,omitempty"`
	Cells    []CellSnapshot `json:"cells,omitempty" yaml:"cells,omitempty"`
	Gaps     []GapSnapshot  `json:"gaps,omitempty" yaml:"gaps,omitempty"`
	Barriers []float64      `json:"barriers,omitempty" yaml:"barriers,omitempty"`
	Entry    CellPosition   `json:"entry" yaml:"entry"`
	Goal     CellPosition   `json:"goal" yaml:"goal"`
}

// CellSnapshot lists the closed walls of one cell.
type CellSnapshot struct {
	Pos     CellPosition `json:"pos" yaml:"pos"`
	Walls   []string     `json:"walls" yaml:"walls,flow"`
	IsEntry bool         `json:"is_entry,omitempty" yaml:"is_entry,omitempty"`
	IsExit  bool         `json:"is_exit,omitempty" yaml:"is_exit,omitempty"`
}

// GapSnapshot describes an open arc of a ring boundary.
type GapSnapshot struct {
	Angle  float64 `json:"angle" yaml:"angle"`
	Width  float64 `json:"width" yaml:"width"`
	Radius float64 `json:"radius" yaml:"radius"`
}
