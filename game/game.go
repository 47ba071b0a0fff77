package game

import (
	"errors"
	"sync"
)

// Game-related errors.
var (
	ErrNilMaze               = errors.New("maze is nil")
	ErrInvalidPlayerPosition = errors.New("player is out of the maze")
	ErrEmptyTrail            = errors.New("trail is empty")
)

// State is a consistent copy of a game at one instant.
type State struct {
	Player  CellPosition   `json:"player"`
	Trail   []CellPosition `json:"trail"`
	Won     bool           `json:"won"`
	Version int64          `json:"version"`
}

// Game holds one maze instance together with the player and the trail walked so far.
// The maze, player and trail are only ever replaced together.
type Game struct {
	maze         Maze         // The maze being played.
	player       CellPosition // Current player cell.
	trail        *Trail       // Cells visited during this attempt.
	won          bool         // Set once the goal has been reached.
	version      int64        // Incremented on every accepted change.
	sync.RWMutex              // Read-Write lock for synchronizing access.
}

// New starts a game on the given maze with the player on the entry cell.
func New(m Maze) (*Game, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	return &Game{
		maze:   m,
		player: m.Entry(),
		trail:  NewTrail(m.Entry()),
	}, nil
}

// Restore rebuilds a game from a saved player position and trail.
func Restore(m Maze, player CellPosition, trail []CellPosition, won bool, version int64) (*Game, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if len(trail) == 0 {
		return nil, ErrEmptyTrail
	}
	if !m.IsGoal(player) && !contains(m.Cells(), player) {
		return nil, ErrInvalidPlayerPosition
	}

	t := NewTrail(trail[0])
	for _, pos := range trail[1:] {
		t.Visit(pos)
	}

	return &Game{
		maze:    m,
		player:  player,
		trail:   t,
		won:     won,
		version: version,
	}, nil
}

// Maze returns the maze currently in play.
func (g *Game) Maze() Maze {
	g.RLock()
	defer g.RUnlock()
	return g.maze
}

// Move tries to step the player onto to. It reports whether the step was accepted.
// Rejected steps leave the game untouched.
func (g *Game) Move(to CellPosition) bool {
	g.Lock()
	defer g.Unlock()

	if g.won || to == g.player {
		return false
	}

	if !g.maze.IsValidMove(g.player, to) {
		return false
	}

	g.trail.Visit(to)
	g.player = to
	g.version++
	if g.maze.IsGoal(to) {
		g.won = true
	}

	return true
}

// Drag resolves a layout point to a cell and moves there.
func (g *Game) Drag(x, y float64) bool {
	target := g.Maze().PointToCell(x, y)
	if target == OutOfBounds {
		return false
	}
	return g.Move(target)
}

// Reset swaps in a freshly generated maze and restarts the attempt on it.
func (g *Game) Reset(m Maze) error {
	if m == nil {
		return ErrNilMaze
	}

	g.Lock()
	defer g.Unlock()

	g.maze = m
	g.player = m.Entry()
	g.trail = NewTrail(m.Entry())
	g.won = false
	g.version++
	return nil
}

// State returns a snapshot of the player, trail and progress.
func (g *Game) State() State {
	g.RLock()
	defer g.RUnlock()

	return State{
		Player:  g.player,
		Trail:   g.trail.Cells(),
		Won:     g.won,
		Version: g.version,
	}
}

func contains(cells []CellPosition, pos CellPosition) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}
