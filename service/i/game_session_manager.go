package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// MazeSessionManager creates maze sessions and applies player moves to them.
type MazeSessionManager interface {
	// NewSession generates a maze from cfg and starts a session on it.
	NewSession(ctx context.Context, cfg maze.Config) (*dmn.Session, game.Maze, error)

	// Session returns a stored session together with its regenerated maze.
	Session(ctx context.Context, id uuid.UUID) (*dmn.Session, game.Maze, error)

	// Move tries a single step. Rejected steps are reported, not returned as errors.
	Move(ctx context.Context, id uuid.UUID, to game.CellPosition) (bool, *dmn.Session, error)

	// Drag resolves a layout point to a cell and tries to step onto it.
	Drag(ctx context.Context, id uuid.UUID, x, y float64) (bool, *dmn.Session, error)

	// Regenerate replaces the maze and restarts the attempt. With newSeed false
	// the same maze is rebuilt.
	Regenerate(ctx context.Context, id uuid.UUID, newSeed bool) (*dmn.Session, game.Maze, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
