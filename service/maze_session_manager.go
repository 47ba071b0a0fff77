package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// Errors returned by MazeSessionManager.
var (
	ErrSessionNotFound = dmn.ErrSessionNotFound
	ErrNilStore        = errors.New("session store is nil")
	ErrNilLogger       = errors.New("logger is nil")
)

// MazeSessionManager keeps maze sessions in a store and replays them on
// demand: a stored session holds only the maze config and the player's
// progress, the maze is regenerated from its seed for every request.
type MazeSessionManager struct {
	store       i.SessionStore
	mazeFactory func(maze.Config) (game.Maze, error)
	logger      i.Logger
	now         func() time.Time
}

var _ i.MazeSessionManager = (*MazeSessionManager)(nil)

// Config holds the dependencies of a MazeSessionManager.
type Config struct {
	Store       i.SessionStore
	MazeFactory func(maze.Config) (game.Maze, error) // defaults to maze.New
	Logger      i.Logger
	Clock       func() time.Time // defaults to time.Now
}

// NewMazeSessionManager creates a session manager.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c.Store == nil {
		return nil, ErrNilStore
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	m := &MazeSessionManager{
		store:       c.Store,
		mazeFactory: c.MazeFactory,
		logger:      c.Logger,
		now:         c.Clock,
	}
	if m.mazeFactory == nil {
		m.mazeFactory = maze.New
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m, nil
}

// NewSession generates a maze and stores a session with the player on its entry.
func (m *MazeSessionManager) NewSession(ctx context.Context, cfg maze.Config) (*dmn.Session, game.Maze, error) {
	mz, err := m.mazeFactory(cfg)
	if err != nil {
		m.logger.Warning(fmt.Sprintf("rejected maze config %+v: %s", cfg, err))
		return nil, nil, err
	}

	g, err := game.New(mz)
	if err != nil {
		return nil, nil, err
	}

	cfg.Seed = mz.Seed()
	session := dmn.NewSession(uuid.New(), cfg, g.State(), m.now().UTC())
	if err := m.store.Save(ctx, session); err != nil {
		m.logger.Error(fmt.Sprintf("saving new session: %s", err))
		return nil, nil, err
	}

	m.logger.Info(fmt.Sprintf("started %s maze session %s with seed %d", mz.Kind(), session.ID, mz.Seed()))
	return session, mz, nil
}

// Session loads a session and regenerates its maze.
func (m *MazeSessionManager) Session(ctx context.Context, id uuid.UUID) (*dmn.Session, game.Maze, error) {
	session, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, nil, m.loadError(id, err)
	}

	mz, err := m.mazeFactory(session.Config)
	if err != nil {
		m.logger.Error(fmt.Sprintf("regenerating maze for session %s: %s", id, err))
		return nil, nil, err
	}
	return session, mz, nil
}

// Move tries a step on the session's maze.
func (m *MazeSessionManager) Move(ctx context.Context, id uuid.UUID, to game.CellPosition) (bool, *dmn.Session, error) {
	return m.play(ctx, id, func(g *game.Game) bool { return g.Move(to) })
}

// Drag resolves a layout point and tries a step onto the cell under it.
func (m *MazeSessionManager) Drag(ctx context.Context, id uuid.UUID, x, y float64) (bool, *dmn.Session, error) {
	return m.play(ctx, id, func(g *game.Game) bool { return g.Drag(x, y) })
}

// play replays a session, applies action and saves the result if the action was accepted.
func (m *MazeSessionManager) play(ctx context.Context, id uuid.UUID, action func(*game.Game) bool) (bool, *dmn.Session, error) {
	unlock, err := m.store.Lock(ctx, id)
	if err != nil {
		m.logger.Error(fmt.Sprintf("locking session %s: %s", id, err))
		return false, nil, err
	}
	defer unlock()

	session, mz, err := m.Session(ctx, id)
	if err != nil {
		return false, nil, err
	}

	g, err := game.Restore(mz, session.Player, session.Trail, session.Won, session.Version)
	if err != nil {
		m.logger.Error(fmt.Sprintf("restoring session %s: %s", id, err))
		return false, nil, err
	}

	if !action(g) {
		return false, session, nil
	}

	session.Apply(g.State(), m.now().UTC())
	if err := m.store.Save(ctx, session); err != nil {
		m.logger.Error(fmt.Sprintf("saving session %s: %s", id, err))
		return false, nil, err
	}

	if session.Won {
		m.logger.Info(fmt.Sprintf("session %s reached the goal in %d moves", id, session.Version))
	}
	return true, session, nil
}

// Regenerate rebuilds the session's maze and puts the player back on its entry.
func (m *MazeSessionManager) Regenerate(ctx context.Context, id uuid.UUID, newSeed bool) (*dmn.Session, game.Maze, error) {
	unlock, err := m.store.Lock(ctx, id)
	if err != nil {
		m.logger.Error(fmt.Sprintf("locking session %s: %s", id, err))
		return nil, nil, err
	}
	defer unlock()

	session, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, nil, m.loadError(id, err)
	}

	cfg := session.Config
	if newSeed {
		cfg.Seed = 0
	}
	mz, err := m.mazeFactory(cfg)
	if err != nil {
		m.logger.Error(fmt.Sprintf("regenerating maze for session %s: %s", id, err))
		return nil, nil, err
	}

	g, err := game.New(mz)
	if err != nil {
		return nil, nil, err
	}
	state := g.State()
	state.Version = session.Version + 1

	cfg.Seed = mz.Seed()
	session.Config = cfg
	session.Apply(state, m.now().UTC())
	if err := m.store.Save(ctx, session); err != nil {
		m.logger.Error(fmt.Sprintf("saving session %s: %s", id, err))
		return nil, nil, err
	}

	m.logger.Info(fmt.Sprintf("regenerated session %s with seed %d", id, mz.Seed()))
	return session, mz, nil
}

// Delete removes a session.
func (m *MazeSessionManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return m.loadError(id, err)
	}
	m.logger.Info(fmt.Sprintf("deleted session %s", id))
	return nil
}

func (m *MazeSessionManager) loadError(id uuid.UUID, err error) error {
	if errors.Is(err, ErrSessionNotFound) {
		return err
	}
	m.logger.Error(fmt.Sprintf("loading session %s: %s", id, err))
	return err
}
