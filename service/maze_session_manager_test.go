package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sessionstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type failingStore struct {
	*sessionstore.MemoryStore
}

func (failingStore) Save(context.Context, *dmn.Session) error {
	return errors.New("disk full")
}

func newManager(t *testing.T) (*MazeSessionManager, *recordingLogger) {
	t.Helper()
	log := &recordingLogger{}
	m, err := NewMazeSessionManager(&Config{
		Store:  sessionstore.NewMemoryStore(),
		Logger: log,
		Clock:  func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return m, log
}

var rectConfig = maze.Config{Kind: maze.KindRectangular, Rows: 8, Cols: 8, Seed: 8008}

func TestNewMazeSessionManager(t *testing.T) {
	_, err := NewMazeSessionManager(&Config{Logger: &recordingLogger{}})
	assert.ErrorIs(t, err, ErrNilStore)

	_, err = NewMazeSessionManager(&Config{Store: sessionstore.NewMemoryStore()})
	assert.ErrorIs(t, err, ErrNilLogger)
}

func TestNewSession(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the resolved seed", func(t *testing.T) {
		m, log := newManager(t)
		session, mz, err := m.NewSession(ctx, maze.Config{Kind: maze.KindRadial, Rings: 4})
		require.NoError(t, err)

		assert.NotZero(t, session.Config.Seed)
		assert.Equal(t, mz.Seed(), session.Config.Seed)
		assert.Equal(t, mz.Entry(), session.Player)
		assert.Equal(t, []game.CellPosition{mz.Entry()}, session.Trail)
		assert.Len(t, log.infos, 1)

		_, again, err := m.Session(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, mz.Snapshot(), again.Snapshot())
	})

	t.Run("invalid config", func(t *testing.T) {
		m, log := newManager(t)
		_, _, err := m.NewSession(ctx, maze.Config{Kind: maze.KindRectangular, Rows: 1, Cols: 1})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
		assert.Len(t, log.warns, 1)
	})

	t.Run("store failure", func(t *testing.T) {
		log := &recordingLogger{}
		m, err := NewMazeSessionManager(&Config{Store: failingStore{sessionstore.NewMemoryStore()}, Logger: log})
		require.NoError(t, err)

		_, _, err = m.NewSession(ctx, rectConfig)
		assert.Error(t, err)
		assert.Len(t, log.errors, 1)
	})
}

func TestSessionMoves(t *testing.T) {
	ctx := context.Background()
	m, log := newManager(t)

	session, mz, err := m.NewSession(ctx, rectConfig)
	require.NoError(t, err)
	path := maze.Solve(mz)
	require.NotNil(t, path)

	t.Run("invalid moves are reported, not failed", func(t *testing.T) {
		ok, s, err := m.Move(ctx, session.ID, game.CellPosition{Row: 0, Col: 7})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(0), s.Version)
	})

	t.Run("walking the solution wins and persists", func(t *testing.T) {
		for _, pos := range path[1:] {
			ok, _, err := m.Move(ctx, session.ID, pos)
			require.NoError(t, err)
			require.True(t, ok, "%v", pos)
		}

		stored, _, err := m.Session(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, stored.Won)
		assert.Equal(t, path, stored.Trail)
		assert.Equal(t, mz.Goal(), stored.Player)
		assert.Contains(t, log.infos[len(log.infos)-1], "reached the goal")
	})

	t.Run("unknown session", func(t *testing.T) {
		_, _, err := m.Move(ctx, uuid.New(), path[1])
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, _, err = m.Session(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSessionDrag(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	session, mz, err := m.NewSession(ctx, maze.Config{Kind: maze.KindGapBarrier, Rings: 4, Seed: 31})
	require.NoError(t, err)
	path := maze.Solve(mz)
	require.NotNil(t, path)

	for _, pos := range path[1 : len(path)-1] {
		p := mz.CellCenter(pos)
		ok, _, err := m.Drag(ctx, session.ID, p.X, p.Y)
		require.NoError(t, err)
		require.True(t, ok, "%v", pos)
	}
	ok, s, err := m.Drag(ctx, session.ID, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.Won)

	ok, _, err = m.Drag(ctx, session.ID, 5, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegenerate(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	session, mz, err := m.NewSession(ctx, rectConfig)
	require.NoError(t, err)
	path := maze.Solve(mz)
	_, _, err = m.Move(ctx, session.ID, path[1])
	require.NoError(t, err)

	t.Run("same seed rebuilds the same maze", func(t *testing.T) {
		s, again, err := m.Regenerate(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, mz.Snapshot(), again.Snapshot())
		assert.Equal(t, again.Entry(), s.Player)
		assert.Len(t, s.Trail, 1)
		assert.Equal(t, int64(2), s.Version)
		assert.False(t, s.Won)
	})

	t.Run("new seed is stored", func(t *testing.T) {
		s, fresh, err := m.Regenerate(ctx, session.ID, true)
		require.NoError(t, err)
		assert.Equal(t, fresh.Seed(), s.Config.Seed)

		_, loaded, err := m.Session(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, fresh.Snapshot(), loaded.Snapshot())
	})

	t.Run("unknown session", func(t *testing.T) {
		_, _, err := m.Regenerate(ctx, uuid.New(), true)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	session, _, err := m.NewSession(ctx, rectConfig)
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, session.ID))
	assert.ErrorIs(t, m.Delete(ctx, session.ID), ErrSessionNotFound)
	_, _, err = m.Session(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConcurrentMovesOnOneSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	session, mz, err := m.NewSession(ctx, rectConfig)
	require.NoError(t, err)
	path := maze.Solve(mz)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for n := 0; n < 10; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _, err := m.Move(ctx, session.ID, path[1])
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	stored, _, err := m.Session(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
}
