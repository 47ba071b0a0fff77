// Package domain holds the records shared between the service and storage layers.
package domain

import (
	"errors"
	"slices"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by stores for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session is the stored form of one maze being played. The maze itself is not
// stored: Config carries the seed that regenerates it.
type Session struct {
	ID        uuid.UUID           `json:"id"`
	Config    maze.Config         `json:"config"`
	Player    game.CellPosition   `json:"player"`
	Trail     []game.CellPosition `json:"trail"`
	Won       bool                `json:"won"`
	Version   int64               `json:"version"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewSession records a freshly started game. cfg must carry the maze's resolved seed.
func NewSession(id uuid.UUID, cfg maze.Config, state game.State, now time.Time) *Session {
	s := &Session{
		ID:        id,
		Config:    cfg,
		CreatedAt: now,
	}
	s.Apply(state, now)
	return s
}

// Apply copies a game state into the record.
func (s *Session) Apply(state game.State, now time.Time) {
	s.Player = state.Player
	s.Trail = slices.Clone(state.Trail)
	s.Won = state.Won
	s.Version = state.Version
	s.UpdatedAt = now
}

// State returns the game state held by the record.
func (s *Session) State() game.State {
	return game.State{
		Player:  s.Player,
		Trail:   slices.Clone(s.Trail),
		Won:     s.Won,
		Version: s.Version,
	}
}

// Clone returns a deep copy of the record.
func (s *Session) Clone() *Session {
	c := *s
	c.Trail = slices.Clone(s.Trail)
	return &c
}
