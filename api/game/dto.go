// Package gameapi provides the request and response bodies of the maze API.
package gameapi

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
)

// CreateMazeRequest represents a request to start a maze session.
type CreateMazeRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=rectangular radial gap-barrier"`
	Rows      int    `json:"rows" binding:"gte=0"`
	Cols      int    `json:"cols" binding:"gte=0"`
	Rings     int    `json:"rings" binding:"gte=0"`
	Seed      int64  `json:"seed"`
	GapPolicy string `json:"gap_policy"`
}

func (r *CreateMazeRequest) config() maze.Config {
	return maze.Config{
		Kind:      r.Kind,
		Rows:      r.Rows,
		Cols:      r.Cols,
		Rings:     r.Rings,
		Seed:      r.Seed,
		GapPolicy: maze.GapPolicy(r.GapPolicy),
	}
}

// MoveRequest asks for a step onto a cell, or onto the cell under a layout point.
// Exactly one of To and Point must be set.
type MoveRequest struct {
	To    *game.CellPosition `json:"to"`
	Point *game.Point        `json:"point"`
}

// RegenerateRequest asks for the session's maze to be rebuilt.
type RegenerateRequest struct {
	NewSeed bool `json:"new_seed"`
}

// SessionResponse describes a session and its maze.
type SessionResponse struct {
	SessionID string        `json:"session_id"`
	Token     string        `json:"token,omitempty"`
	Config    maze.Config   `json:"config"`
	Maze      game.Snapshot `json:"maze"`
	State     game.State    `json:"state"`
}

// MoveResponse reports whether a step was taken and the resulting state.
type MoveResponse struct {
	Accepted bool       `json:"accepted"`
	State    game.State `json:"state"`
}
