package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// SessionStore persists maze sessions.
type SessionStore interface {
	// Save inserts or replaces a session.
	Save(ctx context.Context, s *dmn.Session) error

	// Load returns a session, or dmn.ErrSessionNotFound.
	Load(ctx context.Context, id uuid.UUID) (*dmn.Session, error)

	// Delete removes a session, or returns dmn.ErrSessionNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock serializes updates to one session. The returned func releases it.
	Lock(ctx context.Context, id uuid.UUID) (func(), error)
}
