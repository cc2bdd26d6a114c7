package session

import (
	"context"
)

// Store persists session documents keyed by their opaque id.
//
// Load never fails on an unknown, empty or expired id: it hands back a new
// empty session instead, so every request has a session to work with. There
// is no per-session locking; two concurrent saves of the same session are
// last-write-wins.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Destroy(ctx context.Context, id string) error
}
