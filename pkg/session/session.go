// Package session provides canvas snapshot storage keyed by session ID.
//
// A session is one shared whiteboard: an append-only element list plus
// timestamps. The engine itself is stateless; callers load a snapshot,
// run a placement call, append the returned elements, and store the result
// back. This package defines the Store interface with implementations for
// different backends:
//   - memory: in-memory storage for development/testing
//   - file: JSON files in a config directory for CLI use
//   - redis: Redis-backed storage for multi-instance serving
//   - mongo: MongoDB documents for durable storage
//
// Within one session, calls must be ordered by the caller; stores do not
// merge concurrent writes to the same ID.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Snapshot is the stored state of one whiteboard session.
type Snapshot struct {
	ID        string           `json:"id" bson:"_id"`
	Elements  []canvas.Element `json:"elements" bson:"elements"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// NewSnapshot creates an empty snapshot for the given session ID.
func NewSnapshot(id string) *Snapshot {
	now := time.Now().UTC()
	return &Snapshot{ID: id, CreatedAt: now, UpdatedAt: now}
}

// Append returns a copy of the snapshot with the elements added and the
// update timestamp refreshed. The receiver is not modified; the canvas is
// append-only and existing elements never move.
func (s *Snapshot) Append(elements ...canvas.Element) *Snapshot {
	out := &Snapshot{
		ID:        s.ID,
		Elements:  make([]canvas.Element, 0, len(s.Elements)+len(elements)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	out.Elements = append(out.Elements, s.Elements...)
	out.Elements = append(out.Elements, elements...)
	return out
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Get retrieves a snapshot by session ID.
	// Returns ErrNotFound if the session doesn't exist.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Set stores a snapshot, replacing any existing one with the same ID.
	Set(ctx context.Context, snap *Snapshot) error

	// Delete removes a session entirely. Deleting a missing session is
	// not an error; clearing a canvas is a full reset.
	Delete(ctx context.Context, id string) error

	// List returns all stored session IDs, sorted.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
