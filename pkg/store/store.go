// Package store provides persistence for draws.
//
// Two backends are available: an in-memory store for tests and ephemeral
// serving, and a MongoDB store for durable deployments. Both implement the
// Store interface, so the server and CLI are backend-agnostic.
package store

import (
	"context"
	"time"

	"github.com/danehlert/courtline/pkg/draw"
)

// Store is the interface implemented by all draw storage backends.
type Store interface {
	// Put inserts or replaces a draw. An empty DrawID is assigned a
	// generated one; the stored ID is returned either way.
	Put(ctx context.Context, d *draw.Draw) (string, error)

	// Get retrieves a draw by ID. Returns a DRAW_NOT_FOUND error when no
	// draw with that ID exists.
	Get(ctx context.Context, id string) (*draw.Draw, error)

	// List returns summaries of all stored draws, most recently updated
	// first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a draw. Deleting a missing draw is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// Summary is the listing view of a stored draw.
type Summary struct {
	DrawID     string    `json:"draw_id" bson:"_id"`
	EventType  string    `json:"event_type,omitempty" bson:"event_type,omitempty"`
	DrawType   string    `json:"draw_type,omitempty" bson:"draw_type,omitempty"`
	DrawSize   int       `json:"draw_size,omitempty" bson:"draw_size,omitempty"`
	MatchCount int       `json:"match_count" bson:"match_count"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
