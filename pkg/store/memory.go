package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/errors"
)

// MemoryStore keeps draws in process memory. Draws are stored as JSON so
// callers never share mutable state with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	draws   map[string][]byte
	updated map[string]time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		draws:   make(map[string][]byte),
		updated: make(map[string]time.Time),
	}
}

// Put inserts or replaces a draw.
func (s *MemoryStore) Put(_ context.Context, d *draw.Draw) (string, error) {
	if d == nil {
		return "", errors.New(errors.ErrCodeInvalidDraw, "nil draw")
	}
	if d.DrawID == "" {
		d.DrawID = uuid.NewString()
	}
	data, err := draw.Marshal(d)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStore, err, "failed to encode draw %s", d.DrawID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draws[d.DrawID] = data
	s.updated[d.DrawID] = time.Now().UTC()
	return d.DrawID, nil
}

// Get retrieves a draw by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*draw.Draw, error) {
	s.mu.RLock()
	data, ok := s.draws[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeDrawNotFound, "draw not found: %s", id)
	}
	d, err := draw.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode draw %s", id)
	}
	return d, nil
}

// List returns summaries of all stored draws, most recently updated first.
func (s *MemoryStore) List(_ context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.draws))
	for id, data := range s.draws {
		d, err := draw.Unmarshal(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode draw %s", id)
		}
		summaries = append(summaries, Summary{
			DrawID:     id,
			EventType:  d.EventType,
			DrawType:   d.DrawType,
			DrawSize:   d.Size(),
			MatchCount: len(d.Matches),
			UpdatedAt:  s.updated[id],
		})
	}
	slices.SortFunc(summaries, func(a, b Summary) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.DrawID, b.DrawID)
	})
	return summaries, nil
}

// Delete removes a draw. Missing IDs are ignored.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.draws, id)
	delete(s.updated, id)
	return nil
}

// Close is a no-op for the memory backend.
func (s *MemoryStore) Close(context.Context) error { return nil }
