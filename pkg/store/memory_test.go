package store

import (
	"context"
	"testing"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/errors"
)

func testDraw(id string) *draw.Draw {
	return &draw.Draw{
		DrawID:   id,
		DrawType: draw.TypeElimination,
		Matches: []draw.Match{
			{ID: "m1", RoundNumber: 1, PositionInRound: 1},
			{ID: "m2", RoundNumber: 1, PositionInRound: 2},
		},
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Put(ctx, testDraw("draw-1"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if id != "draw-1" {
		t.Errorf("id = %q, want draw-1", id)
	}

	got, err := s.Get(ctx, "draw-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Matches) != 2 {
		t.Errorf("match count = %d, want 2", len(got.Matches))
	}
}

func TestMemoryStoreGeneratesID(t *testing.T) {
	s := NewMemoryStore()
	id, err := s.Put(context.Background(), testDraw(""))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated draw ID")
	}
	if _, err := s.Get(context.Background(), id); err != nil {
		t.Errorf("generated ID not retrievable: %v", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, errors.ErrCodeDrawNotFound) {
		t.Errorf("expected DRAW_NOT_FOUND, got %v", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	d := testDraw("draw-1")
	if _, err := s.Put(ctx, d); err != nil {
		t.Fatal(err)
	}
	d.Matches[0].Status = draw.StatusCompleted

	got, err := s.Get(ctx, "draw-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Matches[0].Status == draw.StatusCompleted {
		t.Error("mutating the caller's draw leaked into the store")
	}
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := s.Put(ctx, testDraw(id)); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}
	for _, sum := range summaries {
		if sum.MatchCount != 2 {
			t.Errorf("summary %s match count = %d, want 2", sum.DrawID, sum.MatchCount)
		}
		if sum.UpdatedAt.IsZero() {
			t.Errorf("summary %s has zero timestamp", sum.DrawID)
		}
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Put(ctx, testDraw("draw-1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "draw-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "draw-1"); !errors.Is(err, errors.ErrCodeDrawNotFound) {
		t.Errorf("expected DRAW_NOT_FOUND after delete, got %v", err)
	}
	if err := s.Delete(ctx, "draw-1"); err != nil {
		t.Errorf("double delete should be a no-op, got %v", err)
	}
}
