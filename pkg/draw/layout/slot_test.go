package layout

import (
	"testing"

	"github.com/danehlert/courtline/pkg/draw"
)

func TestSlotFormula(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopPadding = 10
	pitch := cfg.CardPitch()

	rounds := draw.GroupRounds(fullBracket(16).Matches)
	pos := SlotEngine{}.Positions(rounds, cfg)

	tests := []struct {
		round, position int
		mult            float64
	}{
		{0, 1, 1}, {0, 5, 1},
		{1, 1, 2}, {1, 3, 2},
		{2, 2, 4},
		{3, 1, 8},
	}

	for _, tt := range tests {
		y, ok := pos.Get(tt.round, tt.position)
		if !ok {
			t.Fatalf("round %d position %d unresolved", tt.round, tt.position)
		}
		offset := cfg.TopPadding + (tt.mult-1)*pitch/2
		want := offset + float64(tt.position-1)*pitch*tt.mult
		if y != want {
			t.Errorf("round %d position %d: y = %v, want %v", tt.round, tt.position, y, want)
		}
	}
}

func TestSlotIndependentOfSiblingData(t *testing.T) {
	// The slot engine must place a match identically whether or not its
	// feeders exist: its whole point is single-pass, feeder-independent
	// layout.
	cfg := DefaultConfig()

	full := draw.GroupRounds(fullBracket(8).Matches)
	sparse := draw.GroupRounds([]draw.Match{
		{ID: "x", RoundNumber: 2, PositionInRound: 2},
	})

	fullPos := SlotEngine{}.Positions(full, cfg)
	// Round 2 in the sparse draw is its only round, so it grouped to index
	// 0. Re-group with a round-1 placeholder to align indexes.
	sparse = draw.GroupRounds([]draw.Match{
		{ID: "pad", RoundNumber: 1, PositionInRound: 1},
		{ID: "x", RoundNumber: 2, PositionInRound: 2},
	})
	sparsePos := SlotEngine{}.Positions(sparse, cfg)

	yFull, _ := fullPos.Get(1, 2)
	ySparse, ok := sparsePos.Get(1, 2)
	if !ok {
		t.Fatal("sparse slot position unresolved")
	}
	if yFull != ySparse {
		t.Errorf("slot position depends on sibling data: %v vs %v", yFull, ySparse)
	}
}

func TestSlotCentersOverFeederSpan(t *testing.T) {
	// In a full bracket the slot formula reproduces the centered shape:
	// each parent sits midway between the slots of its two feeders.
	cfg := DefaultConfig()
	rounds := draw.GroupRounds(fullBracket(32).Matches)
	pos := SlotEngine{}.Positions(rounds, cfg)

	for ri := 1; ri < len(rounds); ri++ {
		for _, m := range rounds[ri].Matches {
			p := m.PositionInRound
			left, right := draw.Feeders(p)
			yl, okl := pos.Get(ri-1, left)
			yr, okr := pos.Get(ri-1, right)
			y, ok := pos.Get(ri, p)
			if !okl || !okr || !ok {
				t.Fatalf("round %d position %d: unresolved slot", ri, p)
			}
			if want := (yl + yr) / 2; y != want {
				t.Errorf("round %d position %d: y = %v, want %v", ri, p, y, want)
			}
		}
	}
}

func TestSlotEveryMatchResolved(t *testing.T) {
	rounds := draw.GroupRounds(fullBracket(64).Matches)
	pos := SlotEngine{}.Positions(rounds, DefaultConfig())

	want := 0
	for _, r := range rounds {
		want += len(r.Matches)
	}
	if len(pos) != want {
		t.Errorf("position count = %d, want %d", len(pos), want)
	}
}
