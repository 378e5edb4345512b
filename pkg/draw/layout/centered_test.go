package layout

import (
	"testing"

	"github.com/danehlert/courtline/pkg/draw"
)

// fullBracket builds a well-formed single-elimination draw for 2^n
// participants: round 1 has 2^(n-1) matches, halving down to a final.
func fullBracket(participants int) *draw.Draw {
	d := &draw.Draw{DrawType: draw.TypeElimination, DrawSize: participants}
	round := 1
	for count := participants / 2; count >= 1; count /= 2 {
		for p := 1; p <= count; p++ {
			d.Matches = append(d.Matches, draw.Match{
				ID:              matchID(round, p),
				RoundNumber:     round,
				PositionInRound: p,
			})
		}
		round++
	}
	return d
}

func matchID(round, pos int) string {
	return string(rune('a'+round)) + "-" + string(rune('0'+pos))
}

func TestCenteredRoundZeroEvenSpacing(t *testing.T) {
	cfg := DefaultConfig()
	rounds := draw.GroupRounds(fullBracket(8).Matches)
	pos := CenteredEngine{}.Positions(rounds, cfg)

	pitch := cfg.CardPitch()
	for i := 0; i < 4; i++ {
		y, ok := pos.Get(0, i+1)
		if !ok {
			t.Fatalf("round 0 position %d unresolved", i+1)
		}
		if want := float64(i) * pitch; y != want {
			t.Errorf("round 0 position %d: y = %v, want %v", i+1, y, want)
		}
	}
}

func TestCenteredMidpointLaw(t *testing.T) {
	// For any resolved parent, position(r,p) is the midpoint of its two
	// feeders whenever both exist in the map.
	rounds := draw.GroupRounds(fullBracket(16).Matches)
	pos := CenteredEngine{}.Positions(rounds, DefaultConfig())

	for ri := 1; ri < len(rounds); ri++ {
		for _, m := range rounds[ri].Matches {
			p := m.PositionInRound
			left, right := draw.Feeders(p)
			yl, okl := pos.Get(ri-1, left)
			yr, okr := pos.Get(ri-1, right)
			if !okl || !okr {
				continue
			}
			y, ok := pos.Get(ri, p)
			if !ok {
				t.Fatalf("round %d position %d unresolved", ri, p)
			}
			if want := (yl + yr) / 2; y != want {
				t.Errorf("round %d position %d: y = %v, want midpoint %v", ri, p, y, want)
			}
		}
	}
}

func TestCenteredThreeRoundScenario(t *testing.T) {
	// 4 matches in round 1, 2 in round 2, 1 in round 3. Round-2 position 1
	// centers between round-1 positions 1 and 2; round-3 position 1 centers
	// between round-2 positions 1 and 2.
	cfg := DefaultConfig()
	rounds := draw.GroupRounds(fullBracket(8).Matches)
	pos := CenteredEngine{}.Positions(rounds, cfg)

	y11, _ := pos.Get(0, 1)
	y12, _ := pos.Get(0, 2)
	y21, ok := pos.Get(1, 1)
	if !ok || y21 != (y11+y12)/2 {
		t.Errorf("round-2 position 1 = %v, want %v", y21, (y11+y12)/2)
	}

	y22, _ := pos.Get(1, 2)
	y31, ok := pos.Get(2, 1)
	if !ok || y31 != (y21+y22)/2 {
		t.Errorf("round-3 position 1 = %v, want %v", y31, (y21+y22)/2)
	}
}

func TestCenteredMissingFeederFallback(t *testing.T) {
	// Round-1 position 2 is absent (bye). Round-2 position 1, fed by
	// round-1 positions 1 and 2, must fall back to even spacing instead of
	// failing.
	cfg := DefaultConfig()
	d := &draw.Draw{Matches: []draw.Match{
		{ID: "r1p1", RoundNumber: 1, PositionInRound: 1},
		{ID: "r2p1", RoundNumber: 2, PositionInRound: 1},
		{ID: "r2p2", RoundNumber: 2, PositionInRound: 2},
	}}
	pos := CenteredEngine{}.Positions(draw.GroupRounds(d.Matches), cfg)

	y, ok := pos.Get(1, 1)
	if !ok {
		t.Fatal("round-2 position 1 unresolved despite missing feeder")
	}
	if want := 0.0; y != want { // (p-1) * pitch with p = 1
		t.Errorf("fallback y = %v, want %v", y, want)
	}

	y2, ok := pos.Get(1, 2)
	if !ok {
		t.Fatal("round-2 position 2 unresolved")
	}
	if want := cfg.CardPitch(); y2 != want {
		t.Errorf("fallback y for position 2 = %v, want %v", y2, want)
	}
}

func TestCenteredEveryMatchResolved(t *testing.T) {
	// Irregular draw: non-doubling round sizes and position gaps. Every
	// match still gets exactly one coordinate.
	d := &draw.Draw{Matches: []draw.Match{
		{ID: "a", RoundNumber: 1, PositionInRound: 1},
		{ID: "b", RoundNumber: 1, PositionInRound: 4},
		{ID: "c", RoundNumber: 2, PositionInRound: 1},
		{ID: "d", RoundNumber: 2, PositionInRound: 2},
		{ID: "e", RoundNumber: 3, PositionInRound: 1},
		{ID: "f", RoundNumber: 5, PositionInRound: 7},
	}}
	rounds := draw.GroupRounds(d.Matches)
	pos := CenteredEngine{}.Positions(rounds, DefaultConfig())

	total := 0
	for ri, r := range rounds {
		for _, m := range r.Matches {
			if _, ok := pos.Get(ri, m.PositionInRound); !ok {
				t.Errorf("match %s unresolved", m.ID)
			}
			total++
		}
	}
	if len(pos) != total {
		t.Errorf("position count = %d, want %d", len(pos), total)
	}
}
