package layout

import (
	"github.com/danehlert/courtline/pkg/draw"
)

// CenteredEngine computes the tree-accurate bracket layout: every match in
// a later round sits on the vertical midpoint of its two feeders, producing
// the classic symmetric bracket shape.
type CenteredEngine struct{}

// Name returns the engine identifier.
func (CenteredEngine) Name() string { return EngineCentered }

// Positions assigns a coordinate to every match.
//
// Round 0 is evenly spaced: the match at 0-based index i within the round
// gets i*(cardExtent+gap), which guarantees even spacing for the round with
// the most entries. For every later round the match at position p is
// centered between its feeders (2p-1, 2p) from the previous round. When
// either feeder is absent (a bye, an unfilled slot, or inconsistent data)
// the match falls back to the evenly-spaced coordinate (p-1)*(extent+gap).
// The fallback is the designed degradation path, not an error: irregular
// draws still resolve every match, they just lose visual centering.
func (CenteredEngine) Positions(rounds []draw.Round, cfg Config) Positions {
	pos := make(Positions)
	pitch := cfg.CardPitch()

	for ri, round := range rounds {
		if ri == 0 {
			for i, m := range round.Matches {
				pos.set(0, m.PositionInRound, float64(i)*pitch)
			}
			continue
		}

		for _, m := range round.Matches {
			p := m.PositionInRound
			left, right := draw.Feeders(p)

			yl, okl := pos.Get(ri-1, left)
			yr, okr := pos.Get(ri-1, right)
			if okl && okr {
				pos.set(ri, p, (yl+yr)/2)
				continue
			}
			pos.set(ri, p, float64(p-1)*pitch)
		}
	}
	return pos
}

// Ensure CenteredEngine implements Engine.
var _ Engine = CenteredEngine{}
