package layout

import (
	"github.com/danehlert/courtline/pkg/draw"
)

// SlotEngine computes positions from round index and position alone, with
// no dependency on previously resolved rounds. Each round's slots double in
// pitch, reproducing a geometrically regular tree in a single pass at O(1)
// per match. Chosen for large draws, where the centered engine's midpoint
// averaging would compound fallback artifacts across many rounds.
//
// The trade-off is explicit: the slot layout does not adapt to
// actually-missing feeders the way midpoint averaging does.
type SlotEngine struct{}

// Name returns the engine identifier.
func (SlotEngine) Name() string { return EngineSlot }

// Positions assigns each match at (roundIndex r, position p):
//
//	slotMultiplier = max(1, 2^r)
//	yOffset        = topPadding + (slotMultiplier-1)*slotHeight/2
//	y              = yOffset + (p-1)*slotHeight*slotMultiplier
//
// where slotHeight is the card pitch (extent plus gap).
func (SlotEngine) Positions(rounds []draw.Round, cfg Config) Positions {
	pos := make(Positions)
	slotHeight := cfg.CardPitch()

	for ri, round := range rounds {
		mult := 1
		if ri > 0 {
			mult = 1 << uint(ri)
		}
		yOffset := cfg.TopPadding + float64(mult-1)*slotHeight/2

		for _, m := range round.Matches {
			p := m.PositionInRound
			pos.set(ri, p, yOffset+float64(p-1)*slotHeight*float64(mult))
		}
	}
	return pos
}

// Ensure SlotEngine implements Engine.
var _ Engine = SlotEngine{}
