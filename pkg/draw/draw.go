// Package draw models tournament draws: flat match lists tagged with round
// and position, from which the layout engines reconstruct the implied
// single-elimination tree.
//
// The package is the input boundary of the toolkit. It owns the Draw and
// Match types, the round grouping that orders a flat match list into tiers,
// and the feeder arithmetic that links a bracket position to the two
// previous-round positions feeding it.
//
// Everything in this package is a pure function of its input; no structure
// is cached or mutated after construction.
package draw

import (
	"cmp"
	"slices"
)

// Draw types.
const (
	TypeElimination = "elimination"
	TypeRoundRobin  = "round-robin"
)

// Draw is one bracket or round-robin grouping of matches for an event,
// as delivered by the data-fetching collaborator.
type Draw struct {
	DrawID    string  `json:"draw_id" bson:"draw_id"`
	EventType string  `json:"event_type,omitempty" bson:"event_type,omitempty"`
	DrawSize  int     `json:"draw_size,omitempty" bson:"draw_size,omitempty"`
	DrawType  string  `json:"draw_type,omitempty" bson:"draw_type,omitempty"`
	Matches   []Match `json:"matches" bson:"matches"`

	// RoundNames maps round numbers to display labels ("Quarterfinals").
	// Labels are passed through untouched; absent entries are fine.
	RoundNames map[int]string `json:"round_names,omitempty" bson:"round_names,omitempty"`
}

// IsRoundRobin returns true if the draw is a round-robin grouping rather
// than an elimination bracket.
func (d *Draw) IsRoundRobin() bool {
	return d.DrawType == TypeRoundRobin
}

// Size returns the declared draw size, falling back to twice the first
// round's match count when the descriptor omits it.
func (d *Draw) Size() int {
	if d.DrawSize > 0 {
		return d.DrawSize
	}
	rounds := GroupRounds(d.Matches)
	if len(rounds) == 0 {
		return 0
	}
	return 2 * len(rounds[0].Matches)
}

// =============================================================================
// Rounds
// =============================================================================

// Round is one tier of a draw: matches sharing a round number, ordered by
// position. Positions are normally contiguous from 1 but gaps (byes) are
// tolerated everywhere downstream.
type Round struct {
	RoundNumber int     `json:"round" bson:"round"`
	Name        string  `json:"name,omitempty" bson:"name,omitempty"`
	Matches     []Match `json:"matches" bson:"matches"`
}

// GroupRounds groups a flat match list into rounds ordered by round number
// ascending, with matches inside each round ordered by position ascending.
// An empty input yields an empty slice. The input is not mutated.
func GroupRounds(matches []Match) []Round {
	if len(matches) == 0 {
		return nil
	}

	byRound := make(map[int][]Match)
	for _, m := range matches {
		byRound[m.RoundNumber] = append(byRound[m.RoundNumber], m)
	}

	numbers := make([]int, 0, len(byRound))
	for n := range byRound {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	rounds := make([]Round, 0, len(numbers))
	for _, n := range numbers {
		ms := byRound[n]
		slices.SortFunc(ms, func(a, b Match) int {
			return cmp.Compare(a.PositionInRound, b.PositionInRound)
		})
		rounds = append(rounds, Round{RoundNumber: n, Matches: ms})
	}
	return rounds
}

// GroupedRounds groups the draw's matches and attaches round display names.
func (d *Draw) GroupedRounds() []Round {
	rounds := GroupRounds(d.Matches)
	for i := range rounds {
		rounds[i].Name = d.RoundNames[rounds[i].RoundNumber]
	}
	return rounds
}

// =============================================================================
// Feeders
// =============================================================================

// Feeders returns the two previous-round positions that feed position p in
// a binary single-elimination bracket: (2p-1, 2p). Positions are 1-based.
// This is pure arithmetic; callers are responsible for checking that the
// feeder positions actually exist in the data.
func Feeders(p int) (int, int) {
	return 2*p - 1, 2 * p
}
