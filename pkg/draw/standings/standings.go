// Package standings aggregates round-robin results into a win/loss table.
//
// The aggregator is independent of the bracket geometry engines: it reads
// the same match list but tallies decided results per participant instead
// of computing positions. Like the rest of the toolkit it is a pure
// function of its input and never fails on malformed data; a side without
// any derivable identity is simply skipped.
package standings

import (
	"cmp"
	"slices"

	"github.com/danehlert/courtline/pkg/draw"
)

// Standing is one participant's aggregated record.
type Standing struct {
	ParticipantID string `json:"participant_id" bson:"participant_id"`
	Name          string `json:"name" bson:"name"`
	Wins          int    `json:"wins" bson:"wins"`
	Losses        int    `json:"losses" bson:"losses"`
}

// Aggregator computes standings using a prioritized identity resolver
// list. The zero value is not useful; use NewAggregator.
type Aggregator struct {
	resolvers []Resolver
}

// NewAggregator creates an aggregator. With no arguments it uses
// DefaultResolvers; pass resolvers to override the identity priority.
func NewAggregator(resolvers ...Resolver) *Aggregator {
	if len(resolvers) == 0 {
		resolvers = DefaultResolvers()
	}
	return &Aggregator{resolvers: resolvers}
}

// identity returns the first non-empty resolver result for the side.
func (a *Aggregator) identity(s *draw.Side) string {
	for _, r := range a.resolvers {
		if id := r(s); id != "" {
			return id
		}
	}
	return ""
}

// Standings tallies every decided match into a win/loss table.
//
// Each side with a derivable identity is registered with a zero record on
// first sight, keeping its display name. For every match with a decided
// winner both sides of which are identifiable, the winner's wins and the
// loser's losses are incremented; undecided matches and matches with an
// unidentifiable side contribute nothing but never stop processing.
//
// The result is ordered by wins descending, then losses ascending, then
// name ascending as a final deterministic tie-break.
func (a *Aggregator) Standings(matches []draw.Match) []Standing {
	table := make(map[string]*Standing)

	register := func(s *draw.Side) string {
		id := a.identity(s)
		if id == "" {
			return ""
		}
		if _, ok := table[id]; !ok {
			name := s.DisplayName()
			if name == "" {
				name = id
			}
			table[id] = &Standing{ParticipantID: id, Name: name}
		}
		return id
	}

	for i := range matches {
		m := &matches[i]
		id1 := register(m.Side1)
		id2 := register(m.Side2)

		if !m.Decided() || id1 == "" || id2 == "" {
			continue
		}

		winner, loser := id1, id2
		if m.WinningSide == draw.WinnerSide2 {
			winner, loser = id2, id1
		}
		table[winner].Wins++
		table[loser].Losses++
	}

	out := make([]Standing, 0, len(table))
	for _, s := range table {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(x, y Standing) int {
		if x.Wins != y.Wins {
			return cmp.Compare(y.Wins, x.Wins)
		}
		if x.Losses != y.Losses {
			return cmp.Compare(x.Losses, y.Losses)
		}
		return cmp.Compare(x.Name, y.Name)
	})
	return out
}
