package layout

import (
	"cmp"
	"slices"
)

// Key addresses one match slot in the position map: a 0-based round index
// paired with the match's 1-based position within that round.
type Key struct {
	Round    int
	Position int
}

// Positions maps match slots to their coordinate along the layout axis.
// The map is write-once per layout pass: every match present in the input
// receives exactly one entry, and entries are never removed or overwritten.
type Positions map[Key]float64

// Get returns the coordinate for a slot and whether it was resolved.
func (p Positions) Get(round, position int) (float64, bool) {
	y, ok := p[Key{Round: round, Position: position}]
	return y, ok
}

// set records a coordinate, preserving the write-once invariant.
func (p Positions) set(round, position int, y float64) {
	k := Key{Round: round, Position: position}
	if _, ok := p[k]; ok {
		return
	}
	p[k] = y
}

// Entry is a serializable record of one resolved position. Struct-keyed
// maps do not marshal to JSON, so exported layouts carry a sorted slice.
type Entry struct {
	Round    int     `json:"round" bson:"round"`
	Position int     `json:"position" bson:"position"`
	Y        float64 `json:"y" bson:"y"`
}

// Entries returns the map's contents as a deterministically ordered slice:
// round ascending, then position ascending.
func (p Positions) Entries() []Entry {
	out := make([]Entry, 0, len(p))
	for k, y := range p {
		out = append(out, Entry{Round: k.Round, Position: k.Position, Y: y})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Round != b.Round {
			return cmp.Compare(a.Round, b.Round)
		}
		return cmp.Compare(a.Position, b.Position)
	})
	return out
}

// positionsFromEntries rebuilds the map form from a serialized slice.
func positionsFromEntries(entries []Entry) Positions {
	p := make(Positions, len(entries))
	for _, e := range entries {
		p.set(e.Round, e.Position, e.Y)
	}
	return p
}
