package layout

import (
	"github.com/danehlert/courtline/pkg/draw"
)

// Connector kinds.
const (
	// ConnectorPath is a two-endpoint joining line (centered engine).
	// Only the endpoints are guaranteed; the renderer may draw a straight
	// line or a curve between them.
	ConnectorPath = "path"
	// ConnectorSegments is an ordered list of axis-aligned segments
	// (slot engine): stub, sibling join, forward stub.
	ConnectorSegments = "segments"
)

// Point is a 2D coordinate in layout units.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Segment is one axis-aligned line segment.
type Segment struct {
	X1 float64 `json:"x1" bson:"x1"`
	Y1 float64 `json:"y1" bson:"y1"`
	X2 float64 `json:"x2" bson:"x2"`
	Y2 float64 `json:"y2" bson:"y2"`
}

// Connector is one piece of line geometry joining matches across a round
// transition. It is a small discriminated union: check Kind to know which
// fields are populated. Connectors are derived, disposable data recomputed
// each layout pass; they are never mutated in place.
type Connector struct {
	Kind string `json:"kind" bson:"kind"`

	// Path variant
	From Point `json:"from,omitempty" bson:"from,omitempty"`
	To   Point `json:"to,omitempty" bson:"to,omitempty"`

	// Segments variant
	Segments []Segment `json:"segments,omitempty" bson:"segments,omitempty"`
}

// =============================================================================
// Centered Variant
// =============================================================================

// centeredConnectors emits two paths per parent match: one from each
// resolved feeder's right edge to the parent's left edge, endpoints at the
// vertical midpoints of the cards. Missing feeders simply emit nothing for
// that slot.
func centeredConnectors(rounds []draw.Round, pos Positions, cfg Config) []Connector {
	var out []Connector
	halfCard := cfg.CardHeight / 2

	for ri := 1; ri < len(rounds); ri++ {
		parentLeft := cfg.ColumnX(ri)
		feederRight := cfg.ColumnX(ri-1) + cfg.CardWidth

		for _, m := range rounds[ri].Matches {
			p := m.PositionInRound
			py, ok := pos.Get(ri, p)
			if !ok {
				continue
			}
			to := Point{X: parentLeft, Y: py + halfCard}

			left, right := draw.Feeders(p)
			for _, feeder := range []int{left, right} {
				fy, ok := pos.Get(ri-1, feeder)
				if !ok {
					continue
				}
				out = append(out, Connector{
					Kind: ConnectorPath,
					From: Point{X: feederRight, Y: fy + halfCard},
					To:   to,
				})
			}
		}
	}
	return out
}

// =============================================================================
// Rectilinear Variant
// =============================================================================

// slotConnectors emits a three-part rectilinear joiner per sibling pair.
//
// Every match draws a short stub from its right edge to the midline between
// its column and the next. The upper (odd-position) sibling additionally
// draws the vertical segment joining the pair's stubs and the forward
// horizontal segment to the next round's column, at the vertical midpoint
// between the pair. Deduplicating the join and forward segments on the
// upper sibling avoids emitting the same geometry twice. A match whose
// sibling is unresolved keeps just its stub, a visual dead end rather than
// an error.
func slotConnectors(rounds []draw.Round, pos Positions, cfg Config) []Connector {
	var out []Connector
	halfCard := cfg.CardHeight / 2

	for ri := 0; ri < len(rounds)-1; ri++ {
		rightEdge := cfg.ColumnX(ri) + cfg.CardWidth
		midline := rightEdge + cfg.ColumnGap/2
		nextColumn := cfg.ColumnX(ri + 1)

		for _, m := range rounds[ri].Matches {
			p := m.PositionInRound
			y, ok := pos.Get(ri, p)
			if !ok {
				continue
			}
			centerY := y + halfCard

			segs := []Segment{{X1: rightEdge, Y1: centerY, X2: midline, Y2: centerY}}

			upper := p%2 == 1
			sibling := p + 1
			if !upper {
				sibling = p - 1
			}

			sy, siblingOK := pos.Get(ri, sibling)
			if siblingOK && upper {
				siblingCenter := sy + halfCard
				pairMid := (centerY + siblingCenter) / 2
				segs = append(segs,
					Segment{X1: midline, Y1: centerY, X2: midline, Y2: siblingCenter},
					Segment{X1: midline, Y1: pairMid, X2: nextColumn, Y2: pairMid},
				)
			}

			out = append(out, Connector{Kind: ConnectorSegments, Segments: segs})
		}
	}
	return out
}
