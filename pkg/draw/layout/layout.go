package layout

import (
	"fmt"

	"github.com/danehlert/courtline/pkg/draw"
)

// Engine identifiers.
const (
	EngineCentered = "centered"
	EngineSlot     = "slot"
	// EngineAuto selects by draw size against Config.LargeDrawSize.
	EngineAuto = "auto"
)

// Engine is a position strategy. Implementations must be pure: the same
// rounds and config always produce the same Positions, and every match in
// the input receives exactly one entry.
type Engine interface {
	// Name returns the engine identifier.
	Name() string

	// Positions computes the coordinate map for the grouped rounds.
	Positions(rounds []draw.Round, cfg Config) Positions
}

// ParseEngine resolves an engine identifier. "auto" and "" return nil,
// which Build interprets as threshold-based selection.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case EngineCentered:
		return CenteredEngine{}, nil
	case EngineSlot:
		return SlotEngine{}, nil
	case EngineAuto, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown layout engine: %q (must be one of: auto, centered, slot)", name)
	}
}

// EngineForDraw picks the engine by draw size: the slot engine at or above
// the large-draw threshold, the centered engine below it. The two engines
// can produce visually different shapes for the same draw near the
// threshold; the threshold is configuration, not a reconciliation.
func EngineForDraw(d *draw.Draw, cfg Config) Engine {
	threshold := cfg.LargeDrawSize
	if threshold <= 0 {
		threshold = DefaultLargeDrawSize
	}
	if d.Size() >= threshold {
		return SlotEngine{}
	}
	return CenteredEngine{}
}

// =============================================================================
// Output Types
// =============================================================================

// Box is the axis-aligned rectangle for one match card. X is determined
// solely by the round index, Y by the position map.
type Box struct {
	MatchID  string  `json:"match_id" bson:"match_id"`
	Round    int     `json:"round" bson:"round"` // 0-based round index
	Position int     `json:"position" bson:"position"`
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
}

// Layout is the complete geometry for one draw: the ordered rounds, the
// resolved position map, a box per match, the connector geometry, and the
// canvas bounds. It is a pure function of the match list and the config,
// serializable for caching and API responses.
type Layout struct {
	Engine     string       `json:"engine" bson:"engine"`
	Width      float64      `json:"width" bson:"width"`
	Height     float64      `json:"height" bson:"height"`
	Rounds     []draw.Round `json:"rounds,omitempty" bson:"rounds,omitempty"`
	Positions  []Entry      `json:"positions,omitempty" bson:"positions,omitempty"`
	Boxes      []Box        `json:"boxes,omitempty" bson:"boxes,omitempty"`
	Connectors []Connector  `json:"connectors,omitempty" bson:"connectors,omitempty"`
}

// PositionMap rebuilds the map form of the serialized positions.
func (l *Layout) PositionMap() Positions {
	return positionsFromEntries(l.Positions)
}

// =============================================================================
// Build
// =============================================================================

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	engine Engine
}

// WithEngine forces a specific position engine instead of threshold
// selection.
func WithEngine(e Engine) Option {
	return func(o *buildOptions) { o.engine = e }
}

// Build computes the full layout for a draw. It always returns a complete
// layout for any well-typed input: an empty match list yields empty rounds,
// no boxes, no connectors, and a zero-sized canvas.
func Build(d *draw.Draw, cfg Config, opts ...Option) Layout {
	var bo buildOptions
	for _, opt := range opts {
		opt(&bo)
	}

	engine := bo.engine
	if engine == nil {
		engine = EngineForDraw(d, cfg)
	}

	rounds := d.GroupedRounds()
	pos := engine.Positions(rounds, cfg)

	counts := make([]int, len(rounds))
	for i, r := range rounds {
		counts[i] = len(r.Matches)
	}
	width, height := canvasSize(counts, cfg)

	var connectors []Connector
	if engine.Name() == EngineSlot {
		connectors = slotConnectors(rounds, pos, cfg)
	} else {
		connectors = centeredConnectors(rounds, pos, cfg)
	}

	return Layout{
		Engine:     engine.Name(),
		Width:      width,
		Height:     height,
		Rounds:     rounds,
		Positions:  pos.Entries(),
		Boxes:      buildBoxes(rounds, pos, cfg),
		Connectors: connectors,
	}
}

// buildBoxes materializes one box per positioned match.
func buildBoxes(rounds []draw.Round, pos Positions, cfg Config) []Box {
	var boxes []Box
	for ri, round := range rounds {
		x := cfg.ColumnX(ri)
		for _, m := range round.Matches {
			y, ok := pos.Get(ri, m.PositionInRound)
			if !ok {
				continue
			}
			boxes = append(boxes, Box{
				MatchID:  m.ID,
				Round:    ri,
				Position: m.PositionInRound,
				X:        x,
				Y:        y,
				Width:    cfg.CardWidth,
				Height:   cfg.CardHeight,
			})
		}
	}
	return boxes
}
