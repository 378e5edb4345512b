package draw

// =============================================================================
// Side - Tagged Participant Variant
// =============================================================================

// SideKind discriminates the shape of a match side.
type SideKind int

// Side variants.
const (
	// SideEmpty is an unfilled slot (a bye or a not-yet-advanced winner).
	SideEmpty SideKind = iota
	// SideSingle is a singles entry with one participant.
	SideSingle
	// SidePair is a doubles entry with two participants.
	SidePair
)

// Participant is one entrant on a side. Identity fields are optional and
// schema varies by data source; see the standings package for how a stable
// identity is derived from them.
type Participant struct {
	ID     string `json:"id,omitempty" bson:"id,omitempty"`
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	School string `json:"school,omitempty" bson:"school,omitempty"`
	Seed   string `json:"seed,omitempty" bson:"seed,omitempty"`
}

// Side is one half of a match. A nil *Side or a Side with no players is the
// Empty variant; Player set is Single; Player and Partner set is Pair.
type Side struct {
	Player  *Participant `json:"player,omitempty" bson:"player,omitempty"`
	Partner *Participant `json:"partner,omitempty" bson:"partner,omitempty"`
}

// Kind returns the variant of the side. Safe on a nil receiver.
func (s *Side) Kind() SideKind {
	switch {
	case s == nil || s.Player == nil:
		return SideEmpty
	case s.Partner == nil:
		return SideSingle
	default:
		return SidePair
	}
}

// DisplayName returns a human-readable label for the side, polymorphic over
// the variant. Empty sides yield "".
func (s *Side) DisplayName() string {
	switch s.Kind() {
	case SideSingle:
		return s.Player.Name
	case SidePair:
		if s.Player.Name != "" && s.Partner.Name != "" {
			return s.Player.Name + " / " + s.Partner.Name
		}
		if s.Player.Name != "" {
			return s.Player.Name
		}
		return s.Partner.Name
	default:
		return ""
	}
}

// =============================================================================
// Match
// =============================================================================

// Winner identifies which side of a match won.
type Winner int

// Winner values.
const (
	WinnerNone Winner = iota
	WinnerSide1
	WinnerSide2
)

// Match statuses as delivered by the data source.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Match is a single fixture within a draw. RoundNumber and PositionInRound
// are both 1-based; together they locate the match in the bracket without
// explicit parent/child pointers.
type Match struct {
	ID              string `json:"id" bson:"id"`
	RoundNumber     int    `json:"round" bson:"round"`
	PositionInRound int    `json:"position" bson:"position"`

	Side1 *Side `json:"side1,omitempty" bson:"side1,omitempty"`
	Side2 *Side `json:"side2,omitempty" bson:"side2,omitempty"`

	WinningSide Winner `json:"winning_side,omitempty" bson:"winning_side,omitempty"`
	Status      string `json:"status,omitempty" bson:"status,omitempty"`

	// Display score strings, opaque to the layout engine.
	Score1 string `json:"score1,omitempty" bson:"score1,omitempty"`
	Score2 string `json:"score2,omitempty" bson:"score2,omitempty"`
}

// Decided returns true if the match has a winning side.
func (m *Match) Decided() bool {
	return m.WinningSide == WinnerSide1 || m.WinningSide == WinnerSide2
}

// WinnerSide returns the winning side, or nil if the match is undecided.
func (m *Match) WinnerSide() *Side {
	switch m.WinningSide {
	case WinnerSide1:
		return m.Side1
	case WinnerSide2:
		return m.Side2
	default:
		return nil
	}
}

// LoserSide returns the losing side, or nil if the match is undecided.
func (m *Match) LoserSide() *Side {
	switch m.WinningSide {
	case WinnerSide1:
		return m.Side2
	case WinnerSide2:
		return m.Side1
	default:
		return nil
	}
}
