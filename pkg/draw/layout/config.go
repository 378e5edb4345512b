package layout

// =============================================================================
// Layout Constants - Single Source of Truth for CLI, API, and Config
// =============================================================================

// Default layout metrics, in user units (pixels in SVG).
const (
	// DefaultCardWidth is the horizontal extent of a match card.
	DefaultCardWidth = 220.0

	// DefaultCardHeight is the vertical extent of a match card.
	DefaultCardHeight = 120.0

	// DefaultCardGap is the vertical gap between adjacent cards in a round.
	DefaultCardGap = 18.0

	// DefaultColumnGap is the horizontal gap between round columns.
	DefaultColumnGap = 44.0

	// DefaultTopPadding is the offset above the first card.
	DefaultTopPadding = 0.0

	// DefaultLargeDrawSize is the participant count at which layout
	// switches from the centered engine to the slot engine.
	DefaultLargeDrawSize = 64
)

// Config holds the tunable layout constants. The zero value is not useful;
// start from DefaultConfig and override fields as needed.
type Config struct {
	CardWidth     float64 `json:"card_width" toml:"card_width"`
	CardHeight    float64 `json:"card_height" toml:"card_height"`
	CardGap       float64 `json:"card_gap" toml:"card_gap"`
	ColumnGap     float64 `json:"column_gap" toml:"column_gap"`
	TopPadding    float64 `json:"top_padding" toml:"top_padding"`
	LargeDrawSize int     `json:"large_draw_size" toml:"large_draw_size"`
}

// DefaultConfig returns the documented default metrics.
func DefaultConfig() Config {
	return Config{
		CardWidth:     DefaultCardWidth,
		CardHeight:    DefaultCardHeight,
		CardGap:       DefaultCardGap,
		ColumnGap:     DefaultColumnGap,
		TopPadding:    DefaultTopPadding,
		LargeDrawSize: DefaultLargeDrawSize,
	}
}

// CardPitch returns the vertical distance between the tops of two adjacent
// cards: card extent plus gap.
func (c Config) CardPitch() float64 {
	return c.CardHeight + c.CardGap
}

// ColumnX returns the x coordinate of the column for the given 0-based
// round index.
func (c Config) ColumnX(roundIndex int) float64 {
	return float64(roundIndex) * (c.CardWidth + c.ColumnGap)
}
