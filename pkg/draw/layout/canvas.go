package layout

// canvasSize derives the total layout bounds.
//
// Width comes from the round count and the column pitch; height from the
// densest round (round 0 in a well-formed elimination draw, but irregular
// draws are measured as-is) using the card pitch, clamped to at least one
// card extent. Every box produced by either engine falls within
// [0, width) x [0, height).
func canvasSize(roundCounts []int, cfg Config) (width, height float64) {
	n := len(roundCounts)
	if n == 0 {
		return 0, 0
	}

	width = float64(n)*cfg.CardWidth + float64(n-1)*cfg.ColumnGap

	densest := 0
	for _, count := range roundCounts {
		if count > densest {
			densest = count
		}
	}

	height = float64(densest)*cfg.CardHeight + float64(densest-1)*cfg.CardGap
	if height < cfg.CardHeight {
		height = cfg.CardHeight
	}
	height += cfg.TopPadding
	return width, height
}
