package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/layout"
)

const svgStyle = `
    .card { fill: #ffffff; stroke: #2f3437; stroke-width: 1.5; rx: 6; }
    .card-name { font: 13px sans-serif; fill: #2f3437; }
    .card-score { font: 12px monospace; fill: #6b7280; }
    .connector { stroke: #9ca3af; stroke-width: 1.5; fill: none; }
    .round-label { font: bold 14px sans-serif; fill: #374151; }`

// labelPadding keeps space above the bracket for round labels.
const labelPadding = 28.0

// SVGOption configures the SVG sink.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showLabels bool
}

// WithRoundLabels draws round names above each column.
func WithRoundLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = true } }

// RenderSVG renders a bracket layout as a static SVG document. Boxes
// become cards with side names and scores; connectors become lines. The
// output is self-contained and needs no scripts.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	offsetY := 0.0
	if r.showLabels {
		offsetY = labelPadding
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height+offsetY, l.Width, l.Height+offsetY)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", svgStyle)

	renderConnectors(&buf, l, offsetY)
	renderCards(&buf, l, offsetY)
	if r.showLabels {
		renderRoundLabels(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderConnectors draws both connector variants: paths as single lines,
// segment lists as one line per segment.
func renderConnectors(buf *bytes.Buffer, l layout.Layout, offsetY float64) {
	for _, c := range l.Connectors {
		switch c.Kind {
		case layout.ConnectorPath:
			fmt.Fprintf(buf, `  <line class="connector" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				c.From.X, c.From.Y+offsetY, c.To.X, c.To.Y+offsetY)
		case layout.ConnectorSegments:
			for _, s := range c.Segments {
				fmt.Fprintf(buf, `  <line class="connector" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
					s.X1, s.Y1+offsetY, s.X2, s.Y2+offsetY)
			}
		}
	}
}

// renderCards draws a rect per box with the side names and scores.
func renderCards(buf *bytes.Buffer, l layout.Layout, offsetY float64) {
	matches := indexMatches(l.Rounds)

	for _, b := range l.Boxes {
		fmt.Fprintf(buf, `  <rect class="card" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			b.X, b.Y+offsetY, b.Width, b.Height)

		m, ok := matches[b.MatchID]
		if !ok {
			continue
		}
		renderCardText(buf, b, m, offsetY)
	}
}

func renderCardText(buf *bytes.Buffer, b layout.Box, m draw.Match, offsetY float64) {
	textX := b.X + 10
	line := b.Height / 3

	name1 := escape(m.Side1.DisplayName())
	name2 := escape(m.Side2.DisplayName())
	if name1 == "" {
		name1 = "—"
	}
	if name2 == "" {
		name2 = "—"
	}

	fmt.Fprintf(buf, `  <text class="card-name" x="%.1f" y="%.1f">%s</text>`+"\n",
		textX, b.Y+offsetY+line, name1)
	fmt.Fprintf(buf, `  <text class="card-name" x="%.1f" y="%.1f">%s</text>`+"\n",
		textX, b.Y+offsetY+2*line, name2)

	if m.Score1 != "" || m.Score2 != "" {
		fmt.Fprintf(buf, `  <text class="card-score" x="%.1f" y="%.1f">%s  %s</text>`+"\n",
			textX, b.Y+offsetY+b.Height-8, escape(m.Score1), escape(m.Score2))
	}
}

// renderRoundLabels draws round names above their columns.
func renderRoundLabels(buf *bytes.Buffer, l layout.Layout) {
	cfg := layout.DefaultConfig()
	for ri, round := range l.Rounds {
		if round.Name == "" {
			continue
		}
		x := cfg.ColumnX(ri)
		if len(l.Boxes) > 0 {
			// Use the actual column x from the boxes when available.
			for _, b := range l.Boxes {
				if b.Round == ri {
					x = b.X
					break
				}
			}
		}
		fmt.Fprintf(buf, `  <text class="round-label" x="%.1f" y="18">%s</text>`+"\n",
			x, escape(round.Name))
	}
}

// indexMatches flattens rounds into a match lookup by ID.
func indexMatches(rounds []draw.Round) map[string]draw.Match {
	out := make(map[string]draw.Match)
	for _, r := range rounds {
		for _, m := range r.Matches {
			out[m.ID] = m
		}
	}
	return out
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
