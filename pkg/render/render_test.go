package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/layout"
	"github.com/danehlert/courtline/pkg/draw/standings"
)

func demoDraw() *draw.Draw {
	return &draw.Draw{
		DrawID:   "demo",
		DrawType: draw.TypeElimination,
		DrawSize: 4,
		Matches: []draw.Match{
			{
				ID: "sf1", RoundNumber: 1, PositionInRound: 1,
				Side1:  &draw.Side{Player: &draw.Participant{Name: "Ash & Co"}},
				Side2:  &draw.Side{Player: &draw.Participant{Name: "Brook"}},
				Score1: "6-4", Score2: "4-6",
			},
			{ID: "sf2", RoundNumber: 1, PositionInRound: 2},
			{ID: "f", RoundNumber: 2, PositionInRound: 1},
		},
		RoundNames: map[int]string{1: "Semifinals", 2: "Final"},
	}
}

func TestRenderSVG(t *testing.T) {
	l := layout.Build(demoDraw(), layout.DefaultConfig())
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("output is not a complete SVG document")
	}
	if got := strings.Count(svg, `<rect class="card"`); got != 3 {
		t.Errorf("card count = %d, want 3", got)
	}
	if !strings.Contains(svg, "Ash &amp; Co") {
		t.Error("side names should be escaped and rendered")
	}
	if !strings.Contains(svg, `class="connector"`) {
		t.Error("connectors missing from SVG")
	}
	if strings.Contains(svg, "Semifinals") {
		t.Error("round labels should be off by default")
	}
}

func TestRenderSVGWithLabels(t *testing.T) {
	l := layout.Build(demoDraw(), layout.DefaultConfig())
	svg := string(RenderSVG(l, WithRoundLabels()))

	if !strings.Contains(svg, "Semifinals") || !strings.Contains(svg, "Final") {
		t.Error("round labels missing")
	}
}

func TestLayoutFormats(t *testing.T) {
	l := layout.Build(demoDraw(), layout.DefaultConfig())

	jsonOut, err := Layout(l, FormatJSON)
	if err != nil {
		t.Fatalf("json render error: %v", err)
	}
	var decoded layout.Layout
	if err := json.Unmarshal(jsonOut, &decoded); err != nil {
		t.Fatalf("json output not parseable: %v", err)
	}
	if decoded.Engine != l.Engine || len(decoded.Boxes) != len(l.Boxes) {
		t.Error("json round trip lost data")
	}

	svgOut, err := Layout(l, FormatSVG)
	if err != nil {
		t.Fatalf("svg render error: %v", err)
	}
	if len(svgOut) == 0 {
		t.Error("svg output empty")
	}

	if _, err := Layout(l, "pdf"); err == nil {
		t.Error("unknown format should error")
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat(FormatSVG); err != nil {
		t.Errorf("svg should validate: %v", err)
	}
	if err := ValidateFormat("png"); err == nil {
		t.Error("png should not validate")
	}
}

func TestStandingsJSON(t *testing.T) {
	rows := []standings.Standing{{ParticipantID: "A", Name: "A", Wins: 2}}

	out, err := Standings(rows, FormatJSON)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	var decoded []standings.Standing
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output not parseable: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Wins != 2 {
		t.Error("standings lost in render")
	}

	if _, err := Standings(rows, FormatSVG); err == nil {
		t.Error("svg standings should error")
	}
}
