package layout_test

import (
	"fmt"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/layout"
)

func ExampleBuild() {
	// A four-player bracket: two semifinals feeding a final.
	d := &draw.Draw{
		DrawID:   "demo",
		DrawType: draw.TypeElimination,
		DrawSize: 4,
		Matches: []draw.Match{
			{ID: "sf1", RoundNumber: 1, PositionInRound: 1},
			{ID: "sf2", RoundNumber: 1, PositionInRound: 2},
			{ID: "f", RoundNumber: 2, PositionInRound: 1},
		},
	}

	l := layout.Build(d, layout.DefaultConfig())

	fmt.Println("Engine:", l.Engine)
	fmt.Println("Rounds:", len(l.Rounds))
	fmt.Println("Boxes:", len(l.Boxes))
	fmt.Println("Connectors:", len(l.Connectors))
	// Output:
	// Engine: centered
	// Rounds: 2
	// Boxes: 3
	// Connectors: 2
}

func ExampleBuild_withEngine() {
	d := &draw.Draw{
		DrawSize: 4,
		Matches: []draw.Match{
			{ID: "sf1", RoundNumber: 1, PositionInRound: 1},
			{ID: "sf2", RoundNumber: 1, PositionInRound: 2},
			{ID: "f", RoundNumber: 2, PositionInRound: 1},
		},
	}

	// Force the feeder-independent slot engine regardless of draw size.
	l := layout.Build(d, layout.DefaultConfig(), layout.WithEngine(layout.SlotEngine{}))

	fmt.Println("Engine:", l.Engine)
	fmt.Println("Connector kind:", l.Connectors[0].Kind)
	// Output:
	// Engine: slot
	// Connector kind: segments
}

func ExampleCenteredEngine_Positions() {
	rounds := draw.GroupRounds([]draw.Match{
		{ID: "sf1", RoundNumber: 1, PositionInRound: 1},
		{ID: "sf2", RoundNumber: 1, PositionInRound: 2},
		{ID: "f", RoundNumber: 2, PositionInRound: 1},
	})

	cfg := layout.DefaultConfig()
	pos := layout.CenteredEngine{}.Positions(rounds, cfg)

	top, _ := pos.Get(0, 1)
	bottom, _ := pos.Get(0, 2)
	final, _ := pos.Get(1, 1)
	fmt.Println("final centered:", final == (top+bottom)/2)
	// Output:
	// final centered: true
}
