package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/standings"
	"github.com/danehlert/courtline/pkg/pipeline"
	"github.com/danehlert/courtline/pkg/render"
)

// standingsCommand creates the standings command for round-robin draws.
func (c *CLI) standingsCommand() *cobra.Command {
	var (
		output  string
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "standings [draw.json]",
		Short: "Tabulate round-robin standings from a draw file",
		Long: `Tabulate round-robin standings from a draw file.

Every decided match contributes a win and a loss; undecided matches and
sides without a derivable identity are skipped. The table is ordered by
wins, then fewest losses, then name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStandings(cmd.Context(), args[0], output, asJSON, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to file instead of printing a table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runStandings(ctx context.Context, input, output string, asJSON, noCache bool) error {
	d, err := draw.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load draw %s: %w", input, err)
	}
	if !d.IsRoundRobin() {
		return fmt.Errorf("draw %s is not round-robin; use 'courtline layout %s'", d.DrawID, input)
	}

	runner := c.newRunner(noCache)
	prog := newProgress(c.Logger)

	result, err := runner.Execute(ctx, d, pipeline.Options{Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("tabulate standings: %w", err)
	}
	prog.done(fmt.Sprintf("Tabulated %d matches", result.Stats.MatchCount))

	if output != "" {
		if err := os.WriteFile(output, result.Artifacts[render.FormatJSON], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Standings written")
		printFile(output)
		return nil
	}
	if asJSON {
		fmt.Println(string(result.Artifacts[render.FormatJSON]))
		return nil
	}

	fmt.Println(standingsTable(result.Standings).Render())
	return nil
}

// standingsTable renders standings rows as a bordered terminal table.
func standingsTable(rows []standings.Standing) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = []string{
			strconv.Itoa(i + 1),
			row.Name,
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Losses),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Participant", "W", "L").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleValue
			}
			return StyleDim
		})
}
