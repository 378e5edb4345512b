package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/layout"
	"github.com/danehlert/courtline/pkg/pipeline"
	"github.com/danehlert/courtline/pkg/render"
)

// layoutCommand creates the layout command for computing bracket geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		formats string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [draw.json]",
		Short: "Compute bracket layout from a draw file",
		Long: `Compute bracket layout from a draw file.

The layout command takes a draw.json file and computes card positions,
connector geometry, and canvas bounds for the bracket. Output is written as
layout JSON and/or an SVG diagram.

Small draws use the centered engine, which places each match at the visual
midpoint of its two feeder matches. Draws at or above the large-draw
threshold use the slot engine, which assigns fixed slot heights per round so
cards in the same round never collide. Use --engine to force either.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formats)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file base (default: <input> with format extension)")
	cmd.Flags().StringVarP(&formats, "format", "f", render.FormatJSON, "output formats, comma-separated: json, svg")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Layout flags carry the real default metrics so an explicit zero
	// (flush cards) survives to the engine instead of reading as unset.
	def := layout.DefaultConfig()
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "position engine: auto (default), centered, slot")
	cmd.Flags().Float64Var(&opts.Layout.CardWidth, "card-width", def.CardWidth, "match card width")
	cmd.Flags().Float64Var(&opts.Layout.CardHeight, "card-height", def.CardHeight, "match card height")
	cmd.Flags().Float64Var(&opts.Layout.CardGap, "card-gap", def.CardGap, "vertical gap between cards")
	cmd.Flags().Float64Var(&opts.Layout.ColumnGap, "column-gap", def.ColumnGap, "horizontal gap between rounds")
	cmd.Flags().Float64Var(&opts.Layout.TopPadding, "top-padding", def.TopPadding, "offset above the first card")
	cmd.Flags().IntVar(&opts.Layout.LargeDrawSize, "threshold", def.LargeDrawSize, "draw size at which the slot engine takes over")

	return cmd
}

// runLayout loads the draw, runs the pipeline, and writes output files.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	d, err := draw.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load draw %s: %w", input, err)
	}
	if d.IsRoundRobin() {
		return fmt.Errorf("draw %s is round-robin; use 'courtline standings %s'", d.DrawID, input)
	}

	runner := c.newRunner(noCache)
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout"
	}

	printSuccess("Layout complete (%s engine)", result.Layout.Engine)
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.MatchCount, result.Stats.RoundCount, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Browse", "courtline browse "+input)

	return nil
}
