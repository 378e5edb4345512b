package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danehlert/courtline/pkg/draw"
)

// browseCommand creates the browse command for interactive draw inspection.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [draw.json...]",
		Short: "Interactively inspect draw files",
		Long: `Interactively inspect draw files.

Opens a terminal picker listing the given draws. Selecting a draw shows its
rounds with per-match results, or its standings table for round-robin pools.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(args)
		},
	}
}

func (c *CLI) runBrowse(paths []string) error {
	entries := make([]drawEntry, 0, len(paths))
	for _, path := range paths {
		d, err := draw.ReadFile(path)
		if err != nil {
			return fmt.Errorf("load draw %s: %w", path, err)
		}
		entries = append(entries, drawEntry{Path: path, Draw: d})
	}

	model := newBrowseModel(entries)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
