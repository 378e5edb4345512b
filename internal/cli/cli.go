// Package cli implements the courtline command-line interface.
//
// This package provides commands for laying out tournament draws, tabulating
// round-robin standings, browsing draws interactively, and serving the HTTP
// API. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute bracket geometry and render JSON or SVG
//   - standings: Tabulate a round-robin draw into a win/loss table
//   - browse: Interactively inspect one or more draw files
//   - serve: Run the HTTP API server
//   - cache: Manage the local layout cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/danehlert/courtline/internal/config"
	"github.com/danehlert/courtline/pkg/buildinfo"
	"github.com/danehlert/courtline/pkg/cache"
	"github.com/danehlert/courtline/pkg/pipeline"
	"github.com/danehlert/courtline/pkg/render"
)

// appName is the application name used for directories and display.
const appName = "courtline"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Courtline lays out tournament draws as bracket diagrams",
		Long:         `Courtline is a CLI tool for turning tournament draw data into bracket layouts, connector geometry, and round-robin standings, with JSON and SVG output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.standingsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(config.DefaultCacheDir())
	if err != nil {
		printWarning("cache unavailable, recomputing every run: %v", err)
		return cache.NewNullCache()
	}
	return fc
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatJSON}
	}
	return strings.Split(s, ",")
}
