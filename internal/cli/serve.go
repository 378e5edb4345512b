package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danehlert/courtline/internal/config"
	"github.com/danehlert/courtline/internal/server"
	"github.com/danehlert/courtline/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Configuration comes from an optional TOML file plus COURTLINE_* environment
variables. The server exposes stateless layout and standings endpoints under
/v1 and a store-backed draw collection at /v1/draws.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	cacheBackend, err := cfg.OpenCache(ctx)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			c.Logger.Warn("cache close failed", "error", err)
		}
	}()
	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			c.Logger.Warn("store close failed", "error", err)
		}
	}()

	runner := pipeline.NewRunner(cacheBackend, nil, c.Logger)
	srv := server.New(cfg, st, runner, c.Logger)

	c.Logger.Info("starting server",
		"cache", cfg.Cache.Backend,
		"store", cfg.Store.Backend)
	return srv.ListenAndServe(ctx)
}
