package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/docgraph/internal/api"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP until interrupted.

  POST /v1/graph   request JSON in, graph JSON out
  POST /v1/export  request JSON in, SVG or DOT out (?format=)
  GET  /v1/schema  request JSON Schema
  GET  /healthz    liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.config()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv := api.New(runner, c.Logger, api.Config{
				Addr:            addr,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
				MaxBodyBytes:    cfg.Server.MaxBodyBytes,
				Layout:          cfg.Layout,
			})
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
