package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/docgraph/internal/config"
	"github.com/matzehuels/docgraph/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout cache",
	}
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheInfoCommand())
	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached graph and preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			if cfg.Cache.Backend != config.BackendFile {
				c.out.warning("cache backend is %q; only the file cache can be cleared here", cfg.Cache.Backend)
				return nil
			}
			dir, err := cfg.CacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			n, err := fc.Clear()
			if err != nil {
				return err
			}
			if n == 0 {
				c.out.info("Cache is empty")
				return nil
			}
			c.out.success("Cleared %d cached entries", n)
			c.out.detail("Directory: %s", dir)
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.config().CacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the effective cache settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			c.out.keyValue("backend", cfg.Cache.Backend)
			c.out.keyValue("ttl", cfg.Cache.TTL.String())
			if cfg.Cache.Prefix != "" {
				c.out.keyValue("prefix", cfg.Cache.Prefix)
			}
			switch cfg.Cache.Backend {
			case config.BackendFile:
				dir, err := cfg.CacheDir()
				if err != nil {
					return err
				}
				c.out.keyValue("dir", dir)
			case config.BackendRedis:
				c.out.keyValue("redis", fmt.Sprintf("%s db=%d", cfg.Cache.Redis.Addr, cfg.Cache.Redis.DB))
			}
			return nil
		},
	}
}
