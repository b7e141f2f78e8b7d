package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var expired bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached documents and artifacts",
		Long: `Clear removes every cached document and artifact. With --expired, only
entries past their TTL (and unreadable ones) are removed from the file cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			url := c.config().Cache.URL
			store, err := cache.Open(cmd.Context(), url, dir)
			if err != nil {
				return err
			}
			defer store.Close()

			var count int
			switch s := store.(type) {
			case *cache.FileCache:
				if expired {
					count, err = s.Prune(time.Now())
				} else {
					count, err = s.Clear()
				}
			case *cache.RedisCache:
				if expired {
					printInfo("Redis expires entries itself")
					return nil
				}
				count, err = s.Clear(cmd.Context(), appName+":")
			default:
				printInfo("Caching is disabled")
				return nil
			}
			if err != nil {
				return err
			}

			if count == 0 {
				printInfo("Nothing to remove")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", cache.Describe(url, dir))
			return nil
		},
	}
	cmd.Flags().BoolVar(&expired, "expired", false, "only remove expired entries")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if url := c.config().Cache.URL; url != "" {
				fmt.Println(cache.Describe(url, dir))
				return nil
			}
			fmt.Println(dir)
			return nil
		},
	}
}
