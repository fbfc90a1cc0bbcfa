package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/commentgrid/internal/cache"
	"github.com/rshade/commentgrid/internal/config"
)

// newCacheCmd creates the cache command group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Response cache commands"}
	cmd.AddCommand(newCacheClearCmd(), newCachePruneCmd(), newCacheStatsCmd())
	return cmd
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache()
			if err != nil {
				return err
			}
			removed, err := store.Clear()
			if err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			logger.Info().Ctx(cmd.Context()).Int("removed", removed).Msg("cache cleared")
			cmd.Printf("Removed %d cached response(s) from %s\n", removed, store.Directory())
			return nil
		},
	}
}

func newCachePruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache()
			if err != nil {
				return err
			}
			removed, err := store.CleanupExpired()
			if err != nil {
				return fmt.Errorf("failed to prune cache: %w", err)
			}
			cmd.Printf("Removed %d expired response(s)\n", removed)
			return nil
		},
	}
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache location and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache()
			if err != nil {
				return err
			}
			count, size, err := store.Stats()
			if err != nil {
				return fmt.Errorf("failed to read cache: %w", err)
			}
			cmd.Printf("Directory: %s\n", store.Directory())
			cmd.Printf("Entries: %d\n", count)
			cmd.Printf("Size: %d bytes\n", size)
			cmd.Printf("TTL: %s\n", cache.FormatDuration(secondsToDuration(store.TTLSeconds())))
			return nil
		},
	}
}

// openCache opens the configured cache directory regardless of cache.enabled,
// so maintenance works even while caching is switched off.
func openCache() (*cache.Store, error) {
	cfg := config.GetGlobalConfig()
	if cfg.Cache.Directory == "" {
		return nil, errors.New("cache.directory is not set")
	}
	store, err := cache.NewStore(cfg.Cache.Directory, true, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return store, nil
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
