package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/commentgrid/internal/cache"
	"github.com/rshade/commentgrid/internal/comments"
	"github.com/rshade/commentgrid/internal/config"
	"github.com/rshade/commentgrid/internal/logging"
	"github.com/rshade/commentgrid/internal/tui"
)

// sourceFlags are the fetch overrides shared by browse and page.
type sourceFlags struct {
	endpoint string
	pageSize int
	noCache  bool
	plain    bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "comment endpoint URL (overrides source.endpoint)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "rows per page (overrides pagination.page_size)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "force plain, unstyled output")
}

// apply copies explicitly set flags onto a copy of cfg and validates it.
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	out := *cfg
	if cmd.Flags().Changed("endpoint") {
		out.Source.Endpoint = f.endpoint
	}
	if cmd.Flags().Changed("page-size") {
		out.Pagination.PageSize = f.pageSize
	}
	if f.noCache {
		out.Cache.Enabled = false
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// buildSource assembles the HTTP source and, when enabled, the cache in front of it.
func buildSource(ctx context.Context, cfg *config.Config) comments.Source {
	log := logging.FromContext(ctx)

	httpSrc := comments.NewHTTPSource(comments.HTTPConfig{
		Endpoint:          cfg.Source.Endpoint,
		Timeout:           cfg.Source.Timeout,
		UserAgent:         cfg.Source.UserAgent,
		RequestsPerSecond: cfg.Source.RequestsPerSecond,
		Breaker:           comments.DefaultBreakerConfig(),
	}, *log)

	if !cfg.Cache.Enabled {
		return httpSrc
	}

	store, err := cache.NewStore(cfg.Cache.Directory, true, cfg.Cache.TTLSeconds)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("response cache unavailable, fetching directly")
		return httpSrc
	}
	return comments.NewCachedSource(httpSrc, store, cfg.Source.Endpoint)
}

// fetchTimeout bounds the one-shot fetch of non-interactive commands.
func fetchTimeout(cfg *config.Config) time.Duration {
	return cfg.Source.Timeout + time.Second
}

// outputMode picks the rendering mode for cmd. Output redirected away from
// the process stdout is always plain.
func outputMode(cmd *cobra.Command, plain bool) tui.OutputMode {
	if f, ok := cmd.OutOrStdout().(*os.File); !ok || f != os.Stdout {
		return tui.OutputModePlain
	}
	return tui.DetectOutputMode(false, false, plain)
}
