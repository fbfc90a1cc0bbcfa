package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/commentgrid/internal/comments"
	"github.com/rshade/commentgrid/internal/config"
	"github.com/rshade/commentgrid/internal/logging"
	"github.com/rshade/commentgrid/internal/pagination"
	"github.com/rshade/commentgrid/internal/tui"
)

// browseFlags extends the source flags with the simulated page delay.
type browseFlags struct {
	sourceFlags
	latency time.Duration
}

func (f *browseFlags) register(cmd *cobra.Command) {
	f.sourceFlags.register(cmd)
	cmd.Flags().DurationVar(&f.latency, "latency", 0,
		"delay before each page change completes (overrides pagination.page_latency)")
}

func (f *browseFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	out, err := f.sourceFlags.apply(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("latency") {
		out.Pagination.PageLatency = f.latency
		if err := out.Validate(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NewBrowseCmd creates the browse command, the interactive comment browser.
func NewBrowseCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse comments in an interactive table",
		Long: `Fetches the comment list once and shows it page by page.

Each page change waits for pagination.page_latency before the new page is
shown; further requests made while it is loading are ignored. When stdout is
not a terminal the first page is printed instead.`,
		Example: `  # Browse with defaults from the config file
  commentgrid browse

  # Smaller pages against a local endpoint
  commentgrid browse --endpoint http://localhost:8080/comments --page-size 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runBrowse(cmd *cobra.Command, flags browseFlags) error {
	cfg, err := flags.apply(cmd, config.GetGlobalConfig())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := cmd.Context()
	mode := outputMode(cmd, flags.plain)
	logger.Debug().Ctx(ctx).Str("mode", mode.String()).Msg("output mode selected")

	if mode != tui.OutputModeInteractive {
		params := pagination.Params{Page: pagination.DefaultPage, PageSize: cfg.Pagination.PageSize}
		return printPage(cmd, cfg, params, cfg.Output.DefaultFormat, mode)
	}
	return runInteractiveBrowser(ctx, cfg)
}

// runInteractiveBrowser runs the Bubble Tea program. Logs that would go to the
// terminal are discarded while it owns the screen.
func runInteractiveBrowser(ctx context.Context, cfg *config.Config) error {
	if !loggingToFile(ctx) {
		ctx = logging.Discard().WithContext(ctx)
	}

	model, err := tui.NewCommentsModel(ctx, buildSource(ctx, cfg), tui.Options{
		PageSize:   cfg.Pagination.PageSize,
		MaxButtons: cfg.Pagination.MaxButtons,
		Loader:     pagination.SimulatedLatency(cfg.Pagination.PageLatency),
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

// printPage fetches the records and renders the page params selects to stdout.
func printPage(cmd *cobra.Command, cfg *config.Config, params pagination.Params, format string, mode tui.OutputMode) error {
	if !tui.IsValidFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout(cfg))
	defer cancel()

	records := comments.Load(ctx, buildSource(ctx, cfg))

	state, err := pagination.NewPageState(len(records), params.PageSize)
	if err != nil {
		return err
	}
	if !state.InRange(params.Page) {
		return fmt.Errorf("%w: page %d, have 1..%d", pagination.ErrPageOutOfRange, params.Page, state.DisplayPages())
	}
	state.CurrentPage = params.Page

	logger.Debug().Ctx(ctx).
		Int("page", params.Page).
		Int("offset", params.Offset()).
		Int("records", len(records)).
		Msg("printing page")

	view := tui.NewPageView(records, state, cfg.Pagination.MaxButtons)
	return tui.RenderPage(cmd.OutOrStdout(), format, view, mode)
}
