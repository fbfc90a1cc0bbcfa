package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/commentgrid/internal/config"
	"github.com/rshade/commentgrid/internal/pagination"
	"github.com/rshade/commentgrid/internal/tui"
)

// NewPageCmd creates the page command, which prints a single page.
func NewPageCmd() *cobra.Command {
	var (
		flags  sourceFlags
		params = pagination.NewParams()
		output string
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of comments",
		Long: `Fetches the comment list and prints a single page as a table, JSON or YAML.

Structured output carries the page metadata and the page-number window next
to the records.`,
		Example: `  # First page as a table
  commentgrid page

  # Page 4 with 10 rows, as JSON
  commentgrid page --page 4 --page-size 10 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.apply(cmd, config.GetGlobalConfig())
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			params.PageSize = cfg.Pagination.PageSize
			if err := params.Validate(); err != nil {
				return err
			}

			format := output
			if format == "" {
				format = cfg.Output.DefaultFormat
			}

			mode := outputMode(cmd, flags.plain)
			if mode == tui.OutputModeInteractive {
				mode = tui.OutputModeStyled
			}
			return printPage(cmd, cfg, *params, format, mode)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&params.Page, "page", pagination.DefaultPage, "page number to print (1-based)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml (default output.default_format)")
	return cmd
}
