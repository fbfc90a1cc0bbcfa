package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/commentgrid/internal/config"
	"github.com/rshade/commentgrid/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationConfigOptional marks commands that must run even when the config
// file cannot be parsed (they fall back to defaults).
const annotationConfigOptional = "commentgrid/config-optional"

// NewRootCmd creates the root Cobra command for the commentgrid CLI.
// It loads configuration, wires up logging and tracing, and registers the
// browse, page, config and cache subcommands. Running it without a
// subcommand starts the browser.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		browse    browseFlags
	)

	cmd := &cobra.Command{
		Use:          "commentgrid",
		Short:        "Browse remote comments page by page",
		Long:         "commentgrid fetches a comment list once and pages through it in an interactive table.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, browse)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $COMMENTGRID_HOME/config.yaml)")
	browse.register(cmd)

	cmd.AddCommand(NewBrowseCmd(), NewPageCmd(), newConfigCmd(), newCacheCmd())
	return cmd
}

const rootCmdExample = `  # Browse comments interactively
  commentgrid

  # Browse with 50 rows per page and no simulated page delay
  commentgrid browse --page-size 50 --latency 0s

  # Print page 3 as JSON
  commentgrid page --page 3 --output json

  # Initialize configuration
  commentgrid config init

  # Drop cached responses
  commentgrid cache clear`

// loadConfig reads the config file named by --config (or the default path),
// and installs it as the global config.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		if cmd.Annotations[annotationConfigOptional] == "" {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cmd.PrintErrf("Warning: %v, using defaults\n", err)
		cfg = config.Default()
		if path != "" {
			cfg.SetConfigPath(path)
		}
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
