package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/commentgrid/internal/cache"
	"github.com/rshade/commentgrid/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- Schema version compatibility
- Endpoint URL, timeout and request rate
- Page size, footer width and page latency ranges
- Cache TTL, log format and default output format`,
		Example: `  # Validate current configuration
  commentgrid config validate

  # Validate and show detailed information
  commentgrid config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Version: %s\n", cfg.Version)
	cmd.Printf("  Endpoint: %s\n", cfg.Source.Endpoint)
	cmd.Printf("  Timeout: %s\n", cfg.Source.Timeout)
	cmd.Printf("  Requests per second: %g\n", cfg.Source.RequestsPerSecond)
	cmd.Printf("  Page size: %d\n", cfg.Pagination.PageSize)
	cmd.Printf("  Max buttons: %d\n", cfg.Pagination.MaxButtons)
	cmd.Printf("  Page latency: %s\n", cfg.Pagination.PageLatency)
	if cfg.Cache.Enabled {
		cmd.Printf("  Cache: %s (ttl %s)\n", cfg.Cache.Directory,
			cache.FormatDuration(secondsToDuration(cfg.Cache.TTLSeconds)))
	} else {
		cmd.Println("  Cache: disabled")
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
