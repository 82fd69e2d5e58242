// Package cmd defines and implements the CLI commands for the
// visibility-scanner executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aiseoaudit/visibility-scanner/internal/config"
	collyfetcher "github.com/aiseoaudit/visibility-scanner/internal/fetcher/colly"
	"github.com/aiseoaudit/visibility-scanner/internal/logging"
	"github.com/aiseoaudit/visibility-scanner/internal/scanner"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visibility-scanner",
		Short: "Checks whether AI crawlers can access and index a website.",
		Long: `visibility-scanner inspects a single public website and reports whether
an AI-content crawler (GPTBot by default) is likely able to access and index
it: robots.txt blocking, meta robots directives, bot-protection headers,
sitemap presence, and JSON-LD structured-data coverage.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newScanCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the shared logger.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return cfg, logger, nil
}

// buildScanner assembles the fetcher and scanner from config.
func buildScanner(cfg config.Config, logger *zap.Logger) *scanner.Scanner {
	fetcher := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.Scanner.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
	return scanner.New(fetcher, scanner.Config{
		CrawlerToken:    cfg.Scanner.CrawlerToken,
		ExpectedSchemas: cfg.Scanner.ExpectedSchemas,
	}, logger)
}
