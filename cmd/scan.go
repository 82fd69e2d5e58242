package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newScanCmd creates the 'scan' subcommand: a one-shot scan of a single URL,
// printing the report as JSON on stdout.
func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <url>",
		Short: "Runs a single visibility scan and prints the report",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	report := buildScanner(cfg, logger).Scan(cmd.Context(), args[0])

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
