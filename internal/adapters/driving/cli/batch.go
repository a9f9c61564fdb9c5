package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

var batchDryRun bool

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Process a customer-query spreadsheet into email replies",
	Long: `Reads a csv or xlsx file with "Customer Email" and "Query" columns,
classifies each query, and sends a templated reply per row. Rows with
missing values are skipped; a failed send is recorded and the batch
continues.

With --dry-run replies are printed instead of sent.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "print replies instead of sending them")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	responder := responderService
	if batchDryRun {
		responder = dryRunResponder
	}
	if responder == nil {
		return errors.New("responder service not configured")
	}
	if err := requireAdmin(); err != nil {
		return err
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	report, err := responder.ProcessBatch(context.Background(), filepath.Base(path), content)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	cmd.Printf("Batch %s: %d sent, %d skipped, %d failed\n",
		report.ID, report.Sent, report.Skipped, report.Failed)
	for _, row := range report.Rows {
		if row.Status == domain.RowSent {
			continue
		}
		cmd.Printf("  row %d (%s): %s", row.Line, row.Email, row.Status)
		if row.Err != "" {
			cmd.Printf(" - %s", row.Err)
		}
		cmd.Println()
	}
	return nil
}
