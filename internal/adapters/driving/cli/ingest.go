package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var ingestQueries bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a product dataset (csv, xlsx or pdf)",
	Long: `Parses the given file and stores its rows as product documents.
CSV and XLSX files produce one document per valid row; a PDF is stored
as a single document. Re-uploading replaces documents with the same id.

With --queries the file is archived into the customer-query collection
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestQueries, "queries", false, "archive as customer queries instead of products")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}
	if err := requireAdmin(); err != nil {
		return err
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ctx := context.Background()
	filename := filepath.Base(path)

	ingest := ingestService.IngestProducts
	if ingestQueries {
		ingest = ingestService.IngestQueries
	}

	report, err := ingest(ctx, filename, content)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d documents from %s (%s)\n", report.Ingested, filename, report.Kind)
	if report.Skipped > 0 {
		cmd.Printf("Skipped %d invalid rows\n", report.Skipped)
	}
	if report.Overwritten > 0 {
		cmd.Printf("Overwrote %d existing documents\n", report.Overwritten)
	}
	return nil
}
