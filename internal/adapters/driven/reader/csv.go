package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// parseCSV reads the upload as a comma-separated table with the first
// row as header.
func parseCSV(content []byte) (*domain.Table, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1 // ragged rows handled during mapping
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return tableFromRecords(records), nil
}
