package reader

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// parseXLSX reads the first sheet of an Excel workbook, first row as
// header.
func parseXLSX(content []byte) (*domain.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return tableFromRecords(records), nil
}
