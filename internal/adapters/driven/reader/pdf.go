package reader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

// parsePDF extracts the plain text of every page into a single-row
// table. Downstream treats the whole document as one record.
func parsePDF(content []byte) (*domain.Table, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, fmt.Errorf("pdf contains no extractable text")
	}

	return &domain.Table{
		Columns: []string{domain.ColumnText},
		Rows:    []domain.Row{{domain.ColumnText: text}},
	}, nil
}
