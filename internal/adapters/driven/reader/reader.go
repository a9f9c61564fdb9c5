// Package reader parses raw upload bytes into row-oriented tables.
// One parser per file kind; dispatch is a map lookup so adding a format
// means adding a parser, not another switch.
package reader

import (
	"fmt"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TableReader = (*Reader)(nil)

// parserFunc parses one upload format into a table.
type parserFunc func(content []byte) (*domain.Table, error)

// Reader dispatches parsing by file kind.
type Reader struct {
	parsers map[domain.FileKind]parserFunc
}

// New creates a reader supporting csv, xlsx and pdf uploads.
func New() *Reader {
	return &Reader{
		parsers: map[domain.FileKind]parserFunc{
			domain.FileKindCSV:  parseCSV,
			domain.FileKindXLSX: parseXLSX,
			domain.FileKindPDF:  parsePDF,
		},
	}
}

// Read parses the content as the declared kind.
func (r *Reader) Read(content []byte, kind domain.FileKind) (*domain.Table, error) {
	parse, ok := r.parsers[kind]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	table, err := parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", kind, err)
	}
	return table, nil
}

// tableFromRecords converts raw header+data records into a Table.
// Short rows pad with empty strings; extra cells beyond the header are
// dropped.
func tableFromRecords(records [][]string) *domain.Table {
	if len(records) == 0 {
		return &domain.Table{}
	}
	header := records[0]
	table := &domain.Table{
		Columns: header,
		Rows:    make([]domain.Row, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		row := make(domain.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
