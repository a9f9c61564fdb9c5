package domain

import (
	"path/filepath"
	"strings"
)

// FileKind is the closed set of upload formats. Extension dispatch
// happens once at the boundary; everything downstream switches on the
// tag, never on the filename.
type FileKind int

const (
	// FileKindUnsupported marks anything not in the set below.
	FileKindUnsupported FileKind = iota

	// FileKindCSV is a comma-separated tabular upload.
	FileKindCSV

	// FileKindXLSX is a modern Excel workbook.
	FileKindXLSX

	// FileKindPDF is a page-oriented document; all pages collapse into a
	// single record.
	FileKindPDF
)

// String returns the kind's display name.
func (k FileKind) String() string {
	switch k {
	case FileKindCSV:
		return "csv"
	case FileKindXLSX:
		return "xlsx"
	case FileKindPDF:
		return "pdf"
	default:
		return "unsupported"
	}
}

// KindFromFilename resolves the declared upload kind from the file name.
func KindFromFilename(name string) FileKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FileKindCSV
	case ".xlsx":
		return FileKindXLSX
	case ".pdf":
		return FileKindPDF
	default:
		return FileKindUnsupported
	}
}

// ColumnText carries the extracted body of a non-tabular upload. A PDF
// parses into a single row with only this column.
const ColumnText = "text"

// Row is one record of a parsed upload, keyed by column name.
type Row map[string]string

// Table is the normalised form of a parsed upload: a header and
// row-oriented records. A PDF parses into a single-row table.
type Table struct {
	// Columns is the header, in file order.
	Columns []string

	// Rows are the records, in file order.
	Rows []Row
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
