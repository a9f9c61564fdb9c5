package driven

import "github.com/oakline-labs/deskmate/internal/core/domain"

// TableReader parses raw upload bytes into a row-oriented table.
// Kind dispatch happens once at the boundary; FileKindUnsupported yields
// domain.ErrUnsupportedType and no partial parse.
type TableReader interface {
	// Read parses the content as the declared kind. A PDF parses into a
	// single-row table carrying the whole extracted text.
	Read(content []byte, kind domain.FileKind) (*domain.Table, error)
}
