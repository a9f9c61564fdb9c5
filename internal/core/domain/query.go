package domain

import (
	"fmt"
	"strings"
)

// Customer query dataset column names.
const (
	ColumnCustomerEmail = "Customer Email"
	ColumnQuery         = "Query"
)

// CustomerQuery is one validated row of an uploaded customer-query
// spreadsheet.
type CustomerQuery struct {
	// Email is the destination address for the reply.
	Email string

	// Text is the free-form query.
	Text string
}

// CustomerQueryFromRow builds a CustomerQuery from a spreadsheet row.
// A row missing either value yields ErrMissingField; the caller skips the
// row rather than fabricating a reply.
func CustomerQueryFromRow(row Row) (CustomerQuery, error) {
	email := strings.TrimSpace(row[ColumnCustomerEmail])
	if email == "" {
		return CustomerQuery{}, fmt.Errorf("%w: %s", ErrMissingField, ColumnCustomerEmail)
	}
	text := strings.TrimSpace(row[ColumnQuery])
	if text == "" {
		return CustomerQuery{}, fmt.Errorf("%w: %s", ErrMissingField, ColumnQuery)
	}
	return CustomerQuery{Email: email, Text: text}, nil
}

// HasQueryColumns reports whether a table carries the columns required
// for batch processing. Checked once up front; a table without them
// aborts the whole batch.
func HasQueryColumns(t *Table) bool {
	return t.HasColumn(ColumnCustomerEmail) && t.HasColumn(ColumnQuery)
}
