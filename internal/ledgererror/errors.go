// Package ledgererror defines the typed errors raised during translation.
// Every error here is fatal for the run: callers report it and persist
// nothing.
package ledgererror

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatError reports an input whose header row does not carry the
// expected sentinel, which usually means the wrong export was supplied.
type FormatError struct {
	Input string
	Got   string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unexpected header %q, want %q", e.Input, e.Got, e.Want)
}

// EmptyInputError reports an input with no usable data rows.
type EmptyInputError struct {
	Input string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no usable rows", e.Input)
}

// MissingFieldError reports a record that passed the blank-amount and
// ownership checks but lacks a field the mapping rules require.
type MissingFieldError struct {
	Field      string
	Line       int
	Cardholder string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("line %d: record for cardholder %s has no %s",
		e.Line, e.Cardholder, e.Field)
}

// AmountError reports an amount cell that survived standardization but
// still failed to parse as a decimal.
type AmountError struct {
	Line  int
	Value string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("line %d: cannot parse amount %q: %v", e.Line, e.Value, e.Err)
}

func (e *AmountError) Unwrap() error {
	return e.Err
}

// ReconciliationError reports a run whose ledger does not account for
// every cent of the export.
type ReconciliationError struct {
	InputTotal  decimal.Decimal
	OutputTotal decimal.Decimal
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("totals do not reconcile: input %s, output %s",
		e.InputTotal.StringFixed(2), e.OutputTotal.StringFixed(2))
}

// SchemaError reports a field that has no column in the given layout.
type SchemaError struct {
	RecordType string
	Field      string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("layout %s has no %s column", e.RecordType, e.Field)
}
