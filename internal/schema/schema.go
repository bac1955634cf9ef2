// Package schema describes the two VIS export layouts as fixed, zero-based
// column positions. Records are typed wrappers over a raw row, so a field
// that only exists for one layout (seller, report name) can only be asked
// of the record type that has it.
package schema

import (
	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
)

// RecordType selects the input layout and the rule subset that applies.
type RecordType int

const (
	CreditCard RecordType = iota
	ExpenseReport
)

// String returns the flag-style name of the record type.
func (rt RecordType) String() string {
	switch rt {
	case CreditCard:
		return "credit-card"
	case ExpenseReport:
		return "expense-report"
	default:
		return "unknown"
	}
}

// Field names one logical column of an export layout.
type Field int

const (
	FieldCardholderID Field = iota
	FieldCardholderName
	FieldSeller
	FieldReportName
	FieldTransactionDate
	FieldSecondaryDate // posted date (card) or submitted date (report)
	FieldBillingPeriodEnd
	FieldAmount
	FieldAccount
	FieldFund
	FieldBudget
	FieldDescription
	FieldApprover
)

var fieldNames = map[Field]string{
	FieldCardholderID:     "cardholder id",
	FieldCardholderName:   "cardholder name",
	FieldSeller:           "seller",
	FieldReportName:       "report name",
	FieldTransactionDate:  "transaction date",
	FieldSecondaryDate:    "secondary date",
	FieldBillingPeriodEnd: "billing period end",
	FieldAmount:           "amount",
	FieldAccount:          "account",
	FieldFund:             "fund",
	FieldBudget:           "budget",
	FieldDescription:      "description",
	FieldApprover:         "approver",
}

// String returns the human-readable field name used in error messages.
func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// Column layouts. These mirror the export tooling and never change at
// runtime.
var creditCardLayout = map[Field]int{
	FieldCardholderID:     0,
	FieldCardholderName:   1,
	FieldSeller:           2,
	FieldTransactionDate:  3,
	FieldSecondaryDate:    4,
	FieldBillingPeriodEnd: 5,
	FieldAmount:           6,
	FieldAccount:          7,
	FieldFund:             8,
	FieldBudget:           9,
	FieldDescription:      10,
	FieldApprover:         11,
}

var expenseReportLayout = map[Field]int{
	FieldCardholderID:    0,
	FieldCardholderName:  1,
	FieldReportName:      2,
	FieldTransactionDate: 3,
	FieldSecondaryDate:   4,
	FieldAmount:          5,
	FieldAccount:         6,
	FieldFund:            7,
	FieldBudget:          8,
	FieldDescription:     9,
	FieldApprover:        10,
}

// Index returns the zero-based column of a field in the layout of rt. A
// field absent from the layout is a SchemaError; the typed accessors below
// never trigger it.
func Index(rt RecordType, f Field) (int, error) {
	var layout map[Field]int
	switch rt {
	case CreditCard:
		layout = creditCardLayout
	case ExpenseReport:
		layout = expenseReportLayout
	default:
		return 0, &ledgererror.SchemaError{RecordType: rt.String(), Field: f.String()}
	}

	idx, ok := layout[f]
	if !ok {
		return 0, &ledgererror.SchemaError{RecordType: rt.String(), Field: f.String()}
	}
	return idx, nil
}

// Record is the field surface shared by both layouts. Rows shorter than the
// layout read as empty fields; downstream rules decide whether blank is
// permitted.
type Record interface {
	Type() RecordType
	CardholderID() string
	CardholderName() string
	Account() string
	Fund() string
	Budget() string
	Description() string
	TransactionDate() string
	SecondaryDate() string
	Amount() string
	Approver() string
}

func cell(row []string, rt RecordType, f Field) string {
	idx, err := Index(rt, f)
	if err != nil {
		// Unreachable through the typed accessors.
		return ""
	}
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// CreditCardRecord is one row of the credit-card charge export.
type CreditCardRecord struct {
	row []string
}

// NewCreditCardRecord wraps a raw export row.
func NewCreditCardRecord(row []string) CreditCardRecord {
	return CreditCardRecord{row: row}
}

func (r CreditCardRecord) Type() RecordType        { return CreditCard }
func (r CreditCardRecord) CardholderID() string    { return cell(r.row, CreditCard, FieldCardholderID) }
func (r CreditCardRecord) CardholderName() string  { return cell(r.row, CreditCard, FieldCardholderName) }
func (r CreditCardRecord) Account() string         { return cell(r.row, CreditCard, FieldAccount) }
func (r CreditCardRecord) Fund() string            { return cell(r.row, CreditCard, FieldFund) }
func (r CreditCardRecord) Budget() string          { return cell(r.row, CreditCard, FieldBudget) }
func (r CreditCardRecord) Description() string     { return cell(r.row, CreditCard, FieldDescription) }
func (r CreditCardRecord) TransactionDate() string { return cell(r.row, CreditCard, FieldTransactionDate) }
func (r CreditCardRecord) SecondaryDate() string   { return cell(r.row, CreditCard, FieldSecondaryDate) }
func (r CreditCardRecord) Amount() string          { return cell(r.row, CreditCard, FieldAmount) }
func (r CreditCardRecord) Approver() string        { return cell(r.row, CreditCard, FieldApprover) }

// Seller is the merchant name; only card charges have one.
func (r CreditCardRecord) Seller() string { return cell(r.row, CreditCard, FieldSeller) }

// BillingPeriodEnd is the statement cutoff date of the charge.
func (r CreditCardRecord) BillingPeriodEnd() string {
	return cell(r.row, CreditCard, FieldBillingPeriodEnd)
}

// ExpenseReportRecord is one row of the expense-report export.
type ExpenseReportRecord struct {
	row []string
}

// NewExpenseReportRecord wraps a raw export row.
func NewExpenseReportRecord(row []string) ExpenseReportRecord {
	return ExpenseReportRecord{row: row}
}

func (r ExpenseReportRecord) Type() RecordType       { return ExpenseReport }
func (r ExpenseReportRecord) CardholderID() string   { return cell(r.row, ExpenseReport, FieldCardholderID) }
func (r ExpenseReportRecord) CardholderName() string { return cell(r.row, ExpenseReport, FieldCardholderName) }
func (r ExpenseReportRecord) Account() string        { return cell(r.row, ExpenseReport, FieldAccount) }
func (r ExpenseReportRecord) Fund() string           { return cell(r.row, ExpenseReport, FieldFund) }
func (r ExpenseReportRecord) Budget() string         { return cell(r.row, ExpenseReport, FieldBudget) }
func (r ExpenseReportRecord) Description() string    { return cell(r.row, ExpenseReport, FieldDescription) }
func (r ExpenseReportRecord) TransactionDate() string {
	return cell(r.row, ExpenseReport, FieldTransactionDate)
}
func (r ExpenseReportRecord) SecondaryDate() string { return cell(r.row, ExpenseReport, FieldSecondaryDate) }
func (r ExpenseReportRecord) Amount() string        { return cell(r.row, ExpenseReport, FieldAmount) }
func (r ExpenseReportRecord) Approver() string      { return cell(r.row, ExpenseReport, FieldApprover) }

// ReportName is the expense report the entry was submitted under.
func (r ExpenseReportRecord) ReportName() string { return cell(r.row, ExpenseReport, FieldReportName) }

// Wrap turns a raw row into the Record for the given type.
func Wrap(rt RecordType, row []string) Record {
	if rt == ExpenseReport {
		return NewExpenseReportRecord(row)
	}
	return NewCreditCardRecord(row)
}
