package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
)

func TestIndex_SharedFields(t *testing.T) {
	for _, rt := range []RecordType{CreditCard, ExpenseReport} {
		for _, f := range []Field{
			FieldCardholderID, FieldCardholderName, FieldTransactionDate,
			FieldSecondaryDate, FieldAmount, FieldAccount, FieldFund,
			FieldBudget, FieldDescription, FieldApprover,
		} {
			_, err := Index(rt, f)
			assert.NoError(t, err, "%s should have %s", rt, f)
		}
	}
}

func TestIndex_TypeSpecificFields(t *testing.T) {
	_, err := Index(ExpenseReport, FieldSeller)
	var schemaErr *ledgererror.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "expense-report", schemaErr.RecordType)
	assert.Equal(t, "seller", schemaErr.Field)

	_, err = Index(CreditCard, FieldReportName)
	assert.ErrorAs(t, err, &schemaErr)

	_, err = Index(ExpenseReport, FieldBillingPeriodEnd)
	assert.ErrorAs(t, err, &schemaErr)
}

func TestCreditCardRecordAccessors(t *testing.T) {
	rec := NewCreditCardRecord([]string{
		"A1", "Ada Arnold", "Office Depot", "08/02/2026", "08/04/2026",
		"08/31/2026", "100.00", "54000", "GEN", "OFFICE", "paper", "B. Boss",
	})

	assert.Equal(t, CreditCard, rec.Type())
	assert.Equal(t, "A1", rec.CardholderID())
	assert.Equal(t, "Ada Arnold", rec.CardholderName())
	assert.Equal(t, "Office Depot", rec.Seller())
	assert.Equal(t, "08/02/2026", rec.TransactionDate())
	assert.Equal(t, "08/04/2026", rec.SecondaryDate())
	assert.Equal(t, "08/31/2026", rec.BillingPeriodEnd())
	assert.Equal(t, "100.00", rec.Amount())
	assert.Equal(t, "54000", rec.Account())
	assert.Equal(t, "GEN", rec.Fund())
	assert.Equal(t, "OFFICE", rec.Budget())
	assert.Equal(t, "paper", rec.Description())
	assert.Equal(t, "B. Boss", rec.Approver())
}

func TestExpenseReportRecordAccessors(t *testing.T) {
	rec := NewExpenseReportRecord([]string{
		"A1", "Ada Arnold", "July Travel", "07/14/2026", "07/20/2026",
		"42.50", "54100", "MISSIONS", "TRAVEL", "train ticket", "B. Boss",
	})

	assert.Equal(t, ExpenseReport, rec.Type())
	assert.Equal(t, "July Travel", rec.ReportName())
	assert.Equal(t, "07/20/2026", rec.SecondaryDate())
	assert.Equal(t, "MISSIONS", rec.Fund())
}

func TestShortRowsReadAsBlank(t *testing.T) {
	rec := NewCreditCardRecord([]string{"A1", "Ada Arnold"})
	assert.Equal(t, "A1", rec.CardholderID())
	assert.Empty(t, rec.Amount())
	assert.Empty(t, rec.Approver())
}

func TestParseRecordType(t *testing.T) {
	for input, want := range map[string]RecordType{
		"credit-card":    CreditCard,
		"CC":             CreditCard,
		"expense-report": ExpenseReport,
		"er":             ExpenseReport,
	} {
		got, err := ParseRecordType(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRecordType("pdf")
	assert.Error(t, err)
}
