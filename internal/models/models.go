// Package models holds the entities shared across the translation pipeline:
// cardholders, output ledger lines, and the account rules that drive the
// classifier.
package models

import (
	"github.com/shopspring/decimal"
)

// Cardholder is one person with expense activity. DefaultFund is the first
// `|`-separated segment of the directory's fund column and backfills blank
// funds on expense-report rows.
type Cardholder struct {
	ID          string
	DefaultFund string
}

// LedgerLine is one row of the FA accounting import. Expense lines carry the
// negated transaction amount; the trailing payable line per cardholder
// carries the positive sum so each batch nets to zero.
type LedgerLine struct {
	EntryID    int             `csv:"Entry ID"`
	Date       string          `csv:"Transaction Date"`
	Reference  string          `csv:"Reference Number"`
	Account    string          `csv:"G/L Account"`
	Dimension1 string          `csv:"Dimension 1"`
	Dimension2 string          `csv:"Dimension 2"`
	Amount     decimal.Decimal `csv:"Amount"`
	Memo       string          `csv:"Memo"`
}

// Ledger is the ordered output: per cardholder, expense lines followed by at
// most one balancing payable line.
type Ledger []LedgerLine

// BalancingRule is the fixed quadruple stamped onto the payable line of a
// cardholder batch.
type BalancingRule struct {
	Account    string `yaml:"account"`
	Dimension1 string `yaml:"dimension1"`
	Dimension2 string `yaml:"dimension2"`
	Memo       string `yaml:"memo"`
}

// AccountRules collects every business constant the classifier consults.
type AccountRules struct {
	PersonalARAccount string `yaml:"personal_ar_account"`
	PersonalARDim1    string `yaml:"personal_ar_dimension1"`
	PersonalARDim2    string `yaml:"personal_ar_dimension2"`
	PersonalARMemo    string `yaml:"personal_ar_memo"`

	BookTableAccount string `yaml:"book_table_account"`

	APCreditCard    BalancingRule `yaml:"ap_credit_card"`
	APExpenseReport BalancingRule `yaml:"ap_expense_report"`

	SelfPaymentName string `yaml:"self_payment_name"`
}

// DefaultAccountRules returns the rule set used when no override file is
// configured.
func DefaultAccountRules() AccountRules {
	return AccountRules{
		PersonalARAccount: DefaultPersonalARAccount,
		PersonalARDim1:    DefaultPersonalARDim1,
		PersonalARDim2:    DefaultPersonalARDim2,
		PersonalARMemo:    DefaultPersonalARMemo,
		BookTableAccount:  DefaultBookTableAccount,
		APCreditCard: BalancingRule{
			Account:    DefaultAPCreditCardAccount,
			Dimension1: "GEN",
			Dimension2: "",
			Memo:       DefaultAPCreditCardMemo,
		},
		APExpenseReport: BalancingRule{
			Account:    DefaultAPExpenseReportAccount,
			Dimension1: "GEN",
			Dimension2: "",
			Memo:       DefaultAPExpenseReportMemo,
		},
		SelfPaymentName: DefaultSelfPaymentName,
	}
}

// IsPayableMemo reports whether a memo marks a balancing payable line.
// Reconciliation uses it to exclude payable lines from the output total.
func (r AccountRules) IsPayableMemo(memo string) bool {
	return memo == r.APCreditCard.Memo || memo == r.APExpenseReport.Memo
}
