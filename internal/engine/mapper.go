// Package engine is the translation core: it maps export records to FA
// ledger lines, aggregates per-cardholder batches with balancing payable
// entries, and reconciles input and output totals. It performs no I/O.
package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
	"github.com/disciplemakers/VIS-to-FA/internal/schema"
)

// Outcome is the result of classifying one record for one cardholder:
// either Skip, or a mapped ledger line plus the raw signed amount that
// feeds the cardholder sum.
type Outcome struct {
	Skip bool
	Line models.LedgerLine // entry id, date, reference filled in by the aggregator
	Raw  decimal.Decimal
}

var skip = Outcome{Skip: true}

type mapper struct {
	rules models.AccountRules
	log   logging.Logger
}

// mapLine applies the classification rules in their fixed order. warnBlank
// suppresses the blank-amount warning on every pass after the first, since
// the aggregator rescans the full record list once per cardholder.
func (m *mapper) mapLine(rec schema.Record, holder models.Cardholder, line int, warnBlank bool) (Outcome, error) {
	// Rule 1: blank amounts are never processed. Expected and silent for
	// the organization's self-payment rows; everything else gets a warning.
	if strings.TrimSpace(rec.Amount()) == "" {
		expected := rec.Approver() == "" && rec.CardholderName() == m.rules.SelfPaymentName
		if !expected && warnBlank {
			m.log.Warn("Transaction has no amount, skipping",
				logging.F("line", line),
				logging.F("date", rec.TransactionDate()),
				logging.F("cardholder", rec.CardholderID()),
				logging.F("fund", rec.Fund()),
				logging.F("description", rec.Description()))
		}
		return skip, nil
	}

	// Rule 2: only this cardholder's records belong to the current batch.
	if rec.CardholderID() != holder.ID {
		return skip, nil
	}

	// Rule 3: approved data always carries an expense account.
	account := strings.TrimSpace(rec.Account())
	if account == "" {
		return skip, &ledgererror.MissingFieldError{
			Field:      schema.FieldAccount.String(),
			Line:       line,
			Cardholder: holder.ID,
		}
	}

	dim1, dim2, err := m.dimensions(rec, holder, account, line)
	if err != nil {
		return skip, err
	}

	raw, perr := models.ParseAmount(rec.Amount())
	if perr != nil {
		return skip, &ledgererror.AmountError{Line: line, Value: rec.Amount(), Err: perr}
	}

	return Outcome{
		Line: models.LedgerLine{
			Account:    account,
			Dimension1: dim1,
			Dimension2: dim2,
			Amount:     raw.Neg(), // expense lines post as credits against the payable
			Memo:       m.memo(rec, account),
		},
		Raw: raw,
	}, nil
}

// dimensions resolves the dimension pair, special accounts first.
func (m *mapper) dimensions(rec schema.Record, holder models.Cardholder, account string, line int) (string, string, error) {
	switch account {
	case m.rules.PersonalARAccount:
		return m.rules.PersonalARDim1, m.rules.PersonalARDim2, nil
	case m.rules.BookTableAccount:
		return "", "", nil
	}

	fund := strings.TrimSpace(rec.Fund())
	if fund == "" {
		if rec.Type() == schema.ExpenseReport {
			fund = holder.DefaultFund
		} else {
			return "", "", &ledgererror.MissingFieldError{
				Field:      schema.FieldFund.String(),
				Line:       line,
				Cardholder: holder.ID,
			}
		}
	}
	return fund, rec.Budget(), nil
}

func (m *mapper) memo(rec schema.Record, account string) string {
	switch r := rec.(type) {
	case schema.CreditCardRecord:
		if account == m.rules.PersonalARAccount {
			return fmt.Sprintf("%s %s posted %s",
				m.rules.PersonalARMemo, r.TransactionDate(), r.SecondaryDate())
		}
		return fmt.Sprintf("%s bought (%s) from %q on %s posted %s / %s",
			r.CardholderName(), r.Description(), truncate(r.Seller(), models.SellerMemoLimit),
			r.TransactionDate(), r.SecondaryDate(), r.Approver())
	case schema.ExpenseReportRecord:
		return fmt.Sprintf("%s bought (%s) on %s submitted %s in Expense Report %q / %s",
			r.CardholderName(), r.Description(), r.TransactionDate(),
			r.SecondaryDate(), r.ReportName(), r.Approver())
	default:
		return ""
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
