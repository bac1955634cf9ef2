package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/disciplemakers/VIS-to-FA/internal/models"
	"github.com/disciplemakers/VIS-to-FA/internal/schema"
)

// numbered is a raw export record paired with its 1-based line number in
// the source file (header is line 1).
type numbered struct {
	rec  schema.Record
	line int
}

// counters is the numbering state threaded through the per-cardholder
// batches. Both values advance together, and only for cardholders that
// emitted output.
type counters struct {
	entryID   int
	refSuffix int
}

// aggregate walks the directory in order, rescanning the full record list
// for each cardholder, and returns the finished ledger.
func aggregate(holders []models.Cardholder, records []numbered, m *mapper, p Params) (models.Ledger, error) {
	ledger := models.Ledger{}
	state := counters{entryID: 1, refSuffix: p.ReferenceStart}

	for i, holder := range holders {
		warnBlank := i == 0

		var lines []models.LedgerLine
		sum := decimal.Zero
		for _, nr := range records {
			outcome, err := m.mapLine(nr.rec, holder, nr.line, warnBlank)
			if err != nil {
				return nil, err
			}
			if outcome.Skip {
				continue
			}
			sum = sum.Add(outcome.Raw)
			lines = append(lines, outcome.Line)
		}

		if len(lines) == 0 {
			// No qualifying transactions: no entry id, no reference consumed.
			continue
		}

		reference := fmt.Sprintf("%s-%d", p.ReferencePrefix, state.refSuffix)
		for _, line := range lines {
			line.EntryID = state.entryID
			line.Date = p.PostingDate
			line.Reference = reference
			ledger = append(ledger, line)
		}

		if !sum.IsZero() {
			ledger = append(ledger, balancingLine(m.rules, p, state, reference, sum))
		}

		state.entryID++
		state.refSuffix++
	}

	return ledger, nil
}

// balancingLine builds the payable entry that offsets a cardholder's
// pre-negated expense lines.
func balancingLine(rules models.AccountRules, p Params, state counters, reference string, sum decimal.Decimal) models.LedgerLine {
	rule := rules.APCreditCard
	if p.RecordType == schema.ExpenseReport {
		rule = rules.APExpenseReport
	}
	return models.LedgerLine{
		EntryID:    state.entryID,
		Date:       p.PostingDate,
		Reference:  reference,
		Account:    rule.Account,
		Dimension1: rule.Dimension1,
		Dimension2: rule.Dimension2,
		Amount:     sum,
		Memo:       rule.Memo,
	}
}
