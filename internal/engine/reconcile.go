package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

// reconcile verifies that every cent of the export landed in the ledger.
//
// The input total sums every non-blank raw amount, including records whose
// cardholder never matched the directory. The output total sums the expense
// lines (everything whose memo is not a payable memo), negated back onto
// the input side since expense lines are stored as credits. The totals must
// agree exactly; there is no tolerance.
func reconcile(records []numbered, ledger models.Ledger, rules models.AccountRules) (decimal.Decimal, decimal.Decimal, error) {
	inputTotal := decimal.Zero
	for _, nr := range records {
		raw := nr.rec.Amount()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		amount, err := models.ParseAmount(raw)
		if err != nil {
			return decimal.Zero, decimal.Zero, &ledgererror.AmountError{Line: nr.line, Value: raw, Err: err}
		}
		inputTotal = inputTotal.Add(amount)
	}

	outputSum := decimal.Zero
	for _, line := range ledger {
		if rules.IsPayableMemo(line.Memo) {
			continue
		}
		outputSum = outputSum.Add(line.Amount)
	}
	outputTotal := outputSum.Neg()

	if !inputTotal.Equal(outputTotal) {
		return inputTotal, outputTotal, &ledgererror.ReconciliationError{
			InputTotal:  inputTotal,
			OutputTotal: outputTotal,
		}
	}
	return inputTotal, outputTotal, nil
}
