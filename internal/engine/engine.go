package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
	"github.com/disciplemakers/VIS-to-FA/internal/schema"
)

const inputName = "transaction export"

// Params are the run-wide values shared by every ledger line.
type Params struct {
	RecordType      schema.RecordType
	PostingDate     string // MM/DD/YYYY, passed through as-is
	ReferencePrefix string
	ReferenceStart  int
}

// Result is the finished ledger plus the reconciled totals for display.
type Result struct {
	Ledger      models.Ledger
	InputTotal  decimal.Decimal
	OutputTotal decimal.Decimal
}

// Translate maps raw export rows to the FA ledger for the given cardholder
// directory, then reconciles totals. It is a pure function of its inputs:
// the same rows, rules, and params always produce the same ledger. Any
// returned error means the whole run is void and nothing may be persisted.
func Translate(holders []models.Cardholder, rows [][]string, rules models.AccountRules, p Params, log logging.Logger) (*Result, error) {
	records, err := wrapRows(rows, p.RecordType)
	if err != nil {
		return nil, err
	}

	m := &mapper{rules: rules, log: log}
	ledger, err := aggregate(holders, records, m, p)
	if err != nil {
		return nil, err
	}

	inputTotal, outputTotal, err := reconcile(records, ledger, rules)
	if err != nil {
		return nil, err
	}

	log.Info("Translation complete",
		logging.F("lines", len(ledger)),
		logging.F("total", inputTotal.StringFixed(2)))

	return &Result{
		Ledger:      ledger,
		InputTotal:  inputTotal,
		OutputTotal: outputTotal,
	}, nil
}

// wrapRows validates the header sentinel and wraps data rows as typed
// records, keeping their original line numbers for diagnostics.
func wrapRows(rows [][]string, rt schema.RecordType) ([]numbered, error) {
	if len(rows) == 0 {
		return nil, &ledgererror.EmptyInputError{Input: inputName}
	}

	header := rows[0]
	if len(header) == 0 || strings.TrimSpace(header[0]) != models.TransactionHeaderSentinel {
		got := ""
		if len(header) > 0 {
			got = header[0]
		}
		return nil, &ledgererror.FormatError{
			Input: inputName,
			Got:   got,
			Want:  models.TransactionHeaderSentinel,
		}
	}

	var records []numbered
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		records = append(records, numbered{
			rec:  schema.Wrap(rt, row),
			line: i + 2, // header is line 1
		})
	}

	if len(records) == 0 {
		return nil, &ledgererror.EmptyInputError{Input: inputName}
	}
	return records, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
