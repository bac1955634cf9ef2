// Package common drives a full translation run for the conversion
// commands: load, prompt, translate, confirm, write, archive.
package common

import (
	"fmt"
	"os"

	"github.com/disciplemakers/VIS-to-FA/internal/dateutils"
	"github.com/disciplemakers/VIS-to-FA/internal/directory"
	"github.com/disciplemakers/VIS-to-FA/internal/engine"
	"github.com/disciplemakers/VIS-to-FA/internal/fawriter"
	"github.com/disciplemakers/VIS-to-FA/internal/fileutils"
	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
	"github.com/disciplemakers/VIS-to-FA/internal/prompt"
	"github.com/disciplemakers/VIS-to-FA/internal/schema"
	"github.com/disciplemakers/VIS-to-FA/internal/visreader"
)

// Options configures one run.
type Options struct {
	Transactions string
	Cardholders  string
	Output       string
	RecordType   schema.RecordType
	Rules        models.AccountRules

	// PostingDate and ReferenceStart are prompted for when unset.
	PostingDate    string
	ReferenceStart int

	AssumeYes  bool
	DryRun     bool
	ArchiveDir string // empty disables archiving
}

// Run executes a translation run. Any returned error voids the run; the
// output file is only written after reconciliation succeeded and the
// operator confirmed.
func Run(opts Options, log logging.Logger) error {
	if opts.Transactions == "" {
		return fmt.Errorf("no transaction export given (use --input)")
	}
	if opts.Cardholders == "" {
		return fmt.Errorf("no cardholder directory given (use --cardholders)")
	}
	if !opts.DryRun && opts.Output == "" {
		return fmt.Errorf("no output file given (use --output)")
	}

	holderRows, err := visreader.LoadRows(opts.Cardholders, log)
	if err != nil {
		return err
	}
	holders, err := directory.Build(holderRows, log)
	if err != nil {
		return err
	}

	txRows, err := visreader.LoadRows(opts.Transactions, log)
	if err != nil {
		return err
	}

	prompter := prompt.New(os.Stdin, os.Stdout)
	postingDate := opts.PostingDate
	if postingDate == "" {
		if postingDate, err = prompter.PostingDate(); err != nil {
			return err
		}
	} else if err := dateutils.ValidatePostingDate(postingDate); err != nil {
		return err
	}

	refStart := opts.ReferenceStart
	if refStart < 1 {
		if refStart, err = prompter.ReferenceStart(); err != nil {
			return err
		}
	}

	result, err := engine.Translate(holders, txRows, opts.Rules, engine.Params{
		RecordType:      opts.RecordType,
		PostingDate:     postingDate,
		ReferencePrefix: dateutils.ReferencePrefix(postingDate),
		ReferenceStart:  refStart,
	}, log)
	if err != nil {
		return err
	}

	log.Info("Totals reconciled",
		logging.F("input", result.InputTotal.StringFixed(2)),
		logging.F("output", result.OutputTotal.StringFixed(2)))

	if opts.DryRun {
		log.Info("Dry run, nothing written", logging.F("lines", len(result.Ledger)))
		return nil
	}

	if !opts.AssumeYes {
		ok, err := prompter.Confirm(fmt.Sprintf("Write %d ledger lines totaling %s to %s?",
			len(result.Ledger), result.InputTotal.StringFixed(2), opts.Output))
		if err != nil {
			return err
		}
		if !ok {
			log.Info("Aborted by operator, nothing written")
			return nil
		}
	}

	if err := fawriter.WriteFile(result.Ledger, opts.Output, log); err != nil {
		return err
	}

	if opts.ArchiveDir != "" {
		if _, err := fileutils.ArchiveFile(opts.Transactions, opts.ArchiveDir, log); err != nil {
			// The ledger is already written; a failed archive copy is not
			// worth voiding the run over.
			log.WithError(err).Warn("Failed to archive transaction export")
		}
	}

	return nil
}
