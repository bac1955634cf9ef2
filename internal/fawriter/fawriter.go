// Package fawriter renders a finished ledger as the FA accounting-import
// CSV. The eight-column header is part of the import contract and must be
// reproduced byte-for-byte.
package fawriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

// faRow is the on-disk shape of a ledger line. Amounts are pre-rendered
// with two fixed decimals so repeated runs are byte-identical.
type faRow struct {
	EntryID    int    `csv:"Entry ID"`
	Date       string `csv:"Transaction Date"`
	Reference  string `csv:"Reference Number"`
	Account    string `csv:"G/L Account"`
	Dimension1 string `csv:"Dimension 1"`
	Dimension2 string `csv:"Dimension 2"`
	Amount     string `csv:"Amount"`
	Memo       string `csv:"Memo"`
}

// Write marshals the ledger to w, header row first.
func Write(ledger models.Ledger, w io.Writer) error {
	rows := make([]faRow, 0, len(ledger))
	for _, line := range ledger {
		rows = append(rows, faRow{
			EntryID:    line.EntryID,
			Date:       line.Date,
			Reference:  line.Reference,
			Account:    line.Account,
			Dimension1: line.Dimension1,
			Dimension2: line.Dimension2,
			Amount:     line.Amount.StringFixed(2),
			Memo:       line.Memo,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("error writing FA import CSV: %w", err)
	}
	return nil
}

// WriteFile writes the ledger to path, creating parent directories as
// needed. The caller must only invoke this after reconciliation succeeded.
func WriteFile(ledger models.Ledger, path string, log logging.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating FA import CSV: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	if err := Write(ledger, file); err != nil {
		return err
	}

	log.Info("Wrote FA import CSV",
		logging.F("file", path),
		logging.F("lines", len(ledger)))
	return nil
}
