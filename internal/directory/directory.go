// Package directory builds the deduplicated cardholder set from the raw
// directory export. Insertion order is preserved because it decides entry-id
// and reference-number assignment downstream.
package directory

import (
	"strings"

	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

const inputName = "cardholder directory"

// Build converts raw directory rows into ordered, unique Cardholders.
// The first row is a header whose first cell must read the literal
// sentinel; every following row contributes id (column 0) and the first
// `|`-separated segment of the fund column (column 1).
func Build(rows [][]string, log logging.Logger) ([]models.Cardholder, error) {
	if len(rows) == 0 {
		return nil, &ledgererror.EmptyInputError{Input: inputName}
	}

	header := rows[0]
	if len(header) == 0 || strings.TrimSpace(header[0]) != models.DirectoryHeaderSentinel {
		got := ""
		if len(header) > 0 {
			got = header[0]
		}
		return nil, &ledgererror.FormatError{
			Input: inputName,
			Got:   got,
			Want:  models.DirectoryHeaderSentinel,
		}
	}

	var holders []models.Cardholder
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		holder := models.Cardholder{
			ID:          strings.TrimSpace(row[0]),
			DefaultFund: defaultFund(row),
		}
		if contains(holders, holder) {
			continue
		}
		holders = append(holders, holder)
	}

	if len(holders) == 0 {
		return nil, &ledgererror.EmptyInputError{Input: inputName}
	}

	log.Info("Built cardholder directory", logging.F("count", len(holders)))
	return holders, nil
}

// defaultFund keeps the first segment of a `|`-joined fund list.
func defaultFund(row []string) string {
	if len(row) < 2 {
		return ""
	}
	fund, _, _ := strings.Cut(strings.TrimSpace(row[1]), "|")
	return fund
}

func contains(holders []models.Cardholder, h models.Cardholder) bool {
	for _, existing := range holders {
		if existing == h {
			return true
		}
	}
	return false
}
