// Package visreader loads raw export rows. The downstream schema contract
// is positional, so rows come back exactly as ordered string slices with
// the header row first; nothing is interpreted here.
//
// CSV exports are read with encoding/csv directly (header-name mapping
// would bypass the positional schema); XLSX exports are read with excelize
// from the first sheet.
package visreader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/disciplemakers/VIS-to-FA/internal/logging"
)

// LoadRows reads every row of a .csv or .xlsx export in order.
func LoadRows(path string, log logging.Logger) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return loadXLSX(path, log)
	case ".csv":
		return loadCSV(path, log)
	default:
		return nil, fmt.Errorf("unsupported export format %q (want .csv or .xlsx): %s", ext, path)
	}
}

func loadCSV(path string, log logging.Logger) ([][]string, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening export %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close export file")
		}
	}()

	reader := csv.NewReader(file)
	// Export rows are positional and ragged rows are tolerated; short rows
	// read as blank trailing fields downstream.
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading export %s: %w", path, err)
		}
		rows = append(rows, row)
	}

	log.Info("Read export rows", logging.F("file", path), logging.F("rows", len(rows)))
	return rows, nil
}

func loadXLSX(path string, log logging.Logger) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening export %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close export file")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("export %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading export %s: %w", path, err)
	}

	log.Info("Read export rows",
		logging.F("file", path),
		logging.F("sheet", sheet),
		logging.F("rows", len(rows)))
	return rows, nil
}
