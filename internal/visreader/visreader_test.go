package visreader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/disciplemakers/VIS-to-FA/internal/logging"
)

func TestLoadRows_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	csv := "CARDHOLDER_ID,NAME,AMOUNT\nA1,Ada Arnold,100.00\nB2,Bo Berg\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	rows, err := LoadRows(path, logging.NewRecorder())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"CARDHOLDER_ID", "NAME", "AMOUNT"}, rows[0])
	assert.Equal(t, []string{"A1", "Ada Arnold", "100.00"}, rows[1])
	// Ragged rows are tolerated; downstream reads short rows as blanks.
	assert.Equal(t, []string{"B2", "Bo Berg"}, rows[2])
}

func TestLoadRows_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"CARDHOLDER_ID", "NAME"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"A1", "Ada Arnold"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := LoadRows(path, logging.NewRecorder())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"CARDHOLDER_ID", "NAME"}, rows[0])
	assert.Equal(t, []string{"A1", "Ada Arnold"}, rows[1])
}

func TestLoadRows_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	_, err := LoadRows(path, logging.NewRecorder())
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestLoadRows_MissingFile(t *testing.T) {
	_, err := LoadRows(filepath.Join(t.TempDir(), "nope.csv"), logging.NewRecorder())
	assert.Error(t, err)
}
