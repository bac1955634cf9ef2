package fawriter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

func sampleLedger() models.Ledger {
	return models.Ledger{
		{
			EntryID:    1,
			Date:       "08/31/2026",
			Reference:  "08312026-101",
			Account:    "54000",
			Dimension1: "GEN",
			Dimension2: "OFFICE",
			Amount:     models.MustAmount("-100.00"),
			Memo:       "Ada Arnold bought (paper)",
		},
		{
			EntryID:   1,
			Date:      "08/31/2026",
			Reference: "08312026-101",
			Account:   "20110",
			Amount:    models.MustAmount("100"),
			Memo:      models.DefaultAPCreditCardMemo,
		},
	}
}

func TestWrite_HeaderAndFormatting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(sampleLedger(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	// The import contract fixes the header byte-for-byte.
	assert.Equal(t,
		"Entry ID,Transaction Date,Reference Number,G/L Account,Dimension 1,Dimension 2,Amount,Memo",
		strings.TrimRight(lines[0], "\r"))

	assert.Contains(t, lines[1], "-100.00")
	assert.Contains(t, lines[2], "100.00", "amounts always render with two decimals")
	assert.Contains(t, lines[2], models.DefaultAPCreditCardMemo)
}

func TestWrite_EmptyLedgerStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(models.Ledger{}, &buf))
	assert.Contains(t, buf.String(), "Entry ID,Transaction Date")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "fa-import.csv")
	require.NoError(t, WriteFile(sampleLedger(), path, logging.NewRecorder()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "08312026-101")
}
