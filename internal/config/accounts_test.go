package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

func TestLoadAccountRules_Defaults(t *testing.T) {
	rules, err := LoadAccountRules("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAccountRules(), rules)
}

func TestLoadAccountRules_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	override := `
personal_ar_account: "11999"
ap_credit_card:
  account: "20999"
  dimension1: "GEN"
  memo: "VISA payable to First National"
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	rules, err := LoadAccountRules(path)
	require.NoError(t, err)

	assert.Equal(t, "11999", rules.PersonalARAccount)
	assert.Equal(t, "20999", rules.APCreditCard.Account)
	assert.Equal(t, "VISA payable to First National", rules.APCreditCard.Memo)
	// Untouched values keep their defaults.
	assert.Equal(t, models.DefaultBookTableAccount, rules.BookTableAccount)
	assert.Equal(t, models.DefaultAPExpenseReportMemo, rules.APExpenseReport.Memo)
}

func TestLoadAccountRules_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := LoadAccountRules(path)
	assert.Error(t, err)
}

func TestLoadAccountRules_RejectsIdenticalPayableMemos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	override := `
ap_credit_card:
  account: "20110"
  memo: "Payable"
ap_expense_report:
  account: "20120"
  memo: "Payable"
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	_, err := LoadAccountRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distinct")
}

func TestLoadAccountRules_MissingFile(t *testing.T) {
	_, err := LoadAccountRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Archive.Enabled)
	assert.Equal(t, "archive", cfg.Archive.Directory)
}
