package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeAmount(t *testing.T) {
	cases := map[string]string{
		"100.00":     "100.00",
		" 100.00 ":   "100.00",
		"1,234.56":   "1234.56",
		"1'234.56":   "1234.56",
		"100.00-":    "-100.00",
		"-100.00":    "-100.00",
		"12,345.00-": "-12345.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, StandardizeAmount(in), "input %q", in)
	}
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("1,234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.StringFixed(2))

	_, err = ParseAmount("not a number")
	assert.Error(t, err)

	_, err = ParseAmount("")
	assert.Error(t, err, "blank amounts are the caller's business, not a parseable value")
}

func TestDefaultAccountRules(t *testing.T) {
	rules := DefaultAccountRules()

	assert.True(t, rules.IsPayableMemo(rules.APCreditCard.Memo))
	assert.True(t, rules.IsPayableMemo(rules.APExpenseReport.Memo))
	assert.False(t, rules.IsPayableMemo("Ada Arnold bought (paper)"))
	assert.NotEqual(t, rules.APCreditCard.Memo, rules.APExpenseReport.Memo)
}
