package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disciplemakers/VIS-to-FA/internal/ledgererror"
	"github.com/disciplemakers/VIS-to-FA/internal/logging"
	"github.com/disciplemakers/VIS-to-FA/internal/models"
)

func TestBuild(t *testing.T) {
	rows := [][]string{
		{"CARDHOLDER_ID_0", "FUND_0"},
		{"A1", "GEN|MISSIONS|YOUTH"},
		{"B2", "MISSIONS"},
		{"A1", "GEN|MISSIONS|YOUTH"}, // exact duplicate, dropped
		{"A1", "YOUTH"},              // same id, different fund: kept
	}

	holders, err := Build(rows, logging.NewRecorder())
	require.NoError(t, err)
	require.Len(t, holders, 3)

	assert.Equal(t, models.Cardholder{ID: "A1", DefaultFund: "GEN"}, holders[0])
	assert.Equal(t, models.Cardholder{ID: "B2", DefaultFund: "MISSIONS"}, holders[1])
	assert.Equal(t, models.Cardholder{ID: "A1", DefaultFund: "YOUTH"}, holders[2])
}

func TestBuild_HeaderSentinelMismatch(t *testing.T) {
	rows := [][]string{
		{"NOT_THE_SENTINEL", "FUND_0"},
		{"A1", "GEN"},
	}

	_, err := Build(rows, logging.NewRecorder())
	var format *ledgererror.FormatError
	require.ErrorAs(t, err, &format)
	assert.Equal(t, "NOT_THE_SENTINEL", format.Got)
	assert.Equal(t, models.DirectoryHeaderSentinel, format.Want)
}

func TestBuild_EmptyInputs(t *testing.T) {
	cases := map[string][][]string{
		"no rows":         {},
		"header only":     {{"CARDHOLDER_ID_0", "FUND_0"}},
		"blank data rows": {{"CARDHOLDER_ID_0", "FUND_0"}, {"", ""}, {" ", ""}},
	}

	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build(rows, logging.NewRecorder())
			var empty *ledgererror.EmptyInputError
			assert.ErrorAs(t, err, &empty)
		})
	}
}

func TestBuild_FundMissingColumn(t *testing.T) {
	rows := [][]string{
		{"CARDHOLDER_ID_0"},
		{"A1"},
	}

	holders, err := Build(rows, logging.NewRecorder())
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Empty(t, holders[0].DefaultFund)
}
