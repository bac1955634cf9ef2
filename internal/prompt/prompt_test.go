package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingDate_RepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("yesterday\n13/40/2026\n08/31/2026\n")
	var out bytes.Buffer

	date, err := New(in, &out).PostingDate()
	require.NoError(t, err)
	assert.Equal(t, "08/31/2026", date)
	assert.Contains(t, out.String(), "MM/DD/YYYY")
}

func TestReferenceStart_RejectsNonPositive(t *testing.T) {
	in := strings.NewReader("abc\n0\n-3\n101\n")
	var out bytes.Buffer

	n, err := New(in, &out).ReferenceStart()
	require.NoError(t, err)
	assert.Equal(t, 101, n)
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":     true,
		"Y\n":     true,
		"yes\n":   true,
		"n\n":     false,
		"no\n":    false,
		"\n":      false,
		"maybe\n": false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		got, err := New(strings.NewReader(input), &out).Confirm("Write?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestPostingDate_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := New(strings.NewReader(""), &out).PostingDate()
	assert.Error(t, err)
}
