package chpio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantor/chp/chpio"
	"github.com/kvantor/chp/tableau"
)

// TestSnapshot_RoundTrip: encode → decode reproduces the matrix exactly,
// including sign bits and the scratch row.
func TestSnapshot_RoundTrip(t *testing.T) {
	tab, err := tableau.Zero(2)
	require.NoError(t, err)
	require.NoError(t, tab.H(0))
	require.NoError(t, tab.Phase(0))
	require.NoError(t, tab.CNOT(0, 1))

	var buf bytes.Buffer
	require.NoError(t, chpio.EncodeSnapshot(&buf, tab))

	back, err := chpio.DecodeSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, tab.NQubits(), back.NQubits())
	assert.True(t, tab.Matrix().Equal(back.Matrix()),
		"got\n%s\nwant\n%s", back.Matrix(), tab.Matrix())
}

// TestNewSnapshot_ZeroState pins the schema values for the zero state.
func TestNewSnapshot_ZeroState(t *testing.T) {
	tab, err := tableau.Zero(2)
	require.NoError(t, err)

	s := chpio.NewSnapshot(tab)
	assert.Equal(t, 2, s.NQubits)
	assert.Equal(t, []string{"10000", "01000", "00100", "00010", "00000"}, s.Rows)
}

// TestDecodeSnapshot_Errors covers malformed and inconsistent documents.
func TestDecodeSnapshot_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"not yaml": {
			in:   "[unclosed",
			want: chpio.ErrBadSnapshot,
		},
		"bad row rune": {
			in:   "nqubits: 1\nrows: [\"100\", \"0x0\", \"000\"]\n",
			want: chpio.ErrBadSnapshot,
		},
		"qubit count mismatch": {
			in:   "nqubits: 2\nrows: [\"100\", \"010\", \"000\"]\n",
			want: chpio.ErrBadSnapshot,
		},
		"even row count": {
			in:   "nqubits: 1\nrows: [\"10\", \"01\"]\n",
			want: tableau.ErrBadShape,
		},
		"ragged rows": {
			in:   "nqubits: 1\nrows: [\"100\", \"01\", \"000\"]\n",
			want: tableau.ErrBadShape,
		},
	}
	for name, tc := range cases {
		_, err := chpio.DecodeSnapshot(strings.NewReader(tc.in))
		assert.ErrorIs(t, err, tc.want, name)
	}
}

// TestDecodeSnapshot_ForwardsOptions: a decoded tableau measures with the
// injected seed's stream.
func TestDecodeSnapshot_ForwardsOptions(t *testing.T) {
	src, err := tableau.Zero(1)
	require.NoError(t, err)
	require.NoError(t, src.H(0))

	var buf bytes.Buffer
	require.NoError(t, chpio.EncodeSnapshot(&buf, src))

	replay := func() bool {
		tab, err := chpio.DecodeSnapshot(bytes.NewReader(buf.Bytes()), tableau.WithSeed(21))
		require.NoError(t, err)
		got, err := tab.Measure(0)
		require.NoError(t, err)
		return got
	}
	assert.Equal(t, replay(), replay(), "same seed must replay the outcome")
}
