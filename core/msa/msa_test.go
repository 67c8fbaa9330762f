package msa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func TestNewValidates(t *testing.T) {
	_, err := New(names(3), rows("ACGT", "ACGT", "ACGA"))
	require.ErrorIs(t, err, ErrInvalidAlignment)

	_, err = New(names(4), rows("", "", "", ""))
	require.ErrorIs(t, err, ErrInvalidAlignment)

	_, err = New(names(4), rows("ACGT", "ACG", "ACGT", "ACGT"))
	require.ErrorIs(t, err, ErrInvalidAlignment)

	_, err = New(names(3), rows("ACGT", "ACGT", "ACGT", "ACGT"))
	require.ErrorIs(t, err, ErrInvalidAlignment)

	a, err := New(names(4), rows("ACGT", "ACGA", "ACGC", "ACGG"))
	require.NoError(t, err)
	assert.Equal(t, 4, a.NumTaxa())
	assert.Equal(t, 4, a.NumSites())
}

func TestNormalization(t *testing.T) {
	a, err := New(names(4), rows("acgu", "ACGU", "acgt", "gggg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), a.Row(0))
	assert.Equal(t, []byte("ACGT"), a.Row(1))
	assert.Equal(t, DNA, a.DataType())
}

func TestDataTypeDetection(t *testing.T) {
	dna, err := New(names(4), rows("ACGT-N", "ACGTAN", "ACGTAA", "ACGTAC"))
	require.NoError(t, err)
	assert.Equal(t, DNA, dna.DataType())

	aa, err := New(names(4), rows("MKLV", "MKLW", "MELF", "MDLY"))
	require.NoError(t, err)
	assert.Equal(t, AA, aa.DataType())
}

func TestColumn(t *testing.T) {
	a, err := New(names(4), rows("AC", "GC", "TC", "CC"))
	require.NoError(t, err)
	assert.Equal(t, []byte("AGTC"), a.Column(0, nil))
	assert.Equal(t, []byte("CCCC"), a.Column(1, nil))
}

func TestDuplicates(t *testing.T) {
	a, err := New([]string{"s1", "s2", "s3", "s4", "s5"},
		rows("ACGT", "ACGT", "AAGT", "ATGT", "AGGT"))
	require.NoError(t, err)
	assert.True(t, a.ContainsDuplicates())

	reduced, dropped, err := a.RemoveDuplicates()
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, dropped)
	assert.Equal(t, 4, reduced.NumTaxa())
	assert.False(t, reduced.ContainsDuplicates())

	// Reduction below MinTaxa is an error.
	b, err := New(names(4), rows("ACGT", "ACGT", "ACGT", "AAAA"))
	require.NoError(t, err)
	_, _, err = b.RemoveDuplicates()
	require.ErrorIs(t, err, ErrInvalidAlignment)
}

func TestRemoveDuplicatesNoop(t *testing.T) {
	a, err := New(names(4), rows("ACGT", "AAGT", "ATGT", "AGGT"))
	require.NoError(t, err)
	same, dropped, err := a.RemoveDuplicates()
	require.NoError(t, err)
	assert.Nil(t, dropped)
	assert.Same(t, a, same)
}

func TestGapClassification(t *testing.T) {
	assert.True(t, IsGap('-'))
	assert.True(t, IsGap('?'))
	assert.False(t, IsGap('N'))
	assert.True(t, IsGapOrAmbiguous('N', DNA))
	assert.True(t, IsGapOrAmbiguous('R', DNA))
	assert.False(t, IsGapOrAmbiguous('A', DNA))
	assert.True(t, IsGapOrAmbiguous('X', AA))
	assert.False(t, IsGapOrAmbiguous('N', AA))
}
