package alignio

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pythia-core/msa"
)

const fastaInput = `>seq1 first taxon
ACGT
ACGT
>seq2
ACGTACGA
>seq3
ACGTACGC
>seq4
ACGTACGG
`

const phylipInput = `4 8
seq1  ACGTACGT
seq2  ACGTACGA
seq3  ACGT
ACGC
seq4  ACGTACGG
`

func TestReadFASTA(t *testing.T) {
	a, err := Read(strings.NewReader(fastaInput), FormatFASTA)
	require.NoError(t, err)
	assert.Equal(t, 4, a.NumTaxa())
	assert.Equal(t, 8, a.NumSites())
	assert.Equal(t, "seq1", a.Name(0))
	assert.Equal(t, []byte("ACGTACGT"), a.Row(0))
}

func TestReadPHYLIPWrappedRows(t *testing.T) {
	a, err := Read(strings.NewReader(phylipInput), FormatPHYLIP)
	require.NoError(t, err)
	assert.Equal(t, 4, a.NumTaxa())
	assert.Equal(t, 8, a.NumSites())
	assert.Equal(t, []byte("ACGTACGC"), a.Row(2))
}

func TestAutoDetection(t *testing.T) {
	a, err := Read(strings.NewReader(fastaInput), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 4, a.NumTaxa())

	b, err := Read(strings.NewReader("\n  "+phylipInput), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 4, b.NumTaxa())

	_, err = Read(strings.NewReader("@garbage"), FormatAuto)
	require.Error(t, err)

	_, err = Read(strings.NewReader(""), FormatAuto)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":       FormatAuto,
		"auto":   FormatAuto,
		"fasta":  FormatFASTA,
		"FASTA":  FormatFASTA,
		"phylip": FormatPHYLIP,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("nexus")
	require.Error(t, err)
}

func TestFASTAErrors(t *testing.T) {
	_, err := Read(strings.NewReader("ACGT\n"), FormatFASTA)
	require.Error(t, err)

	// Ragged rows surface the alignment invariant error.
	ragged := ">a\nACGT\n>b\nACG\n>c\nACGT\n>d\nACGT\n"
	_, err = Read(strings.NewReader(ragged), FormatFASTA)
	require.ErrorIs(t, err, msa.ErrInvalidAlignment)
}

func TestPHYLIPErrors(t *testing.T) {
	_, err := Read(strings.NewReader("not a header\nseq1 ACGT\n"), FormatPHYLIP)
	require.Error(t, err)

	// Row longer than the header promises.
	long := "4 4\nseq1 ACGTA\nseq2 ACGT\nseq3 ACGT\nseq4 ACGT\n"
	_, err = Read(strings.NewReader(long), FormatPHYLIP)
	require.Error(t, err)

	// Fewer taxa than promised.
	short := "5 4\nseq1 ACGT\nseq2 ACGT\nseq3 ACGT\nseq4 ACGT\n"
	_, err = Read(strings.NewReader(short), FormatPHYLIP)
	require.Error(t, err)

	// Headers declaring no taxa or no sites are rejected outright.
	for _, in := range []string{"0 5\n", "4 0\n", "-1 5\nseq1 ACGT\n"} {
		_, err = Read(strings.NewReader(in), FormatPHYLIP)
		require.Error(t, err, "header %q", in)
	}
}

func TestReadFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aln.fasta.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(fh)
	_, err = gz.Write([]byte(fastaInput))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, fh.Close())

	a, err := ReadFile(path, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 4, a.NumTaxa())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.fasta"), FormatAuto)
	require.Error(t, err)
}
