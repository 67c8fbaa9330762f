package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, out, _ := run(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage of pythia")
	assert.Contains(t, out, "difficulty prediction")
}

func TestHelpFlag(t *testing.T) {
	code, out, _ := run(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage of pythia")
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "pythia version "))
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	code, out, errOut := run(t, "--bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "bogus")
	assert.Contains(t, out, "Usage of pythia")
}

func TestMissingAlignmentIsUsageError(t *testing.T) {
	code, _, errOut := run(t, "--output", "json")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--alignment is required")
}

func TestMissingPredictorFileFails(t *testing.T) {
	code, _, errOut := run(t,
		"--alignment", "testdata/does-not-exist.fasta",
		"--predictor", "testdata/no-such-model.txt",
		"--quiet")
	assert.Equal(t, 1, code)
	require.NotEmpty(t, errOut)
}
