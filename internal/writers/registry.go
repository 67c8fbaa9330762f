// internal/writers/registry.go
// Result writers keyed by output format. Formats register in init() blocks
// from their own files; dispatch goes through Write.
package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"pythia/pkg/api"
)

// Payload is everything a writer needs to render one prediction.
type Payload struct {
	Result    api.ResultV1
	Precision int  // decimals for rounded difficulty/feature reports
	Header    bool // tsv header line
	Verbose   bool // include the feature table
}

var resultWriters = map[string]func(io.Writer, Payload) error{}

// Register installs a writer for a format (idempotent, last wins).
func Register(format string, fn func(io.Writer, Payload) error) {
	resultWriters[format] = fn
}

// Formats lists the registered output formats.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	return out
}

// Write renders p to w in the given format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := resultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe,
// e.g. when a downstream `head` closes early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
