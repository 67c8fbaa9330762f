// core/msa/msa.go
// Alignment data model: equal-length named sequences over a biological
// alphabet. Immutable once constructed; validation happens in New so every
// downstream computation can assume a well-formed matrix.
package msa

import (
	"errors"
	"fmt"
)

// MinTaxa is the smallest alignment a tree search is meaningful for.
const MinTaxa = 4

var (
	// ErrInvalidAlignment marks malformed or degenerate input alignments.
	ErrInvalidAlignment = errors.New("invalid alignment")
	// ErrDuplicateSequences marks alignments with byte-identical rows.
	// Duplicates distort topological distances and hence the difficulty.
	ErrDuplicateSequences = errors.New("alignment contains duplicate sequences")
)

// Alignment is an immutable multiple sequence alignment.
type Alignment struct {
	names []string
	rows  [][]byte
	dtype DataType
}

// New validates names/rows and returns an Alignment. Sequences are copied
// and normalized (uppercased, U folded to T); the caller keeps ownership of
// its slices. Fails with ErrInvalidAlignment on fewer than MinTaxa rows,
// zero-length rows, or ragged row lengths.
func New(names []string, seqs [][]byte) (*Alignment, error) {
	if len(names) != len(seqs) {
		return nil, fmt.Errorf("%w: %d names for %d sequences", ErrInvalidAlignment, len(names), len(seqs))
	}
	if len(seqs) < MinTaxa {
		return nil, fmt.Errorf("%w: need at least %d sequences, got %d", ErrInvalidAlignment, MinTaxa, len(seqs))
	}
	width := len(seqs[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: zero-length alignment", ErrInvalidAlignment)
	}
	rows := make([][]byte, len(seqs))
	for i, s := range seqs {
		if len(s) != width {
			return nil, fmt.Errorf("%w: sequence %q has length %d, expected %d",
				ErrInvalidAlignment, names[i], len(s), width)
		}
		row := make([]byte, width)
		for j, c := range s {
			row[j] = normalizeChar(c)
		}
		rows[i] = row
	}
	a := &Alignment{
		names: append([]string(nil), names...),
		rows:  rows,
	}
	a.dtype = detectDataType(rows)
	return a, nil
}

// NumTaxa returns the number of sequences.
func (a *Alignment) NumTaxa() int { return len(a.rows) }

// NumSites returns the alignment length.
func (a *Alignment) NumSites() int { return len(a.rows[0]) }

// DataType returns the detected alphabet.
func (a *Alignment) DataType() DataType { return a.dtype }

// Name returns the identifier of sequence i.
func (a *Alignment) Name(i int) string { return a.names[i] }

// Row returns sequence i. The returned slice must not be modified.
func (a *Alignment) Row(i int) []byte { return a.rows[i] }

// Column writes site j into dst (allocating when dst is too small) and
// returns it. One byte per taxon, taxon order.
func (a *Alignment) Column(j int, dst []byte) []byte {
	if cap(dst) < len(a.rows) {
		dst = make([]byte, len(a.rows))
	}
	dst = dst[:len(a.rows)]
	for i, row := range a.rows {
		dst[i] = row[j]
	}
	return dst
}

// ContainsDuplicates reports whether any two sequences are byte-identical.
func (a *Alignment) ContainsDuplicates() bool {
	seen := make(map[string]bool, len(a.rows))
	for _, row := range a.rows {
		k := string(row)
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}

// RemoveDuplicates returns an alignment keeping the first occurrence of each
// distinct sequence, plus the names that were dropped. Fails when the
// reduced alignment falls below MinTaxa.
func (a *Alignment) RemoveDuplicates() (*Alignment, []string, error) {
	seen := make(map[string]bool, len(a.rows))
	var names []string
	var rows [][]byte
	var dropped []string
	for i, row := range a.rows {
		k := string(row)
		if seen[k] {
			dropped = append(dropped, a.names[i])
			continue
		}
		seen[k] = true
		names = append(names, a.names[i])
		rows = append(rows, row)
	}
	if len(dropped) == 0 {
		return a, nil, nil
	}
	reduced, err := New(names, rows)
	if err != nil {
		return nil, dropped, err
	}
	return reduced, dropped, nil
}
