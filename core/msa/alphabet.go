// core/msa/alphabet.go
package msa

import "strings"

// DataType identifies the biological alphabet of an alignment.
type DataType int

const (
	DNA DataType = iota
	AA
)

func (d DataType) String() string {
	if d == DNA {
		return "DNA"
	}
	return "AA"
}

// Canonical residue sets. U is folded into T during normalization so RNA
// input behaves like DNA.
const (
	dnaResidues = "ACGT"
	aaResidues  = "ACDEFGHIKLMNPQRSTVWY"
)

// Gap symbols shared by both alphabets.
var gapSet = map[byte]bool{'-': true, '?': true, '.': true, '*': true}

// IUPAC degeneracy codes for nucleotides (non-ACGT). Counted as ambiguous
// alongside N/X for gap statistics and excluded from frequency counts.
var dnaAmbiguous = map[byte]bool{
	'N': true, 'X': true,
	'R': true, 'Y': true, 'S': true, 'W': true,
	'K': true, 'M': true, 'B': true, 'D': true,
	'H': true, 'V': true,
}

var aaAmbiguous = map[byte]bool{'X': true, 'B': true, 'Z': true, 'J': true}

// IsGap reports whether c is a pure gap symbol (alphabet independent).
func IsGap(c byte) bool { return gapSet[c] }

// IsGapOrAmbiguous reports whether c carries no usable character state for
// the given alphabet. These positions are skipped in frequency and distance
// computations and counted by the gap statistics.
func IsGapOrAmbiguous(c byte, d DataType) bool {
	if gapSet[c] {
		return true
	}
	if d == DNA {
		return dnaAmbiguous[c]
	}
	return aaAmbiguous[c]
}

// NumStates returns the number of canonical character states of the alphabet,
// the denominator for entropy normalization.
func NumStates(d DataType) int {
	if d == DNA {
		return len(dnaResidues)
	}
	return len(aaResidues)
}

// normalizeChar uppercases and maps RNA U to T.
func normalizeChar(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c == 'U' {
		c = 'T'
	}
	return c
}

// detectDataType guesses the alphabet: if at least 90% of the non-gap
// characters are canonical nucleotides (or N), the alignment is treated as
// DNA, otherwise as amino-acid data.
func detectDataType(rows [][]byte) DataType {
	var nuc, total int
	for _, row := range rows {
		for _, c := range row {
			if gapSet[c] {
				continue
			}
			total++
			if strings.IndexByte(dnaResidues, c) >= 0 || c == 'N' {
				nuc++
			}
		}
	}
	if total == 0 || float64(nuc) >= 0.9*float64(total) {
		return DNA
	}
	return AA
}
