// core/stats/entropy.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"pythia-core/msa"
)

// computeEntropyStats computes per-site Shannon entropy of residue
// frequencies in bits, gaps and ambiguity codes excluded from the counts,
// and summarizes mean and sample standard deviation across sites. A site
// with fewer than two distinct residues (including all-gap columns)
// contributes entropy 0.
func computeEntropyStats(a *msa.Alignment, r *Raw) {
	n := a.NumTaxa()
	m := a.NumSites()
	dt := a.DataType()

	site := make([]float64, m)
	col := make([]byte, n)
	var counts [256]int

	for j := 0; j < m; j++ {
		col = a.Column(j, col)
		nonGap := 0
		for _, c := range col {
			if msa.IsGapOrAmbiguous(c, dt) {
				continue
			}
			counts[c]++
			nonGap++
		}
		if nonGap > 1 {
			h := 0.0
			for c := 0; c < 256; c++ {
				if counts[c] == 0 {
					continue
				}
				p := float64(counts[c]) / float64(nonGap)
				h -= p * math.Log2(p)
			}
			site[j] = h
		}
		for _, c := range col {
			counts[c] = 0
		}
	}

	r.EntropyMean = stat.Mean(site, nil)
	r.EntropySD = sampleSD(site)
}
