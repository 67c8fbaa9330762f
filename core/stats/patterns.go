// core/stats/patterns.go
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"pythia-core/msa"
)

// computePatternStats counts distinct site patterns (gap symbols are part of
// the pattern, as tree-inference tools compress them) and classifies each
// site as invariant, singleton, or informative-variable. It also derives the
// pattern-distribution statistics: the Bollback multinomial test statistic
// normalized by alignment length, and the Shannon entropy of the pattern
// frequencies in bits.
func computePatternStats(a *msa.Alignment, r *Raw) {
	n := a.NumTaxa()
	m := a.NumSites()
	dt := a.DataType()

	counts := make(map[string]int, m)
	col := make([]byte, n)
	freq := make(map[byte]int, 8)

	for j := 0; j < m; j++ {
		col = a.Column(j, col)
		counts[string(col)]++

		// Residue frequencies at this site, gaps/ambiguities excluded.
		for k := range freq {
			delete(freq, k)
		}
		nonGap := 0
		for _, c := range col {
			if msa.IsGapOrAmbiguous(c, dt) {
				continue
			}
			freq[c]++
			nonGap++
		}
		most := 0
		for _, c := range freq {
			if c > most {
				most = c
			}
		}
		switch {
		case len(freq) <= 1:
			// All residues identical, or nothing but gaps: invariant.
			r.NumInvariant++
		case most == nonGap-1:
			r.NumSingleton++
		}
	}

	r.NumPatterns = len(counts)
	r.PatternRatio = float64(r.NumPatterns) / float64(m)
	r.PatternsPerTaxon = float64(r.NumPatterns) / float64(n)
	r.InvariantRatio = float64(r.NumInvariant) / float64(m)
	r.SingletonRatio = float64(r.NumSingleton) / float64(m)

	// Bollback (2002) multinomial statistic: sum(c*ln c) - m*ln m, scaled by
	// the number of sites so alignments of different lengths are comparable.
	// Summation runs over sorted counts: map order is randomized and the
	// bit-for-bit determinism of the score must not depend on it.
	cs := make([]int, 0, len(counts))
	for _, c := range counts {
		cs = append(cs, c)
	}
	sort.Ints(cs)

	bollback := 0.0
	dist := make([]float64, len(cs))
	for i, c := range cs {
		bollback += float64(c) * math.Log(float64(c))
		dist[i] = float64(c) / float64(m)
	}
	bollback -= float64(m) * math.Log(float64(m))
	r.BollbackNorm = bollback / float64(m)
	r.PatternEntropy = stat.Entropy(dist) / math.Ln2
}
