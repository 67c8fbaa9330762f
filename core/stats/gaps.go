// core/stats/gaps.go
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"pythia-core/msa"
)

// computeGapStats fills the gap/ambiguity fields of r: the overall fraction,
// the per-sequence distribution summary, and the share of gap-heavy sites.
func computeGapStats(a *msa.Alignment, r *Raw) {
	n := a.NumTaxa()
	m := a.NumSites()
	dt := a.DataType()

	perSeq := make([]float64, n)
	siteGaps := make([]int, m)
	total := 0
	for i := 0; i < n; i++ {
		row := a.Row(i)
		cnt := 0
		for j, c := range row {
			if msa.IsGapOrAmbiguous(c, dt) {
				cnt++
				siteGaps[j]++
			}
		}
		perSeq[i] = float64(cnt) / float64(m)
		total += cnt
	}

	r.GapFraction = float64(total) / float64(n*m)
	r.GapSeqMin = floats.Min(perSeq)
	r.GapSeqMax = floats.Max(perSeq)
	r.GapSeqMean = stat.Mean(perSeq, nil)
	r.GapSeqSD = sampleSD(perSeq)

	heavy := 0
	for _, g := range siteGaps {
		if float64(g) > 0.5*float64(n) {
			heavy++
		}
	}
	r.GapHeavyRatio = float64(heavy) / float64(m)
}

// sampleSD is stat.StdDev guarded for the n < 2 case, where the sample
// standard deviation is undefined and we pin it to 0.
func sampleSD(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
