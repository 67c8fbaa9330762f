// core/stats/distance.go
package stats

import (
	"math/rand"

	"pythia-core/msa"
)

// Pairwise-distance sampling policy. Full pairwise computation is quadratic
// in the number of taxa, so the work per alignment is capped; the sample is
// drawn from a fixed-seed generator so repeated runs on the same alignment
// see the same pairs. These constants are part of the feature-schema
// compatibility contract.
const (
	maxSampledPairs = 1000
	pairSampleSeed  = 42
)

// computeDistanceStats summarizes normalized Hamming distances over a
// bounded, deterministic sample of sequence pairs. Positions where either
// sequence carries a gap or ambiguity code are ignored; a pair with no
// comparable position contributes distance 0.
func computeDistanceStats(a *msa.Alignment, r *Raw) {
	n := a.NumTaxa()
	pairs := samplePairs(n)
	r.NumSampledPairs = len(pairs)

	dists := make([]float64, len(pairs))
	for k, p := range pairs {
		dists[k] = hammingNorm(a, p[0], p[1])
	}
	if len(dists) == 0 {
		return
	}
	sum := 0.0
	for _, d := range dists {
		sum += d
	}
	r.DistanceMean = sum / float64(len(dists))
	r.DistanceSD = sampleSD(dists)
}

// samplePairs returns all n*(n-1)/2 pairs when within budget, otherwise
// maxSampledPairs distinct pairs drawn from a seeded generator.
func samplePairs(n int) [][2]int {
	total := n * (n - 1) / 2
	if total <= maxSampledPairs {
		out := make([][2]int, 0, total)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				out = append(out, [2]int{i, j})
			}
		}
		return out
	}

	rng := rand.New(rand.NewSource(pairSampleSeed))
	seen := make(map[int]bool, maxSampledPairs)
	out := make([][2]int, 0, maxSampledPairs)
	for len(out) < maxSampledPairs {
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		key := i*n + j
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, [2]int{i, j})
	}
	return out
}

// hammingNorm is the fraction of comparable positions at which the two
// sequences differ.
func hammingNorm(a *msa.Alignment, i, j int) float64 {
	ri, rj := a.Row(i), a.Row(j)
	dt := a.DataType()
	diff, usable := 0, 0
	for k := range ri {
		ci, cj := ri[k], rj[k]
		if msa.IsGapOrAmbiguous(ci, dt) || msa.IsGapOrAmbiguous(cj, dt) {
			continue
		}
		usable++
		if ci != cj {
			diff++
		}
	}
	if usable == 0 {
		return 0
	}
	return float64(diff) / float64(usable)
}
