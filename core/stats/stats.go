// core/stats/stats.go
// Alignment statistics backing the difficulty features. Every field of Raw
// is populated on success; degenerate inputs (all-gap columns, fully
// invariant alignments) yield defined sentinel values, never NaN. Units are
// a compatibility contract with the trained model and must not change
// without a new feature-schema version: per-site and pattern entropies are
// in bits (log2), the Bollback multinomial uses natural log.
package stats

import (
	"fmt"

	"pythia-core/msa"
)

// Raw holds every per-alignment statistic, fully populated by Compute.
// A fixed struct rather than a map so a missing statistic is a compile
// error, not a runtime surprise.
type Raw struct {
	NumTaxa  int
	NumSites int

	// Site patterns.
	NumPatterns      int
	PatternRatio     float64 // patterns / sites
	PatternsPerTaxon float64 // patterns / taxa
	SitesPerTaxon    float64

	// Gap / ambiguity content.
	GapFraction   float64 // over all cells
	GapSeqMin     float64 // per-sequence gap fraction summary
	GapSeqMax     float64
	GapSeqMean    float64
	GapSeqSD      float64
	GapHeavyRatio float64 // sites with gap fraction > 0.5

	// Site variability.
	NumInvariant   int
	NumSingleton   int
	InvariantRatio float64
	SingletonRatio float64

	// Character-frequency entropy (bits, gaps excluded per site).
	EntropyMean float64
	EntropySD   float64

	// Pattern-distribution signal.
	BollbackNorm   float64 // Bollback multinomial / NumSites (natural log)
	PatternEntropy float64 // Shannon entropy of pattern frequencies (bits)

	// Sampled pairwise normalized Hamming distance.
	NumSampledPairs int
	DistanceMean    float64
	DistanceSD      float64
}

// Compute derives all statistics from a validated alignment in one pass per
// concern. Pure: identical alignments always produce identical statistics
// (the pairwise sample is seeded deterministically).
func Compute(a *msa.Alignment) (*Raw, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil alignment", msa.ErrInvalidAlignment)
	}
	r := &Raw{
		NumTaxa:  a.NumTaxa(),
		NumSites: a.NumSites(),
	}
	r.SitesPerTaxon = float64(r.NumSites) / float64(r.NumTaxa)

	computeGapStats(a, r)
	computePatternStats(a, r)
	computeEntropyStats(a, r)
	computeDistanceStats(a, r)
	return r, nil
}
