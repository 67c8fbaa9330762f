// core/features/builder.go
package features

import (
	"math"

	"pythia-core/stats"
)

// sources maps schema source names to raw-statistics accessors. Adding a
// statistic here makes it addressable from future schema versions without
// touching existing ones.
var sources = map[string]func(*stats.Raw) float64{
	"num_taxa":           func(r *stats.Raw) float64 { return float64(r.NumTaxa) },
	"num_sites":          func(r *stats.Raw) float64 { return float64(r.NumSites) },
	"num_patterns":       func(r *stats.Raw) float64 { return float64(r.NumPatterns) },
	"patterns_per_taxon": func(r *stats.Raw) float64 { return r.PatternsPerTaxon },
	"pattern_ratio":      func(r *stats.Raw) float64 { return r.PatternRatio },
	"sites_per_taxon":    func(r *stats.Raw) float64 { return r.SitesPerTaxon },
	"gap_fraction":       func(r *stats.Raw) float64 { return r.GapFraction },
	"gap_seq_sd":         func(r *stats.Raw) float64 { return r.GapSeqSD },
	"gap_heavy_ratio":    func(r *stats.Raw) float64 { return r.GapHeavyRatio },
	"invariant_ratio":    func(r *stats.Raw) float64 { return r.InvariantRatio },
	"singleton_ratio":    func(r *stats.Raw) float64 { return r.SingletonRatio },
	"entropy_mean":       func(r *stats.Raw) float64 { return r.EntropyMean },
	"entropy_sd":         func(r *stats.Raw) float64 { return r.EntropySD },
	"bollback_norm":      func(r *stats.Raw) float64 { return r.BollbackNorm },
	"pattern_entropy":    func(r *stats.Raw) float64 { return r.PatternEntropy },
	"distance_mean":      func(r *stats.Raw) float64 { return r.DistanceMean },
	"distance_sd":        func(r *stats.Raw) float64 { return r.DistanceSD },
}

// Build selects, transforms, and clips raw statistics into the feature
// vector of the given schema version. Pure: the output depends on nothing
// but the inputs. Fails with ErrSchemaMismatch for unknown versions.
func Build(r *stats.Raw, version string) ([]float64, error) {
	s, err := Lookup(version)
	if err != nil {
		return nil, err
	}
	return BuildFor(r, s), nil
}

// BuildFor builds the vector for an already-resolved schema.
func BuildFor(r *stats.Raw, s Schema) []float64 {
	vec := make([]float64, len(s.Slots))
	for i, f := range s.Slots {
		v := sources[f.Source](r)
		if f.Transform == "log1p" {
			v = math.Log1p(v)
		}
		if v < f.Clip.Min {
			v = f.Clip.Min
		}
		if v > f.Clip.Max {
			v = f.Clip.Max
		}
		vec[i] = v
	}
	return vec
}
