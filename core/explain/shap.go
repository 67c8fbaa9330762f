// core/explain/shap.go
// Additive per-feature attribution of a difficulty prediction: exact
// interventional Shapley values. Absent features are replaced by the
// schema-pinned baseline value and the model is evaluated on every feature
// coalition, so the attribution explains the adapter's actual (clamped)
// prediction function and baseline + sum(values) reconstructs the score
// exactly up to float rounding. Cost is 2^n model evaluations; n is pinned
// small by the feature schema.
package explain

import (
	"fmt"
	"math/bits"

	"pythia-core/model"
)

// maxFeatures bounds the coalition enumeration. Schemas are an order of
// magnitude below this; the guard keeps a future schema from silently
// turning explanation into an unbounded computation.
const maxFeatures = 20

// Attribution is the additive explanation of one prediction.
type Attribution struct {
	Names    []string  // feature names, schema order
	Values   []float64 // signed per-feature contributions
	Baseline float64   // prediction at the all-baseline vector
	Score    float64   // Baseline + sum(Values), the explained prediction
}

// Explain computes Shapley values of the prediction for vec under the
// handle's schema. Schema mismatches fail exactly as Predict does.
func Explain(h *model.Handle, vec []float64) (*Attribution, error) {
	schema := h.Schema()
	n := schema.Len()

	// Validates length/finiteness and pins the score we must reconstruct.
	score, err := h.Predict(vec)
	if err != nil {
		return nil, err
	}
	if n > maxFeatures {
		return nil, fmt.Errorf("schema %q has %d features, attribution supports at most %d",
			schema.Version, n, maxFeatures)
	}

	base := schema.Baseline()

	// Model value for every coalition: bit i set means feature i takes its
	// observed value, otherwise the baseline value.
	value := make([]float64, 1<<uint(n))
	masked := make([]float64, n)
	for mask := 0; mask < len(value); mask++ {
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				masked[i] = vec[i]
			} else {
				masked[i] = base[i]
			}
		}
		v, err := h.Predict(masked)
		if err != nil {
			return nil, err
		}
		value[mask] = v
	}

	weights := coalitionWeights(n)
	phi := make([]float64, n)
	for i := 0; i < n; i++ {
		bit := 1 << uint(i)
		for mask := 0; mask < len(value); mask++ {
			if mask&bit != 0 {
				continue
			}
			w := weights[bits.OnesCount(uint(mask))]
			phi[i] += w * (value[mask|bit] - value[mask])
		}
	}

	return &Attribution{
		Names:    schema.Names(),
		Values:   phi,
		Baseline: value[0],
		Score:    score,
	}, nil
}

// coalitionWeights returns w[s] = s!(n-1-s)!/n! = 1/(n*C(n-1,s)) for each
// coalition size s.
func coalitionWeights(n int) []float64 {
	w := make([]float64, n)
	binom := 1.0 // C(n-1, 0)
	for s := 0; s < n; s++ {
		w[s] = 1.0 / (float64(n) * binom)
		binom = binom * float64(n-1-s) / float64(s+1)
	}
	return w
}

// Sum returns the total attributed contribution.
func (a *Attribution) Sum() float64 {
	total := 0.0
	for _, v := range a.Values {
		total += v
	}
	return total
}
