package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pythia-core/features"
	"pythia-core/model"
)

type stub struct {
	n  int
	fn func([]float64) float64
}

func (s stub) NumFeatures() int               { return s.n }
func (s stub) PredictRaw(v []float64) float64 { return s.fn(v) }

func handleWith(t *testing.T, fn func([]float64) float64) *model.Handle {
	t.Helper()
	s, err := features.Lookup(features.DefaultVersion)
	require.NoError(t, err)
	h, err := model.New(stub{n: s.Len(), fn: fn}, s)
	require.NoError(t, err)
	return h
}

// For a linear model the Shapley value of feature i is exactly
// a_i * (x_i - baseline_i).
func TestLinearModelAttributions(t *testing.T) {
	s, err := features.Lookup(features.DefaultVersion)
	require.NoError(t, err)
	n := s.Len()

	coef := make([]float64, n)
	for i := range coef {
		coef[i] = 0.01 * float64(i+1)
	}
	h := handleWith(t, func(v []float64) float64 {
		out := 0.1
		for i, x := range v {
			out += coef[i] * (x - s.Slots[i].Baseline)
		}
		// Keep inside [0,1] so clamping stays inactive and the linear
		// closed form applies.
		return out
	})

	vec := s.Baseline()
	vec[2] += 1.5
	vec[9] -= 0.25

	attr, err := Explain(h, vec)
	require.NoError(t, err)
	require.Len(t, attr.Values, n)

	for i := range attr.Values {
		want := coef[i] * (vec[i] - s.Slots[i].Baseline)
		assert.InDelta(t, want, attr.Values[i], 1e-9, "feature %s", attr.Names[i])
	}
	assert.InDelta(t, 0.1, attr.Baseline, 1e-12)
	assert.InDelta(t, attr.Score, attr.Baseline+attr.Sum(), 1e-9)
}

// The additivity law must hold for arbitrary nonlinear models too,
// including through the adapter's clamping.
func TestAdditivityNonlinear(t *testing.T) {
	h := handleWith(t, func(v []float64) float64 {
		return 0.4*v[3] + 0.3*v[9]*v[13] - 0.1*v[5]*v[5] + 0.35
	})
	s, err := features.Lookup(features.DefaultVersion)
	require.NoError(t, err)

	vec := s.Baseline()
	vec[3] = 0.9
	vec[9] = 2.1
	vec[13] = 0.7
	vec[5] = 0.4

	attr, err := Explain(h, vec)
	require.NoError(t, err)

	pred, err := h.Predict(vec)
	require.NoError(t, err)
	assert.InDelta(t, pred, attr.Baseline+attr.Sum(), 1e-9)
	assert.Equal(t, pred, attr.Score)
}

func TestExplainSchemaMismatch(t *testing.T) {
	h := handleWith(t, func(v []float64) float64 { return 0.5 })
	_, err := Explain(h, []float64{1, 2, 3})
	require.ErrorIs(t, err, model.ErrFeatureSchema)
}

func TestExplainDeterministic(t *testing.T) {
	h := handleWith(t, func(v []float64) float64 {
		return 0.2*v[0] + 0.1*v[4]*v[7] + 0.3
	})
	s, err := features.Lookup(features.DefaultVersion)
	require.NoError(t, err)
	vec := s.Baseline()
	vec[0] = 1.1
	vec[4] = 3.0

	a, err := Explain(h, vec)
	require.NoError(t, err)
	b, err := Explain(h, vec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCoalitionWeightsSumToOne(t *testing.T) {
	for _, n := range []int{1, 2, 5, 15} {
		w := coalitionWeights(n)
		// Per feature: sum over s of C(n-1,s)*w[s] = 1.
		total := 0.0
		binom := 1.0
		for s := 0; s < n; s++ {
			total += binom * w[s]
			binom = binom * float64(n-1-s) / float64(s+1)
		}
		assert.InDelta(t, 1.0, total, 1e-12, "n=%d", n)
	}
}
