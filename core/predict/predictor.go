// core/predict/predictor.go
// Prediction Orchestrator: the one entry point composing validation,
// statistics, feature building, inference, and optional attribution.
// Fail-fast: any stage error aborts the call with no partial result.
package predict

import (
	"fmt"

	"pythia-core/explain"
	"pythia-core/features"
	"pythia-core/model"
	"pythia-core/msa"
	"pythia-core/stats"
)

// Options control a single prediction call.
type Options struct {
	// WithExplanation also computes per-feature Shapley attributions.
	// Considerably more expensive than the score alone.
	WithExplanation bool
	// RemoveDuplicates reduces the alignment to distinct sequences instead
	// of refusing duplicate input. The score then applies to the reduced
	// alignment.
	RemoveDuplicates bool
}

// Result is the complete outcome of one difficulty prediction.
type Result struct {
	// Score is the predicted difficulty in [0,1]; 0 easy, 1 hard.
	Score float64
	// SchemaVersion identifies the feature schema the score was produced
	// under.
	SchemaVersion string
	// FeatureNames and FeatureVector are the model inputs, schema order.
	FeatureNames  []string
	FeatureVector []float64
	// Raw carries every computed alignment statistic.
	Raw *stats.Raw
	// Attribution is set only when Options.WithExplanation was requested.
	Attribution *explain.Attribution
	// DroppedDuplicates lists sequences removed by Options.RemoveDuplicates.
	DroppedDuplicates []string
}

// Predictor runs difficulty predictions against one loaded model handle.
// Stateless beyond the handle; safe for concurrent use.
type Predictor struct {
	handle *model.Handle
}

// New returns a predictor over the packaged default model, loading it on
// first use process-wide.
func New() (*Predictor, error) {
	h, err := model.Load()
	if err != nil {
		return nil, err
	}
	return &Predictor{handle: h}, nil
}

// NewWithHandle returns a predictor over an explicitly loaded handle
// (artifact overrides, tests).
func NewWithHandle(h *model.Handle) *Predictor {
	return &Predictor{handle: h}
}

// SchemaVersion returns the feature schema version bound to the predictor's
// model.
func (p *Predictor) SchemaVersion() string { return p.handle.SchemaVersion() }

// Predict runs the full pipeline on one alignment.
func (p *Predictor) Predict(a *msa.Alignment, opts Options) (*Result, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil alignment", msa.ErrInvalidAlignment)
	}

	var dropped []string
	if a.ContainsDuplicates() {
		if !opts.RemoveDuplicates {
			return nil, fmt.Errorf("%w: duplicates distort the difficulty; remove them first",
				msa.ErrDuplicateSequences)
		}
		var err error
		a, dropped, err = a.RemoveDuplicates()
		if err != nil {
			return nil, err
		}
	}

	raw, err := stats.Compute(a)
	if err != nil {
		return nil, err
	}

	schema := p.handle.Schema()
	vec := features.BuildFor(raw, schema)

	score, err := p.handle.Predict(vec)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Score:             score,
		SchemaVersion:     schema.Version,
		FeatureNames:      schema.Names(),
		FeatureVector:     vec,
		Raw:               raw,
		DroppedDuplicates: dropped,
	}

	if opts.WithExplanation {
		attr, err := explain.Explain(p.handle, vec)
		if err != nil {
			return nil, err
		}
		res.Attribution = attr
	}
	return res, nil
}
