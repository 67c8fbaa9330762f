// core/model/model.go
// Difficulty Model Adapter. Wraps a pre-trained LightGBM regression
// ensemble (inference via github.com/dmitryikh/leaves) behind a small
// Regressor contract so the rest of the pipeline never touches the artifact
// format. The packaged artifact is compiled into the binary and loaded at
// most once; a Handle is immutable after load and safe for concurrent
// Predict calls.
package model

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/dmitryikh/leaves"

	"pythia-core/features"
)

var (
	// ErrModelLoad marks a missing, unreadable, or inconsistent artifact.
	ErrModelLoad = errors.New("model load failed")
	// ErrFeatureSchema marks a feature vector that does not match what the
	// loaded artifact expects.
	ErrFeatureSchema = errors.New("feature vector does not match model schema")
)

// Regressor is the minimal inference contract of a trained artifact.
// Implementations must be safe for concurrent PredictRaw calls.
type Regressor interface {
	NumFeatures() int
	PredictRaw(vec []float64) float64
}

// Handle binds a loaded regressor to the feature schema it was trained
// against. Read-only after construction.
type Handle struct {
	reg    Regressor
	schema features.Schema
}

// New wraps a regressor with its schema, verifying they agree on the
// feature count. Used by loaders and by tests that inject stub regressors.
func New(reg Regressor, schema features.Schema) (*Handle, error) {
	if reg.NumFeatures() != schema.Len() {
		return nil, fmt.Errorf("%w: artifact expects %d features, schema %q has %d",
			ErrModelLoad, reg.NumFeatures(), schema.Version, schema.Len())
	}
	return &Handle{reg: reg, schema: schema}, nil
}

// Schema returns the feature schema the artifact was trained against.
func (h *Handle) Schema() features.Schema { return h.schema }

// SchemaVersion returns the bound schema version.
func (h *Handle) SchemaVersion() string { return h.schema.Version }

// Predict runs read-only inference on a feature vector built for the
// handle's schema and clamps the result to [0,1]. Fails with
// ErrFeatureSchema when the vector length disagrees with the artifact.
func (h *Handle) Predict(vec []float64) (float64, error) {
	if len(vec) != h.schema.Len() {
		return 0, fmt.Errorf("%w: got %d values, schema %q expects %d",
			ErrFeatureSchema, len(vec), h.schema.Version, h.schema.Len())
	}
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: non-finite value at slot %q",
				ErrFeatureSchema, h.schema.Slots[i].Name)
		}
	}
	score := h.reg.PredictRaw(vec)
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

var (
	loadOnce  sync.Once
	loadedH   *Handle
	loadedErr error
)

// Load returns the packaged default artifact, reading and validating it at
// most once per process. Concurrent first calls race safely to one load.
func Load() (*Handle, error) {
	loadOnce.Do(func() {
		loadedH, loadedErr = loadPackaged(features.DefaultVersion)
	})
	return loadedH, loadedErr
}

func loadPackaged(version string) (*Handle, error) {
	schema, err := features.Lookup(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	data, err := packagedArtifacts.ReadFile("predictors/" + schema.Artifact)
	if err != nil {
		return nil, fmt.Errorf("%w: packaged artifact %q: %v", ErrModelLoad, schema.Artifact, err)
	}
	return fromBytes(data, schema)
}

// LoadFile loads an artifact override from disk, bound to the given schema
// version. The original tool exposes this as its --predictor flag.
func LoadFile(path, version string) (*Handle, error) {
	schema, err := features.Lookup(version)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	return fromBytes(data, schema)
}

func fromBytes(data []byte, schema features.Schema) (*Handle, error) {
	ens, err := leaves.LGEnsembleFromReader(bufio.NewReader(bytes.NewReader(data)), false)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing LightGBM artifact: %v", ErrModelLoad, err)
	}
	if ens.NRawOutputGroups() != 1 {
		return nil, fmt.Errorf("%w: artifact is not a single-output regressor", ErrModelLoad)
	}
	return New(&lgbm{ens: ens}, schema)
}

// lgbm adapts a leaves ensemble to the Regressor contract.
type lgbm struct {
	ens *leaves.Ensemble
}

func (l *lgbm) NumFeatures() int { return l.ens.NFeatures() }

func (l *lgbm) PredictRaw(vec []float64) float64 {
	return l.ens.PredictSingle(vec, 0)
}
