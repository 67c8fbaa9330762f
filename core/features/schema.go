// core/features/schema.go
// Versioned feature-schema registry. A schema is the compatibility contract
// between the statistics engine and a trained model artifact: which
// statistics, in which order, under which transforms. The registry document
// is compiled into the binary; an unknown version is a hard error.
package features

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultVersion is the schema version of the packaged model artifact.
const DefaultVersion = "pythia-go-v1"

// ErrSchemaMismatch marks requests for an unknown or incompatible feature
// schema version.
var ErrSchemaMismatch = errors.New("feature schema mismatch")

//go:embed schemas.yaml
var registryYAML []byte

// Clip bounds a transformed feature value to a fixed range so outliers in
// degenerate alignments cannot leave the domain the model was trained on.
type Clip struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Slot describes one position of the feature vector.
type Slot struct {
	Name      string  `yaml:"name"`
	Source    string  `yaml:"source"`
	Transform string  `yaml:"transform"` // "" (identity) or "log1p"
	Clip      Clip    `yaml:"clip"`
	Baseline  float64 `yaml:"baseline"`
}

// Schema is an ordered list of feature slots tied to one model artifact.
type Schema struct {
	Version  string `yaml:"version"`
	Artifact string `yaml:"artifact"`
	Slots    []Slot `yaml:"features"`
}

// Len returns the number of feature slots.
func (s Schema) Len() int { return len(s.Slots) }

// Names returns the slot names in vector order.
func (s Schema) Names() []string {
	out := make([]string, len(s.Slots))
	for i, f := range s.Slots {
		out[i] = f.Name
	}
	return out
}

// Baseline returns the schema-pinned baseline vector used by the
// attribution layer.
func (s Schema) Baseline() []float64 {
	out := make([]float64, len(s.Slots))
	for i, f := range s.Slots {
		out[i] = f.Baseline
	}
	return out
}

type registry struct {
	Schemas []Schema `yaml:"schemas"`
}

var (
	regOnce sync.Once
	reg     registry
	regErr  error
)

func loadRegistry() (registry, error) {
	regOnce.Do(func() {
		regErr = yaml.Unmarshal(registryYAML, &reg)
		if regErr != nil {
			return
		}
		regErr = validateRegistry(reg)
	})
	return reg, regErr
}

func validateRegistry(r registry) error {
	if len(r.Schemas) == 0 {
		return errors.New("feature schema registry is empty")
	}
	for _, s := range r.Schemas {
		if s.Version == "" || len(s.Slots) == 0 {
			return fmt.Errorf("schema %q has no feature slots", s.Version)
		}
		seen := make(map[string]bool, len(s.Slots))
		for _, f := range s.Slots {
			if seen[f.Name] {
				return fmt.Errorf("schema %q: duplicate feature %q", s.Version, f.Name)
			}
			seen[f.Name] = true
			if _, ok := sources[f.Source]; !ok {
				return fmt.Errorf("schema %q: feature %q reads unknown statistic %q", s.Version, f.Name, f.Source)
			}
			if f.Transform != "" && f.Transform != "log1p" {
				return fmt.Errorf("schema %q: feature %q has unknown transform %q", s.Version, f.Name, f.Transform)
			}
			if f.Clip.Min >= f.Clip.Max {
				return fmt.Errorf("schema %q: feature %q has empty clip range", s.Version, f.Name)
			}
		}
	}
	return nil
}

// Lookup returns the schema for version, or ErrSchemaMismatch if the
// registry does not carry it.
func Lookup(version string) (Schema, error) {
	r, err := loadRegistry()
	if err != nil {
		return Schema{}, err
	}
	for _, s := range r.Schemas {
		if s.Version == version {
			return s, nil
		}
	}
	return Schema{}, fmt.Errorf("%w: unknown version %q (supported: %v)", ErrSchemaMismatch, version, versions(r))
}

// Versions lists the schema versions the registry supports.
func Versions() ([]string, error) {
	r, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	return versions(r), nil
}

func versions(r registry) []string {
	out := make([]string, len(r.Schemas))
	for i, s := range r.Schemas {
		out[i] = s.Version
	}
	return out
}
