// pkg/api/result_v1.go
package api

// FeatureV1 is one feature slot of the vector the score was produced from.
type FeatureV1 struct {
	Name        string   `json:"name"`
	Value       float64  `json:"value"`
	Attribution *float64 `json:"attribution,omitempty"`
}

// ResultV1 is the stable JSON schema for a difficulty prediction.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Difficulty    float64 `json:"difficulty"`
	SchemaVersion string  `json:"schema_version"`
	NumTaxa       int     `json:"num_taxa"`
	NumSites      int     `json:"num_sites"`
	NumPatterns   int     `json:"num_patterns"`
	DataType      string  `json:"data_type"` // "DNA" | "AA"

	Features            []FeatureV1 `json:"features,omitempty"`
	AttributionBaseline *float64    `json:"attribution_baseline,omitempty"`
	RemovedSequences    []string    `json:"removed_sequences,omitempty"`
	SourceFile          string      `json:"source_file,omitempty"`
}
