// core/model/embed.go
package model

import "embed"

// Packaged pre-trained artifacts, one per supported schema version. Trained
// offline; the serialization is standard LightGBM text format.
//
//go:embed predictors
var packagedArtifacts embed.FS
