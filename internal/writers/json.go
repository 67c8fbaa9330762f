// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"
)

func init() {
	Register("json", writeJSON)
}

// writeJSON emits the full-precision ResultV1 document; rounding is a
// text/tsv presentation concern only.
func writeJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.Result)
}
