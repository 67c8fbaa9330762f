// internal/writers/tsv.go
package writers

import (
	"io"
	"strconv"
	"strings"
)

func init() {
	Register("tsv", writeTSV)
}

// writeTSV emits one row per prediction. Verbose mode appends one column
// per feature, named by the schema slot.
func writeTSV(w io.Writer, p Payload) error {
	r := p.Result

	cols := []string{"difficulty", "schema_version", "data_type", "num_taxa", "num_sites", "num_patterns"}
	vals := []string{
		fmtFloat(r.Difficulty, p.Precision),
		r.SchemaVersion,
		r.DataType,
		strconv.Itoa(r.NumTaxa),
		strconv.Itoa(r.NumSites),
		strconv.Itoa(r.NumPatterns),
	}
	if p.Verbose {
		for _, f := range r.Features {
			cols = append(cols, f.Name)
			vals = append(vals, fmtFloat(f.Value, p.Precision))
		}
	}

	if p.Header {
		if _, err := io.WriteString(w, strings.Join(cols, "\t")+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, strings.Join(vals, "\t")+"\n")
	return err
}
