// internal/writers/text.go
package writers

import (
	"fmt"
	"io"
	"strconv"
)

func init() {
	Register("text", writeText)
}

func writeText(w io.Writer, p Payload) error {
	r := p.Result
	src := r.SourceFile
	if src == "" {
		src = "alignment"
	}
	if _, err := fmt.Fprintf(w, "Alignment: %s (%s, %d taxa, %d sites, %d patterns)\n",
		src, r.DataType, r.NumTaxa, r.NumSites, r.NumPatterns); err != nil {
		return err
	}
	if len(r.RemovedSequences) > 0 {
		if _, err := fmt.Fprintf(w, "Removed %d duplicate sequence(s): the difficulty applies to the reduced alignment\n",
			len(r.RemovedSequences)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Difficulty: %s\n", fmtFloat(r.Difficulty, p.Precision)); err != nil {
		return err
	}

	if p.Verbose {
		if _, err := fmt.Fprintf(w, "\nFeatures (%s):\n", r.SchemaVersion); err != nil {
			return err
		}
		for _, f := range r.Features {
			if _, err := fmt.Fprintf(w, "  %-22s %s\n", f.Name, fmtFloat(f.Value, p.Precision)); err != nil {
				return err
			}
		}
	}

	if r.AttributionBaseline != nil {
		if _, err := fmt.Fprintf(w, "\nAttributions (baseline %s):\n",
			fmtFloat(*r.AttributionBaseline, p.Precision)); err != nil {
			return err
		}
		for _, f := range r.Features {
			if f.Attribution == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %-22s %+.*f\n", f.Name, p.Precision, *f.Attribution); err != nil {
				return err
			}
		}
	}
	return nil
}

func fmtFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
