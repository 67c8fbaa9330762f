// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"pythia/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	AlignmentFile string
	Format        string // fasta | phylip | auto
	PredictorFile string // optional trained-artifact override

	// Prediction
	Shap             bool
	RemoveDuplicates bool

	// Output
	Output    string // text | tsv | json
	Precision int
	Verbose   bool
	Header    bool // true unless --no-header
	Quiet     bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: phylogenetic difficulty prediction for multiple sequence alignments

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.AlignmentFile, "alignment", "", "alignment file (FASTA or PHYLIP, '-' for stdin) [*]")
	fs.StringVar(&opt.Format, "format", "auto", "alignment format: fasta | phylip | auto [auto]")
	fs.StringVar(&opt.PredictorFile, "predictor", "", "trained predictor file overriding the packaged artifact")

	// Prediction
	fs.BoolVar(&opt.Shap, "shap", false, "compute per-feature attributions of the score [false]")
	fs.BoolVar(&opt.RemoveDuplicates, "remove-duplicates", false, "reduce duplicate sequences instead of refusing them [false]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | json [text]")
	fs.IntVar(&opt.Precision, "precision", 2, "decimals the difficulty is rounded to in reports [2]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "additionally print the computed features [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in tsv [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress messages [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress progress messages (shorthand)")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.AlignmentFile == "" {
		return opt, errors.New("--alignment is required")
	}
	switch opt.Format {
	case "auto", "fasta", "phylip":
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	switch opt.Output {
	case "text", "tsv", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Precision < 0 || opt.Precision > 15 {
		return opt, errors.New("--precision must be between 0 and 15")
	}
	return opt, nil
}
