// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pythia-core/alignio"
	"pythia-core/features"
	"pythia-core/model"
	"pythia-core/predict"

	"pythia/internal/cli"
	"pythia/internal/version"
	"pythia/internal/writers"
	"pythia/pkg/api"
)

// Exit codes: 0 success, 1 prediction failure, 2 usage error, 3 write
// failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("pythia")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pythia version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	progress := func(format string, args ...any) {
		if !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	var handle *model.Handle
	if opts.PredictorFile != "" {
		progress("loading predictor %s", opts.PredictorFile)
		handle, err = model.LoadFile(opts.PredictorFile, features.DefaultVersion)
	} else {
		progress("loading packaged predictor")
		handle, err = model.Load()
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	p := predict.NewWithHandle(handle)

	format, err := alignio.ParseFormat(opts.Format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	progress("reading alignment %s", opts.AlignmentFile)
	aln, err := alignio.ReadFile(opts.AlignmentFile, format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	progress("computing features and predicting difficulty")
	res, err := p.Predict(aln, predict.Options{
		WithExplanation:  opts.Shap,
		RemoveDuplicates: opts.RemoveDuplicates,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if len(res.DroppedDuplicates) > 0 {
		_, _ = fmt.Fprintf(stderr,
			"warning: removed %d duplicate sequence(s); the difficulty applies to the reduced alignment\n",
			len(res.DroppedDuplicates))
	}

	payload := writers.Payload{
		Result:    toAPI(res, aln.DataType().String(), opts.AlignmentFile),
		Precision: opts.Precision,
		Header:    opts.Header,
		Verbose:   opts.Verbose,
	}
	if err := writers.Write(opts.Output, outw, payload); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// toAPI maps a core prediction result onto the stable wire schema.
func toAPI(res *predict.Result, dataType, source string) api.ResultV1 {
	out := api.ResultV1{
		Difficulty:       res.Score,
		SchemaVersion:    res.SchemaVersion,
		NumTaxa:          res.Raw.NumTaxa,
		NumSites:         res.Raw.NumSites,
		NumPatterns:      res.Raw.NumPatterns,
		DataType:         dataType,
		RemovedSequences: res.DroppedDuplicates,
		SourceFile:       source,
	}
	out.Features = make([]api.FeatureV1, len(res.FeatureNames))
	for i, name := range res.FeatureNames {
		out.Features[i] = api.FeatureV1{Name: name, Value: res.FeatureVector[i]}
	}
	if res.Attribution != nil {
		base := res.Attribution.Baseline
		out.AttributionBaseline = &base
		for i := range out.Features {
			v := res.Attribution.Values[i]
			out.Features[i].Attribution = &v
		}
	}
	return out
}
