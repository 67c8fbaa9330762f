// core/alignio/reader.go
// Alignment readers for the two formats the original tool accepts: FASTA
// and relaxed sequential PHYLIP. Parsing stops at the in-memory Alignment;
// everything downstream is format-agnostic.
package alignio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"pythia-core/msa"
)

// Format selects the input parser.
type Format int

const (
	FormatAuto Format = iota
	FormatFASTA
	FormatPHYLIP
)

// ParseFormat maps a CLI format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "fasta":
		return FormatFASTA, nil
	case "phylip":
		return FormatPHYLIP, nil
	default:
		return FormatAuto, fmt.Errorf("unknown alignment format %q (fasta|phylip|auto)", s)
	}
}

// ReadFile reads an alignment from path ("-" for stdin, gzip transparent).
func ReadFile(path string, f Format) (*msa.Alignment, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	a, err := Read(rc, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Read parses an alignment from r. FormatAuto sniffs the first non-blank
// byte: '>' means FASTA, a digit means a PHYLIP header.
func Read(r io.Reader, f Format) (*msa.Alignment, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	if f == FormatAuto {
		var err error
		f, err = sniff(br)
		if err != nil {
			return nil, err
		}
	}
	switch f {
	case FormatFASTA:
		return readFASTA(br)
	case FormatPHYLIP:
		return readPHYLIP(br)
	default:
		return nil, fmt.Errorf("unsupported alignment format %d", f)
	}
}

func sniff(br *bufio.Reader) (Format, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return FormatAuto, fmt.Errorf("empty alignment input")
		}
		c := b[0]
		switch {
		case c == '>':
			return FormatFASTA, nil
		case c >= '0' && c <= '9':
			return FormatPHYLIP, nil
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if _, err := br.ReadByte(); err != nil {
				return FormatAuto, err
			}
		default:
			return FormatAuto, fmt.Errorf("cannot detect alignment format from leading byte %q", c)
		}
	}
}

func readFASTA(br *bufio.Reader) (*msa.Alignment, error) {
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var names []string
	var rows [][]byte
	var cur []byte
	flush := func() {
		if len(names) > len(rows) {
			rows = append(rows, cur)
		}
		cur = nil
	}
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			name := strings.Fields(string(line[1:]))
			if len(name) == 0 {
				return nil, fmt.Errorf("fasta: record with empty header")
			}
			names = append(names, name[0])
			continue
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur = append(cur, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return msa.New(names, rows)
}

// readPHYLIP parses relaxed sequential PHYLIP: a "ntaxa nsites" header,
// then one name followed by sequence data, wrapped over as many lines as
// needed to reach nsites.
func readPHYLIP(br *bufio.Reader) (*msa.Alignment, error) {
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("phylip: missing header")
	}
	var ntaxa, nsites int
	if _, err := fmt.Sscan(sc.Text(), &ntaxa, &nsites); err != nil {
		return nil, fmt.Errorf("phylip: bad header %q: %v", strings.TrimSpace(sc.Text()), err)
	}
	if ntaxa < 1 || nsites < 1 {
		return nil, fmt.Errorf("phylip: header promises %d taxa and %d sites", ntaxa, nsites)
	}

	names := make([]string, 0, ntaxa)
	rows := make([][]byte, 0, ntaxa)
	var cur []byte
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(names) == len(rows) {
			// New taxon: name, optionally followed by sequence on the line.
			fields := strings.Fields(line)
			names = append(names, fields[0])
			cur = nil
			for _, f := range fields[1:] {
				cur = append(cur, f...)
			}
		} else {
			for _, f := range strings.Fields(line) {
				cur = append(cur, f...)
			}
		}
		if len(names) > len(rows) && len(cur) >= nsites {
			if len(cur) > nsites {
				return nil, fmt.Errorf("phylip: taxon %q has %d sites, header says %d",
					names[len(names)-1], len(cur), nsites)
			}
			rows = append(rows, cur)
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) != ntaxa || len(names) != ntaxa {
		return nil, fmt.Errorf("phylip: header promises %d taxa, found %d complete rows", ntaxa, len(rows))
	}
	if len(rows[0]) != nsites {
		return nil, fmt.Errorf("phylip: header promises %d sites, found %d", nsites, len(rows[0]))
	}
	return msa.New(names, rows)
}
