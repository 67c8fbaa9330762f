// core/alignio/open.go
package alignio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// gzipFile pairs a gzip stream with the file underneath it so both are
// released on Close.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// openReader opens an alignment source. "-" selects stdin; gzip-compressed
// files are decompressed transparently, recognized by the magic bytes so a
// misnamed file still opens (the .gz suffix alone also counts, for empty or
// unseekable edge cases).
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if gzipped(fh) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipFile{Reader: gr, file: fh}, nil
	}
	return fh, nil
}

// gzipped checks the two-byte gzip magic, leaving the read offset at the
// start of the file.
func gzipped(fh *os.File) bool {
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	return n == 2 && sig[0] == 0x1f && sig[1] == 0x8b
}
