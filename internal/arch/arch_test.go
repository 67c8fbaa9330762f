// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// pythia-core packages stay CLI-agnostic; writers stay free of app
	// orchestration.
	bans := map[string][]string{
		"pythia-core/": {
			"pythia/internal/app", "pythia/internal/cli",
			"pythia/internal/writers", "pythia/cmd/",
		},
		"pythia/internal/writers": {
			"pythia/internal/app", "pythia/internal/cli", "pythia/cmd/",
		},
		"pythia/internal/cli": {
			"pythia/internal/app", "pythia/internal/writers", "pythia/cmd/",
		},
		"pythia/pkg/api": {
			"pythia/internal/", "pythia/cmd/", "pythia-core/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "pythia/") && !strings.HasPrefix(p.ImportPath, "pythia-core/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
