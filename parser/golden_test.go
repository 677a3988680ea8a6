package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/internal/tokentest"
)

// To update golden files, set the environment variable:
//
//	UPDATE_GOLDEN=1 go test -run TestGolden ./parser/...
func updateGolden() bool {
	return os.Getenv("UPDATE_GOLDEN") == "1"
}

// TestGolden compares the tree dump of each testdata/golden/*.strata file
// against the .golden file next to it.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "golden", "*.strata"))
	if err != nil {
		t.Fatalf("failed to glob golden files: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no golden test files found")
	}

	for _, file := range files {
		baseName := strings.TrimSuffix(filepath.Base(file), ".strata")
		t.Run(baseName, func(t *testing.T) {
			input, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read input file: %v", err)
			}

			module, err := Parse(tokentest.Scan(string(input)), WithFilename(file))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			actual := ast.DumpString(module)

			goldenFile := strings.TrimSuffix(file, ".strata") + ".golden"
			if updateGolden() {
				if err := os.WriteFile(goldenFile, []byte(actual), 0o644); err != nil {
					t.Fatalf("failed to write golden file: %v", err)
				}
				t.Logf("updated golden file: %s", goldenFile)
				return
			}

			expected, err := os.ReadFile(goldenFile)
			if err != nil {
				if os.IsNotExist(err) {
					t.Fatalf("golden file not found: %s\nRun with UPDATE_GOLDEN=1 to create it.\nActual output:\n%s", goldenFile, actual)
				}
				t.Fatalf("failed to read golden file: %v", err)
			}
			if diff := cmp.Diff(string(expected), actual); diff != "" {
				t.Errorf("tree mismatch for %s (-want +got):\n%s", file, diff)
			}
		})
	}
}
