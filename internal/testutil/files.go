package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// WriteValues writes one value per line to dir/name and returns the path.
func WriteValues(t *testing.T, dir, name string, values []float64) string {
	t.Helper()
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return WriteText(t, dir, name, strings.Join(lines, "\n")+"\n")
}

// WriteText writes text to dir/name and returns the path.
func WriteText(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
