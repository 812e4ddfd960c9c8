package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteNames writes an input file with one name per line and returns its
// path.
func WriteNames(t testing.TB, dir, name string, names ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := ""
	for _, n := range names {
		content += n + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
