package testsupport

import (
	"testing"

	"cdinventory/internal/fileutil"
)

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
