package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
)

// SeedFixtures copies the repository's fixture set into a temp directory
// and opens a store over it. Tests can then overwrite individual
// collections with WriteCollection without touching the shared data.
func SeedFixtures(t *testing.T) (*fixture.Store, string) {
	t.Helper()

	dir := t.TempDir()

	entries, err := os.ReadDir(dataDir(t))
	if err != nil {
		t.Fatalf("Failed to read fixture data directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dataDir(t), entry.Name()))
		if err != nil {
			t.Fatalf("Failed to read fixture %s: %v", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dir, entry.Name()), raw, 0o644); err != nil {
			t.Fatalf("Failed to copy fixture %s: %v", entry.Name(), err)
		}
	}

	store, err := fixture.New(dir)
	if err != nil {
		t.Fatalf("Failed to open fixture store: %v", err)
	}

	return store, dir
}

// WriteCollection replaces a single collection document for test isolation
func WriteCollection(t *testing.T, dir, name string, v interface{}) {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal collection %s: %v", name, err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		t.Fatalf("Failed to write collection %s: %v", name, err)
	}
}

// dataDir resolves the repository's data directory relative to this file
func dataDir(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to resolve caller path")
	}

	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "data")
}
