package testsupport

import (
	"testing"

	"reflow/internal/state"
)

// MustOpenStore opens a SQLite state store under a test cache dir and
// registers cleanup.
func MustOpenStore(t testing.TB, cacheDir string) *state.SQLiteStore {
	t.Helper()

	store, err := state.Open(cacheDir)
	if err != nil {
		t.Fatalf("state.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
