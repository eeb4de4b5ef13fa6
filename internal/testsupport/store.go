package testsupport

import (
	"context"
	"testing"

	"subscore/internal/config"
	"subscore/internal/profiles"
)

// MustOpenStore opens a profiles.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *profiles.Store {
	t.Helper()

	store, err := profiles.Open(context.Background(), cfg.ProfilesDBPath())
	if err != nil {
		t.Fatalf("profiles.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewProfile stores a profile for tests using the provided store.
func NewProfile(t testing.TB, store *profiles.Store, p profiles.Profile) *profiles.Profile {
	t.Helper()

	created, err := store.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return created
}
