package tokens

import (
	"context"
	"errors"
	"testing"
)

// storeConformance runs the Store contract against any implementation.
func storeConformance(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	fullSet := TokenSet{
		AccessToken:  "access-token",
		IDToken:      "id-token",
		RefreshToken: "refresh-token",
	}

	t.Run("round trip", func(t *testing.T) {
		store := newStore(t)
		profile := &Profile{Email: "alice@example.com", Username: "alice"}

		if err := store.Save(context.Background(), fullSet, profile); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got != fullSet {
			t.Fatalf("loaded %+v", got)
		}

		gotProfile, err := store.LoadProfile(context.Background())
		if err != nil {
			t.Fatalf("LoadProfile failed: %v", err)
		}
		if gotProfile != *profile {
			t.Fatalf("profile %+v", gotProfile)
		}
	})

	t.Run("load requires full triple", func(t *testing.T) {
		store := newStore(t)
		partial := TokenSet{AccessToken: "access-token"}

		if err := store.Save(context.Background(), partial, nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if _, err := store.Load(context.Background()); !errors.Is(err, ErrNoSession) {
			t.Fatalf("Load on a partial session: %v", err)
		}

		// Peek has no completeness requirement.
		peeked, err := store.Peek(context.Background())
		if err != nil {
			t.Fatalf("Peek failed: %v", err)
		}
		if peeked.AccessToken != "access-token" {
			t.Fatalf("peeked %+v", peeked)
		}
	})

	t.Run("load on empty store", func(t *testing.T) {
		store := newStore(t)
		if _, err := store.Load(context.Background()); !errors.Is(err, ErrNoSession) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("save replaces whole session", func(t *testing.T) {
		store := newStore(t)
		if err := store.Save(context.Background(), fullSet, &Profile{Email: "old@example.com"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Save(context.Background(), TokenSet{AccessToken: "a2", IDToken: "i2", RefreshToken: "r2"}, nil); err != nil {
			t.Fatalf("second Save failed: %v", err)
		}

		profile, err := store.LoadProfile(context.Background())
		if err != nil {
			t.Fatalf("LoadProfile failed: %v", err)
		}
		if profile.Email == "old@example.com" {
			t.Fatal("stale profile survived a replacing save")
		}
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store := newStore(t)
		if err := store.Save(context.Background(), fullSet, nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if err := store.Clear(context.Background()); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if err := store.Clear(context.Background()); err != nil {
			t.Fatalf("Clear on empty store failed: %v", err)
		}
		if _, err := store.Load(context.Background()); !errors.Is(err, ErrNoSession) {
			t.Fatalf("session survived Clear: %v", err)
		}
	})

	t.Run("state consumed once", func(t *testing.T) {
		store := newStore(t)
		if err := store.PutState(context.Background(), "nonce-1"); err != nil {
			t.Fatalf("PutState failed: %v", err)
		}

		state, err := store.TakeState(context.Background())
		if err != nil {
			t.Fatalf("TakeState failed: %v", err)
		}
		if state != "nonce-1" {
			t.Fatalf("state %q", state)
		}
		if _, err := store.TakeState(context.Background()); !errors.Is(err, ErrNoState) {
			t.Fatalf("second take: %v", err)
		}
	})

	t.Run("put state replaces previous", func(t *testing.T) {
		store := newStore(t)
		if err := store.PutState(context.Background(), "nonce-1"); err != nil {
			t.Fatalf("PutState failed: %v", err)
		}
		if err := store.PutState(context.Background(), "nonce-2"); err != nil {
			t.Fatalf("second PutState failed: %v", err)
		}

		state, err := store.TakeState(context.Background())
		if err != nil {
			t.Fatalf("TakeState failed: %v", err)
		}
		if state != "nonce-2" {
			t.Fatalf("state %q, want the replacement", state)
		}
	})

	t.Run("clear removes pending state", func(t *testing.T) {
		store := newStore(t)
		if err := store.PutState(context.Background(), "nonce-1"); err != nil {
			t.Fatalf("PutState failed: %v", err)
		}
		if err := store.Clear(context.Background()); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if _, err := store.TakeState(context.Background()); !errors.Is(err, ErrNoState) {
			t.Fatalf("state survived Clear: %v", err)
		}
	})
}

func TestMemoryStoreContract(t *testing.T) {
	storeConformance(t, func(_ *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestTokenSetPredicates(t *testing.T) {
	cases := []struct {
		name     string
		set      TokenSet
		complete bool
		empty    bool
	}{
		{"zero", TokenSet{}, false, true},
		{"access only", TokenSet{AccessToken: "a"}, false, false},
		{"full", TokenSet{AccessToken: "a", IDToken: "i", RefreshToken: "r"}, true, false},
	}

	for _, tc := range cases {
		if got := tc.set.Complete(); got != tc.complete {
			t.Fatalf("%s: Complete = %v", tc.name, got)
		}
		if got := tc.set.Empty(); got != tc.empty {
			t.Fatalf("%s: Empty = %v", tc.name, got)
		}
	}
}
