package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"mcq-trainer/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "trainer.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.LoadResults(ctx); !errors.Is(err, domain.ErrResultsNotFound) {
		t.Fatalf("expected ErrResultsNotFound, got %v", err)
	}

	blob := []byte(`{"createdAt":1}`)
	if err := store.SaveResults(ctx, blob); err != nil {
		t.Fatalf("save results: %v", err)
	}
	got, err := store.LoadResults(ctx)
	if err != nil {
		t.Fatalf("load results: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("expected %s, got %s", blob, got)
	}

	// Upsert replaces the previous blob.
	if err := store.SaveResults(ctx, []byte(`{"createdAt":2}`)); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err = store.LoadResults(ctx)
	if err != nil || string(got) != `{"createdAt":2}` {
		t.Fatalf("expected last write to win, got %s err=%v", got, err)
	}
}

func TestThemeKeyIndependent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.LoadTheme(ctx); !errors.Is(err, domain.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if err := store.SaveTheme(ctx, domain.ThemeLight); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if err := store.SaveResults(ctx, []byte("garbage")); err != nil {
		t.Fatalf("save results: %v", err)
	}

	theme, err := store.LoadTheme(ctx)
	if err != nil || theme != domain.ThemeLight {
		t.Fatalf("theme must live under its own key, got %q err=%v", theme, err)
	}
}
