package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"mcq-trainer/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, 0)

	if _, err := store.LoadResults(ctx); !errors.Is(err, domain.ErrResultsNotFound) {
		t.Fatalf("expected ErrResultsNotFound, got %v", err)
	}

	blob := []byte(`{"createdAt":1}`)
	if err := store.SaveResults(ctx, blob); err != nil {
		t.Fatalf("save results: %v", err)
	}
	if !mr.Exists("trainer:results") {
		t.Fatalf("expected results key in redis")
	}
	got, err := store.LoadResults(ctx)
	if err != nil || string(got) != string(blob) {
		t.Fatalf("expected %s, got %s err=%v", blob, got, err)
	}
}

func TestThemeKeyIndependent(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, 0)

	if err := store.SaveTheme(ctx, domain.ThemeDark); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	mr.Set("trainer:results", "garbage")

	theme, err := store.LoadTheme(ctx)
	if err != nil || theme != domain.ThemeDark {
		t.Fatalf("theme must live under its own key, got %q err=%v", theme, err)
	}
}

func TestWritesRefreshTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)

	if err := store.SaveResults(ctx, []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if mr.TTL("trainer:results") != time.Minute {
		t.Fatalf("expected TTL set, got %v", mr.TTL("trainer:results"))
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.LoadResults(ctx); !errors.Is(err, domain.ErrResultsNotFound) {
		t.Fatalf("expected expiry after TTL, got %v", err)
	}
}
