package staging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ddmitrenko/tools/internal/common"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestPutGet_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "sign_up-alice@x.com", []byte(`{"verify_code":"482913"}`), 10*time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := store.Get(ctx, "sign_up-alice@x.com")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != `{"verify_code":"482913"}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestGet_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "sign_up-nobody@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestGet_AfterTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "reset_password-bob@x.com", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	mr.FastForward(time.Minute + time.Second)

	_, err := store.Get(ctx, "reset_password-bob@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound after TTL, got %v", err)
	}
}

func TestPut_OverwriteRestartsTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "k", []byte("first"), time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	mr.FastForward(30 * time.Second)

	if err := store.Put(ctx, "k", []byte("second"), time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	// Past the first entry's deadline but within the restarted TTL.
	mr.FastForward(45 * time.Second)

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected overwritten payload, got %s", got)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete of absent key should not fail: %v", err)
	}

	_, err := store.Get(ctx, "k")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteIfMatches(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "k", []byte("expected"), time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	if err := store.DeleteIfMatches(ctx, "k", []byte("other")); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("mismatched payload: expected common.ErrNotFound, got %v", err)
	}

	// The mismatch must not have consumed the entry.
	if _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("entry should survive mismatched delete: %v", err)
	}

	if err := store.DeleteIfMatches(ctx, "k", []byte("expected")); err != nil {
		t.Fatalf("DeleteIfMatches error: %v", err)
	}

	// A second consume must lose.
	if err := store.DeleteIfMatches(ctx, "k", []byte("expected")); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound on second consume, got %v", err)
	}
}
