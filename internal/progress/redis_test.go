package progress

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestRedisStoreRoundTrip runs against a live Redis when LEARNSTYLE_TEST_REDIS_URL is set.
func TestRedisStoreRoundTrip(t *testing.T) {
	url := os.Getenv("LEARNSTYLE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("LEARNSTYLE_TEST_REDIS_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := NewRedisStore(ctx, RedisOptions{URL: url, Prefix: "learnstyle-test-" + uuid.NewString(), TTL: time.Minute})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, ok, err := store.Get(ctx, KeyPage); err != nil || ok {
		t.Fatalf("expected missing key, got %v %v", ok, err)
	}
	if err := store.Set(ctx, KeyPage, "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, KeyPage)
	if err != nil || !ok || value != "3" {
		t.Fatalf("expected 3, got %q %v %v", value, ok, err)
	}
	if err := store.Clear(ctx, KeyPage); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Get(ctx, KeyPage); ok {
		t.Fatalf("expected key to be cleared")
	}
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), RedisOptions{URL: "not-a-url"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestRedisStoreKeyPrefix verifies keys are namespaced by the configured prefix.
func TestRedisStoreKeyPrefix(t *testing.T) {
	cases := []struct {
		prefix string
		want   string
	}{
		{prefix: "learnstyle", want: "learnstyle:page"},
		{prefix: "", want: "page"},
	}
	for _, tc := range cases {
		store := &RedisStore{prefix: tc.prefix}
		if got := store.key(KeyPage); got != tc.want {
			t.Fatalf("prefix %q: expected %q, got %q", tc.prefix, tc.want, got)
		}
	}
}
