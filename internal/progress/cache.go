package progress

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// Cache stores JSON-encoded values in a Store.
type Cache struct {
	store  Store
	logger *slog.Logger
}

// NewCache wraps store with JSON encoding.
func NewCache(store Store, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{store: store, logger: logger.With("component", "progress")}
}

// Store returns the underlying store.
func (c *Cache) Store() Store {
	return c.store
}

// Save encodes value and writes it under key. Failures are logged, not returned.
func (c *Cache) Save(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "encode cached value", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, string(payload)); err != nil {
		c.logger.WarnContext(ctx, "write cached value", "key", key, "error", err)
	}
}

// Load decodes the value under key into dest. It reports false when the key
// is missing, unreadable, or does not decode; undecodable entries are removed.
func (c *Cache) Load(ctx context.Context, key string, dest any) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "read cached value", "key", key, "error", err)
		if errors.Is(err, ErrCorruptFile) {
			c.Clear(ctx, key)
		}
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.WarnContext(ctx, "discarding corrupt cached value", "key", key, "error", err)
		c.Clear(ctx, key)
		return false
	}
	return true
}

// Clear removes key, logging failures.
func (c *Cache) Clear(ctx context.Context, key string) {
	if err := c.store.Clear(ctx, key); err != nil {
		c.logger.WarnContext(ctx, "clear cached value", "key", key, "error", err)
	}
}

// ClearAll removes every questionnaire key.
func (c *Cache) ClearAll(ctx context.Context) {
	for _, key := range AllKeys {
		c.Clear(ctx, key)
	}
}
