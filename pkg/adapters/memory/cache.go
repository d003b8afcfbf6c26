// Package memory provides an in-process content cache.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/tweetflow/pkg/domain"
)

type entry struct {
	value     string
	storedAt  time.Time
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Cache implements ports.ContentCache in memory.
// Safe for concurrent use.
type Cache struct {
	data       map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	mu         sync.RWMutex
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the expiration for entries. Zero means entries never expire.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithMaxEntries bounds the number of stored entries. When the cache is full,
// expired entries are dropped first, then the oldest one. Zero means no bound.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]entry),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", domain.ErrCacheMiss
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		// A concurrent Set may have refreshed the entry.
		if cur, ok := c.data[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return "", domain.ErrCacheMiss
	}
	return e.value, nil
}

// Set stores value under key.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	now := c.now()
	e := entry{value: value, storedAt: now}
	if c.ttl > 0 {
		e.expiresAt = now.Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.data[key]; !exists && c.maxEntries > 0 && len(c.data) >= c.maxEntries {
		c.sweepLocked(now)
		if len(c.data) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}
	c.data[key] = e
	return nil
}

// Sweep removes every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked(now)
}

// StartJanitor sweeps the cache every interval until the returned func is called.
func (c *Cache) StartJanitor(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Sweep()
			case <-done:
				return
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

func (c *Cache) sweepLocked(now time.Time) int {
	removed := 0
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
			removed++
		}
	}
	return removed
}

func (c *Cache) evictOldestLocked() {
	var oldest string
	var at time.Time
	for k, e := range c.data {
		if oldest == "" || e.storedAt.Before(at) || (e.storedAt.Equal(at) && k < oldest) {
			oldest, at = k, e.storedAt
		}
	}
	delete(c.data, oldest)
}

// Delete removes the key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
