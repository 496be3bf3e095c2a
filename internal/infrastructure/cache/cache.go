package cache

import (
	"strings"
	"sync"
	"time"

	statements "main/internal/domain/entity/statements"
	interfaces "main/internal/domain/interfaces"
)

// Clock supplies the current time. Tests inject a fake to exercise expiry
// without real delays.
type Clock func() time.Time

// StatementCache is an in-memory TTL cache of statement sets keyed by
// normalized ticker. Entries hold the value together with its expiry
// timestamp; an expired entry reads as a miss and is overwritten by the
// next Set.
type StatementCache struct {
	ttl time.Duration
	now Clock

	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	set       *statements.StatementSet
	expiresAt time.Time
}

var _ interfaces.StatementCache = (*StatementCache)(nil)

// New creates a cache with the given TTL and the real clock.
func New(ttl time.Duration) *StatementCache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a cache with an injectable clock.
func NewWithClock(ttl time.Duration, now Clock) *StatementCache {
	return &StatementCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached set for the ticker if present and not expired.
func (c *StatementCache) Get(ticker string) (*statements.StatementSet, bool) {
	key := normalize(ticker)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.set, true
}

// Set stores the set for the ticker, stamping its expiry. Last writer
// wins.
func (c *StatementCache) Set(ticker string, set *statements.StatementSet) {
	key := normalize(ticker)

	c.mu.Lock()
	c.entries[key] = entry{
		set:       set,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Purge drops expired entries and reports how many were removed.
func (c *StatementCache) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
