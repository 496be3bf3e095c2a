package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statements "main/internal/domain/entity/statements"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestCacheHitWithinTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	set := &statements.StatementSet{Ticker: "AAPL"}
	c.Set("AAPL", set)

	clock.Advance(59 * time.Minute)
	got, ok := c.Get("AAPL")
	require.True(t, ok)
	assert.Same(t, set, got)
}

func TestCacheMissAfterTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	c.Set("AAPL", &statements.StatementSet{Ticker: "AAPL"})

	clock.Advance(time.Hour + time.Second)
	_, ok := c.Get("AAPL")
	assert.False(t, ok)
}

func TestCacheMissUnknownTicker(t *testing.T) {
	c := New(time.Hour)
	_, ok := c.Get("MSFT")
	assert.False(t, ok)
}

func TestCacheNormalizesTicker(t *testing.T) {
	c := New(time.Hour)
	c.Set(" aapl ", &statements.StatementSet{Ticker: "AAPL"})

	got, ok := c.Get("AAPL")
	require.True(t, ok)
	assert.Equal(t, "AAPL", got.Ticker)
}

func TestCacheLastWriterWins(t *testing.T) {
	c := New(time.Hour)
	c.Set("AAPL", &statements.StatementSet{Ticker: "AAPL", Profile: statements.CompanyProfile{Name: "first"}})
	second := &statements.StatementSet{Ticker: "AAPL", Profile: statements.CompanyProfile{Name: "second"}}
	c.Set("AAPL", second)

	got, ok := c.Get("AAPL")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestCachePurge(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	c.Set("AAPL", &statements.StatementSet{Ticker: "AAPL"})
	clock.Advance(30 * time.Minute)
	c.Set("MSFT", &statements.StatementSet{Ticker: "MSFT"})

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, c.Purge())

	_, ok := c.Get("AAPL")
	assert.False(t, ok)
	_, ok = c.Get("MSFT")
	assert.True(t, ok)
}
